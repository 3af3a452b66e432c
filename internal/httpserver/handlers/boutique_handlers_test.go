package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"boutiquehub/internal/models"
	"boutiquehub/internal/storage"
)

func multipartBody(t *testing.T, fields map[string]string, files map[string]string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for field, name := range files {
		fw, err := mw.CreateFormFile(field, name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("file-bytes-" + name)); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestCreateBoutiqueMissingNumeroTel(t *testing.T) {
	db := setupTestDB(t)
	req := httptest.NewRequest(http.MethodPost, "/boutiques", strings.NewReader(`{"nom":"Ma Boutique","type":"boutique"}`))
	w := httptest.NewRecorder()
	CreateBoutique(db, testStorer(t), testLogger())(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateBoutiqueInvalidType(t *testing.T) {
	db := setupTestDB(t)
	req := httptest.NewRequest(http.MethodPost, "/boutiques", strings.NewReader(`{"nom":"B","type":"usine","numeroTel":"0700"}`))
	w := httptest.NewRecorder()
	CreateBoutique(db, testStorer(t), testLogger())(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCreateBoutiqueMultipartWithUpload(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	st := storage.NewLocal(dir)

	body, ct := multipartBody(t,
		map[string]string{"nom": "Ma Boutique", "type": "boutique", "numeroTel": "0790000000", "ville": "Douala"},
		map[string]string{"photoBoutique": "front.jpg"},
	)
	req := httptest.NewRequest(http.MethodPost, "/boutiques", body)
	req.Header.Set("Content-Type", ct)
	w := httptest.NewRecorder()
	CreateBoutique(db, st, testLogger())(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Boutique models.Boutique `json:"boutique"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := resp.Boutique
	if !regexp.MustCompile(`^/uploads/\d+-front\.jpg$`).MatchString(b.PhotoBoutique) {
		t.Fatalf("unexpected photo path %q", b.PhotoBoutique)
	}
	if _, err := os.Stat(filepath.Join(dir, strings.TrimPrefix(b.PhotoBoutique, "/uploads/"))); err != nil {
		t.Fatalf("uploaded file missing on disk: %v", err)
	}
	if !regexp.MustCompile(`^/boutique/ma-boutique-\d+$`).MatchString(b.LienVitrine) {
		t.Fatalf("unexpected lien vitrine %q", b.LienVitrine)
	}
	if b.Ville != "Douala" {
		t.Fatalf("ville not stored: %q", b.Ville)
	}
}

func TestUpdateBoutiquePartial(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "Origine")

	req := httptest.NewRequest(http.MethodPut, "/boutiques/"+b.ID, strings.NewReader(`{"ville":"Yaoundé","active":true}`))
	w := httptest.NewRecorder()
	UpdateBoutique(db, testStorer(t), testLogger())(w, withURLParam(req, "id", b.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var got models.Boutique
	db.First(&got, "id = ?", b.ID)
	if got.Ville != "Yaoundé" || !got.Active {
		t.Fatalf("update not applied: %+v", got)
	}
	// Untouched fields survive.
	if got.Nom != "Origine" || got.NumeroTel != b.NumeroTel {
		t.Fatalf("partial update clobbered fields: %+v", got)
	}
}

func TestUpdateBoutiqueReassignOwners(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "Origine")
	admin := models.Admin{Nom: "Gérant", Telephone: "0711111111", PasswordHash: "x"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	prop := models.AdminSecondaire{Nom: "Prop", Email: "prop@test.io", Telephone: "0722222222", PasswordHash: "x"}
	if err := db.Create(&prop).Error; err != nil {
		t.Fatalf("seed proprietaire: %v", err)
	}

	body := `{"adminId":"` + admin.ID + `","proprietaireId":"` + prop.ID + `"}`
	req := httptest.NewRequest(http.MethodPut, "/boutiques/"+b.ID, strings.NewReader(body))
	w := httptest.NewRecorder()
	UpdateBoutique(db, testStorer(t), testLogger())(w, withURLParam(req, "id", b.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var got models.Boutique
	db.First(&got, "id = ?", b.ID)
	if got.AdminID == nil || *got.AdminID != admin.ID {
		t.Fatalf("adminId not applied: %+v", got.AdminID)
	}
	if got.ProprietaireID == nil || *got.ProprietaireID != prop.ID {
		t.Fatalf("proprietaireId not applied: %+v", got.ProprietaireID)
	}

	// Empty string detaches.
	req = httptest.NewRequest(http.MethodPut, "/boutiques/"+b.ID, strings.NewReader(`{"adminId":""}`))
	w = httptest.NewRecorder()
	UpdateBoutique(db, testStorer(t), testLogger())(w, withURLParam(req, "id", b.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	db.First(&got, "id = ?", b.ID)
	if got.AdminID != nil {
		t.Fatalf("adminId not detached: %v", *got.AdminID)
	}
	if got.ProprietaireID == nil || *got.ProprietaireID != prop.ID {
		t.Fatalf("proprietaireId lost on unrelated update: %+v", got.ProprietaireID)
	}
}

func TestDeleteBoutique(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "A Supprimer")
	req := httptest.NewRequest(http.MethodDelete, "/boutiques/"+b.ID, nil)
	w := httptest.NewRecorder()
	DeleteBoutique(db, testLogger())(w, withURLParam(req, "id", b.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var count int64
	db.Model(&models.Boutique{}).Count(&count)
	if count != 0 {
		t.Fatalf("boutique not deleted")
	}
}
