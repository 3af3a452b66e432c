package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutiquehub/internal/models"
)

func TestCreateProduitLongrich(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "Shop")
	body := `{"boutiqueId":"` + b.ID + `","nom":"Thé","categorie":"bien-être","prixPartenaire":4500,"prixClient":6000,"quantiteStock":10}`
	w := httptest.NewRecorder()
	CreateProduitLongrich(db, testStorer(t), testLogger())(w, httptest.NewRequest(http.MethodPost, "/produits-longrich", strings.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var p models.ProduitLongrich
	if err := db.First(&p, "boutique_id = ?", b.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Nom != "Thé" || p.PrixClient != 6000 {
		t.Fatalf("unexpected produit: %+v", p)
	}
}

func TestCreateProduitMissingFields(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "Shop")
	body := `{"boutiqueId":"` + b.ID + `","nom":"Thé"}`
	w := httptest.NewRecorder()
	CreateProduitLongrich(db, testStorer(t), testLogger())(w, httptest.NewRequest(http.MethodPost, "/produits-longrich", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCreateProduitUnknownBoutique(t *testing.T) {
	db := setupTestDB(t)
	body := `{"boutiqueId":"no-such-id","nom":"Thé","categorie":"c","prixPartenaire":1,"prixClient":2}`
	w := httptest.NewRecorder()
	CreateProduitLongrich(db, testStorer(t), testLogger())(w, httptest.NewRequest(http.MethodPost, "/produits-longrich", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCreateProduitDBFaultSurfaced(t *testing.T) {
	db := setupTestDB(t)
	b := seedBoutique(t, db, "Shop")
	if err := db.Migrator().DropTable(&models.Boutique{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	body := `{"boutiqueId":"` + b.ID + `","nom":"Thé","categorie":"c","prixPartenaire":1,"prixClient":2}`
	w := httptest.NewRecorder()
	CreateProduitLongrich(db, testStorer(t), testLogger())(w, httptest.NewRequest(http.MethodPost, "/produits-longrich", strings.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	// The database error must come through, not a misleading lookup miss.
	if strings.Contains(w.Body.String(), "introuvable") {
		t.Fatalf("db fault masked as missing boutique: %s", w.Body.String())
	}
}

func TestListProduitsByBoutique(t *testing.T) {
	db := setupTestDB(t)
	b1 := seedBoutique(t, db, "Shop1")
	b2 := seedBoutique(t, db, "Shop2")
	for i, bid := range []string{b1.ID, b1.ID, b2.ID} {
		p := models.ProduitLongrich{Nom: "P", Categorie: "c", PrixPartenaire: 1, PrixClient: float64(i + 1), BoutiqueID: bid}
		if err := db.Create(&p).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodGet, "/boutiques/"+b1.ID+"/produits", nil)
	w := httptest.NewRecorder()
	ListProduitsByBoutique(db, testLogger())(w, withURLParam(req, "boutiqueId", b1.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var ps []models.ProduitLongrich
	if err := json.Unmarshal(w.Body.Bytes(), &ps); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ps) != 2 {
		t.Fatalf("expected 2 produits for boutique 1, got %d", len(ps))
	}
}

func TestDuplicateProduits(t *testing.T) {
	db := setupTestDB(t)
	source := seedBoutique(t, db, "Source")
	target := seedBoutique(t, db, "Cible")
	promo := 5000.0
	seeded := []models.ProduitLongrich{
		{Nom: "A", Categorie: "c1", PrixPartenaire: 100, PrixClient: 150, QuantiteStock: 3, BoutiqueID: source.ID},
		{Nom: "B", Categorie: "c2", PrixPartenaire: 200, PrixClient: 280, PrixPromo: &promo, EnPromo: true, BoutiqueID: source.ID},
	}
	for i := range seeded {
		if err := db.Create(&seeded[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/boutiques/"+target.ID+"/duplicate-produits/"+source.ID, nil)
	req = withURLParam(req, "boutiqueId", target.ID)
	req = withURLParam(req, "sourceBoutiqueId", source.ID)
	w := httptest.NewRecorder()
	DuplicateProduits(db, testLogger())(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "2 produits dupliqués") {
		t.Fatalf("unexpected message: %s", w.Body.String())
	}

	var clones []models.ProduitLongrich
	if err := db.Where("boutique_id = ?", target.ID).Order("nom").Find(&clones).Error; err != nil {
		t.Fatalf("load clones: %v", err)
	}
	if len(clones) != 2 {
		t.Fatalf("expected 2 clones, got %d", len(clones))
	}
	for i, c := range clones {
		src := seeded[i]
		if c.ID == src.ID || c.ID == "" {
			t.Fatalf("clone %d kept source identity: %q", i, c.ID)
		}
		if c.Nom != src.Nom || c.Categorie != src.Categorie || c.PrixPartenaire != src.PrixPartenaire ||
			c.PrixClient != src.PrixClient || c.QuantiteStock != src.QuantiteStock || c.EnPromo != src.EnPromo {
			t.Fatalf("clone %d field mismatch: %+v vs %+v", i, c, src)
		}
	}
	// Source set untouched.
	var count int64
	db.Model(&models.ProduitLongrich{}).Where("boutique_id = ?", source.ID).Count(&count)
	if count != 2 {
		t.Fatalf("source produits changed: %d", count)
	}
}

func TestDuplicateProduitsUnknownTarget(t *testing.T) {
	db := setupTestDB(t)
	source := seedBoutique(t, db, "Source")
	req := httptest.NewRequest(http.MethodPost, "/boutiques/nope/duplicate-produits/"+source.ID, nil)
	req = withURLParam(req, "boutiqueId", "nope")
	req = withURLParam(req, "sourceBoutiqueId", source.ID)
	w := httptest.NewRecorder()
	DuplicateProduits(db, testLogger())(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}
