package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/models"
	"boutiquehub/internal/permissions"
	"boutiquehub/internal/storage"
)

func setupRouter(t *testing.T) (http.Handler, *gorm.DB, *auth.Tokens) {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := permissions.Seed(db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	tokens := auth.NewTokens("router-test-secret", time.Hour)
	st := storage.NewLocal(t.TempDir())
	return NewRouter(db, tokens, st, zap.NewNop().Sugar()), db, tokens
}

func TestRegisterLoginAndProtectedRoute(t *testing.T) {
	router, _, _ := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/superadmin/register",
		strings.NewReader(`{"nom":"A","email":"a@x.com","password":"p"}`)))
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Without a token the admin surface is closed.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/superadmin/boutiques", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/superadmin/boutiques", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRejectsWrongRoleToken(t *testing.T) {
	router, db, tokens := setupRouter(t)
	a := models.Admin{Nom: "C", Telephone: "0700000002", PasswordHash: "h"}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	tok, _ := tokens.Sign(a.ID, auth.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/api/superadmin/boutiques", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("admin token on superadmin surface: expected 401 got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	router, _, _ := setupRouter(t)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}
