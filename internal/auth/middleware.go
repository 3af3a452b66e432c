package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"boutiquehub/internal/models"
)

// RequireSuperAdmin resolves a superadmin bearer token to a live SuperAdmin row.
func RequireSuperAdmin(db *gorm.DB, tokens *Tokens) func(http.Handler) http.Handler {
	return guard(tokens, RoleSuperAdmin, "SuperAdmin", func(id string) (any, bool, error) {
		var sa models.SuperAdmin
		if err := db.First(&sa, "id = ?", id).Error; err != nil {
			return nil, false, err
		}
		return sa, false, nil
	})
}

// RequireAdminSecondaire rejects suspended accounts even when the token is valid.
func RequireAdminSecondaire(db *gorm.DB, tokens *Tokens) func(http.Handler) http.Handler {
	return guard(tokens, RoleAdminSecondaire, "AdminSecondaire", func(id string) (any, bool, error) {
		var as models.AdminSecondaire
		if err := db.Preload("Permissions").First(&as, "id = ?", id).Error; err != nil {
			return nil, false, err
		}
		return as, as.Suspendu, nil
	})
}

// RequireAdmin rejects suspended accounts even when the token is valid.
func RequireAdmin(db *gorm.DB, tokens *Tokens) func(http.Handler) http.Handler {
	return guard(tokens, RoleAdmin, "Admin", func(id string) (any, bool, error) {
		var a models.Admin
		if err := db.First(&a, "id = ?", id).Error; err != nil {
			return nil, false, err
		}
		return a, a.Suspendu, nil
	})
}

func guard(tokens *Tokens, role, label string, load func(id string) (record any, suspended bool, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				unauthorized(w, "Token requis")
				return
			}
			id, tokenRole, err := tokens.Verify(strings.TrimPrefix(h, "Bearer "))
			if err != nil || tokenRole != role {
				unauthorized(w, "Token "+label+" invalide")
				return
			}
			record, suspended, err := load(id)
			if err != nil {
				unauthorized(w, label+" invalide")
				return
			}
			if suspended {
				unauthorized(w, "Compte suspendu")
				return
			}
			p := Principal{ID: id, Role: role, Record: record}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
