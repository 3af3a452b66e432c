package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/models"
)

type registerReq struct {
	Nom      string `json:"nom"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates the root principal and logs it straight in.
func Register(db *gorm.DB, tokens *auth.Tokens, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Nom == "" || req.Email == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "nom, email et password requis")
			return
		}
		var count int64
		if err := db.Model(&models.SuperAdmin{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count > 0 {
			respondError(w, http.StatusBadRequest, "Super admin déjà enregistré")
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "hash error")
			return
		}
		sa := models.SuperAdmin{Nom: req.Nom, Email: req.Email, PasswordHash: hash}
		if err := db.Create(&sa).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		tok, err := tokens.Sign(sa.ID, auth.RoleSuperAdmin)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "token error")
			return
		}
		lg.Infow("superadmin registered", "email", sa.Email)
		respondStatus(w, http.StatusCreated, map[string]any{
			"token":      tok,
			"role":       auth.RoleSuperAdmin,
			"superadmin": sa,
		})
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(db *gorm.DB, tokens *auth.Tokens, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var sa models.SuperAdmin
		if err := db.First(&sa, "email = ?", strings.ToLower(req.Email)).Error; err != nil {
			respondError(w, http.StatusBadRequest, "Identifiants invalides")
			return
		}
		if err := auth.CheckPassword(sa.PasswordHash, req.Password); err != nil {
			respondError(w, http.StatusBadRequest, "Identifiants invalides")
			return
		}
		tok, err := tokens.Sign(sa.ID, auth.RoleSuperAdmin)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "token error")
			return
		}
		respondJSON(w, map[string]any{
			"token":      tok,
			"role":       auth.RoleSuperAdmin,
			"superadmin": sa,
		})
	}
}
