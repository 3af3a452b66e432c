package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/models"
)

type createAdminReq struct {
	Nom       string `json:"nom"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone"`
	Password  string `json:"password"`
}

// CreateAdmin registers a boutiquier. The phone number is the identifier;
// email is optional but unique when present.
func CreateAdmin(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Nom == "" || req.Telephone == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "nom, telephone et password requis")
			return
		}
		var count int64
		if err := db.Model(&models.Admin{}).Where("telephone = ?", req.Telephone).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count > 0 {
			respondError(w, http.StatusBadRequest, "Téléphone déjà utilisé")
			return
		}
		var email *string
		if e := strings.TrimSpace(strings.ToLower(req.Email)); e != "" {
			if err := db.Model(&models.Admin{}).Where("email = ?", e).Count(&count).Error; err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if count > 0 {
				respondError(w, http.StatusBadRequest, "Email déjà utilisé")
				return
			}
			email = &e
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "hash error")
			return
		}
		admin := models.Admin{Nom: req.Nom, Email: email, Telephone: req.Telephone, PasswordHash: hash}
		if err := db.Create(&admin).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("admin created", "id", admin.ID, "telephone", admin.Telephone)
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Admin créé", "admin": admin})
	}
}

func ListAdmins(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var admins []models.Admin
		_ = db.Order("created_at desc").Find(&admins).Error
		respondJSON(w, admins)
	}
}

func SuspendAdmin(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		res := db.Model(&models.Admin{}).Where("id = ?", id).Update("suspendu", true)
		if res.Error != nil {
			respondError(w, http.StatusBadRequest, res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "Admin introuvable")
			return
		}
		lg.Infow("admin suspended", "id", id)
		respondJSON(w, map[string]any{"message": "Admin suspendu"})
	}
}

func DeleteAdmin(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Admin{}, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Admin supprimé"})
	}
}
