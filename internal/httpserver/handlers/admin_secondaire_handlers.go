package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/models"
	"boutiquehub/internal/permissions"
)

type createAdminSecondaireReq struct {
	Nom         string   `json:"nom"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Telephone   string   `json:"telephone"`
	Permissions []string `json:"permissions,omitempty"`
}

func CreateAdminSecondaire(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAdminSecondaireReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Email = strings.TrimSpace(strings.ToLower(req.Email))
		if req.Nom == "" || req.Email == "" || req.Password == "" || req.Telephone == "" {
			respondError(w, http.StatusBadRequest, "nom, email, password et telephone requis")
			return
		}
		if err := permissions.Validate(req.Permissions); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		var count int64
		if err := db.Model(&models.AdminSecondaire{}).Where("email = ? OR telephone = ?", req.Email, req.Telephone).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count > 0 {
			respondError(w, http.StatusBadRequest, "Email ou téléphone déjà utilisé")
			return
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "hash error")
			return
		}
		sub := auth.Subject(r.Context())
		admin := models.AdminSecondaire{
			Nom:          req.Nom,
			Email:        req.Email,
			Telephone:    req.Telephone,
			PasswordHash: hash,
		}
		if sub != "" {
			admin.SuperAdminID = &sub
		}
		if err := db.Create(&admin).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(req.Permissions) > 0 {
			if err := permissions.Replace(db, admin.ID, req.Permissions); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		}
		db.Preload("Permissions").First(&admin, "id = ?", admin.ID)
		lg.Infow("admin secondaire created", "id", admin.ID, "email", admin.Email)
		respondStatus(w, http.StatusCreated, map[string]any{"message": "AdminSecondaire créé", "admin": admin})
	}
}

func ListAdminsSecondaires(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var admins []models.AdminSecondaire
		_ = db.Preload("Permissions").Order("created_at desc").Find(&admins).Error
		respondJSON(w, admins)
	}
}

func UpdatePermissions(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Permissions []string `json:"permissions"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := permissions.Replace(db, id, req.Permissions); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(w, http.StatusNotFound, "AdminSecondaire introuvable")
				return
			}
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Permissions mises à jour"})
	}
}

func SuspendAdminSecondaire(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		res := db.Model(&models.AdminSecondaire{}).Where("id = ?", id).Update("suspendu", true)
		if res.Error != nil {
			respondError(w, http.StatusBadRequest, res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "AdminSecondaire introuvable")
			return
		}
		lg.Infow("admin secondaire suspended", "id", id)
		respondJSON(w, map[string]any{"message": "AdminSecondaire suspendu"})
	}
}

func DeleteAdminSecondaire(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Select("Permissions").Delete(&models.AdminSecondaire{ID: id}).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "AdminSecondaire supprimé"})
	}
}
