package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
)

func CreateLivreur(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Nom        string `json:"nom"`
			Telephone  string `json:"telephone"`
			Disponible bool   `json:"disponible"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Nom == "" || req.Telephone == "" {
			respondError(w, http.StatusBadRequest, "nom et telephone requis")
			return
		}
		var count int64
		if err := db.Model(&models.Livreur{}).Where("telephone = ?", req.Telephone).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count > 0 {
			respondError(w, http.StatusBadRequest, "Téléphone déjà utilisé")
			return
		}
		l := models.Livreur{Nom: req.Nom, Telephone: req.Telephone, Disponible: req.Disponible}
		if err := db.Create(&l).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Livreur créé", "livreur": l})
	}
}

func ListLivreurs(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ls []models.Livreur
		_ = db.Order("created_at desc").Find(&ls).Error
		respondJSON(w, ls)
	}
}

func SetLivreurDisponibilite(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Disponible bool `json:"disponible"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		res := db.Model(&models.Livreur{}).Where("id = ?", id).Update("disponible", req.Disponible)
		if res.Error != nil {
			respondError(w, http.StatusBadRequest, res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "Livreur introuvable")
			return
		}
		respondJSON(w, map[string]any{"message": "Disponibilité mise à jour"})
	}
}
