package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
)

func CreateChiffreAffaire(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			BoutiqueID string  `json:"boutiqueId"`
			Montant    float64 `json:"montant"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.BoutiqueID == "" || req.Montant <= 0 {
			respondError(w, http.StatusBadRequest, "boutiqueId et montant requis")
			return
		}
		var count int64
		if err := db.Model(&models.Boutique{}).Where("id = ?", req.BoutiqueID).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count == 0 {
			respondError(w, http.StatusBadRequest, "Boutique introuvable")
			return
		}
		ca := models.ChiffreAffaire{Montant: req.Montant, BoutiqueID: req.BoutiqueID}
		if err := db.Create(&ca).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Chiffre d'affaire enregistré", "chiffre_affaire": ca})
	}
}

func ValiderChiffreAffaire(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		res := db.Model(&models.ChiffreAffaire{}).Where("id = ?", id).Update("valide", true)
		if res.Error != nil {
			respondError(w, http.StatusBadRequest, res.Error.Error())
			return
		}
		if res.RowsAffected == 0 {
			respondError(w, http.StatusNotFound, "Chiffre d'affaire introuvable")
			return
		}
		respondJSON(w, map[string]any{"message": "Chiffre d'affaire validé"})
	}
}

type caStat struct {
	ID          string  `json:"id"`
	Nom         string  `json:"nom"`
	LienVitrine string  `json:"lien_vitrine"`
	TotalCA     float64 `json:"total_ca"`
}

// StatsCA sums every ledger line, validated or not, per boutique. Rooted
// at boutiques so a shop with no ledger lines still shows up, at zero.
func StatsCA(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats []caStat
		err := db.Model(&models.Boutique{}).
			Select("boutiques.id AS id, boutiques.nom AS nom, boutiques.lien_vitrine AS lien_vitrine, COALESCE(SUM(chiffre_affaires.montant), 0) AS total_ca").
			Joins("LEFT JOIN chiffre_affaires ON chiffre_affaires.boutique_id = boutiques.id").
			Group("boutiques.id, boutiques.nom, boutiques.lien_vitrine").
			Scan(&stats).Error
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, stats)
	}
}
