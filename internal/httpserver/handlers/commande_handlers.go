package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/auth"
	"boutiquehub/internal/commande"
	"boutiquehub/internal/models"
)

type createCommandeReq struct {
	BoutiqueID string          `json:"boutiqueId"`
	ClientNom  string          `json:"clientNom"`
	ClientTel  string          `json:"clientTel"`
	Items      json.RawMessage `json:"items"`
	Total      float64         `json:"total"`
}

func CreateCommande(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createCommandeReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.BoutiqueID == "" {
			respondError(w, http.StatusBadRequest, "boutiqueId requis")
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
		c := models.Commande{
			ClientNom:  req.ClientNom,
			ClientTel:  req.ClientTel,
			Items:      models.JSONB(req.Items),
			Total:      req.Total,
			Statut:     commande.StatutEnAttente,
			BoutiqueID: req.BoutiqueID,
		}
		if err := db.Create(&c).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("commande created", "id", c.ID, "boutique", c.BoutiqueID)
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Commande créée", "commande": c})
	}
}

func ListCommandesByBoutique(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boutiqueID := chi.URLParam(r, "boutiqueId")
		var cs []models.Commande
		_ = db.Preload("Livreur").Where("boutique_id = ?", boutiqueID).Order("created_at desc").Find(&cs).Error
		respondJSON(w, cs)
	}
}

// UpdateCommandeStatut moves an order one step through its lifecycle and
// records which role confirmed the move. An optional livreurId assigns the
// delivery agent alongside the transition.
func UpdateCommandeStatut(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var req struct {
			Statut    string  `json:"statut"`
			LivreurID *string `json:"livreurId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !commande.Valid(req.Statut) {
			respondError(w, http.StatusBadRequest, "statut inconnu")
			return
		}
		var c models.Commande
		if err := db.First(&c, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusNotFound, "Commande introuvable")
			return
		}
		if err := commande.Transition(c.Statut, req.Statut); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.LivreurID != nil {
			var count int64
			if err := db.Model(&models.Livreur{}).Where("id = ?", *req.LivreurID).Count(&count).Error; err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if count == 0 {
				respondError(w, http.StatusBadRequest, "Livreur introuvable")
				return
			}
			c.LivreurID = req.LivreurID
		}
		c.Statut = req.Statut
		if role := auth.FromContext(r.Context()).Role; role != "" {
			c.ConfirmePar = &role
		}
		if err := db.Save(&c).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("commande statut updated", "id", c.ID, "statut", c.Statut)
		respondJSON(w, map[string]any{"message": "Statut mis à jour", "commande": c})
	}
}

func DeleteCommande(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Commande{}, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Commande supprimée"})
	}
}
