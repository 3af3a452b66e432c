package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
	"boutiquehub/internal/storage"
)

type createAutreProduitReq struct {
	BoutiqueID  string   `json:"boutiqueId"`
	Nom         string   `json:"nom"`
	PrixClient  float64  `json:"prixClient"`
	PrixPromo   *float64 `json:"prixPromo"`
	Description string   `json:"description"`
}

// CreateAutreProduit handles the generic, non-branded product line.
func CreateAutreProduit(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAutreProduitReq
		var photo string
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			req = createAutreProduitReq{
				BoutiqueID:  r.FormValue("boutiqueId"),
				Nom:         r.FormValue("nom"),
				PrixClient:  parseFloat(r.FormValue("prixClient")),
				Description: r.FormValue("description"),
			}
			if v, ok := formValue(r, "prixPromo"); ok && v != "" {
				f := parseFloat(v)
				req.PrixPromo = &f
			}
			var err error
			if photo, _, err = storeFile(r, "photo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.BoutiqueID == "" || req.Nom == "" {
			respondError(w, http.StatusBadRequest, "boutiqueId et nom requis")
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
		p := models.AutreProduit{
			Nom:         req.Nom,
			PrixClient:  req.PrixClient,
			PrixPromo:   req.PrixPromo,
			Photo:       photo,
			Description: req.Description,
			BoutiqueID:  req.BoutiqueID,
		}
		if err := db.Create(&p).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Produit créé", "produit": p})
	}
}

func ListAutresProduitsByBoutique(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boutiqueID := chi.URLParam(r, "boutiqueId")
		var ps []models.AutreProduit
		_ = db.Where("boutique_id = ?", boutiqueID).Order("created_at desc").Find(&ps).Error
		respondJSON(w, ps)
	}
}

func UpdateAutreProduit(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var p models.AutreProduit
		if err := db.First(&p, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusNotFound, "Produit introuvable")
			return
		}
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if v, ok := formValue(r, "nom"); ok {
				p.Nom = v
			}
			if v, ok := formValue(r, "prixClient"); ok {
				p.PrixClient = parseFloat(v)
			}
			if v, ok := formValue(r, "prixPromo"); ok {
				if v == "" {
					p.PrixPromo = nil
				} else {
					f := parseFloat(v)
					p.PrixPromo = &f
				}
			}
			if v, ok := formValue(r, "description"); ok {
				p.Description = v
			}
			if url, ok, err := storeFile(r, "photo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			} else if ok {
				p.Photo = url
			}
		} else {
			var req struct {
				Nom         *string  `json:"nom"`
				PrixClient  *float64 `json:"prixClient"`
				PrixPromo   *float64 `json:"prixPromo"`
				Description *string  `json:"description"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if req.Nom != nil {
				p.Nom = *req.Nom
			}
			if req.PrixClient != nil {
				p.PrixClient = *req.PrixClient
			}
			if req.PrixPromo != nil {
				p.PrixPromo = req.PrixPromo
			}
			if req.Description != nil {
				p.Description = *req.Description
			}
		}
		if err := db.Save(&p).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Produit mis à jour", "produit": p})
	}
}

func DeleteAutreProduit(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.AutreProduit{}, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Produit supprimé"})
	}
}
