package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
	"boutiquehub/internal/storage"
)

type createProduitReq struct {
	BoutiqueID     string   `json:"boutiqueId"`
	Nom            string   `json:"nom"`
	Categorie      string   `json:"categorie"`
	PrixPartenaire float64  `json:"prixPartenaire"`
	PrixClient     float64  `json:"prixClient"`
	PrixPromo      *float64 `json:"prixPromo"`
	QuantiteStock  int      `json:"quantiteStock"`
	EnPromo        bool     `json:"enPromo"`
}

// CreateProduitLongrich accepts multipart (photo/videoDemo files) or JSON.
func CreateProduitLongrich(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProduitReq
		var photo, video string
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			req = createProduitReq{
				BoutiqueID:     r.FormValue("boutiqueId"),
				Nom:            r.FormValue("nom"),
				Categorie:      r.FormValue("categorie"),
				PrixPartenaire: parseFloat(r.FormValue("prixPartenaire")),
				PrixClient:     parseFloat(r.FormValue("prixClient")),
				QuantiteStock:  parseInt(r.FormValue("quantiteStock")),
				EnPromo:        parseBool(r.FormValue("enPromo")),
			}
			if v, ok := formValue(r, "prixPromo"); ok && v != "" {
				p := parseFloat(v)
				req.PrixPromo = &p
			}
			var err error
			if photo, _, err = storeFile(r, "photo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if video, _, err = storeFile(r, "videoDemo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.BoutiqueID == "" || req.Nom == "" || req.Categorie == "" || req.PrixPartenaire == 0 || req.PrixClient == 0 {
			respondError(w, http.StatusBadRequest, "boutiqueId, nom, categorie, prixPartenaire et prixClient requis")
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
		p := models.ProduitLongrich{
			Nom:            req.Nom,
			Categorie:      req.Categorie,
			PrixPartenaire: req.PrixPartenaire,
			PrixClient:     req.PrixClient,
			PrixPromo:      req.PrixPromo,
			QuantiteStock:  req.QuantiteStock,
			Photo:          photo,
			VideoDemo:      video,
			EnPromo:        req.EnPromo,
			BoutiqueID:     req.BoutiqueID,
		}
		if err := db.Create(&p).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("produit created", "id", p.ID, "boutique", p.BoutiqueID)
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Produit créé", "produit": p})
	}
}

func ListProduitsByBoutique(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		boutiqueID := chi.URLParam(r, "boutiqueId")
		var ps []models.ProduitLongrich
		_ = db.Where("boutique_id = ?", boutiqueID).Order("created_at desc").Find(&ps).Error
		respondJSON(w, ps)
	}
}

func UpdateProduitLongrich(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var p models.ProduitLongrich
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
			if v, ok := formValue(r, "categorie"); ok {
				p.Categorie = v
			}
			if v, ok := formValue(r, "prixPartenaire"); ok {
				p.PrixPartenaire = parseFloat(v)
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
			if v, ok := formValue(r, "quantiteStock"); ok {
				p.QuantiteStock = parseInt(v)
			}
			if v, ok := formValue(r, "enPromo"); ok {
				p.EnPromo = parseBool(v)
			}
			if url, ok, err := storeFile(r, "photo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			} else if ok {
				p.Photo = url
			}
			if url, ok, err := storeFile(r, "videoDemo", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			} else if ok {
				p.VideoDemo = url
			}
		} else {
			var req struct {
				Nom            *string  `json:"nom"`
				Categorie      *string  `json:"categorie"`
				PrixPartenaire *float64 `json:"prixPartenaire"`
				PrixClient     *float64 `json:"prixClient"`
				PrixPromo      *float64 `json:"prixPromo"`
				QuantiteStock  *int     `json:"quantiteStock"`
				EnPromo        *bool    `json:"enPromo"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if req.Nom != nil {
				p.Nom = *req.Nom
			}
			if req.Categorie != nil {
				p.Categorie = *req.Categorie
			}
			if req.PrixPartenaire != nil {
				p.PrixPartenaire = *req.PrixPartenaire
			}
			if req.PrixClient != nil {
				p.PrixClient = *req.PrixClient
			}
			if req.PrixPromo != nil {
				p.PrixPromo = req.PrixPromo
			}
			if req.QuantiteStock != nil {
				p.QuantiteStock = *req.QuantiteStock
			}
			if req.EnPromo != nil {
				p.EnPromo = *req.EnPromo
			}
		}
		if err := db.Save(&p).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Produit mis à jour", "produit": p})
	}
}

func DeleteProduitLongrich(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.ProduitLongrich{}, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondJSON(w, map[string]any{"message": "Produit supprimé"})
	}
}

// DuplicateProduits clones every product of the source boutique into the
// target. The clones get fresh ids; all or nothing.
func DuplicateProduits(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID := chi.URLParam(r, "boutiqueId")
		sourceID := chi.URLParam(r, "sourceBoutiqueId")
		var count int64
		if err := db.Model(&models.Boutique{}).Where("id = ?", targetID).Count(&count).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if count == 0 {
			respondError(w, http.StatusBadRequest, "Boutique introuvable")
			return
		}
		var n int
		err := db.Transaction(func(tx *gorm.DB) error {
			var source []models.ProduitLongrich
			if err := tx.Where("boutique_id = ?", sourceID).Find(&source).Error; err != nil {
				return err
			}
			for _, p := range source {
				clone := p
				clone.ID = ""
				clone.BoutiqueID = targetID
				if err := tx.Create(&clone).Error; err != nil {
					return err
				}
			}
			n = len(source)
			return nil
		})
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("produits duplicated", "source", sourceID, "target", targetID, "count", n)
		respondJSON(w, map[string]any{"message": fmt.Sprintf("%d produits dupliqués", n)})
	}
}
