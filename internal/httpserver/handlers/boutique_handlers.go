package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"boutiquehub/internal/models"
	"boutiquehub/internal/storage"
)

func validBoutiqueType(t string) bool {
	switch t {
	case models.TypeBoutique, models.TypeSupermarche, models.TypeEntreprise, models.TypeAutre:
		return true
	}
	return false
}

// optionalID maps "" to nil so an empty value detaches the association.
func optionalID(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// lienVitrine builds the unique storefront link from the boutique name.
func lienVitrine(nom string) string {
	return fmt.Sprintf("/boutique/%s-%d", slug.Make(nom), time.Now().UnixMilli())
}

type createBoutiqueReq struct {
	AdminID               string `json:"adminId"`
	ProprietaireID        string `json:"proprietaireId"`
	Nom                   string `json:"nom"`
	Type                  string `json:"type"`
	TypeAutre             string `json:"typeAutre"`
	Quartier              string `json:"quartier"`
	Ville                 string `json:"ville"`
	NumeroTel             string `json:"numeroTel"`
	Active                bool   `json:"active"`
	AutoriseAjoutProduits bool   `json:"autoriseAjoutProduits"`
}

// CreateBoutique accepts multipart (with photoBoutique/logoBoutique files)
// or plain JSON.
func CreateBoutique(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBoutiqueReq
		var photo, logo string
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			req = createBoutiqueReq{
				AdminID:               r.FormValue("adminId"),
				ProprietaireID:        r.FormValue("proprietaireId"),
				Nom:                   r.FormValue("nom"),
				Type:                  r.FormValue("type"),
				TypeAutre:             r.FormValue("typeAutre"),
				Quartier:              r.FormValue("quartier"),
				Ville:                 r.FormValue("ville"),
				NumeroTel:             r.FormValue("numeroTel"),
				Active:                parseBool(r.FormValue("active")),
				AutoriseAjoutProduits: parseBool(r.FormValue("autoriseAjoutProduits")),
			}
			var err error
			if photo, _, err = storeFile(r, "photoBoutique", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if logo, _, err = storeFile(r, "logoBoutique", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Nom == "" || req.Type == "" || req.NumeroTel == "" {
			respondError(w, http.StatusBadRequest, "nom, type et numeroTel requis")
			return
		}
		if !validBoutiqueType(req.Type) {
			respondError(w, http.StatusBadRequest, "type de boutique invalide")
			return
		}
		b := models.Boutique{
			Nom:                   req.Nom,
			Type:                  req.Type,
			TypeAutre:             req.TypeAutre,
			Quartier:              req.Quartier,
			Ville:                 req.Ville,
			NumeroTel:             req.NumeroTel,
			PhotoBoutique:         photo,
			LogoBoutique:          logo,
			LienVitrine:           lienVitrine(req.Nom),
			Active:                req.Active,
			AutoriseAjoutProduits: req.AutoriseAjoutProduits,
		}
		if req.AdminID != "" {
			b.AdminID = &req.AdminID
		}
		if req.ProprietaireID != "" {
			b.ProprietaireID = &req.ProprietaireID
		}
		if err := db.Create(&b).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("boutique created", "id", b.ID, "nom", b.Nom)
		respondStatus(w, http.StatusCreated, map[string]any{"message": "Boutique créée", "boutique": b})
	}
}

func ListBoutiques(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var bs []models.Boutique
		_ = db.Preload("Admin").Preload("Proprietaire.Permissions").Order("created_at desc").Find(&bs).Error
		respondJSON(w, bs)
	}
}

// UpdateBoutique is a partial update: absent fields stay untouched, a file
// field present in the request overwrites the stored URL.
func UpdateBoutique(db *gorm.DB, st storage.Storer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var b models.Boutique
		if err := db.First(&b, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusNotFound, "Boutique introuvable")
			return
		}
		if isMultipart(r) {
			if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if v, ok := formValue(r, "nom"); ok {
				b.Nom = v
			}
			if v, ok := formValue(r, "type"); ok {
				if !validBoutiqueType(v) {
					respondError(w, http.StatusBadRequest, "type de boutique invalide")
					return
				}
				b.Type = v
			}
			if v, ok := formValue(r, "typeAutre"); ok {
				b.TypeAutre = v
			}
			if v, ok := formValue(r, "quartier"); ok {
				b.Quartier = v
			}
			if v, ok := formValue(r, "ville"); ok {
				b.Ville = v
			}
			if v, ok := formValue(r, "numeroTel"); ok {
				b.NumeroTel = v
			}
			if v, ok := formValue(r, "adminId"); ok {
				b.AdminID = optionalID(v)
			}
			if v, ok := formValue(r, "proprietaireId"); ok {
				b.ProprietaireID = optionalID(v)
			}
			if v, ok := formValue(r, "active"); ok {
				b.Active = parseBool(v)
			}
			if v, ok := formValue(r, "autoriseAjoutProduits"); ok {
				b.AutoriseAjoutProduits = parseBool(v)
			}
			if url, ok, err := storeFile(r, "photoBoutique", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			} else if ok {
				b.PhotoBoutique = url
			}
			if url, ok, err := storeFile(r, "logoBoutique", st); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			} else if ok {
				b.LogoBoutique = url
			}
		} else {
			var req struct {
				Nom                   *string `json:"nom"`
				Type                  *string `json:"type"`
				TypeAutre             *string `json:"typeAutre"`
				Quartier              *string `json:"quartier"`
				Ville                 *string `json:"ville"`
				NumeroTel             *string `json:"numeroTel"`
				AdminID               *string `json:"adminId"`
				ProprietaireID        *string `json:"proprietaireId"`
				Active                *bool   `json:"active"`
				AutoriseAjoutProduits *bool   `json:"autoriseAjoutProduits"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			if req.Nom != nil {
				b.Nom = *req.Nom
			}
			if req.Type != nil {
				if !validBoutiqueType(*req.Type) {
					respondError(w, http.StatusBadRequest, "type de boutique invalide")
					return
				}
				b.Type = *req.Type
			}
			if req.TypeAutre != nil {
				b.TypeAutre = *req.TypeAutre
			}
			if req.Quartier != nil {
				b.Quartier = *req.Quartier
			}
			if req.Ville != nil {
				b.Ville = *req.Ville
			}
			if req.NumeroTel != nil {
				b.NumeroTel = *req.NumeroTel
			}
			if req.AdminID != nil {
				b.AdminID = optionalID(*req.AdminID)
			}
			if req.ProprietaireID != nil {
				b.ProprietaireID = optionalID(*req.ProprietaireID)
			}
			if req.Active != nil {
				b.Active = *req.Active
			}
			if req.AutoriseAjoutProduits != nil {
				b.AutoriseAjoutProduits = *req.AutoriseAjoutProduits
			}
		}
		if err := db.Save(&b).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		db.Preload("Proprietaire").First(&b, "id = ?", b.ID)
		respondJSON(w, map[string]any{"message": "Boutique mise à jour", "boutique": b})
	}
}

func DeleteBoutique(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := db.Delete(&models.Boutique{}, "id = ?", id).Error; err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		lg.Infow("boutique deleted", "id", id)
		respondJSON(w, map[string]any{"message": "Boutique supprimée"})
	}
}
