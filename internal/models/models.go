package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Boutique types accepted at creation.
const (
	TypeBoutique    = "boutique"
	TypeSupermarche = "supermarche"
	TypeEntreprise  = "entreprise"
	TypeAutre       = "autre"
)

type SuperAdmin struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nom          string    `gorm:"not null" json:"nom"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AdminSecondaire struct {
	ID           string       `gorm:"type:uuid;primaryKey" json:"id"`
	Nom          string       `gorm:"not null" json:"nom"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	Telephone    string       `gorm:"uniqueIndex;not null" json:"telephone"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Suspendu     bool         `gorm:"not null;default:false" json:"suspendu"`
	SuperAdminID *string      `gorm:"type:uuid" json:"super_admin_id,omitempty"`
	Permissions  []Permission `gorm:"many2many:admin_secondaire_permissions" json:"permissions"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Admin is the boutiquier: operates at most one boutique. Email is
// optional for this role, the phone number is the identifier.
type Admin struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nom               string    `gorm:"not null" json:"nom"`
	Email             *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Telephone         string    `gorm:"uniqueIndex;not null" json:"telephone"`
	PasswordHash      string    `gorm:"not null" json:"-"`
	Suspendu          bool      `gorm:"not null;default:false" json:"suspendu"`
	AdminSecondaireID *string   `gorm:"type:uuid" json:"admin_secondaire_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type Permission struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	Nom         string `gorm:"uniqueIndex;not null" json:"nom"`
	Description string `json:"description"`
}

type Boutique struct {
	ID                    string           `gorm:"type:uuid;primaryKey" json:"id"`
	Nom                   string           `gorm:"not null" json:"nom"`
	Type                  string           `gorm:"not null" json:"type"`
	TypeAutre             string           `json:"type_autre,omitempty"`
	Quartier              string           `json:"quartier,omitempty"`
	Ville                 string           `json:"ville,omitempty"`
	NumeroTel             string           `gorm:"not null" json:"numero_tel"`
	PhotoBoutique         string           `json:"photo_boutique,omitempty"`
	LogoBoutique          string           `json:"logo_boutique,omitempty"`
	LienVitrine           string           `gorm:"uniqueIndex" json:"lien_vitrine"`
	Active                bool             `gorm:"not null;default:false" json:"active"`
	AutoriseAjoutProduits bool             `gorm:"not null;default:false" json:"autorise_ajout_produits"`
	AdminID               *string          `gorm:"type:uuid" json:"admin_id,omitempty"`
	Admin                 *Admin           `json:"admin,omitempty"`
	ProprietaireID        *string          `gorm:"type:uuid" json:"proprietaire_id,omitempty"`
	Proprietaire          *AdminSecondaire `gorm:"foreignKey:ProprietaireID" json:"proprietaire,omitempty"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type ProduitLongrich struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nom            string    `gorm:"not null" json:"nom"`
	Categorie      string    `gorm:"not null" json:"categorie"`
	PrixPartenaire float64   `gorm:"not null" json:"prix_partenaire"`
	PrixClient     float64   `gorm:"not null" json:"prix_client"`
	PrixPromo      *float64  `json:"prix_promo,omitempty"`
	QuantiteStock  int       `json:"quantite_stock"`
	Photo          string    `json:"photo,omitempty"`
	VideoDemo      string    `json:"video_demo,omitempty"`
	EnPromo        bool      `gorm:"not null;default:false" json:"en_promo"`
	BoutiqueID     string    `gorm:"type:uuid;index;not null" json:"boutique_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type AutreProduit struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nom         string    `json:"nom"`
	PrixClient  float64   `json:"prix_client"`
	PrixPromo   *float64  `json:"prix_promo,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	BoutiqueID  string    `gorm:"type:uuid;index;not null" json:"boutique_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Livreur struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nom        string    `json:"nom"`
	Telephone  string    `gorm:"uniqueIndex" json:"telephone"`
	Disponible bool      `gorm:"not null;default:false" json:"disponible"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Commande struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ClientNom   string    `json:"client_nom"`
	ClientTel   string    `json:"client_tel"`
	Items       JSONB     `gorm:"type:jsonb;default:'[]'" json:"items"`
	Total       float64   `json:"total"`
	Statut      string    `gorm:"not null;default:'en_attente'" json:"statut"`
	ConfirmePar *string   `json:"confirme_par,omitempty"`
	BoutiqueID  string    `gorm:"type:uuid;index;not null" json:"boutique_id"`
	LivreurID   *string   `gorm:"type:uuid" json:"livreur_id,omitempty"`
	Livreur     *Livreur  `json:"livreur,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChiffreAffaire struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Montant    float64   `gorm:"not null" json:"montant"`
	Valide     bool      `gorm:"not null;default:false" json:"valide"`
	BoutiqueID string    `gorm:"type:uuid;index;not null" json:"boutique_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IDs are generated in the hook rather than by the database so the same
// models work against the sqlite test driver.
func (m *SuperAdmin) BeforeCreate(tx *gorm.DB) error      { m.ID = newID(m.ID); return nil }
func (m *AdminSecondaire) BeforeCreate(tx *gorm.DB) error { m.ID = newID(m.ID); return nil }
func (m *Admin) BeforeCreate(tx *gorm.DB) error           { m.ID = newID(m.ID); return nil }
func (m *Permission) BeforeCreate(tx *gorm.DB) error      { m.ID = newID(m.ID); return nil }
func (m *Boutique) BeforeCreate(tx *gorm.DB) error        { m.ID = newID(m.ID); return nil }
func (m *ProduitLongrich) BeforeCreate(tx *gorm.DB) error { m.ID = newID(m.ID); return nil }
func (m *AutreProduit) BeforeCreate(tx *gorm.DB) error    { m.ID = newID(m.ID); return nil }
func (m *Livreur) BeforeCreate(tx *gorm.DB) error         { m.ID = newID(m.ID); return nil }
func (m *Commande) BeforeCreate(tx *gorm.DB) error        { m.ID = newID(m.ID); return nil }
func (m *ChiffreAffaire) BeforeCreate(tx *gorm.DB) error  { m.ID = newID(m.ID); return nil }

func newID(cur string) string {
	if cur != "" {
		return cur
	}
	return uuid.NewString()
}

// All returns every entity in migration order.
func All() []any {
	return []any{
		&SuperAdmin{}, &AdminSecondaire{}, &Admin{}, &Permission{},
		&Boutique{}, &ProduitLongrich{}, &AutreProduit{},
		&Livreur{}, &Commande{}, &ChiffreAffaire{},
	}
}
