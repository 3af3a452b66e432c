package permissions

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"boutiquehub/internal/models"
)

// Catalog is the fixed set of grantable capabilities. Grant requests are
// validated against it; the seed inserts each missing entry at startup.
var Catalog = []string{
	"create_admin",
	"suspend_admin",
	"delete_admin",
	"create_boutique",
	"activate_boutique",
	"delete_boutique",
	"manage_produits_longrich",
	"duplicate_produits",
	"manage_autres_produits",
	"view_stats_ca",
	"manage_commandes",
	"confirm_livraisons",
}

var catalogSet = func() map[string]struct{} {
	s := make(map[string]struct{}, len(Catalog))
	for _, n := range Catalog {
		s[n] = struct{}{}
	}
	return s
}()

// ErrUnknownPermission rejects grant requests naming capabilities outside
// the catalog instead of silently dropping them.
type ErrUnknownPermission struct {
	Names []string
}

func (e ErrUnknownPermission) Error() string {
	return fmt.Sprintf("permissions inconnues: %s", strings.Join(e.Names, ", "))
}

// Validate returns an error listing every name not present in the catalog.
func Validate(names []string) error {
	var unknown []string
	for _, n := range names {
		if _, ok := catalogSet[n]; !ok {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return ErrUnknownPermission{Names: unknown}
	}
	return nil
}

// Seed inserts any catalog entry missing from the permissions table.
func Seed(db *gorm.DB) error {
	for _, nom := range Catalog {
		var count int64
		if err := db.Model(&models.Permission{}).Where("nom = ?", nom).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		p := models.Permission{Nom: nom, Description: strings.ReplaceAll(nom, "_", " ")}
		if err := db.Create(&p).Error; err != nil {
			return err
		}
	}
	return nil
}
