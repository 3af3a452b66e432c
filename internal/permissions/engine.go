package permissions

import (
	"gorm.io/gorm"

	"boutiquehub/internal/models"
)

// Replace swaps the full grant set of an AdminSecondaire for the given
// catalog names, atomically: either the new set lands in full or the old
// set survives. An empty slice revokes everything.
func Replace(db *gorm.DB, adminSecondaireID string, names []string) error {
	if err := Validate(names); err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		var admin models.AdminSecondaire
		if err := tx.First(&admin, "id = ?", adminSecondaireID).Error; err != nil {
			return err
		}
		var perms []models.Permission
		if len(names) > 0 {
			if err := tx.Where("nom IN ?", names).Find(&perms).Error; err != nil {
				return err
			}
		}
		return tx.Model(&admin).Association("Permissions").Replace(perms)
	})
}
