package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Category is a descriptive tag for expenses. Names are unique per family.
type Category struct {
	DefaultModel
	FamilyID uuid.UUID `json:"familyId" gorm:"uniqueIndex:category_family_name"`
	Family   Family    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name     string    `json:"name" gorm:"uniqueIndex:category_family_name"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// CreateCategory creates a category. Creation is idempotent by
// (family, name): inserting an existing name is a silent no-op.
func CreateCategory(familyID uuid.UUID, name string) error {
	return DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&Category{FamilyID: familyID, Name: name}).Error
}

// CategoryNames returns the category names of the family, sorted
// alphabetically.
func CategoryNames(familyID uuid.UUID) ([]string, error) {
	names := make([]string, 0)

	err := DB.Model(&Category{}).
		Where("family_id = ?", familyID).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}

	return names, nil
}
