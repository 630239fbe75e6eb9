package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saving is a contribution towards the family's savings, optionally with a
// target amount.
type Saving struct {
	DefaultModel
	FamilyID    uuid.UUID           `json:"familyId"`
	Family      Family              `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal     `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Goal        decimal.NullDecimal `json:"goal" gorm:"type:DECIMAL(10,2)"` // Optional target amount
	Description string              `json:"description"`
	AddedBy     string              `json:"addedBy"`
}

// OwnerFamily returns the family this resource belongs to.
func (s Saving) OwnerFamily() uuid.UUID {
	return s.FamilyID
}

func (s *Saving) BeforeSave(_ *gorm.DB) error {
	s.Description = strings.TrimSpace(s.Description)
	s.AddedBy = strings.TrimSpace(s.AddedBy)

	return nil
}
