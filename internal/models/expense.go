package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single spending entry of a family.
type Expense struct {
	DefaultModel
	FamilyID    uuid.UUID       `json:"familyId"`
	Family      Family          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	AddedBy     string          `json:"addedBy"` // Display name snapshot, not a reference to a member
}

// OwnerFamily returns the family this resource belongs to.
func (e Expense) OwnerFamily() uuid.UUID {
	return e.FamilyID
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	e.AddedBy = strings.TrimSpace(e.AddedBy)

	return nil
}
