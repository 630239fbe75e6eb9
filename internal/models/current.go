package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// CurrentType determines the sign of a current account entry in the
// aggregate balance.
type CurrentType string

const (
	CurrentCredit CurrentType = "credit"
	CurrentDebit  CurrentType = "debit"
)

// Valid reports whether the type is one of the allowed values.
func (t CurrentType) Valid() bool {
	return slices.Contains([]CurrentType{CurrentCredit, CurrentDebit}, t)
}

// Current is an entry of the family's current account.
type Current struct {
	DefaultModel
	FamilyID    uuid.UUID       `json:"familyId"`
	Family      Family          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Type        CurrentType     `json:"type" gorm:"type:VARCHAR(10)"`
	Description string          `json:"description"`
	AddedBy     string          `json:"addedBy"`
}

// OwnerFamily returns the family this resource belongs to.
func (c Current) OwnerFamily() uuid.UUID {
	return c.FamilyID
}

func (c *Current) BeforeSave(_ *gorm.DB) error {
	c.Description = strings.TrimSpace(c.Description)
	c.AddedBy = strings.TrimSpace(c.AddedBy)

	return nil
}
