package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// SectionType determines which add-transaction form clients offer for a
// custom section. It has no effect on server-side validation of the
// section's transactions.
type SectionType string

const (
	SectionExpense SectionType = "expense"
	SectionSaving  SectionType = "saving"
)

// Valid reports whether the type is one of the allowed values.
func (t SectionType) Valid() bool {
	return slices.Contains([]SectionType{SectionExpense, SectionSaving}, t)
}

// CustomSection is a user-defined ledger of a family with its own
// transaction list. Deleting a section cascades to its transactions.
type CustomSection struct {
	DefaultModel
	FamilyID uuid.UUID   `json:"familyId"`
	Family   Family      `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Name     string      `json:"name"`
	Type     SectionType `json:"type" gorm:"type:VARCHAR(10)"`
}

// OwnerFamily returns the family this resource belongs to.
func (s CustomSection) OwnerFamily() uuid.UUID {
	return s.FamilyID
}

func (s *CustomSection) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	return nil
}

// CustomSectionTransaction is a transaction inside a custom section.
//
// It references its family only through the section, so authorization
// always joins through the owning section.
type CustomSectionTransaction struct {
	DefaultModel
	SectionID   uuid.UUID       `json:"sectionId"`
	Section     CustomSection   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Description string          `json:"description"`
	AddedBy     string          `json:"addedBy"`
}

func (t *CustomSectionTransaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.AddedBy = strings.TrimSpace(t.AddedBy)

	return nil
}

// SectionTransactions returns all transactions of the section, newest first.
func SectionTransactions(sectionID uuid.UUID) ([]CustomSectionTransaction, error) {
	transactions := make([]CustomSectionTransaction, 0)

	err := DB.Where("section_id = ?", sectionID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// TransactionsTotal sums the amounts of the transactions.
func TransactionsTotal(transactions []CustomSectionTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, transaction := range transactions {
		total = total.Add(transaction.Amount)
	}

	return total
}
