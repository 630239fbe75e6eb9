package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DebtStatus is the lifecycle state of a debt. It is set at creation and
// never mutated through the API.
type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
	DebtOverdue DebtStatus = "overdue"
)

// Valid reports whether the status is one of the allowed values.
func (s DebtStatus) Valid() bool {
	return slices.Contains([]DebtStatus{DebtPending, DebtPaid, DebtOverdue}, s)
}

// Debt is money the family owes to a creditor.
type Debt struct {
	DefaultModel
	FamilyID    uuid.UUID       `json:"familyId"`
	Family      Family          `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(10,2)"`
	Description string          `json:"description"`
	Creditor    string          `json:"creditor"`
	DueDate     *time.Time      `json:"dueDate"`
	Status      DebtStatus      `json:"status" gorm:"type:VARCHAR(20)"`
	AddedBy     string          `json:"addedBy"`
}

// OwnerFamily returns the family this resource belongs to.
func (d Debt) OwnerFamily() uuid.UUID {
	return d.FamilyID
}

func (d *Debt) BeforeSave(_ *gorm.DB) error {
	if d.Status == "" {
		d.Status = DebtPending
	}

	d.Description = strings.TrimSpace(d.Description)
	d.Creditor = strings.TrimSpace(d.Creditor)
	d.AddedBy = strings.TrimSpace(d.AddedBy)

	return nil
}

// IsOverdue reports whether the debt should be displayed as overdue: still
// pending, with a due date in the past. The stored status is not changed.
func (d Debt) IsOverdue() bool {
	return d.Status == DebtPending && d.DueDate != nil && d.DueDate.Before(time.Now().In(time.UTC))
}
