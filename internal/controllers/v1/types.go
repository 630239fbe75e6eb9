package v1

import (
	ledger_uuid "github.com/family-ledger/backend/internal/uuid"
)

// QueryFamily binds the family the caller declares to act on.
type QueryFamily struct {
	FamilyID ledger_uuid.UUID `form:"familyId"` // ID of the owning family
}

// QuerySection binds the custom section the caller declares to act on.
type QuerySection struct {
	SectionID ledger_uuid.UUID `form:"sectionId"` // ID of the owning section
}

// QueryID binds the resource a DELETE request targets. The owning family is
// always re-derived from the row, never taken from the caller.
type QueryID struct {
	ID ledger_uuid.UUID `form:"id"` // ID of the resource
}

// successResponse is the body for operations that return no resource.
type successResponse struct {
	Success bool `json:"success" example:"true"`
}
