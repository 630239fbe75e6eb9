package v1

import (
	"errors"
	"net/http"

	"github.com/family-ledger/backend/internal/auth"
	"github.com/family-ledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, auth.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, models.ErrNoMembership) || errors.Is(err, models.ErrNotAdmin) {
		return http.StatusForbidden
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}

var (
	errIDRequired        = errors.New("the id parameter must be set")
	errFamilyIDRequired  = errors.New("the familyId parameter must be set")
	errSectionIDRequired = errors.New("the sectionId parameter must be set")
)

// Family errors
var (
	// The exact "Family not found" body is what routes clients into the
	// family creation flow.
	errFamilyNotFound       = errors.New("Family not found")
	errFamilyFieldsRequired = errors.New("the familyName and memberName fields must be set")
	errMemberFieldsRequired = errors.New("the familyId, email and name fields must be set")
)

// Entity errors
var (
	errCategoryNameRequired = errors.New("the name field must be set")
	errSectionNameRequired  = errors.New("the name field must be set")
	errSectionTypeInvalid   = errors.New("the section type must be 'expense' or 'saving'")
	errCurrentTypeInvalid   = errors.New("the type must be 'credit' or 'debit'")
	errDebtStatusInvalid    = errors.New("the status must be 'pending', 'paid' or 'overdue'")
)
