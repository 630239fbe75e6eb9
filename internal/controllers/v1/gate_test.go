package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	v1 "github.com/family-ledger/backend/internal/controllers/v1"
	"github.com/family-ledger/backend/internal/models"
	"github.com/family-ledger/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnauthenticated verifies that every endpoint rejects requests without
// a session cookie before anything else happens.
func (suite *TestSuiteStandard) TestUnauthenticated() {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/families"},
		{http.MethodPost, "/v1/families"},
		{http.MethodPost, "/v1/families/members"},
		{http.MethodGet, "/v1/categories"},
		{http.MethodPost, "/v1/categories"},
		{http.MethodGet, "/v1/expenses"},
		{http.MethodPost, "/v1/expenses"},
		{http.MethodDelete, "/v1/expenses"},
		{http.MethodGet, "/v1/savings"},
		{http.MethodPost, "/v1/savings"},
		{http.MethodDelete, "/v1/savings"},
		{http.MethodGet, "/v1/currents"},
		{http.MethodPost, "/v1/currents"},
		{http.MethodDelete, "/v1/currents"},
		{http.MethodGet, "/v1/debts"},
		{http.MethodPost, "/v1/debts"},
		{http.MethodDelete, "/v1/debts"},
		{http.MethodGet, "/v1/custom-sections"},
		{http.MethodPost, "/v1/custom-sections"},
		{http.MethodDelete, "/v1/custom-sections"},
		{http.MethodGet, "/v1/custom-sections/transactions"},
		{http.MethodPost, "/v1/custom-sections/transactions"},
		{http.MethodDelete, "/v1/custom-sections/transactions"},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			r := test.Request(t, tt.method, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

// TestInvalidSessionCookie verifies that a garbage cookie is a 401, not an
// internal error.
func (suite *TestSuiteStandard) TestInvalidSessionCookie() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/families", "",
		map[string]string{"Cookie": "session_token=not-a-token"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

// TestMembershipCaseInsensitive verifies that the email comparison of the
// gate ignores casing.
func (suite *TestSuiteStandard) TestMembershipCaseInsensitive() {
	family := createTestFamily(suite.T(), "alice@example.com")

	// The session credential carries a differently cased email
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses",
		v1.ExpenseEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(10)},
		test.Session(suite.T(), "Alice@Example.COM", "Alice"))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

// TestNonMemberForbidden verifies that a valid identity without membership
// is denied and that the denied request has no side effects.
func (suite *TestSuiteStandard) TestNonMemberForbidden() {
	family := createTestFamily(suite.T(), "alice@example.com")

	tests := []struct {
		name string
		test func(t *testing.T) httptest.ResponseRecorder
	}{
		{
			"list expenses",
			func(t *testing.T) httptest.ResponseRecorder {
				return test.Request(t, http.MethodGet,
					fmt.Sprintf("http://example.com/v1/expenses?familyId=%s", family.FamilyID),
					"", test.Session(t, "mallory@example.com", ""))
			},
		},
		{
			"create expense",
			func(t *testing.T) httptest.ResponseRecorder {
				return test.Request(t, http.MethodPost, "http://example.com/v1/expenses",
					v1.ExpenseEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(10)},
					test.Session(t, "mallory@example.com", ""))
			},
		},
		{
			"list categories",
			func(t *testing.T) httptest.ResponseRecorder {
				return test.Request(t, http.MethodGet,
					fmt.Sprintf("http://example.com/v1/categories?familyId=%s", family.FamilyID),
					"", test.Session(t, "mallory@example.com", ""))
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := tt.test(t)
			test.AssertHTTPStatus(t, &r, http.StatusForbidden)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, models.ErrNoMembership.Error(), response.Error)
		})
	}

	// The denied create left no row behind
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Zero(suite.T(), count)
}

// TestDeleteAcrossFamilies verifies that membership in one family does not
// authorize deletes in another.
func (suite *TestSuiteStandard) TestDeleteAcrossFamilies() {
	family := createTestFamily(suite.T(), "alice@example.com")
	expense := createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID})

	// Mallory has a family of her own, just not this one
	createTestFamily(suite.T(), "mallory@example.com")

	r := test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.Expense.ID),
		"", test.Session(suite.T(), "mallory@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// The row is still there
	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)
}

// TestQueryValidation verifies the shape checks that run before any
// authorization.
func (suite *TestSuiteStandard) TestQueryValidation() {
	createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	tests := []struct {
		name   string
		method string
		url    string
	}{
		{"list without familyId", http.MethodGet, "http://example.com/v1/expenses"},
		{"list with invalid familyId", http.MethodGet, "http://example.com/v1/expenses?familyId=not-a-uuid"},
		{"delete without id", http.MethodDelete, "http://example.com/v1/expenses"},
		{"delete with invalid id", http.MethodDelete, "http://example.com/v1/expenses?id=not-a-uuid"},
		{"transactions without sectionId", http.MethodGet, "http://example.com/v1/custom-sections/transactions"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "", session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

// TestDeleteNotFound verifies that deleting a row that does not exist is a
// 404 for any entity kind.
func (suite *TestSuiteStandard) TestDeleteNotFound() {
	createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	for _, path := range []string{"expenses", "savings", "currents", "debts", "custom-sections"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodDelete,
				fmt.Sprintf("http://example.com/v1/%s?id=%s", path, uuid.New()),
				"", session)
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
