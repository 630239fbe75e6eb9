package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/family-ledger/backend/internal/controllers/v1"
	"github.com/family-ledger/backend/internal/models"
	"github.com/family-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	family := createTestFamily(suite.T(), "alice@example.com")

	response := createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{
		FamilyID:    family.FamilyID,
		Amount:      decimal.RequireFromString("42.50"),
		Description: "Groceries",
		Category:    "Food & Dining",
		AddedBy:     "Alice",
	})

	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), family.FamilyID, response.Expense.FamilyID)
	assert.True(suite.T(), decimal.RequireFromString("42.50").Equal(response.Expense.Amount))
	assert.Equal(suite.T(), "Groceries", response.Expense.Description)
}

// TestCreateExpenseAmountJSONNumber verifies that amounts are serialized as
// JSON numbers, not strings.
func (suite *TestSuiteStandard) TestCreateExpenseAmountJSONNumber() {
	family := createTestFamily(suite.T(), "alice@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses",
		v1.ExpenseEditable{FamilyID: family.FamilyID, Amount: decimal.RequireFromString("42.5")},
		test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	assert.Contains(suite.T(), r.Body.String(), `"amount":42.5`)
}

func (suite *TestSuiteStandard) TestCreateExpenseAmountValidation() {
	family := createTestFamily(suite.T(), "alice@example.com")

	tests := []struct {
		name string
		body string
	}{
		{"zero", fmt.Sprintf(`{"familyId": %q, "amount": 0}`, family.FamilyID.String())},
		{"negative", fmt.Sprintf(`{"familyId": %q, "amount": -1.50}`, family.FamilyID.String())},
		{"missing", fmt.Sprintf(`{"familyId": %q}`, family.FamilyID.String())},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", tt.body,
				test.Session(t, "alice@example.com", ""))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, models.ErrAmountNotPositive.Error(), response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesNewestFirst() {
	family := createTestFamily(suite.T(), "alice@example.com")

	first := createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID})
	second := createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID})

	// Force distinct creation timestamps
	require.Nil(suite.T(), models.DB.Model(&models.Expense{}).
		Where("id = ?", first.Expense.ID).
		Update("created_at", first.Expense.CreatedAt.Add(-time.Minute)).Error)

	r := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/expenses?familyId=%s", family.FamilyID),
		"", test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	require.Len(suite.T(), expenses, 2)
	assert.Equal(suite.T(), second.Expense.ID, expenses[0].ID)
	assert.Equal(suite.T(), first.Expense.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestGetExpensesCategoryFilter() {
	family := createTestFamily(suite.T(), "alice@example.com")

	createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID, Category: "Food & Dining"})
	createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID, Category: "Transportation"})

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"no filter", "", 2},
		{"all sentinel", "&category=All", 2},
		{"single category", "&category=Food+%26+Dining", 1},
		{"unknown category", "&category=Unknown", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet,
				fmt.Sprintf("http://example.com/v1/expenses?familyId=%s%s", family.FamilyID, tt.query),
				"", test.Session(t, "alice@example.com", ""))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var expenses []models.Expense
			test.DecodeResponse(t, &r, &expenses)
			assert.Len(t, expenses, tt.expected)
		})
	}
}

// TestGetExpensesFamilyScoped verifies that listing never leaks rows of
// other families.
func (suite *TestSuiteStandard) TestGetExpensesFamilyScoped() {
	family := createTestFamily(suite.T(), "alice@example.com")
	other := createTestFamily(suite.T(), "bob@example.com")

	createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID})
	createTestExpense(suite.T(), "bob@example.com", v1.ExpenseEditable{FamilyID: other.FamilyID})

	r := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/expenses?familyId=%s", family.FamilyID),
		"", test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var expenses []models.Expense
	test.DecodeResponse(suite.T(), &r, &expenses)
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), family.FamilyID, expenses[0].FamilyID)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	family := createTestFamily(suite.T(), "alice@example.com")
	expense := createTestExpense(suite.T(), "alice@example.com", v1.ExpenseEditable{FamilyID: family.FamilyID})

	r := test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.Expense.ID),
		"", test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Deleting again is a 404
	r = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/expenses?id=%s", expense.Expense.ID),
		"", test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesDBError() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/expenses?familyId=%s", family.FamilyID),
		"", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)

	// Store internals are never leaked to clients
	assert.Equal(suite.T(), models.ErrGeneral.Error(), response.Error)
}
