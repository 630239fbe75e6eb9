package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/family-ledger/backend/internal/controllers/v1"
	"github.com/family-ledger/backend/internal/models"
	"github.com/family-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCreateSaving() {
	family := createTestFamily(suite.T(), "alice@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings",
		v1.SavingEditable{
			FamilyID:    family.FamilyID,
			Amount:      decimal.NewFromInt(100),
			Goal:        decimal.NewNullDecimal(decimal.NewFromInt(5000)),
			Description: "Vacation fund",
		},
		test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SavingCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Success)
	assert.True(suite.T(), response.Saving.Goal.Valid)
	assert.True(suite.T(), decimal.NewFromInt(5000).Equal(response.Saving.Goal.Decimal))
}

func (suite *TestSuiteStandard) TestCreateSavingWithoutGoal() {
	family := createTestFamily(suite.T(), "alice@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings",
		v1.SavingEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(100)},
		test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SavingCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Saving.Goal.Valid)
}

func (suite *TestSuiteStandard) TestCreateSavingValidation() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	tests := []struct {
		name string
		body v1.SavingEditable
	}{
		{"amount zero", v1.SavingEditable{FamilyID: family.FamilyID}},
		{"negative amount", v1.SavingEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(-1)}},
		{"negative goal", v1.SavingEditable{
			FamilyID: family.FamilyID,
			Amount:   decimal.NewFromInt(10),
			Goal:     decimal.NewNullDecimal(decimal.NewFromInt(-100)),
		}},
		{"no family", v1.SavingEditable{Amount: decimal.NewFromInt(10)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/savings", tt.body, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSavingLifecycle() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/savings",
		v1.SavingEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(100)}, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.SavingCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)

	r = test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/savings?familyId=%s", family.FamilyID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var savings []models.Saving
	test.DecodeResponse(suite.T(), &r, &savings)
	require.Len(suite.T(), savings, 1)

	r = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/savings?id=%s", created.Saving.ID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/savings?familyId=%s", family.FamilyID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &savings)
	assert.Len(suite.T(), savings, 0)
}
