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

func (suite *TestSuiteStandard) TestCreateCurrent() {
	family := createTestFamily(suite.T(), "alice@example.com")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/currents",
		v1.CurrentEditable{
			FamilyID:    family.FamilyID,
			Amount:      decimal.NewFromInt(250),
			Type:        models.CurrentCredit,
			Description: "Salary",
		},
		test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.CurrentCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), models.CurrentCredit, response.Current.Type)
}

func (suite *TestSuiteStandard) TestCreateCurrentValidation() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	tests := []struct {
		name string
		body v1.CurrentEditable
	}{
		{"no type", v1.CurrentEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(10)}},
		{"invalid type", v1.CurrentEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(10), Type: "transfer"}},
		{"amount zero", v1.CurrentEditable{FamilyID: family.FamilyID, Type: models.CurrentDebit}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/currents", tt.body, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCurrentLifecycle() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/currents",
		v1.CurrentEditable{FamilyID: family.FamilyID, Amount: decimal.NewFromInt(50), Type: models.CurrentDebit}, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var created v1.CurrentCreateResponse
	test.DecodeResponse(suite.T(), &r, &created)

	r = test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/currents?familyId=%s", family.FamilyID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var currents []models.Current
	test.DecodeResponse(suite.T(), &r, &currents)
	require.Len(suite.T(), currents, 1)

	r = test.Request(suite.T(), http.MethodDelete,
		fmt.Sprintf("http://example.com/v1/currents?id=%s", created.Current.ID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
