package v1_test

import (
	"fmt"
	"net/http"
	"sort"
	"testing"

	v1 "github.com/family-ledger/backend/internal/controllers/v1"
	"github.com/family-ledger/backend/internal/models"
	"github.com/family-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultCategoriesSeeded verifies that a fresh family starts with the
// default category set.
func (suite *TestSuiteStandard) TestDefaultCategoriesSeeded() {
	family := createTestFamily(suite.T(), "alice@example.com")

	r := test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/categories?familyId=%s", family.FamilyID),
		"", test.Session(suite.T(), "alice@example.com", ""))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var names []string
	test.DecodeResponse(suite.T(), &r, &names)

	expected := make([]string, len(models.DefaultCategories))
	copy(expected, models.DefaultCategories)
	sort.Strings(expected)

	assert.Equal(suite.T(), expected, names)
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories",
		v1.CategoryEditable{FamilyID: family.FamilyID, Name: "Subscriptions"}, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Creating the same name again succeeds without a duplicate
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories",
		v1.CategoryEditable{FamilyID: family.FamilyID, Name: "Subscriptions"}, session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodGet,
		fmt.Sprintf("http://example.com/v1/categories?familyId=%s", family.FamilyID), "", session)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var names []string
	test.DecodeResponse(suite.T(), &r, &names)
	require.Contains(suite.T(), names, "Subscriptions")
	assert.Len(suite.T(), names, len(models.DefaultCategories)+1)
}

func (suite *TestSuiteStandard) TestCreateCategoryValidation() {
	family := createTestFamily(suite.T(), "alice@example.com")
	session := test.Session(suite.T(), "alice@example.com", "")

	tests := []struct {
		name string
		body v1.CategoryEditable
	}{
		{"no name", v1.CategoryEditable{FamilyID: family.FamilyID}},
		{"no family", v1.CategoryEditable{Name: "Subscriptions"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", tt.body, session)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}
