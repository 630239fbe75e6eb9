package v1_test

import (
	"net/http"
	"testing"

	"github.com/family-ledger/backend/test"
	"github.com/stretchr/testify/assert"
)

// TestOptions verifies the allow headers of all endpoints. OPTIONS requests
// need no session.
func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"/v1/families", "OPTIONS, GET, POST"},
		{"/v1/families/members", "OPTIONS, POST"},
		{"/v1/categories", "OPTIONS, GET, POST"},
		{"/v1/expenses", "OPTIONS, GET, POST, DELETE"},
		{"/v1/savings", "OPTIONS, GET, POST, DELETE"},
		{"/v1/currents", "OPTIONS, GET, POST, DELETE"},
		{"/v1/debts", "OPTIONS, GET, POST, DELETE"},
		{"/v1/custom-sections", "OPTIONS, GET, POST, DELETE"},
		{"/v1/custom-sections/transactions", "OPTIONS, GET, POST, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com"+tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}
