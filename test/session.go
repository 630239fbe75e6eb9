package test

import (
	"testing"
	"time"

	"github.com/family-ledger/backend/internal/auth"
	"github.com/stretchr/testify/require"
)

// Session returns request headers carrying a signed session cookie for the
// identity. SESSION_SECRET must be set before calling it.
func Session(t *testing.T, email, name string) map[string]string {
	token, err := auth.Sign(auth.Identity{Email: email, Name: name}, time.Hour)
	require.Nil(t, err, "could not sign session credential")

	return map[string]string{
		"Cookie": auth.CookieName + "=" + token,
	}
}
