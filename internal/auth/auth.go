// Package auth resolves a request's opaque session credential into a
// verified identity.
//
// The credential is an HS256 signed token in a cookie, issued after the
// external identity provider verified the user. This package only consumes
// the {email, name} claim, issuance of identities is not its job.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie the session credential is transported in.
const CookieName = "session_token"

// ErrUnauthenticated covers every way a request can fail authentication:
// missing server secret, missing cookie, invalid or expired credential, or
// a credential without an email claim. The exact reason is only logged,
// clients just learn that they are not authenticated.
var ErrUnauthenticated = errors.New("authentication required, please sign in")

var errNoSecret = errors.New("SESSION_SECRET is not set")

// Identity is the verified identity of a caller.
type Identity struct {
	Email string
	Name  string
}

// Claims is the payload of the session credential.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Authenticate resolves the request's session cookie into a verified
// identity. It never panics into the transport layer and has no side
// effects beyond decoding.
func Authenticate(c *gin.Context) (Identity, error) {
	secret, err := secret()
	if err != nil {
		log.Error().Msg(errNoSecret.Error())
		return Identity{}, ErrUnauthenticated
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return Identity{}, ErrUnauthenticated
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(cookie, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		log.Debug().Err(err).Msg("invalid session credential")
		return Identity{}, ErrUnauthenticated
	}

	if claims.Email == "" {
		log.Debug().Msg("session credential has no email claim")
		return Identity{}, ErrUnauthenticated
	}

	return Identity{Email: claims.Email, Name: claims.Name}, nil
}

// Sign mints a session credential for the identity. The sign-in callback
// uses this after the identity provider verified the user, tests use it
// directly.
func Sign(identity Identity, lifetime time.Duration) (string, error) {
	secret, err := secret()
	if err != nil {
		return "", err
	}

	claims := Claims{
		Email: identity.Email,
		Name:  identity.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func secret() ([]byte, error) {
	s, ok := os.LookupEnv("SESSION_SECRET")
	if !ok || s == "" {
		return nil, errNoSecret
	}

	return []byte(s), nil
}
