package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrNoMembership is deliberately the same for "family does not exist"
	// and "family exists, but you are not in it" so that callers cannot
	// probe for other families through the response body.
	ErrNoMembership = errors.New("you are not a member of this family")
	ErrNotAdmin     = errors.New("only family admins can do this")

	ErrMemberExists      = errors.New("member already exists")
	ErrAmountNotPositive = errors.New("the amount must be larger than zero")
)
