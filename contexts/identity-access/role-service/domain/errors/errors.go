// Package errors defines the role-service error taxonomy. Handlers map these
// sentinels onto HTTP status codes; application code never inspects strings.
package errors

import "errors"

var (
	ErrInvalidGrant   = errors.New("role grant is invalid")
	ErrDuplicateGrant = errors.New("role already granted to user")
	ErrGrantNotFound  = errors.New("role grant not found")
	ErrUnknownRole    = errors.New("role is not recognized")
)
