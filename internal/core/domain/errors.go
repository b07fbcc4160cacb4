package domain

import "errors"

var (
	// ErrForbidden means the actor is authenticated but not allowed to
	// perform the operation on the resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrInvalidInput is returned for payloads that pass transport
	// validation but break a domain rule.
	ErrInvalidInput = errors.New("invalid input")
)
