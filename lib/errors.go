package lib

import "errors"

// Identity errors
var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("expired token")
	ErrWrongTokenKind = errors.New("token issued for another identity kind")
)

// Lookup errors
var (
	ErrNotFound = errors.New("not found")
)
