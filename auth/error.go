package auth

import "errors"

var (
	ErrBadSignature = errors.New("bad signature")
	ErrExpired      = errors.New("expired")
	ErrMalformed    = errors.New("malformed")
	ErrMissingClaim = errors.New("missing claim")
	ErrNotValid     = errors.New("not valid")
)
