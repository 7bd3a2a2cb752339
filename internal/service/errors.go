package service

import "errors"

var (
	// ErrNotFound is returned when a record does not exist. By-id reads
	// for since-deleted entities return (nil, nil) instead: missing is an
	// expected outcome there, not an error.
	ErrNotFound = errors.New("record not found")

	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
