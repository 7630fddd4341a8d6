package services

import "errors"

// ErrInvalidInput marks structural input errors that are rejected
// synchronously, before any provider call is made.
var ErrInvalidInput = errors.New("invalid input")
