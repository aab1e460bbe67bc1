package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnknownCurrency indicates a currency code with no configured rate.
// The calculation path deliberately never returns this (it substitutes a
// lenient default so displays keep updating live); it exists for callers
// that need to fail loudly on configuration gaps instead.
var ErrUnknownCurrency = errors.New("unknown currency code")
