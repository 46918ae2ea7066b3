package repository

import "errors"

// ErrNotFound is returned by every store when no record matches.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a create would violate a uniqueness rule.
var ErrConflict = errors.New("conflict")
