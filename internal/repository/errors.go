package repository

import "errors"

// ErrNotFound is returned when no record matches the lookup key, regardless
// of the backing store.
var ErrNotFound = errors.New("record not found")
