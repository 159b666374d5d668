package repositories

import "errors"

// ErrNotFound is returned when a target row does not exist, including the
// case where a counter update matched zero rows mid-transaction.
var ErrNotFound = errors.New("record not found")
