package repositories

import "errors"

// Sentinel errors shared by every repository implementation. Callers match
// with errors.Is instead of parsing error strings.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
