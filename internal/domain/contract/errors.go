package contract

import "errors"

// Sentinel errors returned by repositories. Usecases translate them with errors.Is.
var (
	ErrNotFound        = errors.New("document not found")
	ErrDuplicateKey    = errors.New("duplicate key")
	ErrVersionConflict = errors.New("document was modified concurrently")
)
