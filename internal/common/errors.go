package common

import "errors"

var (
	// ErrDuplicateKey is returned by repositories when a unique constraint
	// (currently only users.username) rejects an insert.
	ErrDuplicateKey = errors.New("duplicate key")
)
