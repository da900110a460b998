package model

import "errors"

// Errors returned by the snapshot types.
var (
	// ErrNotPresent indicates that a lookup was attempted for an id that has
	// no candidate in the current snapshot.
	ErrNotPresent = errors.New("id not present in snapshot")
)
