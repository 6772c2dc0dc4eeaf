package sokoban

import "errors"

// Errors returned by the constructors (spec.md §7: allocation failure
// and invalid capacity are resource-limit style errors, never panics).
var (
	// ErrInvalidCapacity is returned by CreateContext when capacity < 1.
	// spec.md §9 leaves capacity == 0 behavior to the BFS driver's first
	// insert; this module resolves that open question by rejecting it
	// at construction instead.
	ErrInvalidCapacity = errors.New("sokoban: capacity must be >= 1")

	// ErrInvalidDimensions is returned by CreateContext for a non-positive
	// grid size.
	ErrInvalidDimensions = errors.New("sokoban: width and height must be >= 1")
)
