package wallgeom

import "errors"

// Sentinel errors for wallgeom operations.
var (
	// ErrEmptyRing indicates a ring with fewer than 3 vertices was used
	// where a non-degenerate ring is required.
	ErrEmptyRing = errors.New("wallgeom: ring must have at least 3 vertices")

	// ErrDegenerateResult indicates an operation's result collapsed below
	// AreaEps where the caller required a non-empty polygon.
	ErrDegenerateResult = errors.New("wallgeom: result area below AreaEps")
)
