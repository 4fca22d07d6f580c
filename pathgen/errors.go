package pathgen

import "errors"

var (
	// ErrInsufficientPoints is returned when fewer than two waypoints were selected.
	ErrInsufficientPoints = errors.New("pathgen: not enough points to calculate a path")

	// ErrIllConditioned is returned for degenerate waypoint sets such as
	// repeated consecutive points or non-finite coordinates.
	ErrIllConditioned = errors.New("pathgen: ill-conditioned interpolation")
)
