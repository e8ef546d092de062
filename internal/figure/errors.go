package figure

import "github.com/pkg/errors"

var (
	// ErrInvalidTransform is returned for zero or nonfinite transform factors.
	ErrInvalidTransform = errors.New("invalid transform")

	// ErrInvalidFigureParameters is returned when kind-specific parameters
	// cannot describe a figure, e.g. a star with fewer than three points.
	ErrInvalidFigureParameters = errors.New("invalid figure parameters")
)
