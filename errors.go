package viewbox

import "errors"

// ErrDegenerateTransform is returned if an operation needs to invert the
// current matrix, but the matrix has a determinant of (almost) zero.
var ErrDegenerateTransform = errors.New("degenerate transform")

// ErrInvalidRect is returned when fitting a rectangle without a positive area.
var ErrInvalidRect = errors.New("invalid rect")

// ErrInvalidCSS is returned if a css transform value can not be parsed.
var ErrInvalidCSS = errors.New("invalid css transform")

// ErrInvalidMatrix is returned if a serialized matrix does not have six coefficients.
var ErrInvalidMatrix = errors.New("invalid matrix")
