package viewbox

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/viewbox/gm"
)

// Options configure a new ViewBox.
type Options struct {
	// Matrix holds an optional initial matrix. If set, the Snapshot
	// is seeded by decomposing this matrix once.
	Matrix gm.Optional[gm.Affine]

	// TransformOrigin is the default center for scale, rotate, flip and
	// skew operations, given in global coordinates.
	TransformOrigin gm.Vec
}

// ViewBox maps global (viewport) coordinates to local (content) coordinates.
//
// A ViewBox must not be used concurrently. Use Clone to get an independent copy.
type ViewBox struct {
	matrix   gm.Affine
	origin   gm.Vec
	snapshot Snapshot
}

// New creates a new ViewBox. Without an initial matrix, the ViewBox starts
// with the identity transform.
func New(opts Options) *ViewBox {
	vb := &ViewBox{
		matrix:   gm.IdentityAffine(),
		origin:   opts.TransformOrigin,
		snapshot: DefaultSnapshot(),
	}

	if matrix, ok := opts.Matrix.Get(); ok {
		vb.SetMatrix(matrix)
	}

	return vb
}

// Matrix returns the current local to global transform.
func (vb *ViewBox) Matrix() gm.Affine {
	return vb.matrix
}

// SetMatrix replaces the current matrix. As the snapshot can not be derived
// from previous operations anymore, it is seeded by decomposing the matrix.
func (vb *ViewBox) SetMatrix(matrix gm.Affine) {
	vb.matrix = matrix
	vb.snapshot = snapshotOf(matrix)

	slog.Debug(
		"Seeded snapshot from matrix",
		slog.String("matrix", matrix.String()),
		slog.Float64("scaleX", vb.snapshot.ScaleX),
		slog.Float64("rotation", vb.snapshot.Rotation),
	)
}

// Coefficients returns the six coefficients (a, b, c, d, tx, ty) of the current matrix.
func (vb *ViewBox) Coefficients() [6]float64 {
	return vb.matrix.Coefficients()
}

// Snapshot returns the current semantic transform parameters.
func (vb *ViewBox) Snapshot() Snapshot {
	return vb.snapshot
}

// Zoom returns the current zoom factor.
func (vb *ViewBox) Zoom() float64 {
	return vb.snapshot.ScaleX
}

// TransformOrigin returns the default pivot in global coordinates.
func (vb *ViewBox) TransformOrigin() gm.Vec {
	return vb.origin
}

// SetTransformOrigin changes the default pivot for all following operations.
// The content does not move.
func (vb *ViewBox) SetTransformOrigin(origin gm.Vec) {
	vb.origin = origin
}

// Position returns the global position of the local origin.
func (vb *ViewBox) Position() gm.Vec {
	return vb.matrix.Translation
}

// SetPosition moves the content so that the local origin is located
// at the given global position.
func (vb *ViewBox) SetPosition(position gm.Vec) error {
	return vb.Translate(position.Sub(vb.matrix.Translation))
}

// Reset restores the identity transform and the default snapshot.
// The transform origin is kept.
func (vb *ViewBox) Reset() {
	vb.matrix = gm.IdentityAffine()
	vb.snapshot = DefaultSnapshot()
}

// Clone returns an independent copy of the ViewBox.
func (vb *ViewBox) Clone() *ViewBox {
	clone := *vb
	return &clone
}

// LocalToGlobal converts a point in content coordinates into viewport coordinates.
func (vb *ViewBox) LocalToGlobal(point gm.Vec) gm.Vec {
	return vb.matrix.Transform(point)
}

// GlobalToLocal converts a point in viewport coordinates into content coordinates.
func (vb *ViewBox) GlobalToLocal(point gm.Vec) (gm.Vec, error) {
	inverse, err := vb.inverse()
	if err != nil {
		return gm.Vec{}, err
	}

	return inverse.Transform(point), nil
}

func (vb *ViewBox) inverse() (gm.Affine, error) {
	inverse, ok := vb.matrix.TryInverse()
	if !ok {
		det := vb.matrix.Determinant()
		slog.Warn("Matrix is not invertible",
			slog.String("matrix", vb.matrix.String()),
			slog.Float64("determinant", det),
		)

		return gm.Affine{}, fmt.Errorf("invert %s (determinant %g): %w", vb.matrix, det, ErrDegenerateTransform)
	}

	return inverse, nil
}

// CSS returns the current matrix as css transform function, e.g. "matrix(1,0,0,1,0,0)".
func (vb *ViewBox) CSS() string {
	return vb.matrix.String()
}

func (vb *ViewBox) String() string {
	return fmt.Sprintf("ViewBox(matrix=%s, origin=%s)", vb.matrix, vb.origin)
}
