package viewbox

import (
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/viewbox/gm"
)

// DefaultViewportSize is used if FitOptions do not specify a viewport size.
var DefaultViewportSize = gm.Vec{X: 400, Y: 400}

// ObjectFit describes how a rectangle is scaled to fit into a viewport.
// The modes follow the css object-fit property.
type ObjectFit uint8

const (
	// ObjectFitContain scales uniformly so that the rect fits fully into the viewport.
	ObjectFitContain ObjectFit = iota

	// ObjectFitCover scales uniformly so that the rect covers the full viewport.
	ObjectFitCover

	// ObjectFitFill scales each axis independently so that the rect fills the viewport.
	ObjectFitFill

	// ObjectFitNone does not scale the rect at all, it is only centered.
	ObjectFitNone

	// ObjectFitScaleDown behaves like ObjectFitContain, but never scales up.
	ObjectFitScaleDown
)

var objectFitNames = [...]string{
	ObjectFitContain:   "contain",
	ObjectFitCover:     "cover",
	ObjectFitFill:      "fill",
	ObjectFitNone:      "none",
	ObjectFitScaleDown: "scale-down",
}

// ParseObjectFit parses the css name of an object-fit mode.
func ParseObjectFit(name string) (ObjectFit, error) {
	for idx, candidate := range objectFitNames {
		if candidate == name {
			return ObjectFit(idx), nil
		}
	}

	return 0, fmt.Errorf("unknown object-fit mode %q", name)
}

func (f ObjectFit) String() string {
	if int(f) < len(objectFitNames) {
		return objectFitNames[f]
	}

	return fmt.Sprintf("ObjectFit(%d)", uint8(f))
}

func (f ObjectFit) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *ObjectFit) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectFit(string(text))
	if err != nil {
		return err
	}

	*f = parsed
	return nil
}

// Scale returns the per axis scale that fits content into the usable viewport size.
func (f ObjectFit) Scale(usable, content gm.Vec) gm.Vec {
	ratio := usable.DivEach(content)

	switch f {
	case ObjectFitCover:
		return gm.VecSplat(max(ratio.X, ratio.Y))

	case ObjectFitFill:
		return ratio

	case ObjectFitNone:
		return gm.VecOne

	case ObjectFitScaleDown:
		return gm.VecSplat(min(1, ratio.X, ratio.Y))

	default:
		return gm.VecSplat(min(ratio.X, ratio.Y))
	}
}

// FitOptions configure ZoomToRect and ZoomToFit.
type FitOptions struct {
	// ViewportSize is the size of the viewport in global coordinates.
	// Defaults to DefaultViewportSize if zero.
	ViewportSize gm.Vec

	// Mode selects how the scale is calculated, defaults to ObjectFitContain.
	Mode ObjectFit

	// Padding shrinks the viewport on each side before calculating the scale.
	Padding float64

	// Pivot is the global point the center of the rect is moved to.
	// Defaults to the center of the viewport.
	Pivot gm.Optional[gm.Vec]

	// BaseMatrix replaces the current matrix before fitting. Use the identity
	// transform to get the same result regardless of the current view.
	BaseMatrix gm.Optional[gm.Affine]

	// Scale overrides the scale derived from Mode with a custom uniform scale.
	Scale gm.Optional[float64]
}

func (opts FitOptions) viewportSize() gm.Vec {
	if opts.ViewportSize == gm.VecZero {
		return DefaultViewportSize
	}

	return opts.ViewportSize
}

func (opts FitOptions) scale(rect gm.Rect) gm.Vec {
	if scale, ok := opts.Scale.Get(); ok {
		return gm.VecSplat(scale)
	}

	padding := gm.VecSplat(2 * opts.Padding)
	usable := opts.viewportSize().Sub(padding)
	return opts.Mode.Scale(usable, rect.Size())
}

// FitMatrix calculates the transform that scales the given rect and moves
// its center onto the pivot:
//
//	T(pivot - scale·center) · S(scale)
//
// The BaseMatrix of opts is ignored.
func FitMatrix(rect gm.Rect, opts FitOptions) (gm.Affine, error) {
	if rect.IsEmpty() {
		return gm.Affine{}, fmt.Errorf("fit %s: %w", rect, ErrInvalidRect)
	}

	scale := opts.scale(rect)
	center := rect.Center()
	pivot := opts.Pivot.Or(opts.viewportSize().Mul(0.5))

	translate := pivot.Sub(center.MulEach(scale))
	return gm.TranslationAffine(translate).Scale(scale), nil
}

// ZoomToRect scales and moves the view so that the given rect is aligned
// within the viewport as described by opts. The rect is given in viewport
// coordinates of the current view, which equal local coordinates for the
// identity transform.
//
// The fit is applied in viewport space after the current view, calling
// ZoomToRect repeatedly zooms further. Set opts.BaseMatrix to the identity
// transform to get an absolute fit instead.
func (vb *ViewBox) ZoomToRect(rect gm.Rect, opts FitOptions) error {
	fit, err := FitMatrix(rect, opts)
	if err != nil {
		return err
	}

	if base, ok := opts.BaseMatrix.Get(); ok {
		vb.SetMatrix(base)
	}

	scale := fit.Matrix.Transform(gm.VecOne)

	vb.matrix = vb.matrix.Append(fit)
	vb.snapshot.ScaleX *= scale.X
	vb.snapshot.ScaleY *= scale.Y

	slog.Debug(
		"Zoomed to rect",
		slog.String("rect", rect.String()),
		slog.String("mode", opts.Mode.String()),
		slog.String("matrix", vb.matrix.String()),
	)

	return nil
}

// ZoomToFit fits the given rect into the viewport, centered in the viewport.
// The Pivot of opts is ignored.
func (vb *ViewBox) ZoomToFit(rect gm.Rect, opts FitOptions) error {
	opts.Pivot = gm.Some(opts.viewportSize().Mul(0.5))
	return vb.ZoomToRect(rect, opts)
}
