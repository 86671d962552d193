package physics

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
)

var ErrEmptySpace = errors.New("space has no shapes")

// Transform converts an affine transform into a cp.Transform.
func Transform(a gm.Affine) cp.Transform {
	return cp.NewTransform(
		a.Matrix.XAxis.X, a.Matrix.XAxis.Y, a.Translation.X,
		a.Matrix.YAxis.X, a.Matrix.YAxis.Y, a.Translation.Y,
	)
}

func RectOf(bb cp.BB) gm.Rect {
	return gm.Rect{
		Min: gm.Vec{X: bb.L, Y: bb.B},
		Max: gm.Vec{X: bb.R, Y: bb.T},
	}
}

func BBOf(r gm.Rect) cp.BB {
	return cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
}

// VisibleBB returns the bounding box in space coordinates of everything
// visible within a viewport of the given size.
func VisibleBB(vb *viewbox.ViewBox, viewport gm.Vec) (cp.BB, error) {
	var corners [4]gm.Vec

	for idx, corner := range gm.RectWithSize(viewport).Corners() {
		local, err := vb.GlobalToLocal(corner)
		if err != nil {
			return cp.BB{}, err
		}

		corners[idx] = local
	}

	return BBOf(gm.BoundingRect(corners[:]...)), nil
}

// SpaceBB returns the union of the bounding boxes of all shapes in the space.
// The second return value is false if the space has no shapes.
func SpaceBB(space *cp.Space) (cp.BB, bool) {
	var bb cp.BB
	var found bool

	space.EachShape(func(shape *cp.Shape) {
		shapeBB := shape.CacheBB()

		if !found {
			bb = shapeBB
			found = true
			return
		}

		bb = bb.Merge(shapeBB)
	})

	return bb, found
}

// ZoomToSpace fits the contents of the space, as currently shown by the view,
// into the viewport described by opts.
func ZoomToSpace(vb *viewbox.ViewBox, space *cp.Space, opts viewbox.FitOptions) error {
	bb, ok := SpaceBB(space)
	if !ok {
		return ErrEmptySpace
	}

	// the fit works on viewport coordinates of the current view
	var corners [4]gm.Vec
	for idx, corner := range RectOf(bb).Corners() {
		corners[idx] = vb.LocalToGlobal(corner)
	}

	if err := vb.ZoomToFit(gm.BoundingRect(corners[:]...), opts); err != nil {
		return fmt.Errorf("zoom to space: %w", err)
	}

	return nil
}
