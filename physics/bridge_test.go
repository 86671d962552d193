package physics

import (
	"testing"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
	"github.com/stretchr/testify/require"
)

func TestTransform(t *testing.T) {
	vb := viewbox.New(viewbox.Options{TransformOrigin: gm.Vec{X: 100, Y: 50}})
	require.NoError(t, vb.Rotate(40))
	require.NoError(t, vb.SetZoom(3))
	require.NoError(t, vb.SkewY(10))

	tr := Transform(vb.Matrix())

	for _, p := range []gm.Vec{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: -30, Y: 70}} {
		expected := vb.LocalToGlobal(p)
		actual := tr.Point(cp.Vector{X: p.X, Y: p.Y})

		require.InDelta(t, expected.X, actual.X, 1e-9)
		require.InDelta(t, expected.Y, actual.Y, 1e-9)
	}
}

func TestRectOf(t *testing.T) {
	bb := cp.BB{L: 1, B: 2, R: 5, T: 9}

	rect := RectOf(bb)
	require.Equal(t, gm.Vec{X: 1, Y: 2}, rect.Min)
	require.Equal(t, gm.Vec{X: 5, Y: 9}, rect.Max)
	require.Equal(t, bb, BBOf(rect))
}

func TestVisibleBB(t *testing.T) {
	vb := viewbox.New(viewbox.Options{TransformOrigin: gm.Vec{X: 200, Y: 200}})

	bb, err := VisibleBB(vb, gm.Vec{X: 400, Y: 300})
	require.NoError(t, err)
	require.Equal(t, cp.BB{L: 0, B: 0, R: 400, T: 300}, bb)

	require.NoError(t, vb.SetZoom(2))

	bb, err = VisibleBB(vb, gm.Vec{X: 400, Y: 400})
	require.NoError(t, err)
	require.InDelta(t, 100, bb.L, 1e-9)
	require.InDelta(t, 100, bb.B, 1e-9)
	require.InDelta(t, 300, bb.R, 1e-9)
	require.InDelta(t, 300, bb.T, 1e-9)
}

func TestVisibleBB_Degenerate(t *testing.T) {
	vb := viewbox.New(viewbox.Options{})
	require.NoError(t, vb.SetZoom(0))

	_, err := VisibleBB(vb, gm.Vec{X: 400, Y: 400})
	require.ErrorIs(t, err, viewbox.ErrDegenerateTransform)
}

func TestSpaceBB(t *testing.T) {
	space := cp.NewSpace()

	_, ok := SpaceBB(space)
	require.False(t, ok)

	space.AddShape(cp.NewBox2(space.StaticBody, cp.BB{L: 8, B: 17, R: 12, T: 23}, 0))
	space.AddShape(cp.NewBox2(space.StaticBody, cp.BB{L: -1, B: -1, R: 1, T: 1}, 0))

	bb, ok := SpaceBB(space)
	require.True(t, ok)
	require.InDelta(t, -1, bb.L, 1e-9)
	require.InDelta(t, -1, bb.B, 1e-9)
	require.InDelta(t, 12, bb.R, 1e-9)
	require.InDelta(t, 23, bb.T, 1e-9)
}

func TestZoomToSpace(t *testing.T) {
	space := cp.NewSpace()

	vb := viewbox.New(viewbox.Options{})
	require.ErrorIs(t, ZoomToSpace(vb, space, viewbox.FitOptions{}), ErrEmptySpace)

	space.AddShape(cp.NewBox2(space.StaticBody, cp.BB{L: 0, B: 0, R: 100, T: 50}, 0))

	require.NoError(t, ZoomToSpace(vb, space, viewbox.FitOptions{}))

	actual := vb.Coefficients()
	for idx, expected := range [6]float64{4, 0, 0, 4, 0, 100} {
		require.InDelta(t, expected, actual[idx], 1e-9)
	}

	require.InDelta(t, 4, vb.Zoom(), 1e-9)
}

func TestZoomToSpace_TranslatedView(t *testing.T) {
	space := cp.NewSpace()
	space.AddShape(cp.NewBox2(space.StaticBody, cp.BB{L: 0, B: 0, R: 100, T: 50}, 0))

	vb := viewbox.New(viewbox.Options{})
	require.NoError(t, vb.Translate(gm.Vec{X: 50, Y: 50}))

	require.NoError(t, ZoomToSpace(vb, space, viewbox.FitOptions{}))

	actual := vb.Coefficients()
	for idx, expected := range [6]float64{4, 0, 0, 4, 0, 100} {
		require.InDelta(t, expected, actual[idx], 1e-9)
	}

	// the center of the space is in the center of the viewport
	center := vb.LocalToGlobal(gm.Vec{X: 50, Y: 25})
	require.InDelta(t, 200, center.X, 1e-9)
	require.InDelta(t, 200, center.Y, 1e-9)
}
