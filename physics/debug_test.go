package physics

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
	"github.com/stretchr/testify/require"
)

func TestDebugImage_Point(t *testing.T) {
	vb := viewbox.New(viewbox.Options{TransformOrigin: gm.Vec{X: 200, Y: 200}})
	require.NoError(t, vb.Rotate(90))
	require.NoError(t, vb.SetZoom(2))

	d := debugImage{Transform: vb.Matrix()}

	x, y := d.point(cp.Vector{X: 30, Y: 40})
	expected := vb.LocalToGlobal(gm.Vec{X: 30, Y: 40})
	require.InDelta(t, expected.X, float64(x), 1e-3)
	require.InDelta(t, expected.Y, float64(y), 1e-3)
}

func TestDebugImage_DrawsEveryShape(t *testing.T) {
	space := cp.NewSpace()
	space.AddShape(cp.NewBox2(space.StaticBody, cp.BB{L: 0, B: 0, R: 10, T: 10}, 0))
	space.AddShape(cp.NewCircle(space.StaticBody, 5, cp.Vector{X: 20, Y: 20}))
	space.AddShape(cp.NewSegment(space.StaticBody, cp.Vector{X: -10}, cp.Vector{X: 10}, 1))

	var paths int
	render := func(p *vector.Path, outline, fill cp.FColor) {
		require.NotNil(t, p)
		paths++
	}

	cp.DrawSpace(space, debugImage{Transform: gm.IdentityAffine(), Render: render})
	require.Equal(t, 3, paths)
}
