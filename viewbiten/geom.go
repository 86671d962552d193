package viewbiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
)

// GeoM converts an affine transform into an ebiten.GeoM.
func GeoM(a gm.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, a.Matrix.XAxis.X)
	g.SetElement(0, 1, a.Matrix.XAxis.Y)
	g.SetElement(0, 2, a.Translation.X)
	g.SetElement(1, 0, a.Matrix.YAxis.X)
	g.SetElement(1, 1, a.Matrix.YAxis.Y)
	g.SetElement(1, 2, a.Translation.Y)
	return g
}

// AffineOf converts an ebiten.GeoM into an affine transform.
func AffineOf(g ebiten.GeoM) gm.Affine {
	return gm.Affine{
		Matrix: gm.Mat{
			XAxis: gm.Vec{X: g.Element(0, 0), Y: g.Element(0, 1)},
			YAxis: gm.Vec{X: g.Element(1, 0), Y: g.Element(1, 1)},
		},
		Translation: gm.Vec{X: g.Element(0, 2), Y: g.Element(1, 2)},
	}
}

// DrawImageOptions returns draw options that render content in local
// coordinates of the ViewBox onto the screen.
func DrawImageOptions(vb *viewbox.ViewBox) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(vb.Matrix())
	return op
}
