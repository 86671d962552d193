package physics

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
)

// DrawSpace draws the shapes and constraints of the space onto the target,
// as seen through the given view.
func DrawSpace(target *ebiten.Image, space *cp.Space, vb *viewbox.ViewBox) {
	cp.DrawSpace(space, debugImage{Transform: vb.Matrix(), Render: renderTo(target)})
}

// renderTo fills and strokes paths onto the target image.
func renderTo(target *ebiten.Image) func(p *vector.Path, outline, fill cp.FColor) {
	return func(p *vector.Path, outline, fill cp.FColor) {
		dpo := &vector.DrawPathOptions{}
		dpo.ColorScale.Scale(fill.R*fill.A, fill.G*fill.A, fill.B*fill.A, fill.A)
		vector.FillPath(target, p, &vector.FillOptions{}, dpo)

		*dpo = vector.DrawPathOptions{}
		dpo.ColorScale.Scale(outline.R*outline.A, outline.G*outline.A, outline.B*outline.A, outline.A)
		vector.StrokePath(target, p, &vector.StrokeOptions{Width: 1}, dpo)
	}
}

type debugImage struct {
	Transform gm.Affine

	// Render receives every path in screen coordinates
	Render func(p *vector.Path, outline, fill cp.FColor)
}

var _ cp.Drawer = debugImage{}

func (d debugImage) point(v cp.Vector) (float32, float32) {
	p := d.Transform.Transform(gm.Vec(v))
	return float32(p.X), float32(p.Y)
}

func (d debugImage) draw(p vector.Path, outline cp.FColor, fill cp.FColor) {
	d.Render(&p, outline, fill)
}

func (d debugImage) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	x, y := d.point(pos)
	r := float32(d.Transform.TransformVec(gm.Vec{X: radius}).Length())

	// direction marker in space coordinates, so it follows rotation and flips of the view
	mx, my := d.point(pos.Add(cp.ForAngle(angle).Mult(radius)))

	var p vector.Path
	p.Arc(x, y, r, 0, math.Pi*2, vector.Clockwise)
	p.MoveTo(x, y)
	p.LineTo(mx, my)

	d.draw(p, outline, fill)
}

func (d debugImage) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	ax, ay := d.point(a)
	bx, by := d.point(b)

	var p vector.Path
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)
	d.draw(p, fill, cp.FColor{})
}

func (d debugImage) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.DrawSegment(a, b, outline, data)
}

func (d debugImage) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count == 0 {
		return
	}

	var p vector.Path

	x, y := d.point(verts[0])
	p.MoveTo(x, y)

	for _, vert := range verts[1:count] {
		x, y := d.point(vert)
		p.LineTo(x, y)
	}

	p.Close()

	d.draw(p, outline, fill)
}

func (d debugImage) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.DrawCircle(pos, 0, size/2, fill, fill, data)
}

func (d debugImage) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_CONSTRAINTS
}

func (d debugImage) OutlineColor() cp.FColor {
	return cp.FColor{R: 1, G: 1, B: 1, A: 1}
}

func (d debugImage) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	return cp.FColor{G: 1, A: 1}
}

func (d debugImage) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.75, A: 1}
}

func (d debugImage) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, A: 1}
}

func (d debugImage) Data() interface{} {
	return nil
}
