package viewbox

import (
	"github.com/oliverbestmann/viewbox/gm"
)

// prependAround performs op in local space around the given global point,
// by prepending T(local) · op · T(-local) onto the current matrix.
// The global point stays in place.
func (vb *ViewBox) prependAround(op gm.Mat, center gm.Vec) error {
	local, err := vb.GlobalToLocal(center)
	if err != nil {
		return err
	}

	vb.matrix = vb.matrix.
		Translate(local).
		Prepend(gm.Affine{Matrix: op}).
		Translate(local.Mul(-1))

	return nil
}

// Translate moves the content by the given delta in viewport coordinates.
// The delta is applied on screen, independent of any rotation or zoom.
func (vb *ViewBox) Translate(delta gm.Vec) error {
	inverse, err := vb.inverse()
	if err != nil {
		return err
	}

	r1 := inverse.Transform(gm.VecZero)
	r2 := inverse.Transform(delta)

	vb.matrix = vb.matrix.Translate(r2.Sub(r1))
	return nil
}

// TranslateX moves the content horizontally in viewport coordinates.
func (vb *ViewBox) TranslateX(dx float64) error {
	return vb.Translate(gm.Vec{X: dx})
}

// TranslateY moves the content vertically in viewport coordinates.
func (vb *ViewBox) TranslateY(dy float64) error {
	return vb.Translate(gm.Vec{Y: dy})
}

// Scale multiplies the current scale around the transform origin.
// Scaling by two twice results in a zoom of 4.
func (vb *ViewBox) Scale(scale gm.Vec) error {
	return vb.ScaleAround(scale, vb.origin)
}

// ScaleAround multiplies the current scale around the given point in viewport coordinates.
func (vb *ViewBox) ScaleAround(scale gm.Vec, center gm.Vec) error {
	if err := vb.prependAround(gm.ScaleMat(scale), center); err != nil {
		return err
	}

	vb.snapshot.ScaleX *= scale.X
	vb.snapshot.ScaleY *= scale.Y
	return nil
}

// Rotate rotates the content by the given angle in degrees around the transform origin.
// Rotations add up, calling Rotate(10) twice rotates by 20 degrees.
func (vb *ViewBox) Rotate(degrees float64) error {
	return vb.RotateAround(degrees, vb.origin)
}

// RotateAround rotates the content by the given angle in degrees around
// the given point in viewport coordinates.
func (vb *ViewBox) RotateAround(degrees float64, center gm.Vec) error {
	if err := vb.prependAround(gm.RotationMat(gm.DegToRad(degrees)), center); err != nil {
		return err
	}

	vb.snapshot.Rotation += degrees
	return nil
}

// FlipX mirrors the content horizontally around the transform origin.
// Flipping twice restores the previous state.
func (vb *ViewBox) FlipX() error {
	return vb.FlipXAround(vb.origin)
}

// FlipXAround mirrors the content horizontally around the given point in viewport coordinates.
func (vb *ViewBox) FlipXAround(center gm.Vec) error {
	if err := vb.prependAround(gm.ScaleMat(gm.Vec{X: -1, Y: 1}), center); err != nil {
		return err
	}

	vb.snapshot.FlipX = !vb.snapshot.FlipX
	return nil
}

// FlipY mirrors the content vertically around the transform origin.
// Flipping twice restores the previous state.
func (vb *ViewBox) FlipY() error {
	return vb.FlipYAround(vb.origin)
}

// FlipYAround mirrors the content vertically around the given point in viewport coordinates.
func (vb *ViewBox) FlipYAround(center gm.Vec) error {
	if err := vb.prependAround(gm.ScaleMat(gm.Vec{X: 1, Y: -1}), center); err != nil {
		return err
	}

	vb.snapshot.FlipY = !vb.snapshot.FlipY
	return nil
}

// SkewX shears the content along the x axis by the given angle in degrees.
func (vb *ViewBox) SkewX(degrees float64) error {
	return vb.SkewXAround(degrees, vb.origin)
}

// SkewXAround shears the content along the x axis around the given point in viewport coordinates.
func (vb *ViewBox) SkewXAround(degrees float64, center gm.Vec) error {
	if err := vb.prependAround(gm.SkewXMat(gm.DegToRad(degrees)), center); err != nil {
		return err
	}

	vb.snapshot.SkewX += degrees
	return nil
}

// SkewY shears the content along the y axis by the given angle in degrees.
func (vb *ViewBox) SkewY(degrees float64) error {
	return vb.SkewYAround(degrees, vb.origin)
}

// SkewYAround shears the content along the y axis around the given point in viewport coordinates.
func (vb *ViewBox) SkewYAround(degrees float64, center gm.Vec) error {
	if err := vb.prependAround(gm.SkewYMat(gm.DegToRad(degrees)), center); err != nil {
		return err
	}

	vb.snapshot.SkewY += degrees
	return nil
}

// SetZoom sets the absolute zoom around the transform origin.
// Calling SetZoom(2) and then SetZoom(4) results in a zoom of 4.
func (vb *ViewBox) SetZoom(zoom float64) error {
	return vb.SetZoomAround(zoom, vb.origin)
}

// SetZoomAround sets the absolute zoom around the given point in viewport coordinates.
func (vb *ViewBox) SetZoomAround(zoom float64, center gm.Vec) error {
	ratio := gm.Vec{
		X: zoom / vb.snapshot.ScaleX,
		Y: zoom / vb.snapshot.ScaleY,
	}

	if ratio != gm.VecOne {
		if err := vb.ScaleAround(ratio, center); err != nil {
			return err
		}
	}

	vb.snapshot.ScaleX = zoom
	vb.snapshot.ScaleY = zoom
	return nil
}

// SetRotation sets the absolute rotation in degrees around the transform origin.
func (vb *ViewBox) SetRotation(degrees float64) error {
	return vb.SetRotationAround(degrees, vb.origin)
}

// SetRotationAround sets the absolute rotation in degrees around the given point in viewport coordinates.
func (vb *ViewBox) SetRotationAround(degrees float64, center gm.Vec) error {
	if delta := degrees - vb.snapshot.Rotation; delta != 0 {
		if err := vb.RotateAround(delta, center); err != nil {
			return err
		}
	}

	vb.snapshot.Rotation = degrees
	return nil
}

// SetSkewX sets the absolute shear along the x axis in degrees around the transform origin.
func (vb *ViewBox) SetSkewX(degrees float64) error {
	return vb.SetSkewXAround(degrees, vb.origin)
}

// SetSkewXAround sets the absolute shear along the x axis around the given point in viewport coordinates.
func (vb *ViewBox) SetSkewXAround(degrees float64, center gm.Vec) error {
	if delta := degrees - vb.snapshot.SkewX; delta != 0 {
		if err := vb.SkewXAround(delta, center); err != nil {
			return err
		}
	}

	vb.snapshot.SkewX = degrees
	return nil
}

// SetSkewY sets the absolute shear along the y axis in degrees around the transform origin.
func (vb *ViewBox) SetSkewY(degrees float64) error {
	return vb.SetSkewYAround(degrees, vb.origin)
}

// SetSkewYAround sets the absolute shear along the y axis around the given point in viewport coordinates.
func (vb *ViewBox) SetSkewYAround(degrees float64, center gm.Vec) error {
	if delta := degrees - vb.snapshot.SkewY; delta != 0 {
		if err := vb.SkewYAround(delta, center); err != nil {
			return err
		}
	}

	vb.snapshot.SkewY = degrees
	return nil
}
