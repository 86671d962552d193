package gm

import "math"

// Decomposition holds the components of an Affine transform
// as extracted by Affine.Decompose.
type Decomposition struct {
	ScaleX, ScaleY float64
	Rotation       Rad
	SkewX, SkewY   Rad
	X, Y           float64
}

// Decompose splits the transform into translation, rotation, scale and skew
// using a QR decomposition of the linear part:
//
//	M = R(rotation) · [[scaleX, 0], [0, scaleY]] · SkewX(skewX)
//
// A reflection shows up as a negative ScaleY. SkewY is always zero, any
// shear is expressed by SkewX.
//
// The rotation is recovered using inverse trigonometry. Repeatedly decomposing
// and recomposing a transform accumulates floating point errors.
func (a Affine) Decompose() Decomposition {
	m := a.Coefficients()
	ma, mb, mc, md := m[0], m[1], m[2], m[3]

	scaleX := math.Hypot(ma, mb)

	d := Decomposition{
		X:        a.Translation.X,
		Y:        a.Translation.Y,
		Rotation: Rad(math.Atan2(mb, ma)),
		ScaleX:   scaleX,
	}

	if scaleX == 0 {
		// nothing sensible left to extract
		d.ScaleY = math.Hypot(mc, md)
		return d
	}

	d.ScaleY = (ma*md - mb*mc) / scaleX
	d.SkewX = Rad(math.Atan((ma*mc + mb*md) / (scaleX * scaleX)))

	return d
}

// Recompose builds the Affine transform described by the decomposition.
func (d Decomposition) Recompose() Affine {
	return TranslationAffine(Vec{X: d.X, Y: d.Y}).
		Rotate(d.Rotation).
		Scale(Vec{X: d.ScaleX, Y: d.ScaleY}).
		SkewX(d.SkewX).
		SkewY(d.SkewY)
}
