package gm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DeterminantEpsilon is the smallest absolute determinant an invertible matrix may have.
const DeterminantEpsilon = 1e-12

// Affine represents an affine transformation. It consists of a Matrix that describes
// rotation, scale and shear, as well as a Translation vector.
//
// Use IdentityAffine to build a new identity transformation.
type Affine struct {
	Matrix      Mat
	Translation Vec
}

// IdentityAffine returns the identity transformation.
func IdentityAffine() Affine {
	return Affine{
		Matrix: IdentityMat(),
	}
}

// AffineFromCoefficients builds an Affine from the six coefficients of a
// css matrix(a, b, c, d, tx, ty).
func AffineFromCoefficients(a, b, c, d, tx, ty float64) Affine {
	return Affine{
		Matrix: Mat{
			XAxis: Vec{X: a, Y: c},
			YAxis: Vec{X: b, Y: d},
		},
		Translation: Vec{X: tx, Y: ty},
	}
}

// Coefficients returns the six coefficients in css order (a, b, c, d, tx, ty).
func (a Affine) Coefficients() [6]float64 {
	return [6]float64{
		a.Matrix.XAxis.X,
		a.Matrix.YAxis.X,
		a.Matrix.XAxis.Y,
		a.Matrix.YAxis.Y,
		a.Translation.X,
		a.Translation.Y,
	}
}

// TranslationAffine returns a transformation that only translates.
func TranslationAffine(translate Vec) Affine {
	return Affine{Matrix: IdentityMat(), Translation: translate}
}

// Prepend applies op in local space before a, the same as a.Mul(op).
func (a Affine) Prepend(op Affine) Affine {
	return a.Mul(op)
}

// Append applies op in global space after a, the same as op.Mul(a).
func (a Affine) Append(op Affine) Affine {
	return op.Mul(a)
}

func (a Affine) Rotate(angle Rad) Affine {
	return a.Mul(Affine{Matrix: RotationMat(angle)})
}

func (a Affine) Scale(scale Vec) Affine {
	return a.Mul(Affine{Matrix: ScaleMat(scale)})
}

func (a Affine) SkewX(angle Rad) Affine {
	return a.Mul(Affine{Matrix: SkewXMat(angle)})
}

func (a Affine) SkewY(angle Rad) Affine {
	return a.Mul(Affine{Matrix: SkewYMat(angle)})
}

func (a Affine) Translate(translate Vec) Affine {
	return a.Mul(TranslationAffine(translate))
}

// Transform applies the affine transform to the given point and returns
// the transformed point.
func (a Affine) Transform(point Vec) Vec {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVec applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated, scaled and sheared.
func (a Affine) TransformVec(vec Vec) Vec {
	return a.Matrix.Transform(vec)
}

// Mul multiplies the affine transformation with another transformation.
// The resulting transformation first transforms a point by other and
// then by a.
func (a Affine) Mul(other Affine) Affine {
	return Affine{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// Determinant returns the determinant of the linear part.
func (a Affine) Determinant() float64 {
	return a.Matrix.Determinant()
}

// Inverse returns the inverse of the Affine transformation.
// This method will panic if an inverse can not be calculated.
func (a Affine) Inverse() Affine {
	inverse, ok := a.TryInverse()
	if !ok {
		panic(fmt.Errorf("affine %s is not invertible", a))
	}

	return inverse
}

// TryInverse returns the inverse of the Affine transformation if possible.
func (a Affine) TryInverse() (inverse Affine, ok bool) {
	mat, ok := a.Matrix.TryInverse()
	if !ok {
		return Affine{}, false
	}

	translation := mat.Transform(a.Translation).Mul(-1)
	inverse = Affine{
		Matrix:      mat,
		Translation: translation,
	}

	return inverse, true
}

// ApproxEqual reports whether all coefficients of both transforms differ by at most epsilon.
func (a Affine) ApproxEqual(other Affine, epsilon float64) bool {
	lhs, rhs := a.Coefficients(), other.Coefficients()
	for idx := range lhs {
		if math.Abs(lhs[idx]-rhs[idx]) > epsilon {
			return false
		}
	}

	return true
}

// String formats the transform as a css matrix function, e.g. matrix(1,0,0,1,0,0).
func (a Affine) String() string {
	var sb strings.Builder
	sb.WriteString("matrix(")

	for idx, value := range a.Coefficients() {
		if idx > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
	}

	sb.WriteByte(')')
	return sb.String()
}
