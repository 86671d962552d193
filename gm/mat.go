package gm

import "math"

// Mat describes a 2d matrix of float64 values in row major order.
type Mat struct {
	XAxis, YAxis Vec
}

func IdentityMat() Mat {
	return Mat{
		XAxis: Vec{X: 1, Y: 0},
		YAxis: Vec{X: 0, Y: 1},
	}
}

// ScaleMat returns a matrix that scales a Vec.
func ScaleMat(scale Vec) Mat {
	return Mat{
		XAxis: Vec{scale.X, 0},
		YAxis: Vec{0, scale.Y},
	}
}

// RotationMat returns a rotation matrix that rotates
// a Vec clockwise by the given angle (in a y-down coordinate system).
func RotationMat(angle Rad) Mat {
	sin, cos := math.Sincos(float64(angle))

	return Mat{
		XAxis: Vec{cos, -sin},
		YAxis: Vec{sin, cos},
	}
}

// SkewXMat returns a matrix that shears along the x axis,
// same as the css skewX transform function.
func SkewXMat(angle Rad) Mat {
	return Mat{
		XAxis: Vec{1, angle.Tan()},
		YAxis: Vec{0, 1},
	}
}

// SkewYMat returns a matrix that shears along the y axis,
// same as the css skewY transform function.
func SkewYMat(angle Rad) Mat {
	return Mat{
		XAxis: Vec{1, 0},
		YAxis: Vec{angle.Tan(), 1},
	}
}

func (m Mat) Transform(vec Vec) Vec {
	return Vec{
		X: m.XAxis.X*vec.X + m.XAxis.Y*vec.Y,
		Y: m.YAxis.X*vec.X + m.YAxis.Y*vec.Y,
	}
}

func (m Mat) Mul(n Mat) Mat {
	return Mat{
		XAxis: Vec{
			X: m.XAxis.X*n.XAxis.X + m.XAxis.Y*n.YAxis.X,
			Y: m.XAxis.X*n.XAxis.Y + m.XAxis.Y*n.YAxis.Y,
		},
		YAxis: Vec{
			X: m.YAxis.X*n.XAxis.X + m.YAxis.Y*n.YAxis.X,
			Y: m.YAxis.X*n.XAxis.Y + m.YAxis.Y*n.YAxis.Y,
		},
	}
}

// Determinant returns the determinant of the matrix.
func (m Mat) Determinant() float64 {
	return m.XAxis.X*m.YAxis.Y - m.XAxis.Y*m.YAxis.X
}

// IsInvertible reports whether the determinant is far enough from zero
// to calculate an inverse.
func (m Mat) IsInvertible() bool {
	return math.Abs(m.Determinant()) > DeterminantEpsilon
}

func (m Mat) Inverse() Mat {
	f := 1 / m.Determinant()
	return Mat{
		XAxis: Vec{
			X: f * m.YAxis.Y,
			Y: f * -m.XAxis.Y,
		},
		YAxis: Vec{
			X: f * -m.YAxis.X,
			Y: f * m.XAxis.X,
		},
	}
}

// TryInverse returns the inverse of the matrix, if the matrix is invertible.
func (m Mat) TryInverse() (Mat, bool) {
	if !m.IsInvertible() {
		return Mat{}, false
	}

	return m.Inverse(), true
}
