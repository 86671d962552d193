package gm

import (
	"fmt"
	"math"
)

type Scalar interface {
	int32 | float32 | float64
}

// Vec is a point or direction in 2d space.
type Vec = vec[float64]

var VecZero = Vec{}
var VecOne = Vec{X: 1, Y: 1}

// VecSplat returns a vector with both components set to value.
func VecSplat[S Scalar](value S) vec[S] {
	return vec[S]{X: value, Y: value}
}

type vec[S Scalar] struct {
	X, Y S
}

func (v vec[S]) Add(other vec[S]) vec[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v vec[S]) Sub(other vec[S]) vec[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v vec[S]) Mul(scalar S) vec[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v vec[S]) MulEach(other vec[S]) vec[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v vec[S]) DivEach(other vec[S]) vec[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

// Min returns the component wise minimum of both vectors.
func (v vec[S]) Min(other vec[S]) vec[S] {
	return vec[S]{X: min(v.X, other.X), Y: min(v.Y, other.Y)}
}

// Max returns the component wise maximum of both vectors.
func (v vec[S]) Max(other vec[S]) vec[S] {
	return vec[S]{X: max(v.X, other.X), Y: max(v.Y, other.Y)}
}

func (v vec[S]) String() string {
	return fmt.Sprintf("vec(x=%v, y=%v)", v.X, v.Y)
}

func (v vec[S]) Length() S {
	return S(math.Sqrt(float64(v.LengthSqr())))
}

func (v vec[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the euclidean distance between two points.
func (v vec[S]) DistanceTo(other vec[S]) S {
	return v.Sub(other).Length()
}
