package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Scalar](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle() Rad {
	return Rad(RandomIn(0.0, 2*math.Pi))
}

// RandomVecIn returns a vector uniformly sampled from within the given rectangle.
func RandomVecIn(r Rect) Vec {
	return Vec{
		X: RandomIn(r.Min.X, r.Max.X),
		Y: RandomIn(r.Min.Y, r.Max.Y),
	}
}
