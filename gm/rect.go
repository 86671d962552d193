package gm

import (
	"fmt"
)

type Rect struct {
	Min, Max Vec
}

func RectWithPoints(a, b Vec) Rect {
	return Rect{
		Min: a.Min(b),
		Max: a.Max(b),
	}
}

func RectWithSize(size Vec) Rect {
	return Rect{
		Min: VecZero,
		Max: size,
	}
}

func RectWithOriginAndSize(origin, size Vec) Rect {
	return Rect{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize(center, size Vec) Rect {
	half := size.Mul(0.5)
	return Rect{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// BoundingRect returns the smallest Rect containing all the given points.
// It returns the zero Rect if no points are given.
func BoundingRect(points ...Vec) Rect {
	if len(points) == 0 {
		return Rect{}
	}

	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		r.Min = r.Min.Min(p)
		r.Max = r.Max.Max(p)
	}

	return r
}

func (r Rect) Center() Vec {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect) Size() Vec {
	return r.Max.Sub(r.Min)
}

func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// IsEmpty returns true if the rect has no positive area.
func (r Rect) IsEmpty() bool {
	return !(r.Width() > 0 && r.Height() > 0)
}

func (r Rect) TopLeft() Vec {
	return r.Min
}

func (r Rect) TopRight() Vec {
	return Vec{
		X: r.Max.X,
		Y: r.Min.Y,
	}
}

func (r Rect) BottomLeft() Vec {
	return Vec{
		X: r.Min.X,
		Y: r.Max.Y,
	}
}

func (r Rect) BottomRight() Vec {
	return r.Max
}

// Corners returns the four corners in clockwise order, starting at the top left.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

func (r Rect) Translate(offset Vec) Rect {
	return Rect{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

func (r Rect) Contains(p Vec) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}
