package gm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRect(t *testing.T) {
	r := RectWithOriginAndSize(Vec{X: 100, Y: 100}, Vec{X: 400, Y: 300})

	require.Equal(t, Vec{X: 300, Y: 250}, r.Center())
	require.Equal(t, Vec{X: 400, Y: 300}, r.Size())
	require.Equal(t, 400.0, r.Width())
	require.Equal(t, 300.0, r.Height())
	require.False(t, r.IsEmpty())
	require.True(t, r.Contains(Vec{X: 500, Y: 400}))
	require.False(t, r.Contains(Vec{X: 99, Y: 400}))
}

func TestRect_IsEmpty(t *testing.T) {
	require.True(t, Rect{}.IsEmpty())
	require.True(t, RectWithSize(Vec{X: 10}).IsEmpty())
	require.True(t, RectWithOriginAndSize(VecZero, Vec{X: -10, Y: 10}).IsEmpty())
}

func TestBoundingRect(t *testing.T) {
	r := BoundingRect(Vec{X: 3, Y: -1}, Vec{X: -2, Y: 5}, Vec{X: 0, Y: 0})
	require.Equal(t, RectWithPoints(Vec{X: -2, Y: -1}, Vec{X: 3, Y: 5}), r)

	require.Equal(t, Rect{}, BoundingRect())

	corners := r.Corners()
	require.Equal(t, r, BoundingRect(corners[:]...))
}

func TestRad_Normalized(t *testing.T) {
	require.InDelta(t, 0.0, float64(DegToRad(360).Normalized()), 1e-12)
	require.InDelta(t, -90.0, DegToRad(270).Normalized().Degrees(), 1e-9)
	require.InDelta(t, 10.0, DegToRad(20).DifferenceTo(DegToRad(10)).Degrees(), 1e-9)
}
