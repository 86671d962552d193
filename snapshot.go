package viewbox

import (
	"github.com/oliverbestmann/viewbox/gm"
)

// Snapshot holds the semantic transform parameters of a ViewBox.
// Angles are in degrees.
//
// The snapshot is updated arithmetically with every operation on the ViewBox,
// e.g. Rotate(10) adds 10 to Rotation. Flips are reflections and toggle the
// FlipX and FlipY flags.
type Snapshot struct {
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	Rotation float64 `json:"rotation"`
	SkewX    float64 `json:"skewX"`
	SkewY    float64 `json:"skewY"`
	FlipX    bool    `json:"flipX"`
	FlipY    bool    `json:"flipY"`
}

// DefaultSnapshot returns the snapshot of the identity transform.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		ScaleX: 1,
		ScaleY: 1,
	}
}

// snapshotOf seeds a snapshot from a raw matrix. This is the only place
// where the matrix is decomposed.
func snapshotOf(m gm.Affine) Snapshot {
	d := m.Decompose()

	s := Snapshot{
		ScaleX:   d.ScaleX,
		ScaleY:   d.ScaleY,
		Rotation: d.Rotation.Degrees(),
		SkewX:    d.SkewX.Degrees(),
		SkewY:    d.SkewY.Degrees(),
	}

	// a reflection shows up as negative y scale
	if s.ScaleY < 0 {
		s.ScaleY = -s.ScaleY
		s.FlipY = true
	}

	return s
}
