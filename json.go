package viewbox

import (
	"encoding/json"
	"fmt"

	"github.com/oliverbestmann/viewbox/gm"
)

type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonOptions struct {
	TransformOrigin jsonPoint `json:"transformOrigin"`
}

type jsonViewBox struct {
	Options   jsonOptions `json:"options"`
	Matrix    []float64   `json:"matrix"`
	Transform *Snapshot   `json:"transform,omitempty"`
}

// MarshalJSON encodes the transform origin, the matrix coefficients and the snapshot.
func (vb *ViewBox) MarshalJSON() ([]byte, error) {
	snapshot := vb.snapshot
	coefficients := vb.matrix.Coefficients()

	return json.Marshal(jsonViewBox{
		Options: jsonOptions{
			TransformOrigin: jsonPoint{X: vb.origin.X, Y: vb.origin.Y},
		},
		Matrix:    coefficients[:],
		Transform: &snapshot,
	})
}

// UnmarshalJSON restores a ViewBox encoded by MarshalJSON. If the document does not
// contain a transform section, the snapshot is seeded by decomposing the matrix.
func (vb *ViewBox) UnmarshalJSON(data []byte) error {
	var decoded jsonViewBox
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode viewbox: %w", err)
	}

	if len(decoded.Matrix) != 6 {
		return fmt.Errorf("decode viewbox: expected 6 coefficients, got %d: %w", len(decoded.Matrix), ErrInvalidMatrix)
	}

	c := decoded.Matrix
	matrix := gm.AffineFromCoefficients(c[0], c[1], c[2], c[3], c[4], c[5])

	vb.origin = gm.Vec{X: decoded.Options.TransformOrigin.X, Y: decoded.Options.TransformOrigin.Y}

	if decoded.Transform == nil {
		vb.SetMatrix(matrix)
		return nil
	}

	vb.matrix = matrix
	vb.snapshot = *decoded.Transform
	return nil
}
