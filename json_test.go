package viewbox

import (
	"encoding/json"
	"testing"

	"github.com/oliverbestmann/viewbox/gm"
	"github.com/stretchr/testify/require"
)

func TestViewBox_JSON(t *testing.T) {
	vb := withOrigin(200, 100)
	require.NoError(t, vb.SetRotation(370))
	require.NoError(t, vb.SetZoom(2))
	require.NoError(t, vb.FlipX())

	encoded, err := json.Marshal(vb)
	require.NoError(t, err)

	var decoded ViewBox
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	require.Equal(t, vb.Coefficients(), decoded.Coefficients())
	require.Equal(t, vb.TransformOrigin(), decoded.TransformOrigin())

	// the snapshot is restored as is, a decomposition would yield 10°
	require.Equal(t, vb.Snapshot(), decoded.Snapshot())
	require.Equal(t, 370.0, decoded.Snapshot().Rotation)
}

func TestViewBox_JSONLayout(t *testing.T) {
	vb := withOrigin(1, 2)

	encoded, err := json.Marshal(vb)
	require.NoError(t, err)

	require.JSONEq(t, `{
		"options": {"transformOrigin": {"x": 1, "y": 2}},
		"matrix": [1, 0, 0, 1, 0, 0],
		"transform": {
			"scaleX": 1, "scaleY": 1,
			"rotation": 0, "skewX": 0, "skewY": 0,
			"flipX": false, "flipY": false
		}
	}`, string(encoded))
}

func TestViewBox_JSONWithoutSnapshot(t *testing.T) {
	input := `{"options": {"transformOrigin": {"x": 5, "y": 5}}, "matrix": [0, 2, -2, 0, 10, 20]}`

	var vb ViewBox
	require.NoError(t, json.Unmarshal([]byte(input), &vb))

	require.Equal(t, gm.Vec{X: 5, Y: 5}, vb.TransformOrigin())
	require.Equal(t, gm.Vec{X: 10, Y: 20}, vb.Position())
	require.InDelta(t, 90.0, vb.Snapshot().Rotation, 1e-9)
	require.InDelta(t, 2.0, vb.Zoom(), 1e-9)
}

func TestViewBox_JSONInvalid(t *testing.T) {
	var vb ViewBox
	require.Error(t, json.Unmarshal([]byte(`{"matrix": "nope"}`), &vb))

	for _, doc := range []string{
		`{"options": {"transformOrigin": {"x": 1, "y": 2}}}`,
		`{"matrix": null}`,
		`{"matrix": [1, 0, 0, 1]}`,
		`{"matrix": [1, 0, 0, 1, 0, 0, 0]}`,
	} {
		var vb ViewBox
		err := json.Unmarshal([]byte(doc), &vb)
		require.ErrorIs(t, err, ErrInvalidMatrix, doc)
	}
}
