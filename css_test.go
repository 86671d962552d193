package viewbox

import (
	"testing"

	"github.com/oliverbestmann/viewbox/gm"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected gm.Affine
	}{
		{"matrix", "matrix(1,2,3,4,5,6)", gm.AffineFromCoefficients(1, 2, 3, 4, 5, 6)},
		{"whitespace", "  matrix(0.5, 0, 0, 0.5, -10.25, 3e2) ", gm.AffineFromCoefficients(0.5, 0, 0, 0.5, -10.25, 300)},
		{"none", "none", gm.IdentityAffine()},
		{"declaration", "transform: matrix(2, 0, 0, 2, 10, 10)", gm.AffineFromCoefficients(2, 0, 0, 2, 10, 10)},
		{"declarations", "color: red; transform: matrix(1,0,0,1,7,8);", gm.AffineFromCoefficients(1, 0, 0, 1, 7, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseCSS(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected.Coefficients(), parsed.Coefficients())
		})
	}
}

func TestParseCSS_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"rotate(10deg)",
		"matrix(1,2,3)",
		"matrix(1,2,3,4,5,6",
		"matrix(a,b,c,d,e,f)",
		"color: red",
	}

	for _, input := range inputs {
		_, err := ParseCSS(input)
		require.ErrorIs(t, err, ErrInvalidCSS, "input %q", input)
	}
}

func TestParseCSS_RoundTrip(t *testing.T) {
	vb := withOrigin(200, 200)
	require.NoError(t, vb.Rotate(33))
	require.NoError(t, vb.SetZoom(1.25))
	require.NoError(t, vb.Translate(gm.Vec{X: -17.5, Y: 4}))

	parsed, err := ParseCSS(vb.CSS())
	require.NoError(t, err)
	require.Equal(t, vb.Coefficients(), parsed.Coefficients())
}
