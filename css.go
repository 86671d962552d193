package viewbox

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/aymerick/douceur/parser"
	"github.com/oliverbestmann/viewbox/gm"
)

// ParseCSS parses a css transform value like "matrix(1,0,0,1,0,0)" or "none".
// A full declaration like "transform: matrix(2, 0, 0, 2, 10, 10)" is accepted too.
func ParseCSS(text string) (gm.Affine, error) {
	value := strings.TrimSpace(text)

	if strings.Contains(value, ":") {
		decls, err := parser.ParseDeclarations(value)
		if err != nil {
			return gm.Affine{}, fmt.Errorf("parse declaration %q: %w", text, ErrInvalidCSS)
		}

		value = ""
		for _, decl := range decls {
			if strings.EqualFold(decl.Property, "transform") {
				value = strings.TrimSpace(decl.Value)
			}
		}

		if value == "" {
			return gm.Affine{}, fmt.Errorf("no transform property in %q: %w", text, ErrInvalidCSS)
		}
	}

	if strings.EqualFold(value, "none") {
		return gm.IdentityAffine(), nil
	}

	args, ok := strings.CutPrefix(value, "matrix(")
	if ok {
		args, ok = strings.CutSuffix(args, ")")
	}

	if !ok {
		return gm.Affine{}, fmt.Errorf("expected matrix function, got %q: %w", value, ErrInvalidCSS)
	}

	fields := strings.FieldsFunc(args, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) != 6 {
		return gm.Affine{}, fmt.Errorf("expected 6 matrix arguments, got %d: %w", len(fields), ErrInvalidCSS)
	}

	var c [6]float64
	for idx, field := range fields {
		parsed, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return gm.Affine{}, fmt.Errorf("matrix argument %d: %w: %w", idx, err, ErrInvalidCSS)
		}

		c[idx] = parsed
	}

	return gm.AffineFromCoefficients(c[0], c[1], c[2], c[3], c[4], c[5]), nil
}
