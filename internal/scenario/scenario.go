// Package scenario loads a list of view operations from a TOML file and
// replays them against a viewbox.ViewBox.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
	"github.com/pelletier/go-toml/v2"
)

var ErrUnknownOp = errors.New("unknown op")
var ErrInvalidArgument = errors.New("invalid argument")

type Scenario struct {
	TransformOrigin []float64 `toml:"transform_origin"`
	Matrix          []float64 `toml:"matrix"`
	Ops             []Op      `toml:"ops"`
}

// Op is a single operation. Which fields are used depends on the op.
type Op struct {
	Op     string    `toml:"op"`
	Value  []float64 `toml:"value"`
	Center []float64 `toml:"center"`

	// Repeat runs the op multiple times, defaults to once.
	Repeat int `toml:"repeat"`

	// fit parameters
	Rect       []float64         `toml:"rect"`
	Viewport   []float64         `toml:"viewport"`
	Mode       viewbox.ObjectFit `toml:"mode"`
	Padding    float64           `toml:"padding"`
	Pivot      []float64         `toml:"pivot"`
	BaseMatrix []float64         `toml:"base_matrix"`
	Scale      *float64          `toml:"scale"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	scenario, err := Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", path, err)
	}

	slog.Debug(
		"Loaded scenario",
		slog.String("path", path),
		slog.Int("ops", len(scenario.Ops)),
	)

	return scenario, nil
}

// Parse decodes a scenario from TOML. Unknown keys and unknown ops are rejected.
func Parse(buf []byte) (*Scenario, error) {
	var scenario Scenario

	dec := toml.NewDecoder(bytes.NewReader(buf))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&scenario); err != nil {
		return nil, err
	}

	for idx, op := range scenario.Ops {
		if _, ok := handlers[op.Op]; !ok {
			return nil, fmt.Errorf("op %d: %w %q", idx, ErrUnknownOp, op.Op)
		}
	}

	return &scenario, nil
}

// Run creates a new ViewBox and applies all ops in order.
func (s *Scenario) Run() (*viewbox.ViewBox, error) {
	var opts viewbox.Options

	if s.TransformOrigin != nil {
		origin, err := vecOf(s.TransformOrigin)
		if err != nil {
			return nil, fmt.Errorf("transform_origin: %w", err)
		}

		opts.TransformOrigin = origin
	}

	if s.Matrix != nil {
		matrix, err := affineOf(s.Matrix)
		if err != nil {
			return nil, fmt.Errorf("matrix: %w", err)
		}

		opts.Matrix = gm.Some(matrix)
	}

	vb := viewbox.New(opts)

	for idx, op := range s.Ops {
		handler, ok := handlers[op.Op]
		if !ok {
			return nil, fmt.Errorf("op %d: %w %q", idx, ErrUnknownOp, op.Op)
		}

		for range max(1, op.Repeat) {
			if err := handler(vb, op); err != nil {
				return nil, fmt.Errorf("op %d (%s): %w", idx, op.Op, err)
			}
		}
	}

	return vb, nil
}
