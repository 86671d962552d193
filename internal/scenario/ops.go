package scenario

import (
	"fmt"

	"github.com/oliverbestmann/viewbox"
	"github.com/oliverbestmann/viewbox/gm"
)

type handler func(vb *viewbox.ViewBox, op Op) error

// scalarOp applies an operation that takes a single value, optionally around a center.
func scalarOp(
	origin func(vb *viewbox.ViewBox, value float64) error,
	around func(vb *viewbox.ViewBox, value float64, center gm.Vec) error,
) handler {
	return func(vb *viewbox.ViewBox, op Op) error {
		value, err := scalarOf(op.Value)
		if err != nil {
			return err
		}

		if op.Center == nil {
			return origin(vb, value)
		}

		center, err := vecOf(op.Center)
		if err != nil {
			return err
		}

		return around(vb, value, center)
	}
}

func flipOp(
	origin func(vb *viewbox.ViewBox) error,
	around func(vb *viewbox.ViewBox, center gm.Vec) error,
) handler {
	return func(vb *viewbox.ViewBox, op Op) error {
		if op.Center == nil {
			return origin(vb)
		}

		center, err := vecOf(op.Center)
		if err != nil {
			return err
		}

		return around(vb, center)
	}
}

var handlers = map[string]handler{
	"translate": func(vb *viewbox.ViewBox, op Op) error {
		delta, err := vecOf(op.Value)
		if err != nil {
			return err
		}

		return vb.Translate(delta)
	},

	"scale": func(vb *viewbox.ViewBox, op Op) error {
		var scale gm.Vec

		switch len(op.Value) {
		case 1:
			scale = gm.VecSplat(op.Value[0])
		case 2:
			scale = gm.Vec{X: op.Value[0], Y: op.Value[1]}
		default:
			return fmt.Errorf("expected one or two values, got %d: %w", len(op.Value), ErrInvalidArgument)
		}

		if op.Center == nil {
			return vb.Scale(scale)
		}

		center, err := vecOf(op.Center)
		if err != nil {
			return err
		}

		return vb.ScaleAround(scale, center)
	},

	"rotate":       scalarOp((*viewbox.ViewBox).Rotate, (*viewbox.ViewBox).RotateAround),
	"skew_x":       scalarOp((*viewbox.ViewBox).SkewX, (*viewbox.ViewBox).SkewXAround),
	"skew_y":       scalarOp((*viewbox.ViewBox).SkewY, (*viewbox.ViewBox).SkewYAround),
	"set_zoom":     scalarOp((*viewbox.ViewBox).SetZoom, (*viewbox.ViewBox).SetZoomAround),
	"set_rotation": scalarOp((*viewbox.ViewBox).SetRotation, (*viewbox.ViewBox).SetRotationAround),
	"set_skew_x":   scalarOp((*viewbox.ViewBox).SetSkewX, (*viewbox.ViewBox).SetSkewXAround),
	"set_skew_y":   scalarOp((*viewbox.ViewBox).SetSkewY, (*viewbox.ViewBox).SetSkewYAround),

	"flip_x": flipOp((*viewbox.ViewBox).FlipX, (*viewbox.ViewBox).FlipXAround),
	"flip_y": flipOp((*viewbox.ViewBox).FlipY, (*viewbox.ViewBox).FlipYAround),

	"set_origin": func(vb *viewbox.ViewBox, op Op) error {
		origin, err := vecOf(op.Value)
		if err != nil {
			return err
		}

		vb.SetTransformOrigin(origin)
		return nil
	},

	"reset": func(vb *viewbox.ViewBox, op Op) error {
		vb.Reset()
		return nil
	},

	"zoom_to_rect": func(vb *viewbox.ViewBox, op Op) error {
		rect, opts, err := fitOf(op)
		if err != nil {
			return err
		}

		return vb.ZoomToRect(rect, opts)
	},

	"zoom_to_fit": func(vb *viewbox.ViewBox, op Op) error {
		rect, opts, err := fitOf(op)
		if err != nil {
			return err
		}

		return vb.ZoomToFit(rect, opts)
	},
}

func fitOf(op Op) (gm.Rect, viewbox.FitOptions, error) {
	if len(op.Rect) != 4 {
		return gm.Rect{}, viewbox.FitOptions{}, fmt.Errorf("rect needs [x, y, w, h], got %d values: %w", len(op.Rect), ErrInvalidArgument)
	}

	rect := gm.RectWithOriginAndSize(
		gm.Vec{X: op.Rect[0], Y: op.Rect[1]},
		gm.Vec{X: op.Rect[2], Y: op.Rect[3]},
	)

	opts := viewbox.FitOptions{
		Mode:    op.Mode,
		Padding: op.Padding,
	}

	if op.Viewport != nil {
		viewport, err := vecOf(op.Viewport)
		if err != nil {
			return gm.Rect{}, viewbox.FitOptions{}, fmt.Errorf("viewport: %w", err)
		}

		opts.ViewportSize = viewport
	}

	if op.Pivot != nil {
		pivot, err := vecOf(op.Pivot)
		if err != nil {
			return gm.Rect{}, viewbox.FitOptions{}, fmt.Errorf("pivot: %w", err)
		}

		opts.Pivot = gm.Some(pivot)
	}

	if op.BaseMatrix != nil {
		base, err := affineOf(op.BaseMatrix)
		if err != nil {
			return gm.Rect{}, viewbox.FitOptions{}, fmt.Errorf("base_matrix: %w", err)
		}

		opts.BaseMatrix = gm.Some(base)
	}

	if op.Scale != nil {
		opts.Scale = gm.Some(*op.Scale)
	}

	return rect, opts, nil
}

func scalarOf(values []float64) (float64, error) {
	if len(values) != 1 {
		return 0, fmt.Errorf("expected one value, got %d: %w", len(values), ErrInvalidArgument)
	}

	return values[0], nil
}

func vecOf(values []float64) (gm.Vec, error) {
	if len(values) != 2 {
		return gm.Vec{}, fmt.Errorf("expected two values, got %d: %w", len(values), ErrInvalidArgument)
	}

	return gm.Vec{X: values[0], Y: values[1]}, nil
}

func affineOf(values []float64) (gm.Affine, error) {
	if len(values) != 6 {
		return gm.Affine{}, fmt.Errorf("expected six coefficients, got %d: %w", len(values), ErrInvalidArgument)
	}

	return gm.AffineFromCoefficients(values[0], values[1], values[2], values[3], values[4], values[5]), nil
}
