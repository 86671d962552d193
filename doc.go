// Package viewbox provides a pivot aware 2d view transform.
//
// A ViewBox tracks how a viewport (global space) maps onto content (local
// space). Content can be panned, zoomed, rotated, mirrored and sheared around
// a configurable transform origin. Next to the raw matrix, a ViewBox keeps a
// Snapshot of the semantic parameters (zoom, rotation, skew, flip) that is
// updated arithmetically with every operation. Absolute operations like
// SetZoom and SetRotation read the Snapshot instead of decomposing the
// matrix, so thousands of operations do not accumulate drift.
//
// ZoomToRect and ZoomToFit align a content rectangle within a viewport using
// one of the css object-fit modes.
//
// A ViewBox never renders anything, it only computes coordinate mappings.
// The matrix can be exported as six css coefficients using Coefficients or
// CSS. The viewbiten and physics packages convert it for use with ebiten and
// chipmunk.
package viewbox
