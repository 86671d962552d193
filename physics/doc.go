// Package physics connects a viewbox.ViewBox to a chipmunk space.
//
// Local coordinates of the view are treated as space coordinates. The
// package converts transforms and bounding boxes, fits a view onto the
// contents of a space and draws a space for debugging.
package physics
