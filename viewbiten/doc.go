// Package viewbiten connects a viewbox.ViewBox to ebiten.
//
// It converts the view matrix into an ebiten.GeoM for drawing content in
// local coordinates, and provides PanZoom to drive a view by mouse input.
package viewbiten
