// Package gm (stands for geometry math) provides the geometry primitives
// the view transform is built on.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat, an
// affine transform matrix named Affine and an axis aligned Rect.
//
// Affine uses the same six coefficients as a CSS matrix(a, b, c, d, tx, ty):
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// There is also a type named Rad to represent angle values in radian.
package gm
