// Caption layout works on a pixel grid, but font metrics rarely fall on
// whole pixels. Like most font-related Golang code, this package avoids
// floating point drift by doing the math in [fixed point]: the [Unit]
// type stores 26.6 values, where 64 units equal one pixel.
//
// Besides [Unit], the package defines the [Point] and [Rect] helper
// types used to track pen positions and measured text areas.
//
// The internal representation is compatible with
// [golang.org/x/image/math/fixed.Int26_6], so values can cross into
// x/image APIs with a plain conversion.
//
// [fixed point]: https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package fract
