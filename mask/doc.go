// The mask subpackage defines the [Rasterizer] interface used by the
// renderer and provides the implementations it needs.
//
// In this context, "[Rasterizer]" refers to a "glyph mask rasterizer":
// before text can reach a caption buffer, the individual font glyphs,
// extracted from font files as outlines (sets of lines and curves),
// have to be drawn into a raster image (a grid of pixels).
//
// The [DefaultRasterizer] wraps [golang.org/x/image/vector.Rasterizer].
// The [FauxRasterizer] builds on it to thicken glyphs, which is how the
// caption pen width and bold styling are realized without requiring a
// separate bold font face.
package mask
