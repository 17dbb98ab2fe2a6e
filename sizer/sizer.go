package sizer

import "golang.org/x/image/font"
import . "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"

// Glyphs are quantized to the pixel grid when drawn on caption
// buffers, so no hinting is requested from sfnt.
const hintingNone = font.HintingNone

// When drawing or measuring text we need information related to
// the font metrics: how much to advance after a glyph, the kerning
// between a specific pair of glyphs, the line height, and so on.
//
// Sizers are the interface that renderers use to obtain that
// information.
//
// You rarely need to care about sizers, but they can be useful
// in the following cases:
//  - Customize line height or advances.
//  - Disable kerning or adjust horizontal spacing.
//  - Make full size adjustments for a custom rasterizer.
type Sizer interface {
	// Returns the ascent of the given font at the given size,
	// as an absolute value.
	//
	// The font and size must be consistent with the latest
	// NotifyChange() call.
	Ascent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the descent of the given font at the given size,
	// as an absolute value.
	Descent(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the line gap of the given font at the given size.
	LineGap(*Font, *Buffer, fract.Unit) fract.Unit

	// Utility method equivalent to Ascent() + Descent() + LineGap().
	LineHeight(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the advance between consecutive lines for the given
	// font at the given size.
	LineAdvance(*Font, *Buffer, fract.Unit) fract.Unit

	// Returns the advance of the given glyph for the given font
	// and size.
	GlyphAdvance(*Font, *Buffer, fract.Unit, GlyphIndex) fract.Unit

	// Returns the kerning value between two glyphs of the given
	// font and size.
	Kern(*Font, *Buffer, fract.Unit, GlyphIndex, GlyphIndex) fract.Unit

	// Must be called whenever the active font or size change so
	// the sizer can refresh any values it may be caching.
	NotifyChange(*Font, *Buffer, fract.Unit)
}
