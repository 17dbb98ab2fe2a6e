package ecap

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"
import "github.com/tinne26/ecap/mask"

// Returns the glyph index for the given code point with the current
// font. Code points missing from the font map to index zero, the
// font's notdef glyph, which is measured and drawn like any other
// glyph. Caption text comes from external publishers, so missing
// glyphs are an expected condition, not a programmer error.
func (self *Renderer) getGlyphIndex(codePoint rune) sfnt.GlyphIndex {
	index, err := self.font.GlyphIndex(&self.buffer, codePoint)
	if err != nil { panic("font.GlyphIndex error: " + err.Error()) }
	return index
}

// Returns the glyph mask for the given glyph index, going through the
// cache handler when one is set. The mask may be nil for glyphs
// without visible shape, like spaces.
//
// The origin is expected to be a whole pixel position. See placeGlyph.
func (self *Renderer) loadGlyphMask(index sfnt.GlyphIndex, origin fract.Point) GlyphMask {
	if self.cacheHandler != nil {
		glyphMask, found := self.cacheHandler.GetMask(index)
		if found { return glyphMask }
	}

	segments, err := self.font.LoadGlyph(&self.buffer, index, fixed.Int26_6(self.size), nil)
	if err != nil { panic("font.LoadGlyph error: " + err.Error()) }
	alphaMask, err := mask.Rasterize(segments, self.rasterizer, origin)
	if err != nil { panic("glyph rasterization error: " + err.Error()) }

	glyphMask := convertAlphaImageToGlyphMask(alphaMask)
	if self.cacheHandler != nil { self.cacheHandler.PassMask(index, glyphMask) }
	return glyphMask
}

// Given the advance-inclusive line width so far, returns the pen
// position at which the given glyph must be drawn and the new line
// width after placing it. Kerning is applied when hasPrev is true.
//
// Pen positions are quantized to whole pixels, which is what keeps
// every glyph origin aligned to the pixel grid. The quantization
// commutes with whole pixel offsets, so widths predicted during
// wrapping match the positions used while drawing.
func (self *Renderer) placeGlyph(x fract.Unit, prev, curr sfnt.GlyphIndex, hasPrev bool) (fract.Unit, fract.Unit) {
	if hasPrev { x += self.fontSizer.Kern(self.font, &self.buffer, self.size, prev, curr) }
	x = x.HalfUp()
	return x, x + self.fontSizer.GlyphAdvance(self.font, &self.buffer, self.size, curr)
}

// Line height quantized upwards to a whole number of pixels.
func (self *Renderer) intLineHeight() int {
	return self.fontSizer.LineHeight(self.font, &self.buffer, self.size).ToIntCeil()
}

// Line advance quantized upwards to a whole number of pixels.
func (self *Renderer) intLineAdvance() int {
	return self.fontSizer.LineAdvance(self.font, &self.buffer, self.size).ToIntCeil()
}
