package ecap

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"

// Draws the given text with the top-left corner of its first line
// placed at the given pixel coordinates. Line feeds are respected,
// but color annotations are not interpreted; for annotated text,
// see [Renderer.DrawFragment]().
//
// Operating with a nil font will panic.
func (self *Renderer) Draw(target TargetImage, text string, x, y int) {
	self.DrawFragment(target, Fragment{Text: text, Color: self.color}, x, y)
}

// Same as [Renderer.Draw](), but wrapping the text to the given width
// limit, in pixels. Negative width limits and width limits exceeding
// [fract.MaxInt] will panic.
func (self *Renderer) DrawWithWrap(target TargetImage, text string, x, y, widthLimit int) {
	self.DrawFragmentWithWrap(target, Fragment{Text: text, Color: self.color}, x, y, widthLimit)
}

// Draws the given fragment with the top-left corner of its first
// line placed at the given pixel coordinates. Each glyph is colored
// through [Fragment.ColorAt](), so color spans are honored. The
// renderer's own color is ignored in favor of the fragment's.
func (self *Renderer) DrawFragment(target TargetImage, fragment Fragment, x, y int) {
	if self.font == nil { panic("can't draw text with a nil font (tip: Renderer.SetFont())") }
	self.fractDrawFragment(target, fragment, x, y, fract.MaxUnit)
}

// Same as [Renderer.DrawFragment](), but wrapping the text to the
// given width limit, in pixels. Negative width limits and width
// limits exceeding [fract.MaxInt] will panic.
func (self *Renderer) DrawFragmentWithWrap(target TargetImage, fragment Fragment, x, y, widthLimit int) {
	if self.font == nil { panic("can't draw text with a nil font (tip: Renderer.SetFont())") }
	if widthLimit < 0 { panic("can't use a negative widthLimit") }
	if widthLimit > fract.MaxInt { panic("widthLimit exceeds fract.MaxInt") }
	self.fractDrawFragment(target, fragment, x, y, fract.FromInt(widthLimit))
}

func (self *Renderer) fractDrawFragment(target TargetImage, fragment Fragment, x, y int, widthLimit fract.Unit) {
	lines := self.wrapText(fragment.Text, widthLimit)
	ascent := self.fontSizer.Ascent(self.font, &self.buffer, self.size)
	lineAdvance := self.intLineAdvance()
	for n, line := range lines {
		var origin fract.Point
		origin.Y = (fract.FromInt(y + n*lineAdvance) + ascent).HalfUp()
		penX := fract.FromInt(x)
		runeIndex := line.runeStart
		var prevIndex sfnt.GlyphIndex
		hasPrev := false
		for _, codePoint := range fragment.Text[line.start : line.end] {
			glyphIndex := self.getGlyphIndex(codePoint)
			origin.X, penX = self.placeGlyph(penX, prevIndex, glyphIndex, hasPrev)
			glyphMask := self.loadGlyphMask(glyphIndex, origin)
			drawGlyphMask(target, glyphMask, origin, fragment.ColorAt(runeIndex))
			prevIndex, hasPrev = glyphIndex, true
			runeIndex += 1
		}
	}
}
