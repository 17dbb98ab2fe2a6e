package ecap

import "github.com/tinne26/ecap/fract"

// Returns the dimensions of the given text with the current renderer
// configuration. Line feeds are taken into account.
//
// The widths of the returned rect are fractional, while the height is
// always a whole number of pixels matching what drawing operations
// would span: one line height for the first line, plus one line
// advance for each additional line.
//
// Operating with a nil font will panic.
func (self *Renderer) Measure(text string) fract.Rect {
	if self.font == nil { panic("can't measure text with a nil font (tip: Renderer.SetFont())") }
	return self.fractMeasure(text, fract.MaxUnit)
}

// Same as [Renderer.Measure](), but wrapping the text to the given
// width limit, in pixels. Negative width limits and width limits
// exceeding [fract.MaxInt] will panic.
func (self *Renderer) MeasureWithWrap(text string, widthLimit int) fract.Rect {
	if self.font == nil { panic("can't measure text with a nil font (tip: Renderer.SetFont())") }
	if widthLimit < 0 { panic("can't use a negative widthLimit") }
	if widthLimit > fract.MaxInt { panic("widthLimit exceeds fract.MaxInt") }
	return self.fractMeasure(text, fract.FromInt(widthLimit))
}

func (self *Renderer) fractMeasure(text string, widthLimit fract.Unit) fract.Rect {
	lines := self.wrapText(text, widthLimit)
	var maxWidth fract.Unit
	for _, line := range lines {
		if line.width > maxWidth { maxWidth = line.width }
	}
	height := self.intLineHeight() + (len(lines) - 1)*self.intLineAdvance()
	return fract.UnitsToRect(0, 0, maxWidth, fract.FromInt(height))
}
