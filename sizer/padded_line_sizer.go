package sizer

import . "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"

var _ Sizer = (*PaddedLineSizer)(nil)

// A [Sizer] that behaves like the default one, but with a configurable
// vertical padding value added to the line height and line advance.
// Multi-line captions read over busy backgrounds, so giving the lines
// some extra air is a common request.
type PaddedLineSizer struct {
	DefaultSizer
	padding fract.Unit
}

// Sets the configurable vertical line padding value.
func (self *PaddedLineSizer) SetPadding(value fract.Unit) {
	self.padding = value
}

// Returns the configurable vertical line padding value.
func (self *PaddedLineSizer) GetPadding() fract.Unit {
	return self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedLineSizer) LineHeight(font *Font, buffer *Buffer, size fract.Unit) fract.Unit {
	return self.DefaultSizer.LineHeight(font, buffer, size) + self.padding
}

// Satisfies the [Sizer] interface.
func (self *PaddedLineSizer) LineAdvance(font *Font, buffer *Buffer, size fract.Unit) fract.Unit {
	return self.DefaultSizer.LineAdvance(font, buffer, size) + self.padding
}
