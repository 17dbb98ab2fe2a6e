package mask

import "image"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"

var _ Rasterizer = (*FauxRasterizer)(nil)

// A [Rasterizer] that thickens glyphs by a configurable extra width,
// producing a faux-bold effect. Rasterization happens through an
// internal [DefaultRasterizer]; the resulting mask is then dilated
// horizontally, with fractional widths blending the last column in
// proportionally.
//
// Faux-bold is how caption pen widths are realized: one regular font
// face covers every stroke width, with the advances left untouched.
// Heavily emboldened text will look progressively tighter, so keep
// extra widths within a few pixels.
type FauxRasterizer struct {
	inner DefaultRasterizer
	extraWidth fract.Unit // always >= 0
	onChange func(Rasterizer)
}

// Sets the extra width to apply when rasterizing glyphs, in pixels.
// Fractional values are allowed. Values below zero are clamped to
// zero (no thickening).
func (self *FauxRasterizer) SetExtraWidth(extraWidth float64) {
	newWidth := fract.FromFloat64(extraWidth)
	if newWidth < 0 { newWidth = 0 }
	if newWidth == self.extraWidth { return }
	self.extraWidth = newWidth
	if self.onChange != nil { self.onChange(self) }
}

// Returns the current extra width, in pixels.
func (self *FauxRasterizer) GetExtraWidth() float64 {
	return self.extraWidth.ToFloat64()
}

// Satisfies the [Rasterizer] interface. The signature encodes the
// current extra width so caches never mix masks of different
// thicknesses.
func (self *FauxRasterizer) Signature() uint64 {
	return 0xFA<<56 | uint64(uint32(self.extraWidth))
}

// Satisfies the [Rasterizer] interface.
func (self *FauxRasterizer) SetOnChangeFunc(onChange func(Rasterizer)) {
	self.onChange = onChange
}

// Satisfies the [Rasterizer] interface.
func (self *FauxRasterizer) Rasterize(outline sfnt.Segments, origin fract.Point) (*image.Alpha, error) {
	base, err := self.inner.Rasterize(outline, origin)
	if err != nil || base == nil || self.extraWidth == 0 {
		return base, err
	}
	return dilateHorz(base, self.extraWidth), nil
}

// Horizontal max-dilation of an alpha mask. Whole pixels of extra
// width smear the mask at full strength; the remaining fraction
// contributes a proportionally weighted final column.
func dilateHorz(src *image.Alpha, extraWidth fract.Unit) *image.Alpha {
	whole := extraWidth.ToIntFloor()
	partial := uint32(extraWidth.FractShift()) // 0..63
	srcWidth, srcHeight := src.Rect.Dx(), src.Rect.Dy()
	outWidth := srcWidth + extraWidth.ToIntCeil()

	dst := image.NewAlpha(image.Rect(
		src.Rect.Min.X, src.Rect.Min.Y,
		src.Rect.Min.X + outWidth, src.Rect.Max.Y,
	))
	for y := 0; y < srcHeight; y++ {
		srcRow := src.Pix[y*src.Stride : y*src.Stride + srcWidth]
		dstRow := dst.Pix[y*dst.Stride : y*dst.Stride + outWidth]
		for x := 0; x < outWidth; x++ {
			var acc uint8
			for k := 0; k <= whole; k++ {
				sx := x - k
				if sx >= 0 && sx < srcWidth && srcRow[sx] > acc {
					acc = srcRow[sx]
				}
			}
			if partial > 0 {
				sx := x - whole - 1
				if sx >= 0 && sx < srcWidth {
					value := uint8((uint32(srcRow[sx])*partial) >> 6)
					if value > acc { acc = value }
				}
			}
			dstRow[x] = acc
		}
	}
	return dst
}
