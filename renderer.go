package ecap

import "math"
import "image/color"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"
import "github.com/tinne26/ecap/sizer"
import "github.com/tinne26/ecap/mask"
import "github.com/tinne26/ecap/cache"

// Renderer is the text drawing engine used to compose caption
// textures. [Display] values already create and drive their own
// renderer, so most programs never need to interact with this type
// directly, but it remains exported for manual composition and for
// testing custom rasterizers or sizers.
//
// Renderers have a font, a size, a color, a rasterizer, a sizer and
// an optional cache handler. Glyphs are always drawn at whole pixel
// positions; this keeps caption text crisp on low resolution
// textures and makes glyph mask caching trivially effective.
//
// Renderers can't be used concurrently.
type Renderer struct {
	font *sfnt.Font
	buffer sfnt.Buffer
	fontSizer sizer.Sizer
	rasterizer mask.Rasterizer
	cacheHandler cache.GlyphCacheHandler
	size fract.Unit
	color color.RGBA
	lines []wrappedLine // scratch buffer for wrapText
}

// Creates a new [Renderer] with the following defaults:
//   - Font: nil (must be set before measuring or drawing).
//   - Size: 14 pixels. Color: white.
//   - Sizer: [sizer.DefaultSizer]. Rasterizer: [mask.FauxRasterizer]
//     with no extra width.
//   - Cache handler: nil (no caching).
func NewRenderer() *Renderer {
	renderer := &Renderer{
		fontSizer: &sizer.DefaultSizer{},
		rasterizer: &mask.FauxRasterizer{},
		color: color.RGBA{255, 255, 255, 255},
	}
	renderer.SetSize(14)
	return renderer
}

// Sets the font to be used on subsequent operations. Passing nil
// unsets the font; measuring or drawing without a font will panic.
func (self *Renderer) SetFont(font *sfnt.Font) {
	if font == self.font { return }
	self.font = font
	if self.cacheHandler != nil { self.cacheHandler.NotifyFontChange(font) }
	if self.fontSizer != nil { self.fontSizer.NotifyChange(font, &self.buffer, self.size) }
}

// Returns the current font. The font is nil by default.
func (self *Renderer) GetFont() *sfnt.Font { return self.font }

// Sets the text size, in pixels. Sizes don't have to be whole
// numbers. Negative and non-finite values will panic, as will
// values exceeding [fract.MaxFloat64].
func (self *Renderer) SetSize(size float64) {
	if math.IsNaN(size) { panic("can't set a NaN size") }
	if math.IsInf(size, 0) { panic("can't set an infinite size") }
	if size < 0 { panic("can't set a negative size") }
	if size > fract.MaxFloat64 { panic("size exceeds fract.MaxFloat64") }

	newSize := fract.FromFloat64(size)
	if newSize == self.size { return }
	self.size = newSize
	if self.cacheHandler != nil { self.cacheHandler.NotifySizeChange(newSize) }
	if self.fontSizer != nil { self.fontSizer.NotifyChange(self.font, &self.buffer, newSize) }
}

// Returns the current text size, as a fixed point number of pixels.
func (self *Renderer) GetSize() fract.Unit { return self.size }

// Sets the color to be used as the base text color on subsequent
// drawing operations.
func (self *Renderer) SetColor(rgba color.RGBA) { self.color = rgba }

// Returns the current base text color.
func (self *Renderer) GetColor() color.RGBA { return self.color }

// Sets the sizer to be used on subsequent operations. Mostly relevant
// for adjusting line spacing, e.g. through [sizer.PaddedLineSizer].
func (self *Renderer) SetSizer(fontSizer sizer.Sizer) {
	if fontSizer == self.fontSizer { return }
	self.fontSizer = fontSizer
	if fontSizer != nil { fontSizer.NotifyChange(self.font, &self.buffer, self.size) }
}

// Returns the current sizer.
func (self *Renderer) GetSizer() sizer.Sizer { return self.fontSizer }

// Sets the rasterizer to be used on subsequent drawing operations.
func (self *Renderer) SetRasterizer(rasterizer mask.Rasterizer) {
	// unlink the previous rasterizer from the cache handler
	if self.rasterizer != nil { self.rasterizer.SetOnChangeFunc(nil) }

	// set and relink the new rasterizer
	self.rasterizer = rasterizer
	if rasterizer != nil {
		if self.cacheHandler == nil {
			rasterizer.SetOnChangeFunc(nil)
		} else {
			rasterizer.SetOnChangeFunc(self.cacheHandler.NotifyRasterizerChange)
			self.cacheHandler.NotifyRasterizerChange(rasterizer)
		}
	}
}

// Returns the current rasterizer.
func (self *Renderer) GetRasterizer() mask.Rasterizer { return self.rasterizer }

// Sets the glyph cache handler for the renderer. By default, no cache
// handler is used and glyph masks are rasterized again on every draw.
// Passing nil disables caching.
//
// The most common pattern is to create a [cache.DefaultCache] and
// link one of its handlers to the renderer:
//
//	glyphsCache := cache.NewDefaultCache(8*1024*1024) // 8MiB
//	renderer.SetCacheHandler(glyphsCache.NewHandler())
func (self *Renderer) SetCacheHandler(cacheHandler cache.GlyphCacheHandler) {
	self.cacheHandler = cacheHandler
	if cacheHandler == nil {
		if self.rasterizer != nil { self.rasterizer.SetOnChangeFunc(nil) }
		return
	}

	if self.rasterizer != nil {
		self.rasterizer.SetOnChangeFunc(cacheHandler.NotifyRasterizerChange)
		cacheHandler.NotifyRasterizerChange(self.rasterizer)
	}
	if self.font != nil { cacheHandler.NotifyFontChange(self.font) }
	cacheHandler.NotifySizeChange(self.size)
}
