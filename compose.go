package ecap

import "image/color"

import "github.com/tinne26/ecap/font"

// Re-composes the caption texture from the current configuration.
// The composition mirrors a fairly classic HUD text pipeline:
//   - Resize the overlay texture to the configured dimensions.
//   - Acquire the pixel buffer, which pre-fills it with the
//     background color.
//   - Draw the caption text twice, word-wrapped to the texture
//     width: first a single-color shadow offset by (1, 1), then the
//     main text with its inline color annotations honored.
//   - Release the buffer and commit the overlay's on-screen
//     dimensions.
//
// Release and the dimension commit are deferred so they run on every
// exit path. Panics are recovered and logged, leaving the previous
// texture content in place; the caller still clears the dirty flag,
// so a faulty configuration is not retried every tick.
func (self *Display) render() {
	defer func() {
		detail := recover()
		if detail == nil { return }
		Logger().Error("caption composition failed", "overlay", self.overlay.Name(), "detail", detail)
	}()

	self.overlay.UpdateTextureSize(int(self.config.TextureWidth), int(self.config.TextureHeight))
	width := self.overlay.TextureWidth()
	height := self.overlay.TextureHeight()
	defer self.overlay.SetDimensions(width, height)

	buffer := self.overlay.Acquire(self.config.Background)
	defer buffer.Release()
	target := buffer.Target()

	// font setup. a zero font size deliberately leaves the previous
	// renderer font and size untouched
	if self.config.FontSize != 0 {
		family := self.config.Font
		if family == "" {
			family = self.fallbackFamily()
		} else if !self.fonts.HasFamily(family) {
			Logger().Warn("caption font family not installed, using fallback",
				"overlay", self.overlay.Name(), "family", family)
			family = self.fallbackFamily()
		}
		self.renderer.SetFont(self.fonts.GetFont(family))
		self.renderer.SetSize(float64(self.config.FontSize))
	}

	if self.config.Text == "" { return } // background only
	if self.renderer.GetFont() == nil {
		Logger().Warn("caption display has no usable font, drawing background only",
			"overlay", self.overlay.Name())
		return
	}

	// captions draw bold, with boldness coming from extra stroke
	// width on the glyph masks
	penWidth := self.config.LineWidth
	if penWidth < 1 { penWidth = 1 }
	self.rasterizer.SetExtraWidth(float64(penWidth))

	text := ParseFragment(self.config.Text, self.config.Foreground)
	missing, err := font.GetMissingRunes(self.renderer.GetFont(), text.Text)
	if err == nil && len(missing) > 0 {
		Logger().Debug("caption text contains runes missing from the font",
			"overlay", self.overlay.Name(), "runes", string(missing))
	}

	shadowColor := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	if self.props.InvertShadow.Get() { shadowColor = color.RGBA{R: 255, G: 255, B: 255, A: 255} }
	shadow := Fragment{Text: text.Text, Color: withAlpha(shadowColor, self.config.Foreground.A)}

	textY := 0
	if self.props.AlignBottom.Get() {
		block := self.renderer.MeasureWithWrap(text.Text, width)
		textY = height - block.IntHeight()
	}

	self.renderer.DrawFragmentWithWrap(target, shadow, 1, textY + 1, width)
	self.renderer.DrawFragmentWithWrap(target, text, 0, textY, width)
}

// Returns the face used when a caption doesn't name a usable font
// family: the preferred default when installed, the library's first
// family otherwise.
func (self *Display) fallbackFamily() string {
	if self.fonts.HasFamily(defaultFontFamily) { return defaultFontFamily }
	families := self.fonts.Families()
	if len(families) == 0 { return "" }
	return families[0]
}
