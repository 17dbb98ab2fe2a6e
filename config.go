package ecap

import "image/color"

// The authoritative rendering state of a [Display]. Inbound messages
// and user property edits both fold into a RenderConfig, and the
// compositor reads it back to produce the caption texture.
//
// Most programs never touch this type directly, but displays expose
// it through [Display.Config]() for inspection and testing.
type RenderConfig struct {
	Text string // may contain '\n' and inline color annotations
	Font string // font family; empty selects the library's default face
	FontSize uint // in pixels; 0 leaves the renderer's font setup untouched
	LineWidth uint // pen stroke width; floored to 1 when drawing
	TextureWidth uint
	TextureHeight uint
	HorzDistance uint
	VertDistance uint
	HorzAlign HorzAlign
	VertAlign VertAlign
	Foreground color.RGBA // non-premultiplied
	Background color.RGBA // non-premultiplied
}

// Returns the configuration of a fresh display: an empty white
// caption of size 14 over a fully transparent background, stroke
// width 2, zero-sized texture, anchored top-left with no offsets.
func newRenderConfig() RenderConfig {
	return RenderConfig{
		FontSize: 14,
		LineWidth: 2,
		Foreground: color.RGBA{255, 255, 255, 255},
	}
}
