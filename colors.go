package ecap

import "image/color"

// A color with all four channels expressed as floats in [0, 1].
// This is the color encoding used by caption [Message] values;
// configuration state and drawing use [color.RGBA] instead.
type ColorF struct {
	R float64
	G float64
	B float64
	A float64
}

// Converts the color to a [color.RGBA], mapping each channel from
// [0, 1] to [0, 255] by multiplying by 255 and truncating. Channels
// outside [0, 1] are clamped first.
func (self ColorF) ToRGBA() color.RGBA {
	return color.RGBA{
		R: channelToByte(self.R),
		G: channelToByte(self.G),
		B: channelToByte(self.B),
		A: channelToByte(self.A),
	}
}

func channelToByte(channel float64) uint8 {
	value := channel*255
	if value >= 255 { return 255 }
	if value <= 0 { return 0 }
	return uint8(value)
}

// Returns a copy of the given color with the alpha channel replaced.
// Colors are value types in this package, so channel updates always
// build a new value instead of mutating shared state.
func withAlpha(rgba color.RGBA, alpha uint8) color.RGBA {
	rgba.A = alpha
	return rgba
}

// Converts a non-premultiplied color to its alpha-premultiplied form.
// Caption colors stay non-premultiplied throughout the configuration
// pipeline; overlays premultiply right before filling their textures.
func premultiply(rgba color.RGBA) color.RGBA {
	if rgba.A == 255 { return rgba }
	rgba.R = uint8((uint32(rgba.R)*uint32(rgba.A))/255)
	rgba.G = uint8((uint32(rgba.G)*uint32(rgba.A))/255)
	rgba.B = uint8((uint32(rgba.B)*uint32(rgba.A))/255)
	return rgba
}
