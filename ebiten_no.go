//go:build gtxt

package ecap

import "image"
import "image/color"
import "image/draw"

import "github.com/tinne26/ecap/fract"

type TargetImage = draw.Image
type GlyphMask = *image.Alpha

// This doesn't do anything in gtxt, only Ebitengine needs it.
func convertAlphaImageToGlyphMask(alpha *image.Alpha) GlyphMask { return alpha }

// Draws the given glyph mask on the target with the origin standing
// at the baseline point. The color is treated as straight alpha and
// composited source-over, the only blending captions need.
func drawGlyphMask(target TargetImage, glyphMask GlyphMask, origin fract.Point, rgba color.RGBA) {
	if glyphMask == nil { return } // spaces and empty glyphs are nil

	// compute src and target rects within bounds
	targetBounds := target.Bounds()
	srcRect := glyphMask.Rect
	shift := image.Pt(origin.X.ToIntFloor(), origin.Y.ToIntFloor())
	targetRect := targetBounds.Intersect(srcRect.Add(shift))
	if targetRect.Empty() { return }
	shift.X, shift.Y = -shift.X, -shift.Y
	srcRect = targetRect.Add(shift)

	width, height := srcRect.Dx(), srcRect.Dy()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			level := glyphMask.AlphaAt(srcRect.Min.X + x, srcRect.Min.Y + y).A
			if level == 0 { continue }
			alpha := (uint32(rgba.A)*uint32(level))/255
			newColor := color.NRGBA{ rgba.R, rgba.G, rgba.B, uint8(alpha) }
			currColor := target.At(targetRect.Min.X + x, targetRect.Min.Y + y)
			target.Set(targetRect.Min.X + x, targetRect.Min.Y + y, blendOver(newColor, currColor))
		}
	}
}

// Source-over blending on premultiplied 16-bit channels.
func blendOver(new, curr color.Color) color.Color {
	nr, ng, nb, na := new.RGBA()
	if na == 0xFFFF { return new }
	if na == 0      { return curr }
	cr, cg, cb, ca := curr.RGBA()
	if ca == 0      { return new }

	return color.RGBA64{
		R: uint16N((nr*0xFFFF + cr*(0xFFFF - na))/0xFFFF),
		G: uint16N((ng*0xFFFF + cg*(0xFFFF - na))/0xFFFF),
		B: uint16N((nb*0xFFFF + cb*(0xFFFF - na))/0xFFFF),
		A: uint16N((na*0xFFFF + ca*(0xFFFF - na))/0xFFFF),
	}
}

func uint16N(value uint32) uint16 {
	if value > 65535 { return 65535 }
	return uint16(value)
}
