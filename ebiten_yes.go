//go:build !gtxt

package ecap

import "image"
import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/tinne26/ecap/fract"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// A GlyphMask is the image that results from rasterizing a glyph.
//
// With Ebitengine, GlyphMask defaults to *ebiten.Image. Without
// Ebitengine (gtxt version), it defaults to [*image.Alpha], with
// the image bounds adjusted so the glyph can be drawn directly at
// its intended position (bounds.Min.Y is typically negative, with
// y = 0 corresponding to the glyph's baseline).
type GlyphMask = *ebiten.Image

// Draws the given glyph mask on the target with the origin standing
// at the baseline point. The color is applied as a straight alpha
// scaling, composited source-over.
func drawGlyphMask(target TargetImage, glyphMask GlyphMask, origin fract.Point, rgba color.RGBA) {
	if glyphMask == nil { return } // spaces and empty glyphs are nil

	srcRect := glyphMask.Bounds()
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(
		float64(origin.X.ToIntFloor() + srcRect.Min.X),
		float64(origin.Y.ToIntFloor() + srcRect.Min.Y),
	)
	opts.ColorM.Scale(
		float64(rgba.R)/255, float64(rgba.G)/255,
		float64(rgba.B)/255, float64(rgba.A)/255,
	)
	target.DrawImage(glyphMask, &opts)
}

// Helper function required when working with Ebitengine images.
func convertAlphaImageToGlyphMask(alpha *image.Alpha) GlyphMask {
	if alpha == nil { return nil }

	// NOTICE: since Ebitengine doesn't have good support for alpha
	//         images, glyph masks have to go through an RGBA copy.
	rgba   := image.NewRGBA(alpha.Rect)
	pixels := rgba.Pix
	index  := 0
	for _, value := range alpha.Pix {
		pixels[index + 0] = value
		pixels[index + 1] = value
		pixels[index + 2] = value
		pixels[index + 3] = value
		index += 4
	}
	opts := ebiten.NewImageFromImageOptions{ PreserveBounds: true }
	return ebiten.NewImageFromImageWithOptions(rgba, &opts)
}
