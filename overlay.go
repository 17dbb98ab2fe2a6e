package ecap

import "strconv"
import "image/color"

// An Overlay is a named rectangular texture that captions are
// composed onto, plus the positioning state needed to place that
// texture over a screen. The package provides [TextureOverlay] for
// Ebitengine builds and [SoftOverlay] for gtxt builds; [Display]
// values create one or the other on demand, so most programs only
// deal with this interface when drawing or testing.
//
// Overlays can't be used concurrently.
type Overlay interface {
	// Returns the overlay name, mostly relevant for logging.
	Name() string

	// Makes the overlay visible.
	Show()

	// Hides the overlay. Hidden overlays are not drawn, and displays
	// skip composing to them until they become visible again.
	Hide()

	// Returns whether the overlay is currently visible.
	IsVisible() bool

	// Resizes the overlay's backing texture. Dimensions are clamped
	// to a minimum of one pixel. The texture contents after resizing
	// are undefined until the next composition.
	UpdateTextureSize(width, height int)

	// Returns the current backing texture width, or zero if no
	// texture has been created yet.
	TextureWidth() int

	// Returns the current backing texture height, or zero if no
	// texture has been created yet.
	TextureHeight() int

	// Sets the on-screen dimensions of the overlay, in pixels.
	SetDimensions(width, height int)

	// Sets the on-screen position of the overlay. Distances are
	// measured in pixels from the screen edge or center selected
	// by each alignment.
	SetPosition(horzDist, vertDist int, horzAlign HorzAlign, vertAlign VertAlign)

	// Write-locks the backing texture, clears it with the given
	// background color and returns it as a scoped drawing buffer.
	// Acquiring an overlay without a texture will panic.
	Acquire(background color.RGBA) PixelBuffer
}

// The drawable surface of an [Overlay], obtained through
// [Overlay].Acquire(). Acquired buffers must be released exactly
// once, typically through defer, so that a panic while drawing can
// never leave the buffer locked.
type PixelBuffer interface {
	// Returns the surface to draw the caption onto.
	Target() TargetImage

	// Commits the drawn content back to the overlay and unlocks
	// the backing texture.
	Release()
}

var overlayCount int

// Returns a process-unique name for a new overlay. Not concurrency
// safe, like the displays that rely on it.
func nextOverlayName() string {
	name := "CaptionOverlay" + strconv.Itoa(overlayCount)
	overlayCount += 1
	return name
}
