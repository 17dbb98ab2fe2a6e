//go:build gtxt

package ecap

import "image"
import "image/color"

var _ Overlay = (*SoftOverlay)(nil)

// The [Overlay] implementation used on gtxt builds, backed by plain
// CPU images. Compositions become visible through
// [SoftOverlay.Committed]() only after the acquired buffer has been
// released, mimicking the upload step of a GPU texture.
type SoftOverlay struct {
	name string
	committed *image.RGBA
	working *image.RGBA
	width int // on-screen dimensions, often matching the texture
	height int
	horzDist int
	vertDist int
	horzAlign HorzAlign
	vertAlign VertAlign
	visible bool
}

// Creates a new [SoftOverlay] with the given name. Overlays start
// hidden and without a backing texture.
func NewSoftOverlay(name string) *SoftOverlay {
	return &SoftOverlay{name: name}
}

func newOverlay(name string) Overlay { return NewSoftOverlay(name) }

// Implements [Overlay].Name().
func (self *SoftOverlay) Name() string { return self.name }

// Implements [Overlay].Show().
func (self *SoftOverlay) Show() { self.visible = true }

// Implements [Overlay].Hide().
func (self *SoftOverlay) Hide() { self.visible = false }

// Implements [Overlay].IsVisible().
func (self *SoftOverlay) IsVisible() bool { return self.visible }

// Implements [Overlay].UpdateTextureSize().
func (self *SoftOverlay) UpdateTextureSize(width, height int) {
	if width < 1 {
		Logger().Debug("overlay texture width clamped to one pixel", "overlay", self.name)
		width = 1
	}
	if height < 1 {
		Logger().Debug("overlay texture height clamped to one pixel", "overlay", self.name)
		height = 1
	}

	if self.working != nil && self.working.Rect.Dx() == width && self.working.Rect.Dy() == height {
		return
	}
	rect := image.Rect(0, 0, width, height)
	self.working = image.NewRGBA(rect)
	self.committed = image.NewRGBA(rect)
}

// Implements [Overlay].TextureWidth().
func (self *SoftOverlay) TextureWidth() int {
	if self.working == nil { return 0 }
	return self.working.Rect.Dx()
}

// Implements [Overlay].TextureHeight().
func (self *SoftOverlay) TextureHeight() int {
	if self.working == nil { return 0 }
	return self.working.Rect.Dy()
}

// Implements [Overlay].SetDimensions().
func (self *SoftOverlay) SetDimensions(width, height int) {
	self.width, self.height = width, height
}

// Implements [Overlay].SetPosition().
func (self *SoftOverlay) SetPosition(horzDist, vertDist int, horzAlign HorzAlign, vertAlign VertAlign) {
	self.horzDist, self.vertDist = horzDist, vertDist
	self.horzAlign, self.vertAlign = horzAlign, vertAlign
}

// Implements [Overlay].Acquire(). The background color is expected
// to be non-premultiplied.
func (self *SoftOverlay) Acquire(background color.RGBA) PixelBuffer {
	if self.working == nil { panic("no overlay texture (tip: Overlay.UpdateTextureSize())") }
	rgba := premultiply(background)
	pix := self.working.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i + 0] = rgba.R
		pix[i + 1] = rgba.G
		pix[i + 2] = rgba.B
		pix[i + 3] = rgba.A
	}
	return softPixelBuffer{self}
}

// The [PixelBuffer] counterpart of [SoftOverlay]. Release commits
// the working image by swapping it with the committed one.
type softPixelBuffer struct { overlay *SoftOverlay }

// Implements [PixelBuffer].Target().
func (self softPixelBuffer) Target() TargetImage { return self.overlay.working }

// Implements [PixelBuffer].Release().
func (self softPixelBuffer) Release() {
	self.overlay.committed, self.overlay.working = self.overlay.working, self.overlay.committed
}

// Returns the last committed composition, or nil if no texture has
// been created yet. The returned image must not be modified.
func (self *SoftOverlay) Committed() *image.RGBA { return self.committed }
