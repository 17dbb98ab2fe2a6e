//go:build !gtxt

package ecap

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

var _ Overlay = (*TextureOverlay)(nil)

// The [Overlay] implementation used on regular builds, backed by an
// Ebitengine GPU texture. Call [TextureOverlay.Draw]() from your
// game's Draw to place the caption over the screen.
type TextureOverlay struct {
	name string
	texture *ebiten.Image
	textureWidth int
	textureHeight int
	width int // on-screen dimensions, often matching the texture
	height int
	horzDist int
	vertDist int
	horzAlign HorzAlign
	vertAlign VertAlign
	visible bool
}

// Creates a new [TextureOverlay] with the given name. Overlays start
// hidden and without a backing texture.
func NewTextureOverlay(name string) *TextureOverlay {
	return &TextureOverlay{name: name}
}

func newOverlay(name string) Overlay { return NewTextureOverlay(name) }

// Implements [Overlay].Name().
func (self *TextureOverlay) Name() string { return self.name }

// Implements [Overlay].Show().
func (self *TextureOverlay) Show() { self.visible = true }

// Implements [Overlay].Hide().
func (self *TextureOverlay) Hide() { self.visible = false }

// Implements [Overlay].IsVisible().
func (self *TextureOverlay) IsVisible() bool { return self.visible }

// Implements [Overlay].UpdateTextureSize(). The previous texture is
// disposed when a new one has to be created.
func (self *TextureOverlay) UpdateTextureSize(width, height int) {
	if width < 1 {
		Logger().Debug("overlay texture width clamped to one pixel", "overlay", self.name)
		width = 1
	}
	if height < 1 {
		Logger().Debug("overlay texture height clamped to one pixel", "overlay", self.name)
		height = 1
	}

	if self.texture != nil && self.textureWidth == width && self.textureHeight == height {
		return
	}
	if self.texture != nil { self.texture.Dispose() }
	self.texture = ebiten.NewImage(width, height)
	self.textureWidth, self.textureHeight = width, height
}

// Implements [Overlay].TextureWidth().
func (self *TextureOverlay) TextureWidth() int { return self.textureWidth }

// Implements [Overlay].TextureHeight().
func (self *TextureOverlay) TextureHeight() int { return self.textureHeight }

// Implements [Overlay].SetDimensions().
func (self *TextureOverlay) SetDimensions(width, height int) {
	self.width, self.height = width, height
}

// Implements [Overlay].SetPosition().
func (self *TextureOverlay) SetPosition(horzDist, vertDist int, horzAlign HorzAlign, vertAlign VertAlign) {
	self.horzDist, self.vertDist = horzDist, vertDist
	self.horzAlign, self.vertAlign = horzAlign, vertAlign
}

// Implements [Overlay].Acquire(). The background color is expected
// to be non-premultiplied.
func (self *TextureOverlay) Acquire(background color.RGBA) PixelBuffer {
	if self.texture == nil { panic("no overlay texture (tip: Overlay.UpdateTextureSize())") }
	self.texture.Fill(premultiply(background))
	return texturePixelBuffer{self.texture}
}

// The [PixelBuffer] counterpart of [TextureOverlay]. GPU textures
// are drawn in place, so Release has nothing left to commit.
type texturePixelBuffer struct { texture *ebiten.Image }

// Implements [PixelBuffer].Target().
func (self texturePixelBuffer) Target() TargetImage { return self.texture }

// Implements [PixelBuffer].Release().
func (self texturePixelBuffer) Release() {}

// Draws the overlay over the given screen, anchored as configured
// through [Overlay].SetPosition(). Hidden overlays and overlays
// without a texture draw nothing. The texture is scaled if the
// on-screen dimensions differ from the texture dimensions.
func (self *TextureOverlay) Draw(screen *ebiten.Image) {
	if !self.visible || self.texture == nil { return }

	bounds := screen.Bounds()
	var x, y int
	switch self.horzAlign {
	case Left: x = self.horzDist
	case HorzCenter: x = (bounds.Dx() - self.width)/2 + self.horzDist
	case Right: x = bounds.Dx() - self.width - self.horzDist
	}
	switch self.vertAlign {
	case Top: y = self.vertDist
	case VertCenter: y = (bounds.Dy() - self.height)/2 + self.vertDist
	case Bottom: y = bounds.Dy() - self.height - self.vertDist
	}

	opts := &ebiten.DrawImageOptions{}
	if self.width != self.textureWidth || self.height != self.textureHeight {
		scaleX := float64(self.width)/float64(self.textureWidth)
		scaleY := float64(self.height)/float64(self.textureHeight)
		opts.GeoM.Scale(scaleX, scaleY)
	}
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(self.texture, opts)
}
