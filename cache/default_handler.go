package cache

import "unsafe"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/ecap/fract"
import "github.com/tinne26/ecap/mask"

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// A default implementation of [GlyphCacheHandler].
//
// The cache key packs the font pointer, the rasterizer signature and
// a third word combining size, fractional position and glyph index.
type DefaultCacheHandler struct {
	cache *DefaultCache
	activeKey [3]uint64
}

// Implements [GlyphCacheHandler].NotifyFontChange(...)
func (self *DefaultCacheHandler) NotifyFontChange(font *sfnt.Font) {
	self.activeKey[0] = uint64(uintptr(unsafe.Pointer(font)))
}

// Implements [GlyphCacheHandler].NotifyRasterizerChange(...)
func (self *DefaultCacheHandler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.activeKey[1] = rasterizer.Signature()
}

// Implements [GlyphCacheHandler].NotifySizeChange(...)
func (self *DefaultCacheHandler) NotifySizeChange(size fract.Unit) {
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0xFFFFFFFF00000000)) | (uint64(uint32(size)) << 32)
}

// Implements [GlyphCacheHandler].NotifyFractChange(...)
func (self *DefaultCacheHandler) NotifyFractChange(position fract.Point) {
	bits := uint64(position.Y.FractShift()) << 16
	bits |= uint64(position.X.FractShift()) << 22
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000000FFF0000)) | bits
}

// Implements [GlyphCacheHandler].GetMask(...)
func (self *DefaultCacheHandler) GetMask(index sfnt.GlyphIndex) (GlyphMask, bool) {
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000000000FFFF)) | uint64(index)
	return self.cache.GetMask(self.activeKey)
}

// Implements [GlyphCacheHandler].PassMask(...)
func (self *DefaultCacheHandler) PassMask(index sfnt.GlyphIndex, mask GlyphMask) {
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000000000FFFF)) | uint64(index)
	self.cache.PassMask(self.activeKey, mask)
}

// Provides access to [DefaultCache.ApproxByteSize]().
func (self *DefaultCacheHandler) ApproxCacheByteSize() int {
	return self.cache.ApproxByteSize()
}

// Provides access to [DefaultCache.PeakSize]().
func (self *DefaultCacheHandler) PeakCacheSize() int {
	return self.cache.PeakSize()
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
