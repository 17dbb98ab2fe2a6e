// The cache subpackage defines the [GlyphCacheHandler] interface used
// by the renderer and provides a default cache implementation.
//
// Since glyph rasterization is an expensive CPU process, caches are a
// vital part of any real-time text rendering pipeline. Caption overlays
// are a friendly case: they tend to use a single font at a single size,
// so even a small cache will usually fit every mask after the first
// render and turn later re-renders into pure blits.
//
// If you want a concrete reference for sizing, assume a 14px caption
// font with glyph masks around 11x11 on average and some 100 distinct
// glyphs across your messages; that's less than 64KiB under gtxt. The
// [DefaultCache.PeakSize]() method reports the real high-water mark so
// you can adjust the capacity to your actual traffic.
package cache
