package cache

import "testing"

import "github.com/tinne26/ecap/fract"
import "github.com/tinne26/ecap/mask"

func TestDefaultHandler(t *testing.T) {
	rast := mask.DefaultRasterizer{}
	cache := NewDefaultCache(16*1024*1024)
	handler := cache.NewHandler()
	handler.NotifyFontChange(nil)
	handler.NotifyRasterizerChange(&rast)
	handler.NotifySizeChange(12 << 6)
	handler.NotifyFractChange(fract.Point{ X: 1, Y: 1 })

	if handler.Cache() != cache {
		t.Fatal("expected handler to expose its cache")
	}
	if handler.ApproxCacheByteSize() != 0 {
		t.Fatal("no mask yet, size != 0")
	}
	if GlyphMaskByteSize(nil) != constMaskSizeFactor {
		t.Fatal("assumptions")
	}

	_, found := handler.GetMask(9)
	if found { t.Fatal("no mask in the cache") }
	handler.PassMask(9, nil)
	cachedMask, found := handler.GetMask(9)
	if !found { t.Fatal("expected cached nil mask") }
	if cachedMask != nil { t.Fatal("expected nil mask") }

	// a different glyph index must miss
	_, found = handler.GetMask(10)
	if found { t.Fatal("unexpected mask") }

	// a different fractional position must miss too
	handler.NotifyFractChange(fract.Point{ X: 32, Y: 0 })
	_, found = handler.GetMask(9)
	if found { t.Fatal("expected fract position miss") }

	// restoring the original config must hit again
	handler.NotifyFractChange(fract.Point{ X: 1, Y: 1 })
	_, found = handler.GetMask(9)
	if !found { t.Fatal("expected hit after config restore") }

	// size changes must also change the key
	handler.NotifySizeChange(14 << 6)
	_, found = handler.GetMask(9)
	if found { t.Fatal("expected size miss") }

	if handler.PeakCacheSize() != handler.ApproxCacheByteSize() {
		t.Fatal("peak must match size while the cache only grows")
	}
}
