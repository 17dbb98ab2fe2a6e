package cache

import "testing"

func TestDefaultCache(t *testing.T) {
	const millis200 = 200_000_000 // 200 milliseconds in ns

	masks := make([]GlyphMask, 10)
	for i := 0; i < 10; i++ {
		masks[i] = newEmptyGlyphMask(10, 10)
	}
	refSize := GlyphMaskByteSize(masks[0])

	cache := NewDefaultCache(int(refSize*8))
	if gotSize := cache.ApproxByteSize(); gotSize != 0 {
		t.Fatalf("expected %d, got %d", 0, gotSize)
	}
	if gotSize := cache.PeakSize(); gotSize != 0 {
		t.Fatalf("expected %d, got %d", 0, gotSize)
	}

	mask, found := cache.GetMask([3]uint64{0, 0, 1})
	if found { t.Fatal("didn't expect to find mask") }
	if mask != nil { t.Fatal("expected nil mask") }

	cache.PassMask([3]uint64{0, 0, 2}, masks[2])
	_, found = cache.GetMask([3]uint64{0, 0, 1})
	if found { t.Fatal("didn't expect to find mask") }

	mask, found = cache.GetMask([3]uint64{0, 0, 2})
	if !found { t.Fatal("expected to find mask") }
	if masks[2] != mask { t.Fatal("nonsensical mask") }

	if gotSize := cache.ApproxByteSize(); gotSize != int(refSize) {
		t.Fatalf("expected %d, got %d", refSize, gotSize)
	}

	// duplicated key passes must not change accounting
	cache.PassMask([3]uint64{0, 0, 2}, masks[2])
	if gotSize := cache.ApproxByteSize(); gotSize != int(refSize) {
		t.Fatalf("expected %d, got %d", refSize, gotSize)
	}

	// fill the cache up
	for i := 3; i < 10; i++ {
		if i <= 5 { testInstantNanosHack += millis200 } // keep additions apart
		cache.PassMask([3]uint64{0, 0, uint64(i)}, masks[i])
	}
	if gotSize := cache.ApproxByteSize(); gotSize != int(refSize*8) {
		t.Fatalf("expected %d, got %d", refSize*8, gotSize)
	}
	if gotSize := cache.PeakSize(); gotSize != int(refSize*8) {
		t.Fatalf("expected %d, got %d", refSize*8, gotSize)
	}

	// a mask bigger than the whole cache must be rejected
	bigCache := NewDefaultCache(int(constMaskSizeFactor))
	bigCache.PassMask([3]uint64{0, 0, 0}, newEmptyGlyphMask(64, 64))
	if gotSize := bigCache.ApproxByteSize(); gotSize != 0 {
		t.Fatalf("expected oversized mask rejection, cache at %d bytes", gotSize)
	}

	// eviction on a full cache: entries added long ago with a single
	// access are cold, so at least one new pass should make it in
	testInstantNanosHack += millis200*32
	cache.PassMask([3]uint64{1, 0, 0}, newEmptyGlyphMask(10, 10))
	_, found = cache.GetMask([3]uint64{1, 0, 0})
	if !found { t.Fatal("expected cold entry eviction to make room") }
}

func TestCacheEntryHotness(t *testing.T) {
	entry, instant := newCachedMaskEntry(newEmptyGlyphMask(10, 10))
	base := entry.Hotness(instant)
	entry.IncreaseAccessCount()
	if entry.Hotness(instant) <= base {
		t.Fatal("expected hotness to grow with accesses")
	}
	if entry.Hotness(instant + 100) >= entry.Hotness(instant + 1) {
		t.Fatal("expected hotness to decay with time")
	}
}
