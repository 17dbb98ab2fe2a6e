package cache

import "time"
import "sync/atomic"

// Reference instant for cache entry timestamps. Entry instants are
// only meaningful relative to each other within a single run.
var cacheStartInstant = time.Now()

// Allows tests to advance the cache clock without time.Sleep calls.
var testInstantNanosHack int64

// A time instant derived from the monotonic clock, with some arbitrary
// downscaling applied (close to converting nanoseconds to hundredths
// of seconds).
func cacheEntryInstant() uint32 {
	nanos := int64(time.Since(cacheStartInstant)) + testInstantNanosHack
	return uint32(nanos >> 27)
}

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask GlyphMask // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Creates a new cached mask entry for the given GlyphMask.
func newCachedMaskEntry(mask GlyphMask) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry {
		Mask: mask,
		ByteSize: GlyphMaskByteSize(mask),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
