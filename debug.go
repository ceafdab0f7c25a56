package squares

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Scene debug flag so that code
// without a Scene pointer (the shape pool) can check it cheaply. Only valid
// with a single Scene.
var globalDebug bool

// debugf prints a prefixed diagnostic line to stderr.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[squares] "+format+"\n", args...)
}

// debugLog prints a frame's draw stats and pool occupancy to stderr.
func debugLog(stats FrameStats, pool PoolStats) {
	debugf("sprites: %d | flushes: %d | outlines: %d",
		stats.Sprites, stats.Flushes, stats.Outlines)
	debugf("shapes live: %d | free: %d | overflow: %d",
		pool.Live, pool.Free, pool.Overflow)
}
