package utils

import (
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"time"
)

// NewID returns a compact unique identifier: an optional prefix, the current
// unix-millisecond timestamp in base 36 and 8 hex characters of random data.
// Example: "b_m1x2abcd_9f3c21aa". The timestamp keeps ids roughly sortable
// by creation time.
func NewID(prefix string) string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// system RNG failure; the timestamp component still differentiates ids
		buf = []byte{0, 0, 0, 0}
	}
	id := ts + "_" + hex.EncodeToString(buf)
	if prefix != "" {
		return prefix + "_" + id
	}
	return id
}
