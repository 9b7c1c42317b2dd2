package jobcoach

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

// HashContent computes the content hash used for posting deduplication.
// xxHash of the text, hex encoded. Storage and import must agree on this
// function for duplicate detection to work.
func HashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
