// internal/daily/daily.go
//
// Deterministic daily-secret selection: every process configured with the
// same salt derives the same vocabulary index for the same UTC date, with
// no coordination and nothing persisted.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using
// HMAC(salt, YYYY-MM-DD) % vocabLen.
func WordIndex(date time.Time, salt string, vocabLen int) int {
	if vocabLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// First 8 bytes as uint64 for the modulus distribution.
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(vocabLen))
}
