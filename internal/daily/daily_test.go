package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2024, 3, 1, 2, 0, 0, 0, loc) // still Feb 29 in UTC
	assert.Equal(t, "2024-02-29", DateKey(late))
}

func TestWordIndexDeterministicAndInRange(t *testing.T) {
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, n := range []int{1, 7, 2309} {
		a := WordIndex(day, "salt", n)
		b := WordIndex(day.Add(23*time.Hour), "salt", n)
		assert.Equal(t, a, b, "any moment of the same UTC day maps to the same index")
		assert.GreaterOrEqual(t, a, 0)
		assert.Less(t, a, n)
	}
}

func TestWordIndexVariesAcrossDays(t *testing.T) {
	// Not guaranteed for any single pair, but over a month of days a
	// constant index would mean the HMAC is being ignored.
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for i := 0; i < 30; i++ {
		seen[WordIndex(day.AddDate(0, 0, i), "salt", 2309)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestWordIndexEmptyVocabulary(t *testing.T) {
	assert.Zero(t, WordIndex(time.Now(), "salt", 0))
}
