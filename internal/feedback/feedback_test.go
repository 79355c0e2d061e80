package feedback

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSelfIsAllHit(t *testing.T) {
	for _, w := range []string{"crane", "angle", "saree", "aaaaa"} {
		p, err := Score(w, w)
		require.NoError(t, err)
		assert.True(t, p.AllHit(), "score(%q, %q) must be all-hit", w, w)
	}
}

func TestScoreTwoPass(t *testing.T) {
	tests := []struct {
		guess, target, want string
	}{
		// Exact positions consume the target letter first.
		{"apple", "angle", "gxxgg"},
		{"apple", "anger", "gxxxy"},
		{"apple", "angst", "gxxxx"},
		// Both E's of SPEED get credited: ERASE has two E's.
		{"speed", "erase", "yxyyx"},
		// Duplicate guess letters beyond the target's supply go to miss.
		{"sassy", "grass", "yyxgx"},
		// The naive positional check would mark the final N present.
		{"olden", "video", "yxggx"},
		{"crane", "crane", "ggggg"},
		{"aaaaa", "bbbbb", "xxxxx"},
	}
	for _, tt := range tests {
		p, err := Score(tt.guess, tt.target)
		require.NoError(t, err, "%s vs %s", tt.guess, tt.target)
		assert.Equal(t, tt.want, p.String(), "%s vs %s", tt.guess, tt.target)
	}
}

func TestScoreLengthMismatch(t *testing.T) {
	_, err := Score("apple", "pear")
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

// The total hit+present credit for any letter never exceeds that letter's
// count in the target.
func TestScoreNeverOvercreditsLetters(t *testing.T) {
	pairs := [][2]string{
		{"speed", "erase"}, {"eerie", "speed"}, {"sassy", "grass"},
		{"aabba", "ababa"}, {"lllll", "hello"},
	}
	for _, pair := range pairs {
		guess, target := pair[0], pair[1]
		p, err := Score(guess, target)
		require.NoError(t, err)
		require.Len(t, p, len(guess))

		credited := map[byte]int{}
		for i, m := range p {
			if m == MarkHit || m == MarkPresent {
				credited[guess[i]]++
			}
		}
		for c, n := range credited {
			assert.LessOrEqual(t, n, strings.Count(target, string(c)),
				"letter %q overcredited for %s vs %s", c, guess, target)
		}
	}
}

func TestParse(t *testing.T) {
	p, err := Parse(" GXxYg \n", 5)
	require.NoError(t, err)
	assert.Equal(t, "gxxyg", p.String())

	_, err = Parse("gxx", 5)
	assert.ErrorIs(t, err, ErrBadPattern)
	_, err = Parse("gxzyg", 5)
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestKeyDistinguishesPatterns(t *testing.T) {
	seen := map[int]string{}
	var walk func(prefix Pattern)
	walk = func(prefix Pattern) {
		if len(prefix) == 3 {
			p := make(Pattern, 3)
			copy(p, prefix)
			if prev, dup := seen[p.Key()]; dup {
				t.Fatalf("key collision: %s vs %s", prev, p)
			}
			seen[p.Key()] = p.String()
			return
		}
		for _, m := range []Mark{MarkMiss, MarkPresent, MarkHit} {
			walk(append(prefix, m))
		}
	}
	walk(Pattern{})
	assert.Len(t, seen, 27)
}

func TestPatternJSON(t *testing.T) {
	p, err := Score("apple", "angle")
	require.NoError(t, err)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"gxxgg"`, string(data))

	var q Pattern
	require.NoError(t, json.Unmarshal(data, &q))
	assert.True(t, p.Equal(q))
}
