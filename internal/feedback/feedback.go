// internal/feedback/feedback.go
//
// Pure scoring of a guess against a target word.
// Responsibilities:
//   - Mark: per-letter result (hit/present/miss), numeric for fast compares.
//   - Pattern: the ordered marks for one guess.
//   - Score: the classic two-pass Wordle algorithm (consume-once rule).
//   - Text codec: the "gyx" notation used at the interactive boundary
//     (g = hit, y = present, x = miss).
//   - Key: base-3 integer encoding used as a partition-map key.
//
// Notes:
//   - Score is a total function over equal-length lowercase words; the only
//     error is a length mismatch.
//   - The two-pass rule is what keeps duplicate letters honest: an answer
//     letter is consumed by at most one hit or present mark.
package feedback

import (
	"encoding/json"
	"errors"
	"strings"
)

// Mark is the evaluation result for a single letter of a guess.
type Mark uint8

const (
	MarkMiss    Mark = 0 // letter does not occur in the (remaining) answer
	MarkPresent Mark = 1 // letter occurs in the answer, wrong position
	MarkHit     Mark = 2 // letter is correct and in the correct position
)

// Pattern is the ordered per-letter marks for one guess.
type Pattern []Mark

var (
	// ErrLengthMismatch is returned when guess and target lengths differ.
	ErrLengthMismatch = errors.New("feedback: guess and target lengths differ")

	// ErrBadPattern is returned for a malformed gyx response code.
	ErrBadPattern = errors.New("feedback: malformed response code")
)

// Score evaluates guess against target using the two-pass algorithm.
//
// Pass 1:
//   - Mark exact matches as hit.
//   - Count remaining (non-hit) target letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark miss.
//
// This ensures correct behavior with repeated letters in both target and
// guess: each target letter credits at most one mark.
func Score(guess, target string) (Pattern, error) {
	if len(guess) != len(target) {
		return nil, ErrLengthMismatch
	}
	n := len(guess)
	res := make(Pattern, n)

	// Letter frequency for the non-hit positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = MarkHit
		} else {
			counts[idx(target[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// idx maps a lowercase ASCII letter to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(b byte) int { return int(b) - 'a' }

// AllHit reports whether every mark is a hit (a winning guess).
func (p Pattern) AllHit() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// Equal reports whether two patterns are identical.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Key encodes the pattern as a base-3 integer. Patterns of the same word
// length map to distinct keys, which makes them cheap partition-map keys
// (3^5 = 243 for the standard game).
func (p Pattern) Key() int {
	k := 0
	for _, m := range p {
		k = k*3 + int(m)
	}
	return k
}

// String renders the pattern in gyx notation, e.g. "gxxyg".
func (p Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, m := range p {
		switch m {
		case MarkHit:
			b.WriteByte('g')
		case MarkPresent:
			b.WriteByte('y')
		default:
			b.WriteByte('x')
		}
	}
	return b.String()
}

// MarshalJSON encodes the pattern as its gyx string. Without this, a
// slice of uint8-kind marks would serialize as base64.
func (p Pattern) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}

// UnmarshalJSON decodes a gyx string of any length.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	q, err := Parse(s, len(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	*p = q
	return nil
}

// Parse decodes a gyx response code into a Pattern of length n.
// Input is case-insensitive and whitespace-trimmed; anything else is
// rejected so a typo never silently becomes a constraint.
func Parse(code string, n int) (Pattern, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) != n {
		return nil, ErrBadPattern
	}
	p := make(Pattern, n)
	for i := 0; i < n; i++ {
		switch code[i] {
		case 'g':
			p[i] = MarkHit
		case 'y':
			p[i] = MarkPresent
		case 'x':
			p[i] = MarkMiss
		default:
			return nil, ErrBadPattern
		}
	}
	return p, nil
}
