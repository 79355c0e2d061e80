// internal/words/words.go
//
// Vocabulary loading and lookup.
//
// Responsibilities:
//   - Load a word list from an environment-provided file or fall back to the
//     embedded default list.
//   - Normalize (lowercase, trim), validate (fixed length, a–z only), and
//     deduplicate while preserving first-seen order.
//   - Expose an immutable Vocabulary handle shared read-only by the solver
//     and game engines.
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   one word per line, "#" lines ignored
//
// Constraints:
//   • All words have the same fixed length (5 by default).
//   • The Vocabulary is constructed once at startup and never mutated, so it
//     is safe to share across parallel benchmark episodes without locks.
package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"
)

// DefaultWordLen is the standard game's word length.
const DefaultWordLen = 5

//go:embed default_words.txt
var embeddedWords string

// Vocabulary is an immutable ordered set of unique, equal-length,
// lowercase words.
type Vocabulary struct {
	words   []string
	set     map[string]struct{}
	wordLen int
}

// ErrEmpty is returned when loading yields no valid words.
var ErrEmpty = errors.New("words: vocabulary is empty")

// Load builds the process vocabulary: WORDS_FILE if set, otherwise the
// embedded default list.
func Load() (*Vocabulary, error) {
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return LoadFile(path, DefaultWordLen)
	}
	return New(strings.Split(embeddedWords, "\n"), DefaultWordLen)
}

// LoadFile reads one word per line from path.
func LoadFile(path string, wordLen int) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, wordLen)
}

// Read builds a vocabulary from a line-per-word reader.
// Blank lines and "#" comment lines are skipped; malformed entries (wrong
// length, non-alphabetic) are dropped at load time.
func Read(r io.Reader, wordLen int) (*Vocabulary, error) {
	var list []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		list = append(list, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return New(list, wordLen)
}

// New normalizes, validates, and deduplicates list into a Vocabulary.
// First occurrence wins, so the input order is preserved; this keeps
// everything downstream (tie-breaks, benchmarks) deterministic.
func New(list []string, wordLen int) (*Vocabulary, error) {
	if wordLen <= 0 {
		return nil, fmt.Errorf("words: invalid word length %d", wordLen)
	}
	v := &Vocabulary{
		words:   make([]string, 0, len(list)),
		set:     make(map[string]struct{}, len(list)),
		wordLen: wordLen,
	}
	for _, raw := range list {
		w := strings.TrimSpace(strings.ToLower(raw))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if len(w) != wordLen || !isAlpha(w) {
			continue
		}
		if _, dup := v.set[w]; dup {
			continue
		}
		v.set[w] = struct{}{}
		v.words = append(v.words, w)
	}
	if len(v.words) == 0 {
		return nil, ErrEmpty
	}
	return v, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the ordered word list. The slice is shared and must be
// treated as read-only by callers.
func (v *Vocabulary) Words() []string { return v.words }

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// WordLen returns the fixed word length.
func (v *Vocabulary) WordLen() int { return v.wordLen }

// At returns the i-th word.
func (v *Vocabulary) At(i int) string { return v.words[i] }

// Contains reports whether w (case-insensitive) is in the vocabulary.
func (v *Vocabulary) Contains(w string) bool {
	_, ok := v.set[strings.ToLower(w)]
	return ok
}

// Random returns a cryptographically random word from the vocabulary.
func (v *Vocabulary) Random() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(v.words))))
	return v.words[nBig.Int64()]
}
