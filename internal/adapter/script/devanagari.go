// Package script holds the Devanagari character tables the analysis and
// search components share: rune class predicates, grapheme segmentation,
// canonical normalization, and the nasalization equivalence table.
//
// All tables are static. Input to every other package is expected to be
// NFC-normalized Devanagari; Normalize is the single entry point for
// that and must run before any codepoint offset is computed.
package script

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

const (
	Candrabindu = 'ँ' // ँ
	Anusvara    = 'ं' // ं
	Visarga     = 'ः' // ः
	Avagraha    = 'ऽ' // ऽ
	Virama      = '्' // ्
	Danda       = '।' // ।
	DoubleDanda = '॥' // ॥
)

// Normalize trims surrounding whitespace and applies Unicode NFC
// composition. Every public entry point of the engine calls this
// exactly once before computing codepoint offsets.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Graphemes splits s into extended grapheme clusters. A consonant with
// its dependent vowel sign (for example मे) is one cluster.
func Graphemes(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// GraphemeCount reports the number of extended grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// IsConsonant reports whether r is a Devanagari consonant letter,
// including the nukta-composed extensions.
func IsConsonant(r rune) bool {
	return (r >= 'क' && r <= 'ह') || (r >= 'क़' && r <= 'य़')
}

// IsIndependentVowel reports whether r is an independent vowel letter
// (अ आ इ ... औ, plus the vocalic ṛ/ḷ letters).
func IsIndependentVowel(r rune) bool {
	return (r >= 'ऄ' && r <= 'औ') || r == 'ॠ' || r == 'ॡ'
}

// IsVowelSign reports whether r is a dependent vowel sign (matra).
func IsVowelSign(r rune) bool {
	return (r >= 'ा' && r <= 'ौ') || r == 'ॢ' || r == 'ॣ'
}

// IsMark reports whether r is a phonological mark: a dependent vowel
// sign, virama, anusvara, visarga, or candrabindu. These are the marks
// the fuzzy-search boundary extension walks across.
func IsMark(r rune) bool {
	return IsVowelSign(r) || r == Virama || r == Anusvara || r == Visarga || r == Candrabindu
}

// IsWordBoundary reports whether r separates words: whitespace and
// punctuation, including the verse dandas. Avagraha is not a boundary;
// it attaches to the preceding word (देवोऽसुर...).
func IsWordBoundary(r rune) bool {
	if r == Avagraha {
		return false
	}
	return unicode.IsSpace(r) || unicode.IsPunct(r) || r == Danda || r == DoubleDanda
}

// HasExplicitFinalMark reports whether the final codepoint of s is an
// explicit phonological mark. A word without one ends in a bare
// consonant carrying the inherent a vowel.
func HasExplicitFinalMark(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return IsMark(runes[len(runes)-1])
}

// EndsInBareConsonant reports whether s ends in a consonant letter with
// no following mark, i.e. an inherent unmarked a vowel.
func EndsInBareConsonant(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	return IsConsonant(runes[len(runes)-1])
}
