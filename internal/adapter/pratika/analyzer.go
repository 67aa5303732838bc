// Package pratika decides whether a Devanagari text span is a pratika —
// a word fused with (or followed by) the quotation marker इति — and
// reconstructs the quoted stem.
//
// Classification is a total function: every input maps to an accepted or
// rejected analysis, never an error. The suffix-rule table is built once
// per Analyzer and read-only afterwards, so an Analyzer is safe for
// concurrent use.
package pratika

import (
	"strings"

	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

const (
	spaceIti      = " इति"
	standaloneIti = "इति"
)

// minStemGraphemes rejects reconstructions shorter than two grapheme
// clusters as likely false positives, trading recall for precision.
const minStemGraphemes = 2

// Analyzer classifies text spans against the ordered suffix-rule table.
type Analyzer struct {
	rules []SuffixRule
}

// NewAnalyzer returns an Analyzer over the default Devanagari rules.
func NewAnalyzer() *Analyzer {
	return &Analyzer{rules: DefaultRules()}
}

// Classify analyzes one text span. The input is trimmed and
// NFC-normalized before any rule is consulted.
func (a *Analyzer) Classify(text string) domain.PratikaAnalysis {
	t := script.Normalize(text)
	if t == "" {
		return reject(t, "empty input")
	}

	if strings.HasSuffix(t, spaceIti) {
		return a.classifyStandalone(t, strings.TrimSpace(strings.TrimSuffix(t, spaceIti)), "इति")
	}
	// इति with its independent vowel can also sit directly against the
	// quoted word (रामइति); no fusion took place, so the stem is the
	// plain prefix.
	if strings.HasSuffix(t, standaloneIti) && t != standaloneIti {
		return a.classifyStandalone(t, strings.TrimSuffix(t, standaloneIti), "इति")
	}
	if !hasGateSuffix(t) {
		return reject(t, "no iti-class ending")
	}
	return a.classifyFused(t)
}

func hasGateSuffix(t string) bool {
	for _, s := range gateSuffixes {
		if strings.HasSuffix(t, s) {
			return true
		}
	}
	return false
}

// classifyStandalone handles the unfused forms <word> इति and
// <word>इति. A word ending in an explicit vowel sign or a nasalization
// mark stands on its own before इति and is not treated as a pratika; a
// word ending in a bare consonant (inherent a) or in visarga/virama is.
func (a *Analyzer) classifyStandalone(t, word, ending string) domain.PratikaAnalysis {
	if word == "" {
		return reject(t, "standalone इति with no preceding word")
	}
	runes := []rune(word)
	last := runes[len(runes)-1]
	if script.IsVowelSign(last) || last == script.Anusvara || last == script.Candrabindu {
		return reject(t, "इति stands alone after a marked vowel; no fusion to undo")
	}
	if script.GraphemeCount(word) < minStemGraphemes {
		return reject(t, "reconstructed stem shorter than two graphemes")
	}
	return domain.PratikaAnalysis{
		OriginalText: t,
		IsPratika:    true,
		Stem:         word,
		RuleID:       SpaceItiRuleID,
		Description:  "word with inherent-a or consonantal ending quoted by a following इति",
		ItiEnding:    ending,
		Confidence:   SpaceItiConfidence,
	}
}

func (a *Analyzer) classifyFused(t string) domain.PratikaAnalysis {
	runes := []rune(t)
	for _, rule := range a.rules {
		if !strings.HasSuffix(t, rule.Match) {
			continue
		}
		if rule.Guard != nil && !rule.Guard(runes) {
			continue
		}
		strip := len([]rune(rule.Match))
		if strip >= len(runes) {
			return reject(t, "suffix consumes the whole word")
		}
		stem := script.Normalize(string(runes[:len(runes)-strip]) + rule.Append)
		if script.GraphemeCount(stem) < minStemGraphemes {
			return reject(t, "reconstructed stem shorter than two graphemes")
		}
		return domain.PratikaAnalysis{
			OriginalText: t,
			IsPratika:    true,
			Stem:         stem,
			RuleID:       rule.RuleID,
			Description:  rule.Description,
			ItiEnding:    rule.Match,
			Confidence:   rule.Confidence,
		}
	}

	// Generic fallback: strip exactly the 3-codepoint quotation cluster.
	if len(runes) <= 3 {
		return reject(t, "suffix consumes the whole word")
	}
	stem := script.Normalize(string(runes[:len(runes)-3]))
	if script.GraphemeCount(stem) < minStemGraphemes {
		return reject(t, "reconstructed stem shorter than two graphemes")
	}
	return domain.PratikaAnalysis{
		OriginalText: t,
		IsPratika:    true,
		Stem:         stem,
		RuleID:       GenericItiRuleID,
		Description:  "iti-class ending with no specific reconstruction rule",
		ItiEnding:    string(runes[len(runes)-3:]),
		Confidence:   GenericItiConfidence,
	}
}

func reject(t, why string) domain.PratikaAnalysis {
	return domain.PratikaAnalysis{
		OriginalText: t,
		IsPratika:    false,
		Description:  why,
		Confidence:   0,
	}
}
