package sandhi

import (
	"strings"

	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

// quotationCore is the cluster every fused iti-form ends with; terms
// already carrying it are not suffixed a second time.
const quotationCore = "ति"

// Expander produces quotation variants of a term in both directions:
// reading the term as an already iti-suffixed form (reverse) and as a
// bare stem to be suffixed (forward).
type Expander struct {
	endings *EndingMap
}

// NewExpander returns an Expander over the given correspondence map.
func NewExpander(endings *EndingMap) *Expander {
	return &Expander{endings: endings}
}

// ExpandQuotationVariants generates every string obtainable from the
// correspondence map. All matching reverse suffixes contribute — the
// walk never stops at the first hit, since a short suffix and a longer
// one may both coincidentally match. Variants are deduplicated by text,
// first rule wins; the term itself is never included. Each variant's
// rule identifier is "<matched-ending>-><produced-ending>".
func (e *Expander) ExpandQuotationVariants(term string) []domain.Variant {
	t := script.Normalize(term)
	if t == "" {
		return nil
	}

	var out []domain.Variant
	seen := map[string]struct{}{t: {}}
	add := func(text, ruleID string) {
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		out = append(out, domain.Variant{Text: text, RuleID: ruleID})
	}

	runes := []rune(t)

	// (a) term as iti-suffixed form: substitute each base ending for
	// every suffix the term ends with.
	for _, suffix := range e.endings.Suffixes() {
		if !strings.HasSuffix(t, suffix) {
			continue
		}
		sl := len([]rune(suffix))
		if sl >= len(runes) {
			continue
		}
		base := string(runes[:len(runes)-sl])
		for _, ending := range e.endings.Reverse(suffix) {
			add(base+ending, suffix+"->"+ending)
		}
	}

	// (b) term as bare stem: fuse each matching base ending into its
	// iti-suffix. Skipped entirely for terms already in quoted shape.
	if strings.HasSuffix(t, quotationCore) {
		return out
	}
	for _, key := range e.endings.ForwardKeys() {
		suffix, _ := e.endings.Forward(key)
		if key == "" {
			// Bare-consonant stems (inherent a) take the suffix directly.
			if script.EndsInBareConsonant(t) {
				add(t+suffix, "->"+suffix)
			}
			continue
		}
		if !strings.HasSuffix(t, key) {
			continue
		}
		kl := len([]rune(key))
		if kl >= len(runes) {
			continue
		}
		add(string(runes[:len(runes)-kl])+suffix, key+"->"+suffix)
	}

	return out
}
