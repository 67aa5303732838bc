package sandhi

import (
	"strings"

	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

// fusionRule records one fusion: Pair is the unfused two-codepoint
// source sequence, Fused the surface result it coalesces into.
type fusionRule struct {
	Fused string
	Pair  string
	ID    string
}

// defaultFusions covers the common vowel coalescences and a few
// consonant assimilations. Long-vowel sources get their own entries so
// both splits are generated.
var defaultFusions = []fusionRule{
	{Fused: "ा", Pair: "अअ", ID: "savarna-aa"},
	{Fused: "ा", Pair: "अआ", ID: "savarna-aa-long"},
	{Fused: "े", Pair: "अइ", ID: "guna-e"},
	{Fused: "े", Pair: "अई", ID: "guna-e-long"},
	{Fused: "ो", Pair: "अउ", ID: "guna-o"},
	{Fused: "ो", Pair: "अऊ", ID: "guna-o-long"},
	{Fused: "ै", Pair: "अए", ID: "vrddhi-ai"},
	{Fused: "ौ", Pair: "अओ", ID: "vrddhi-au"},
	{Fused: "च्च", Pair: "त्च", ID: "palatal-assimilation"},
	{Fused: "ज्ज", Pair: "त्ज", ID: "palatal-assimilation-voiced"},
	{Fused: "द्ध", Pair: "त्ध", ID: "aspirate-voicing"},
	{Fused: "न्न", Pair: "त्न", ID: "nasal-assimilation"},
}

// endingSub is a declared final-ending substitution; visarga alternates
// with ओ, र्, स् or disappears entirely depending on what follows.
type endingSub struct {
	From string
	To   string
	ID   string
}

var defaultEndingSubs = []endingSub{
	{From: "ः", To: "ो", ID: "visarga-o"},
	{From: "ः", To: "र्", ID: "visarga-r"},
	{From: "ः", To: "स्", ID: "visarga-s"},
	{From: "ः", To: "", ID: "visarga-elision"},
	{From: "ो", To: "ः", ID: "o-visarga"},
	{From: "र्", To: "ः", ID: "r-visarga"},
}

// Splitter generates compound-fusion variants of a query term.
type Splitter struct {
	fusions    []fusionRule
	endingSubs []endingSub
}

// NewSplitter returns a Splitter over the default fusion tables.
func NewSplitter() *Splitter {
	return &Splitter{fusions: defaultFusions, endingSubs: defaultEndingSubs}
}

// SplitVariants returns the term's fusion variants, identity variant
// first with rule identifier "original". Three strategies accumulate
// into one list: reversing a fusion wherever its result appears,
// applying declared ending substitutions, and applying the fusion table
// forward wherever an unfused source sequence appears mid-string.
// Results are deduplicated by exact text, first producer wins.
func (s *Splitter) SplitVariants(term string) []domain.Variant {
	t := script.Normalize(term)
	if t == "" {
		return nil
	}

	out := []domain.Variant{{Text: t, RuleID: "original"}}
	seen := map[string]struct{}{t: {}}
	add := func(text, ruleID string) {
		if text == "" {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		out = append(out, domain.Variant{Text: text, RuleID: ruleID})
	}

	// (1) reverse a fusion: result substring -> source pair.
	for _, f := range s.fusions {
		for _, i := range occurrences(t, f.Fused) {
			add(t[:i]+f.Pair+t[i+len(f.Fused):], "split-"+f.ID)
		}
	}

	// (2) declared ending substitutions.
	for _, sub := range s.endingSubs {
		if strings.HasSuffix(t, sub.From) {
			add(strings.TrimSuffix(t, sub.From)+sub.To, "ending-"+sub.ID)
		}
	}

	// (3) forward over the same table, for source sequences that
	// surface mid-string rather than at a boundary.
	for _, f := range s.fusions {
		for _, i := range occurrences(t, f.Pair) {
			add(t[:i]+f.Fused+t[i+len(f.Pair):], "fuse-"+f.ID)
		}
	}

	return out
}

// occurrences returns the byte offsets of every (possibly overlapping)
// occurrence of needle in hay.
func occurrences(hay, needle string) []int {
	if needle == "" {
		return nil
	}
	var out []int
	for from := 0; ; {
		i := strings.Index(hay[from:], needle)
		if i < 0 {
			return out
		}
		out = append(out, from+i)
		from += i + 1
	}
}
