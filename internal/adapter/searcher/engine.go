// Package searcher implements sandhi-aware search over a single
// Devanagari text, plus BM25 relevance ranking of corpus documents.
//
// A query whose final grapheme carries an explicit phonological marker
// is matched in precision mode: whole-word hits only, expanded across
// the script's nasalization equivalences. An unmarked query is matched
// in fuzzy mode: direct substring hits extended across trailing marks,
// plus sandhi-variant hits when enabled.
package searcher

import (
	"sort"
	"strings"
	"time"

	"pratika/internal/adapter/sandhi"
	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

// Config carries the recognized search options.
type Config struct {
	CaseSensitive bool
	ContextLength int
	EnableSandhi  bool
	MaxResults    int
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		CaseSensitive: false,
		ContextLength: 50,
		EnableSandhi:  true,
		MaxResults:    100,
	}
}

// Engine matches a query term against one text. All collaborators are
// immutable tables, so an Engine is safe for concurrent use and every
// search is pure.
type Engine struct {
	cfg      Config
	equiv    *script.EquivalenceTable
	splitter *sandhi.Splitter
	expander *sandhi.Expander
}

// New assembles an Engine.
func New(cfg Config, equiv *script.EquivalenceTable, splitter *sandhi.Splitter, expander *sandhi.Expander) *Engine {
	if cfg.ContextLength <= 0 {
		cfg.ContextLength = 50
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 100
	}
	return &Engine{cfg: cfg, equiv: equiv, splitter: splitter, expander: expander}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Search finds occurrences of term in text. Matches are deduplicated by
// (position, length) with the first-found occurrence winning, sorted
// ascending by position and capped to MaxResults. Empty input yields an
// empty result, never an error.
func (e *Engine) Search(term, text string) domain.SearchResult {
	t, runes, ok := e.prepare(term, text)
	if !ok {
		return emptyResult(t)
	}
	return e.finalize(t, runes, e.collect(t, runes))
}

// SearchWithPratikaGrahana unions the regular search with occurrences
// of the term's quotation variants, so a stem also finds its quoted
// (iti-suffixed) forms and vice versa.
func (e *Engine) SearchWithPratikaGrahana(term, text string) domain.SearchResult {
	t, runes, ok := e.prepare(term, text)
	if !ok {
		return emptyResult(t)
	}
	acc := e.collect(t, runes)
	for _, v := range e.expander.ExpandQuotationVariants(t) {
		vr := []rune(v.Text)
		for _, pos := range indexAll(runes, vr) {
			acc = append(acc, domain.Match{
				Position:     pos,
				Length:       len(vr),
				Type:         domain.MatchPratikaGrahana,
				SourceRuleID: v.RuleID,
				OriginalTerm: t,
			})
		}
	}
	return e.finalize(t, runes, acc)
}

func (e *Engine) prepare(term, text string) (string, []rune, bool) {
	t := script.Normalize(term)
	x := script.Normalize(text)
	if !e.cfg.CaseSensitive {
		t = strings.ToLower(t)
		x = strings.ToLower(x)
	}
	if t == "" || x == "" {
		return t, nil, false
	}
	return t, []rune(x), true
}

func (e *Engine) collect(term string, runes []rune) []domain.Match {
	if script.HasExplicitFinalMark(term) {
		return e.collectPrecision(term, runes)
	}
	return e.collectFuzzy(term, runes)
}

// collectPrecision matches whole words only, across the nasalization
// equivalence variants of the term.
func (e *Engine) collectPrecision(term string, runes []rune) []domain.Match {
	var acc []domain.Match
	for _, v := range e.equiv.NasalizationVariants(term) {
		vr := []rune(v)
		for _, pos := range indexAll(runes, vr) {
			if !wordBounded(runes, pos, pos+len(vr)) {
				continue
			}
			acc = append(acc, domain.Match{
				Position:     pos,
				Length:       len(vr),
				Type:         domain.MatchExact,
				OriginalTerm: term,
			})
		}
	}
	return acc
}

// collectFuzzy matches the unmarked term as a substring, extending each
// hit rightward across phonological marks so a bare stem also captures
// its marked surface forms (देव matches देवो). Sandhi variants follow
// when enabled.
func (e *Engine) collectFuzzy(term string, runes []rune) []domain.Match {
	tr := []rune(term)
	var acc []domain.Match
	for _, pos := range indexAll(runes, tr) {
		end := pos + len(tr)
		for end < len(runes) && script.IsMark(runes[end]) {
			end++
		}
		acc = append(acc, domain.Match{
			Position:     pos,
			Length:       end - pos,
			Type:         domain.MatchDirect,
			OriginalTerm: term,
		})
	}
	if !e.cfg.EnableSandhi {
		return acc
	}
	for _, v := range e.splitter.SplitVariants(term) {
		if v.RuleID == "original" {
			continue
		}
		vr := []rune(v.Text)
		for _, pos := range indexAll(runes, vr) {
			acc = append(acc, domain.Match{
				Position:     pos,
				Length:       len(vr),
				Type:         domain.MatchSandhi,
				SourceRuleID: v.RuleID,
				OriginalTerm: term,
			})
		}
	}
	return acc
}

// finalize deduplicates by (position, length) keeping the first-found
// match, sorts ascending by position, caps to MaxResults and fills in
// matched text and context.
func (e *Engine) finalize(term string, runes []rune, acc []domain.Match) domain.SearchResult {
	type key struct{ pos, length int }
	seen := make(map[key]struct{}, len(acc))
	deduped := acc[:0]
	for _, m := range acc {
		k := key{m.Position, m.Length}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		deduped = append(deduped, m)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Position < deduped[j].Position
	})
	if len(deduped) > e.cfg.MaxResults {
		deduped = deduped[:e.cfg.MaxResults]
	}
	if deduped == nil {
		deduped = []domain.Match{}
	}
	for i := range deduped {
		deduped[i].MatchedText = string(runes[deduped[i].Position : deduped[i].Position+deduped[i].Length])
		deduped[i].Context = e.context(runes, deduped[i].Position, deduped[i].Length)
	}
	return domain.SearchResult{
		Matches:    deduped,
		Count:      len(deduped),
		SearchTerm: term,
		Timestamp:  time.Now(),
	}
}

func (e *Engine) context(runes []rune, pos, length int) string {
	start := pos - e.cfg.ContextLength
	if start < 0 {
		start = 0
	}
	end := pos + length + e.cfg.ContextLength
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}

func emptyResult(term string) domain.SearchResult {
	return domain.SearchResult{
		Matches:    []domain.Match{},
		Count:      0,
		SearchTerm: term,
		Timestamp:  time.Now(),
	}
}

// indexAll returns the codepoint offsets of every occurrence of needle
// in hay, including overlapping ones.
func indexAll(hay, needle []rune) []int {
	if len(needle) == 0 || len(needle) > len(hay) {
		return nil
	}
	var out []int
	for i := 0; i+len(needle) <= len(hay); i++ {
		matched := true
		for j := range needle {
			if hay[i+j] != needle[j] {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, i)
		}
	}
	return out
}

func wordBounded(runes []rune, start, end int) bool {
	if start > 0 && !script.IsWordBoundary(runes[start-1]) {
		return false
	}
	if end < len(runes) && !script.IsWordBoundary(runes[end]) {
		return false
	}
	return true
}
