package searcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratika/internal/adapter/sandhi"
	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

func newTestEngine(cfg Config) *Engine {
	return New(cfg, script.Devanagari(), sandhi.NewSplitter(),
		sandhi.NewExpander(sandhi.DefaultEndingMap()))
}

func TestNewClampsZeroConfig(t *testing.T) {
	e := newTestEngine(Config{})
	assert.Equal(t, 50, e.Config().ContextLength)
	assert.Equal(t, 100, e.Config().MaxResults)
}

func TestFuzzyExtendsAcrossMarks(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	got := e.Search("देव", "देवोऽसुरेभ्यो बलमददात्")
	require.Equal(t, 1, got.Count)
	m := got.Matches[0]
	assert.Equal(t, 0, m.Position)
	assert.Equal(t, "देवो", m.MatchedText, "trailing mark is captured")
	assert.Equal(t, domain.MatchDirect, m.Type)
	assert.Equal(t, "देव", m.OriginalTerm)
}

func TestPrecisionWholeWordsOnly(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	// देवः never occurs as a whole word here; precision mode must not
	// fall back to substring matching.
	got := e.Search("देवः", "देवोऽसुरेभ्यो बलमददात्")
	assert.Equal(t, 0, got.Count)
	assert.NotNil(t, got.Matches)

	got = e.Search("देवः", "स देवः बलमददात्")
	require.Equal(t, 1, got.Count)
	assert.Equal(t, domain.MatchExact, got.Matches[0].Type)
	assert.Equal(t, "देवः", got.Matches[0].MatchedText)
}

func TestPrecisionNasalizationVariants(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	// अन्तः and अंतः are the same word at the sign level.
	got := e.Search("अन्तः", "स अंतः गतः")
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "अंतः", got.Matches[0].MatchedText)
	assert.Equal(t, domain.MatchExact, got.Matches[0].Type)
}

func TestPrecisionRejectsEmbeddedHit(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	got := e.Search("तत्", "तत्त्वमसि")
	assert.Equal(t, 0, got.Count, "word-internal occurrence is not word-bounded")
}

func TestFuzzySandhiVariants(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	cfg := DefaultConfig()
	cfg.EnableSandhi = false
	eOff := newTestEngine(cfg)
	gotOff := eOff.Search("देव", "दअइवम्")
	assert.Equal(t, 0, gotOff.Count)

	gotOn := e.Search("देव", "दअइवम्")
	require.Equal(t, 1, gotOn.Count)
	assert.Equal(t, domain.MatchSandhi, gotOn.Matches[0].Type)
	assert.Equal(t, "split-guna-e", gotOn.Matches[0].SourceRuleID)
}

func TestSearchOrderingAndCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResults = 2
	e := newTestEngine(cfg)

	got := e.Search("न", "न न न न")
	require.Equal(t, 2, got.Count, "capped to MaxResults")
	assert.Equal(t, 0, got.Matches[0].Position)
	assert.Equal(t, 2, got.Matches[1].Position)
	for i := 1; i < len(got.Matches); i++ {
		assert.Less(t, got.Matches[i-1].Position, got.Matches[i].Position)
	}
}

func TestSearchEmptyInputs(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	for _, tc := range []struct{ term, text string }{
		{"", "राम"},
		{"राम", ""},
		{"", ""},
	} {
		got := e.Search(tc.term, tc.text)
		assert.Equal(t, 0, got.Count)
		assert.NotNil(t, got.Matches)
	}
}

func TestSearchWithPratikaGrahana(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	got := e.SearchWithPratikaGrahana("राम", "रामेति होवाच")
	require.Equal(t, 2, got.Count)

	assert.Equal(t, domain.MatchDirect, got.Matches[0].Type)
	assert.Equal(t, "रामे", got.Matches[0].MatchedText)

	assert.Equal(t, domain.MatchPratikaGrahana, got.Matches[1].Type)
	assert.Equal(t, "रामेति", got.Matches[1].MatchedText)
	assert.Equal(t, "->ेति", got.Matches[1].SourceRuleID)
	assert.Equal(t, "राम", got.Matches[1].OriginalTerm)
}

func TestSearchDedupByPositionAndLength(t *testing.T) {
	e := newTestEngine(DefaultConfig())

	// The quoted form रामेति is found both by grahana expansion of राम
	// and, for the quoted query, directly; identical (position, length)
	// pairs collapse to one match.
	got := e.SearchWithPratikaGrahana("रामेति", "रामेति होवाच")
	seen := map[[2]int]bool{}
	for _, m := range got.Matches {
		k := [2]int{m.Position, m.Length}
		assert.False(t, seen[k], "duplicate match at %v", k)
		seen[k] = true
	}
}

func TestContextWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ContextLength = 3
	e := newTestEngine(cfg)

	got := e.Search("देव", "अथ खलु देवदत्तः प्रोवाच")
	require.NotZero(t, got.Count)
	ctx := []rune(got.Matches[0].Context)
	assert.LessOrEqual(t, len(ctx), 3+got.Matches[0].Length+3)
	assert.Contains(t, got.Matches[0].Context, "देव")
}
