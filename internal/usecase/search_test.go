package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratika/internal/adapter/index"
	"pratika/internal/adapter/sandhi"
	"pratika/internal/adapter/script"
	"pratika/internal/adapter/searcher"
	"pratika/internal/domain"
)

func newSearchUC(maxResults int) *SearchUseCase {
	engine := searcher.New(searcher.DefaultConfig(), script.Devanagari(),
		sandhi.NewSplitter(), sandhi.NewExpander(sandhi.DefaultEndingMap()))
	return NewSearchUseCase(engine, searcher.NewRanker(1.2, 0.75), maxResults, nil)
}

func searchCorpusFixture() []domain.Document {
	return []domain.Document{
		{ID: "a", Path: "a.txt", Text: "सीता वनं गच्छति"},
		{ID: "b", Path: "b.txt", Text: "रामो वनं गच्छति"},
		{ID: "c", Path: "c.txt", Text: "रामेण रामस्य सह"},
	}
}

func TestSearchCorpusOrdering(t *testing.T) {
	uc := newSearchUC(100)
	docs := searchCorpusFixture()
	idx := index.Build(docs)

	got, err := uc.SearchCorpus(context.Background(), "राम", docs, idx, false)
	require.NoError(t, err)
	require.NotZero(t, got.Count)

	for i := 1; i < len(got.Matches); i++ {
		prev, cur := got.Matches[i-1], got.Matches[i]
		inOrder := prev.DocumentOrdinal < cur.DocumentOrdinal ||
			(prev.DocumentOrdinal == cur.DocumentOrdinal && prev.Position <= cur.Position)
		assert.True(t, inOrder, "matches out of corpus order at %d", i)
	}

	// राम is not a token of any document, so the index falls through to
	// the whole corpus and the sandhi-fused surface forms are found.
	var ordinals []int
	for _, m := range got.Matches {
		ordinals = append(ordinals, m.DocumentOrdinal)
	}
	assert.Contains(t, ordinals, 1)
	assert.Contains(t, ordinals, 2)
	assert.NotContains(t, ordinals, 0)
}

func TestSearchCorpusMaxResults(t *testing.T) {
	uc := newSearchUC(2)
	docs := searchCorpusFixture()

	got, err := uc.SearchCorpus(context.Background(), "राम", docs, index.Build(docs), false)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)
	assert.Len(t, got.Matches, 2)
}

func TestSearchCorpusGrahana(t *testing.T) {
	uc := newSearchUC(100)
	docs := []domain.Document{
		{ID: "a", Path: "a.txt", Text: "रामेति होवाच"},
	}

	plain, err := uc.SearchCorpus(context.Background(), "राम", docs, index.Build(docs), false)
	require.NoError(t, err)
	grahana, err := uc.SearchCorpus(context.Background(), "राम", docs, index.Build(docs), true)
	require.NoError(t, err)

	assert.Greater(t, grahana.Count, plain.Count,
		"grahana search adds quoted-form matches")

	var found bool
	for _, m := range grahana.Matches {
		if m.Type == domain.MatchPratikaGrahana {
			found = true
			assert.Equal(t, "रामेति", m.MatchedText)
		}
	}
	assert.True(t, found)
}

func TestSearchCorpusCancelledContext(t *testing.T) {
	uc := newSearchUC(100)
	docs := searchCorpusFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uc.SearchCorpus(ctx, "राम", docs, index.Build(docs), false)
	assert.Error(t, err)
}

func TestSearchCorpusEmptyCorpus(t *testing.T) {
	uc := newSearchUC(100)

	got, err := uc.SearchCorpus(context.Background(), "राम", nil, index.Build(nil), false)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Count)
}

func TestRankDelegation(t *testing.T) {
	uc := newSearchUC(100)
	docs := searchCorpusFixture()
	idx := index.Build(docs)

	ranked := uc.Rank("गच्छति", idx)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].Ordinal, "equal scores fall back to document order")

	noRanker := NewSearchUseCase(nil, nil, 10, nil)
	assert.Nil(t, noRanker.Rank("राम", idx))
}
