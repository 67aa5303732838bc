package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pratika/internal/domain"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"spaces and danda", "रामः वनं गच्छति। सीता", []string{"रामः", "वनं", "गच्छति", "सीता"}},
		{"avagraha stays inside its word", "देवोऽसुरेभ्यो बलम्", []string{"देवोऽसुरेभ्यो", "बलम्"}},
		{"double danda", "इति॥ अथ", []string{"इति", "अथ"}},
		{"empty", "", nil},
		{"only boundaries", " । ॥ ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.input))
		})
	}
}

func testDocs() []domain.Document {
	return []domain.Document{
		{ID: "a", Path: "a.txt", Title: "a", Text: "राम राम सीता"},
		{ID: "b", Path: "b.txt", Title: "b", Text: "राम गच्छति"},
		{ID: "c", Path: "c.txt", Title: "c", Text: "सीता वनम्"},
	}
}

func TestBuildAndStats(t *testing.T) {
	idx := Build(testDocs())

	stats := idx.Stats()
	assert.Equal(t, 3, stats.TotalDocs)
	assert.Equal(t, 4, stats.TotalTerms) // राम सीता गच्छति वनम्
	assert.InDelta(t, 7.0/3.0, stats.AvgDocLen, 1e-9)

	assert.Equal(t, 3, idx.DocLen(0))
	assert.Equal(t, 2, idx.DocLen(1))
	assert.Equal(t, 0, idx.DocLen(99))

	postings := idx.Postings("राम")
	require.Len(t, postings, 2)
	assert.Equal(t, Posting{Ordinal: 0, TF: 2}, postings[0])
	assert.Equal(t, Posting{Ordinal: 1, TF: 1}, postings[1])
}

func TestQueryHit(t *testing.T) {
	idx := Build(testDocs())
	assert.Equal(t, []int{0, 1}, idx.Query("राम"))
	assert.Equal(t, []int{0, 2}, idx.Query("सीता"))
}

// The index is a candidate filter, not authoritative: an unindexed term
// falls through to the whole corpus so substring matches are not lost.
func TestQueryMissReturnsAll(t *testing.T) {
	idx := Build(testDocs())
	assert.Equal(t, []int{0, 1, 2}, idx.Query("कृष्ण"))
	assert.Equal(t, []int{0, 1, 2}, idx.Query(""))
}

func TestDocuments(t *testing.T) {
	idx := Build(testDocs())
	docs := idx.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "a", docs[0].ID)
	assert.Equal(t, "a.txt", docs[0].Metadata["path"])
}

func TestEmptyIndex(t *testing.T) {
	idx := Build(nil)
	assert.Equal(t, 0, idx.Stats().TotalDocs)
	assert.Equal(t, 0.0, idx.Stats().AvgDocLen)
	assert.Empty(t, idx.Query("राम"))
}
