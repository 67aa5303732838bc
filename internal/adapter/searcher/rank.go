package searcher

import (
	"math"
	"sort"

	"pratika/internal/adapter/index"
)

// Ranker orders corpus documents by BM25 relevance to a query. Ranking
// is presentation-only; candidate selection and match correctness stay
// with the inverted index and the Engine.
type Ranker struct {
	k1 float64
	b  float64
}

// NewRanker returns a Ranker with the given BM25 parameters; zero
// values fall back to the conventional 1.2 / 0.75.
func NewRanker(k1, b float64) *Ranker {
	if k1 <= 0 {
		k1 = 1.2
	}
	if b <= 0 {
		b = 0.75
	}
	return &Ranker{k1: k1, b: b}
}

// RankedOrdinal pairs a document ordinal with its relevance score.
type RankedOrdinal struct {
	Ordinal int
	Score   float64
}

// Rank scores every document containing a query token. Documents with
// no scoring token are omitted. Ties break on document order so the
// result is deterministic.
func (r *Ranker) Rank(term string, idx *index.Index) []RankedOrdinal {
	stats := idx.Stats()
	if stats.TotalDocs == 0 {
		return nil
	}
	avg := stats.AvgDocLen
	if avg <= 0 {
		avg = 1
	}
	scores := make(map[int]float64)
	for _, tok := range index.Tokenize(term) {
		postings := idx.Postings(tok)
		if len(postings) == 0 {
			continue
		}
		n := float64(len(postings))
		N := float64(stats.TotalDocs)
		idf := math.Log((N-n+0.5)/(n+0.5) + 1)
		for _, p := range postings {
			tf := float64(p.TF)
			dl := float64(idx.DocLen(p.Ordinal))
			scores[p.Ordinal] += idf * (tf * (r.k1 + 1)) / (tf + r.k1*(1-r.b+r.b*dl/avg))
		}
	}
	out := make([]RankedOrdinal, 0, len(scores))
	for ord, score := range scores {
		out = append(out, RankedOrdinal{Ordinal: ord, Score: score})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Ordinal < out[j].Ordinal
	})
	return out
}
