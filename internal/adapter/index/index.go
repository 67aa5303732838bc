// Package index builds the inverted term index used to prune a corpus
// before full matching. The index is a candidate filter only, never
// authoritative: a query with no indexed token returns every document
// so the search engine still sees the full corpus.
package index

import (
	"pratika/internal/adapter/script"
	"pratika/internal/domain"
)

// Posting records one document containing a term, with its in-document
// frequency for relevance ranking.
type Posting struct {
	Ordinal int
	TF      int
}

// DocumentRef is the per-document entry kept by the index.
type DocumentRef struct {
	ID       string
	Metadata map[string]string
}

// Index is an inverted mapping from token to the documents containing
// it. Built once by Build and immutable afterwards.
type Index struct {
	docs     []DocumentRef
	terms    map[string][]Posting
	docLens  []int
	totalLen int
}

// Tokenize splits text on whitespace and punctuation, including the
// verse dandas, dropping empty tokens. Avagraha stays inside its word.
func Tokenize(text string) []string {
	var tokens []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, string(current))
			current = current[:0]
		}
	}
	for _, r := range text {
		if script.IsWordBoundary(r) {
			flush()
			continue
		}
		current = append(current, r)
	}
	flush()
	return tokens
}

// Build constructs the index over the given documents in order.
// Document texts are expected to be normalized already.
func Build(docs []domain.Document) *Index {
	x := &Index{
		terms:   make(map[string][]Posting),
		docLens: make([]int, len(docs)),
	}
	for ord, doc := range docs {
		x.docs = append(x.docs, DocumentRef{
			ID: doc.ID,
			Metadata: map[string]string{
				"path":  doc.Path,
				"title": doc.Title,
			},
		})
		tokens := Tokenize(doc.Text)
		x.docLens[ord] = len(tokens)
		x.totalLen += len(tokens)

		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		for tok, n := range tf {
			x.terms[tok] = append(x.terms[tok], Posting{Ordinal: ord, TF: n})
		}
	}
	return x
}

// Query returns the ordinals of candidate documents for term, in
// document order. When no token of the term is indexed the whole corpus
// is returned, so raw substring matches that tokenize differently from
// the query are still found by full search.
func (x *Index) Query(term string) []int {
	tokens := Tokenize(term)
	hit := make(map[int]struct{})
	found := false
	for _, tok := range tokens {
		for _, p := range x.terms[tok] {
			hit[p.Ordinal] = struct{}{}
			found = true
		}
	}
	if !found {
		all := make([]int, len(x.docs))
		for i := range all {
			all[i] = i
		}
		return all
	}
	out := make([]int, 0, len(hit))
	for i := range x.docs {
		if _, ok := hit[i]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Documents returns the ordered document references.
func (x *Index) Documents() []DocumentRef {
	return x.docs
}

// Postings returns the posting list for a token.
func (x *Index) Postings(token string) []Posting {
	return x.terms[token]
}

// DocLen returns the token count of the document at ordinal.
func (x *Index) DocLen(ordinal int) int {
	if ordinal < 0 || ordinal >= len(x.docLens) {
		return 0
	}
	return x.docLens[ordinal]
}

// Stats summarizes the indexed corpus.
func (x *Index) Stats() domain.Stats {
	avg := 0.0
	if len(x.docs) > 0 {
		avg = float64(x.totalLen) / float64(len(x.docs))
	}
	return domain.Stats{
		TotalDocs:  len(x.docs),
		TotalTerms: len(x.terms),
		AvgDocLen:  avg,
	}
}

// Terms returns every indexed token. Order is unspecified.
func (x *Index) Terms() []string {
	out := make([]string, 0, len(x.terms))
	for t := range x.terms {
		out = append(out, t)
	}
	return out
}
