package port

import "pratika/internal/domain"

// Searcher matches a query term against one text.
type Searcher interface {
	Search(term, text string) domain.SearchResult
	SearchWithPratikaGrahana(term, text string) domain.SearchResult
}

// Classifier decides whether a text span is a pratika and reconstructs
// its stem.
type Classifier interface {
	Classify(text string) domain.PratikaAnalysis
}
