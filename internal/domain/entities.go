package domain

import "time"

// MatchType classifies how a search match was found.
type MatchType string

const (
	MatchExact          MatchType = "exact"
	MatchDirect         MatchType = "direct"
	MatchSandhi         MatchType = "sandhi"
	MatchPratikaGrahana MatchType = "pratika-grahana"
)

// PratikaAnalysis is the result of classifying one text span as a
// pratika (quotation marker) or rejecting it. Value object, created per
// call and never retained.
type PratikaAnalysis struct {
	OriginalText string `json:"original_text"`
	IsPratika    bool   `json:"is_pratika"`
	Stem         string `json:"stem,omitempty"`
	RuleID       string `json:"rule_id,omitempty"`
	Description  string `json:"description"`
	ItiEnding    string `json:"iti_ending,omitempty"`
	Confidence   int    `json:"confidence"`
}

// Variant is an alternative surface form of a term, produced by the
// quotation-variant expander or the sandhi splitter. RuleID records
// which substitution produced it.
type Variant struct {
	Text   string `json:"text"`
	RuleID string `json:"rule_id"`
}

// Match is a single occurrence found by the search engine. Position and
// Length are codepoint offsets into the NFC-normalized text the search
// ran over.
type Match struct {
	Position     int       `json:"position"`
	Length       int       `json:"length"`
	MatchedText  string    `json:"matched_text"`
	Context      string    `json:"context"`
	Type         MatchType `json:"type"`
	SourceRuleID string    `json:"source_rule_id,omitempty"`
	OriginalTerm string    `json:"original_term,omitempty"`
}

// SearchResult is the stable result shape for a single-text search.
type SearchResult struct {
	Matches    []Match   `json:"matches"`
	Count      int       `json:"count"`
	SearchTerm string    `json:"search_term"`
	Timestamp  time.Time `json:"timestamp"`
}

// Document is one corpus text. Text is stored NFC-normalized.
type Document struct {
	ID      string
	Path    string
	Title   string
	Text    string
	ModTime time.Time
}

// DocumentMatch is a Match located in a specific corpus document.
type DocumentMatch struct {
	Match
	DocumentID      string `json:"document_id"`
	DocumentOrdinal int    `json:"document_ordinal"`
}

// CorpusResult aggregates matches across a corpus, ordered by
// (document ordinal, position).
type CorpusResult struct {
	Matches    []DocumentMatch `json:"matches"`
	Count      int             `json:"count"`
	SearchTerm string          `json:"search_term"`
	Timestamp  time.Time       `json:"timestamp"`
}

// Stats describes an indexed corpus.
type Stats struct {
	TotalDocs  int
	TotalTerms int
	AvgDocLen  float64
}
