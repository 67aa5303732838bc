package usecase

import (
	"pratika/internal/adapter/script"
	"pratika/internal/domain"
	"pratika/internal/port"
)

// AnalyzeUseCase scans a text for pratika quotation markers: every word
// is classified, and a word followed by a standalone इति is also tried
// as a space-separated quotation form.
type AnalyzeUseCase struct {
	classifier port.Classifier
}

// NewAnalyzeUseCase assembles the analyze use case.
func NewAnalyzeUseCase(classifier port.Classifier) *AnalyzeUseCase {
	return &AnalyzeUseCase{classifier: classifier}
}

// WordAnalysis is one accepted pratika with its location.
type WordAnalysis struct {
	Word     string                 `json:"word"`
	Position int                    `json:"position"`
	Analysis domain.PratikaAnalysis `json:"analysis"`
}

type token struct {
	text string
	pos  int
}

// AnalyzeText returns every accepted pratika in the text, in order of
// appearance. Positions are codepoint offsets into the normalized text.
func (u *AnalyzeUseCase) AnalyzeText(text string) []WordAnalysis {
	t := script.Normalize(text)
	words := tokenizePositions(t)

	var out []WordAnalysis
	for i := 0; i < len(words); i++ {
		w := words[i]
		// Try the space-separated form first: <word> इति.
		if i+1 < len(words) && words[i+1].text == "इति" {
			if a := u.classifier.Classify(w.text + " इति"); a.IsPratika {
				out = append(out, WordAnalysis{Word: w.text + " इति", Position: w.pos, Analysis: a})
				i++ // the इति is consumed
				continue
			}
		}
		if a := u.classifier.Classify(w.text); a.IsPratika {
			out = append(out, WordAnalysis{Word: w.text, Position: w.pos, Analysis: a})
		}
	}
	return out
}

// AnalyzeWord classifies a single span.
func (u *AnalyzeUseCase) AnalyzeWord(word string) domain.PratikaAnalysis {
	return u.classifier.Classify(word)
}

// tokenizePositions splits on word boundaries, keeping the codepoint
// offset of each word.
func tokenizePositions(t string) []token {
	var words []token
	var current []rune
	start := 0
	pos := 0
	flush := func() {
		if len(current) > 0 {
			words = append(words, token{text: string(current), pos: start})
			current = current[:0]
		}
	}
	for _, r := range t {
		if script.IsWordBoundary(r) {
			flush()
		} else {
			if len(current) == 0 {
				start = pos
			}
			current = append(current, r)
		}
		pos++
	}
	flush()
	return words
}
