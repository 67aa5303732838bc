package usecase

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"pratika/internal/adapter/index"
	"pratika/internal/adapter/searcher"
	"pratika/internal/domain"
	"pratika/internal/port"
)

// SearchUseCase fans a search out over the corpus. The index prunes the
// candidate set; every candidate document is then fully searched. Each
// per-document search is pure, so candidates run in parallel and the
// total order is restored by a stable sort on (document ordinal,
// position) afterwards.
type SearchUseCase struct {
	engine     port.Searcher
	ranker     *searcher.Ranker
	maxResults int
	logger     *slog.Logger
}

// NewSearchUseCase assembles the corpus search use case.
func NewSearchUseCase(engine port.Searcher, ranker *searcher.Ranker, maxResults int, logger *slog.Logger) *SearchUseCase {
	if maxResults <= 0 {
		maxResults = 100
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchUseCase{engine: engine, ranker: ranker, maxResults: maxResults, logger: logger}
}

// SearchCorpus searches term across docs, pruned through idx. With
// grahana set, quotation cross-reference matching is included.
func (u *SearchUseCase) SearchCorpus(ctx context.Context, term string, docs []domain.Document, idx *index.Index, grahana bool) (domain.CorpusResult, error) {
	start := time.Now()
	ordinals := idx.Query(term)

	perDoc := make([]domain.SearchResult, len(ordinals))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, ord := range ordinals {
		i, ord := i, ord
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if grahana {
				perDoc[i] = u.engine.SearchWithPratikaGrahana(term, docs[ord].Text)
			} else {
				perDoc[i] = u.engine.Search(term, docs[ord].Text)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.CorpusResult{}, err
	}

	var all []domain.DocumentMatch
	for i, ord := range ordinals {
		for _, m := range perDoc[i].Matches {
			all = append(all, domain.DocumentMatch{
				Match:           m,
				DocumentID:      docs[ord].ID,
				DocumentOrdinal: ord,
			})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].DocumentOrdinal != all[j].DocumentOrdinal {
			return all[i].DocumentOrdinal < all[j].DocumentOrdinal
		}
		return all[i].Position < all[j].Position
	})
	if len(all) > u.maxResults {
		all = all[:u.maxResults]
	}

	u.logger.Debug("corpus search complete",
		"term", term,
		"candidates", len(ordinals),
		"matches", len(all),
		"elapsed", time.Since(start))
	return domain.CorpusResult{
		Matches:    all,
		Count:      len(all),
		SearchTerm: term,
		Timestamp:  time.Now(),
	}, nil
}

// Rank orders the corpus documents by BM25 relevance to term, for
// display purposes only; it never filters matches.
func (u *SearchUseCase) Rank(term string, idx *index.Index) []searcher.RankedOrdinal {
	if u.ranker == nil {
		return nil
	}
	return u.ranker.Rank(term, idx)
}
