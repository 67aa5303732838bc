package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"pratika/internal/adapter/fs"
	"pratika/internal/adapter/index"
	"pratika/internal/adapter/script"
	"pratika/internal/adapter/store"
	"pratika/internal/domain"
)

// IndexUseCase walks a corpus directory, normalizes every text once,
// builds the inverted index and persists the result.
type IndexUseCase struct {
	store  *store.BoltStore
	walker *fs.Walker
	logger *slog.Logger
}

// NewIndexUseCase assembles the indexing use case.
func NewIndexUseCase(st *store.BoltStore, walker *fs.Walker, logger *slog.Logger) *IndexUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &IndexUseCase{store: st, walker: walker, logger: logger}
}

// IndexResult reports one indexing run.
type IndexResult struct {
	FilesIndexed int
	TermsIndexed int
	Errors       []string
}

// ProgressFunc reports indexing progress to the caller.
type ProgressFunc func(done, total int, path string)

// Index walks root, reads and normalizes every matched file, builds the
// index over the documents in path order and persists it.
func (u *IndexUseCase) Index(root string, progress ProgressFunc) (*IndexResult, *index.Index, error) {
	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to walk corpus: %w", err)
	}

	result := &IndexResult{}
	docs := make([]domain.Document, 0, len(files))
	for i, file := range files {
		text, err := fs.ReadFile(file.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("failed to read %s: %v", file.Path, err))
			continue
		}
		docs = append(docs, domain.Document{
			ID:      docID(file.Path),
			Path:    file.Path,
			Title:   filepath.Base(file.Path),
			Text:    script.Normalize(text),
			ModTime: time.Unix(file.ModTime, 0),
		})
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}
	}

	idx := index.Build(docs)
	if err := u.store.SaveCorpus(docs, idx); err != nil {
		return nil, nil, fmt.Errorf("failed to persist corpus: %w", err)
	}

	stats := idx.Stats()
	result.FilesIndexed = len(docs)
	result.TermsIndexed = stats.TotalTerms
	u.logger.Info("corpus indexed",
		"files", result.FilesIndexed,
		"terms", result.TermsIndexed,
		"errors", len(result.Errors))
	return result, idx, nil
}

func docID(path string) string {
	sum := sha256.Sum256([]byte(path))
	return hex.EncodeToString(sum[:8])
}
