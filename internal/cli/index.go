package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"pratika/config"
	"pratika/internal/adapter/fs"
	"pratika/internal/adapter/store"
	"pratika/internal/usecase"
)

var indexCmd = &cobra.Command{
	Use:   "index [path]",
	Short: "Index a corpus directory for searching",
	Long: `Index Devanagari texts in the given directory. The index is stored
in .pratika/index.db within the target directory.

Examples:
  pratika index .                 # Index current directory
  pratika index /path/to/corpus   # Index a specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	cfg := GetConfig()
	if err := config.EnsureDir(path); err != nil {
		return fmt.Errorf("failed to create .pratika directory: %w", err)
	}

	st, err := store.NewBoltStore(config.IndexDBPath(path))
	if err != nil {
		return fmt.Errorf("failed to open index store: %w", err)
	}
	defer st.Close()

	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	indexUC := usecase.NewIndexUseCase(st, walker, slog.Default())

	fmt.Printf("Indexing %s...\n", path)
	var bar *progressbar.ProgressBar
	progress := func(done, total int, current string) {
		if bar == nil {
			bar = progressbar.Default(int64(total), "indexing")
		}
		_ = bar.Set(done)
	}

	result, idx, err := indexUC.Index(path, progress)
	if err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	stats := idx.Stats()
	fmt.Printf("\nIndexed %d files, %d distinct terms (avg %.1f tokens/doc)\n",
		result.FilesIndexed, result.TermsIndexed, stats.AvgDocLen)
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %s\n", e)
	}
	return nil
}
