package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"pratika/config"
	"pratika/internal/adapter/index"
	"pratika/internal/adapter/sandhi"
	"pratika/internal/adapter/script"
	"pratika/internal/adapter/searcher"
	"pratika/internal/adapter/store"
	"pratika/internal/usecase"
)

var (
	searchTerm    string
	searchPratika bool
	searchJSON    bool
	searchRank    bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the indexed corpus",
	Long: `Search for a term across the indexed corpus. Queries ending in an
explicit phonological mark are matched as whole words; unmarked stems
are matched fuzzily across sandhi and case-ending variation.

Examples:
  pratika search -q "देव"
  pratika search -q "राम" --pratika     # also find रामेति etc.
  pratika search -q "अग्निः" --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchTerm, "query", "q", "", "search term (required)")
	searchCmd.Flags().BoolVar(&searchPratika, "pratika", false, "include pratika cross-reference matches")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.Flags().BoolVar(&searchRank, "rank", false, "order documents by BM25 relevance")
	_ = searchCmd.MarkFlagRequired("query")
}

func newEngine(cfg *config.Config) *searcher.Engine {
	return searcher.New(
		searcher.Config{
			CaseSensitive: cfg.Search.CaseSensitive,
			ContextLength: cfg.Search.ContextLength,
			EnableSandhi:  cfg.Search.EnableSandhi,
			MaxResults:    cfg.Search.MaxResults,
		},
		script.Devanagari(),
		sandhi.NewSplitter(),
		sandhi.NewExpander(sandhi.DefaultEndingMap()),
	)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	rootDir := GetRootDir()

	dbPath := config.IndexDBPath(rootDir)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found; run 'pratika index' first")
	}
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	docs, err := st.LoadCorpus()
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	idx := index.Build(docs)

	engine := newEngine(cfg)
	ranker := searcher.NewRanker(cfg.Rank.K1, cfg.Rank.B)
	searchUC := usecase.NewSearchUseCase(engine, ranker, cfg.Search.MaxResults, slog.Default())

	result, err := searchUC.SearchCorpus(context.Background(), searchTerm, docs, idx, searchPratika)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
		return nil
	}

	if result.Count == 0 {
		fmt.Println("No matches found.")
		return nil
	}
	fmt.Printf("Found %d matches for %s\n\n", result.Count, result.SearchTerm)

	order := make([]int, 0, len(docs))
	if searchRank {
		for _, r := range searchUC.Rank(searchTerm, idx) {
			order = append(order, r.Ordinal)
		}
	}
	printed := make(map[int]bool)
	printDoc := func(ord int) {
		first := true
		for _, m := range result.Matches {
			if m.DocumentOrdinal != ord {
				continue
			}
			if first {
				fmt.Printf("--- %s ---\n", docs[ord].Path)
				first = false
			}
			fmt.Printf("  [%d+%d] %s  (%s", m.Position, m.Length, m.MatchedText, m.Type)
			if m.SourceRuleID != "" {
				fmt.Printf(": %s", m.SourceRuleID)
			}
			fmt.Printf(")\n    …%s…\n", m.Context)
		}
		if !first {
			fmt.Println()
		}
		printed[ord] = true
	}
	for _, ord := range order {
		printDoc(ord)
	}
	for _, m := range result.Matches {
		if !printed[m.DocumentOrdinal] {
			printDoc(m.DocumentOrdinal)
		}
	}
	return nil
}
