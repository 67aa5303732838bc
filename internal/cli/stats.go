package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pratika/config"
	"pratika/internal/adapter/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show statistics for the indexed corpus",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := config.IndexDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("no index found; run 'pratika index' first")
	}
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer st.Close()

	stats, err := st.Stats()
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}
	fmt.Printf("Documents:      %d\n", stats.TotalDocs)
	fmt.Printf("Distinct terms: %d\n", stats.TotalTerms)
	fmt.Printf("Avg doc length: %.1f tokens\n", stats.AvgDocLen)
	return nil
}
