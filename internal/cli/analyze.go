package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pratika/internal/adapter/pratika"
	"pratika/internal/usecase"
)

var (
	analyzeJSON bool
	analyzeWord string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Detect pratika quotation markers in a text",
	Long: `Scan a Devanagari text for pratika quotation markers — words fused
with इति or followed by a standalone इति — and report the reconstructed
stems with rule and confidence.

Reads the named file, or stdin when the argument is "-" or omitted.

Examples:
  pratika analyze verse.txt
  pratika analyze --word "रामेति"
  cat verse.txt | pratika analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output as JSON")
	analyzeCmd.Flags().StringVar(&analyzeWord, "word", "", "classify a single word instead of a file")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzeUC := usecase.NewAnalyzeUseCase(pratika.NewAnalyzer())

	if analyzeWord != "" {
		a := analyzeUC.AnalyzeWord(analyzeWord)
		if analyzeJSON {
			out, _ := json.MarshalIndent(a, "", "  ")
			fmt.Println(string(out))
			return nil
		}
		if !a.IsPratika {
			fmt.Printf("%s: not a pratika (%s)\n", a.OriginalText, a.Description)
			return nil
		}
		fmt.Printf("%s → %s  [%s, confidence %d]\n  %s\n", a.OriginalText, a.Stem, a.RuleID, a.Confidence, a.Description)
		return nil
	}

	var data []byte
	var err error
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	found := analyzeUC.AnalyzeText(string(data))
	if analyzeJSON {
		out, _ := json.MarshalIndent(found, "", "  ")
		fmt.Println(string(out))
		return nil
	}
	if len(found) == 0 {
		fmt.Println("No pratikas found.")
		return nil
	}
	for _, w := range found {
		a := w.Analysis
		fmt.Printf("[%d] %s → %s  (%s, confidence %d)\n", w.Position, w.Word, a.Stem, a.RuleID, a.Confidence)
	}
	return nil
}
