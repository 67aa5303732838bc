package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"pratika/internal/adapter/sandhi"
	"pratika/internal/domain"
)

var (
	variantsTerm string
	variantsJSON bool
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "Show the search variants generated for a term",
	Long: `Print the quotation variants (ending correspondence map, both
directions) and sandhi fusion variants the search engine would generate
for a term.

Examples:
  pratika variants -q "राम"
  pratika variants -q "देवः" --json`,
	RunE: runVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)
	variantsCmd.Flags().StringVarP(&variantsTerm, "query", "q", "", "term to expand (required)")
	variantsCmd.Flags().BoolVar(&variantsJSON, "json", false, "output as JSON")
	_ = variantsCmd.MarkFlagRequired("query")
}

func runVariants(cmd *cobra.Command, args []string) error {
	expander := sandhi.NewExpander(sandhi.DefaultEndingMap())
	splitter := sandhi.NewSplitter()

	quotation := expander.ExpandQuotationVariants(variantsTerm)
	fusion := splitter.SplitVariants(variantsTerm)

	if variantsJSON {
		out, _ := json.MarshalIndent(map[string][]domain.Variant{
			"quotation": quotation,
			"fusion":    fusion,
		}, "", "  ")
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Quotation variants of %s:\n", variantsTerm)
	if len(quotation) == 0 {
		fmt.Println("  (none)")
	}
	for _, v := range quotation {
		fmt.Printf("  %-20s %s\n", v.Text, v.RuleID)
	}
	fmt.Printf("\nFusion variants:\n")
	for _, v := range fusion {
		fmt.Printf("  %-20s %s\n", v.Text, v.RuleID)
	}
	return nil
}
