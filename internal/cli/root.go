package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pratika/config"
	"pratika/internal/logging"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "pratika",
	Short: "Sanskrit pratika detection and sandhi-aware search",
	Long: `pratika analyzes Devanagari Sanskrit text: it detects and decomposes
pratika quotation markers (words fused with इति) and searches a text or
an indexed corpus for a stem even when sandhi or case endings have
altered its surface form.

Example usage:
  pratika index ./corpus          # Index a directory of texts
  pratika search -q "देव"          # Sandhi-aware corpus search
  pratika search -q "राम" --pratika  # Include quoted (iti-suffixed) forms
  pratika analyze verse.txt       # List pratikas found in a text`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logging.Setup(cfg.Logging.Level)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./pratika.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return cfg
}

// GetRootDir returns the resolved root directory.
func GetRootDir() string {
	return rootDir
}
