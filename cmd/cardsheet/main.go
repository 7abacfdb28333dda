// Command cardsheet turns question/answer tables into printable duplex card
// sheets.
//
//	cardsheet generate capitals_rouge.csv --image logo.png -o capitals.pdf
//	cardsheet parse capitals_rouge.csv
//	cardsheet merge -o run.pdf capitals.pdf rivers.pdf
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lvillar/cardsheet/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "cardsheet",
	Short: "Print question/answer cards on duplex A4 sheets",
	Long: `cardsheet reads a loosely formatted table of questions and answers
(comma, tab, semicolon, space or pipe separated, with or without a header)
and lays the first ten rows out on a two-page A4 PDF: colored question
fronts on page one, answers on page two, mirrored so every answer lands
behind its question when the sheet is printed double-sided.

A trailing "(rouge)" style tag on a question colors that card. The deck
color is otherwise guessed from the file name (bleu, rouge, rose, vert,
jaune) and defaults to blue.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc = zap.NewDevelopmentConfig()
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if configPath == "" {
			configPath = config.Path()
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger.Debug("configuration loaded", zap.String("path", configPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/cardsheet/config.toml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(mcpCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
