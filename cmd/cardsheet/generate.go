package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lvillar/cardsheet"
	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/pageops"
	"github.com/lvillar/cardsheet/textfit"
)

var (
	imagePath    string
	outputPath   string
	colorName    string
	flipName     string
	overflowName string
	mergePath    string
)

var generateCmd = &cobra.Command{
	Use:   "generate FILE.csv...",
	Short: "Generate a duplex card sheet from each table",
	Long: `Generate writes one two-page PDF per input table. With a single input the
sheet goes to --output; with several, each sheet is written next to its
input with a .pdf extension. --merge additionally combines every sheet into
one print run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&imagePath, "image", "", "Image drawn on every front face")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output PDF (single input only; default from config)")
	generateCmd.Flags().StringVar(&colorName, "color", "", "Deck color: bleu, rouge, rose, vert or jaune")
	generateCmd.Flags().StringVar(&flipName, "flip", "", "Duplex flip axis: vertical (mirror columns) or horizontal (mirror rows)")
	generateCmd.Flags().StringVar(&overflowName, "overflow", "", "Text overflow policy: clamp or shrink")
	generateCmd.Flags().StringVar(&mergePath, "merge", "", "Also merge every generated sheet into this PDF")
}

// generatorOptions layers command-line flags over the configuration.
func generatorOptions() ([]cardsheet.Option, error) {
	opts := cfg.Options(logger)
	if colorName != "" {
		key, ok := card.ParseColorKey(colorName)
		if !ok {
			return nil, fmt.Errorf("unknown color %q (want one of %v)", colorName, card.ColorKeys)
		}
		opts = append(opts, cardsheet.WithDefaultColor(key))
	}
	if flipName != "" {
		axis, err := layout.ParseFlipAxis(flipName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cardsheet.WithFlipAxis(axis))
	}
	if overflowName != "" {
		o, err := textfit.ParseOverflow(overflowName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cardsheet.WithOverflow(o))
	}
	return opts, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if outputPath != "" && len(args) > 1 {
		return fmt.Errorf("--output takes a single input; got %d", len(args))
	}
	opts, err := generatorOptions()
	if err != nil {
		return err
	}
	gen := cardsheet.New(opts...)

	var written []string
	for _, input := range args {
		out := sheetPath(input, len(args))
		rep, err := generateOne(gen, input, out)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		printReport(input, out, rep)
		written = append(written, out)
	}

	if mergePath != "" {
		if err := pageops.MergeFiles(mergePath, written...); err != nil {
			return err
		}
		logger.Info("sheets merged", zap.String("output", mergePath), zap.Int("sheets", len(written)))
		fmt.Printf("%s %s (%d sheets)\n", colorize.GreenString("merged"), mergePath, len(written))
	}
	return nil
}

func sheetPath(input string, inputs int) string {
	switch {
	case inputs == 1 && outputPath != "":
		return outputPath
	case inputs == 1:
		return cfg.Output
	default:
		return strings.TrimSuffix(input, filepath.Ext(input)) + ".pdf"
	}
}

func generateOne(gen *cardsheet.Generator, input, output string) (*cardsheet.Report, error) {
	content, err := os.ReadFile(input)
	if err != nil {
		return nil, err
	}
	in := cardsheet.Input{Content: string(content), Filename: input}

	if imagePath != "" {
		f, err := os.Open(imagePath)
		if err != nil {
			return nil, fmt.Errorf("opening image: %w", err)
		}
		defer f.Close()
		in.Image = f
	}

	rep, err := gen.GenerateFile(output, in)
	if errors.Is(err, cardsheet.ErrNoCards) {
		return nil, fmt.Errorf("no question/answer rows found: %w", err)
	}
	return rep, err
}

func printReport(input, output string, rep *cardsheet.Report) {
	swatch := colorize.New(colorize.FgHiWhite, colorize.Bold)
	fmt.Printf("%s %s -> %s\n", colorize.GreenString("generated"), input, swatch.Sprint(output))
	fmt.Printf("  %d card(s), %d blank, delimiter %q, color %s\n",
		rep.Deck.Used, rep.Deck.Blank, rep.Dialect.Name(), rep.DefaultColor)
	if rep.Deck.Dropped > 0 {
		fmt.Printf("  %s %d row(s) beyond the %d-card sheet were left out\n",
			colorize.YellowString("!"), rep.Deck.Dropped, deck.Size)
	}
	for _, c := range rep.Truncated() {
		fmt.Printf("  %s card %d %s: text cut to fit\n", colorize.YellowString("!"), c.Slot+1, c.Face)
	}
	for _, ce := range rep.CardErrors() {
		fmt.Printf("  %s %v\n", colorize.RedString("x"), ce)
	}
	for _, w := range rep.Warnings {
		fmt.Printf("  %s %s\n", colorize.YellowString("!"), w)
	}
}
