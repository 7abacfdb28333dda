package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/tabular"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE.csv",
	Short: "Show how a table is read, without rendering",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		res := tabular.ParseResult(string(content))
		printParse(args[0], res)
		return nil
	},
}

// swatches prints each card color in something close to its own hue.
var swatches = map[card.ColorKey]*colorize.Color{
	card.Blue:   colorize.New(colorize.FgHiBlue),
	card.Red:    colorize.New(colorize.FgRed),
	card.Pink:   colorize.New(colorize.FgHiMagenta),
	card.Green:  colorize.New(colorize.FgGreen),
	card.Yellow: colorize.New(colorize.FgYellow),
}

func printParse(name string, res tabular.Result) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	// "NN. " prefix, " | " separator, room for a color tag.
	col := max((width-4-3-10)/2, 10)

	header := "no header"
	if res.Header {
		header = "header row"
	}
	sniffed := "sniffed"
	if !res.Dialect.Sniffed {
		sniffed = "default"
	}
	fmt.Printf("%s %s\n", colorize.CyanString("File:     "), name)
	fmt.Printf("%s %q (%s), %s\n", colorize.CyanString("Dialect:  "), res.Dialect.Name(), sniffed, header)
	fmt.Printf("%s %d\n\n", colorize.CyanString("Records:  "), len(res.Records))

	for i, rec := range res.Records {
		if i == deck.Size {
			fmt.Println(colorize.YellowString("--- %d more record(s) do not fit on the sheet ---", len(res.Records)-deck.Size))
		}
		line := fmt.Sprintf("%2d. %s | %s", i+1, clip(rec.Question, col), clip(rec.Back, col))
		if sw, ok := swatches[rec.Color]; ok {
			line += " " + sw.Sprintf("(%s)", rec.Color)
		}
		if i >= deck.Size {
			line = colorize.New(colorize.Faint).Sprint(line)
		}
		fmt.Println(line)
	}

	if res.Err != nil {
		fmt.Printf("\n%s reading stopped early: %v\n", colorize.RedString("x"), res.Err)
	}
}

// clip shortens s to n runes, on one line.
func clip(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
