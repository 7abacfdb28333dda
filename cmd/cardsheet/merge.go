package main

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lvillar/cardsheet/pageops"
)

var mergeOutput string

var mergeCmd = &cobra.Command{
	Use:   "merge -o OUT.pdf IN.pdf...",
	Short: "Combine generated sheets into one print run",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := pageops.MergeFiles(mergeOutput, args...); err != nil {
			return err
		}
		pages, err := pageops.PageCount(mergeOutput)
		if err != nil {
			return err
		}
		logger.Info("sheets merged", zap.String("output", mergeOutput), zap.Int("pages", pages))
		fmt.Printf("%s %s (%d pages from %d files)\n", colorize.GreenString("merged"), mergeOutput, pages, len(args))
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVarP(&mergeOutput, "output", "o", "", "Merged PDF to write")
	_ = mergeCmd.MarkFlagRequired("output")
}
