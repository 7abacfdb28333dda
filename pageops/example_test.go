package pageops_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lvillar/cardsheet"
	"github.com/lvillar/cardsheet/pageops"
)

// createExampleSheet writes a card sheet for a small deck.
func createExampleSheet(filename, content string) error {
	_, err := cardsheet.New().GenerateFile(filename, cardsheet.Input{Content: content, Filename: filename})
	return err
}

// ExampleMergeFiles demonstrates combining two card sheets into one print run.
func ExampleMergeFiles() {
	dir, err := os.MkdirTemp("", "pageops-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	// Create two source sheets
	file1 := filepath.Join(dir, "capitales_bleu.pdf")
	file2 := filepath.Join(dir, "fleuves_vert.pdf")
	if err := createExampleSheet(file1, "Capital of France;Paris\nCapital of Italy;Rome\n"); err != nil {
		fmt.Println(err)
		return
	}
	if err := createExampleSheet(file2, "Longest river in France;Loire\n"); err != nil {
		fmt.Println(err)
		return
	}

	// Merge them
	outFile := filepath.Join(dir, "print_run.pdf")
	if err := pageops.MergeFiles(outFile, file1, file2); err != nil {
		fmt.Println(err)
		return
	}
	pages, err := pageops.PageCount(outFile)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("print run: %d pages\n", pages)
	// Output:
	// print run: 4 pages
}
