package pageops

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// MergeFiles combines multiple PDF files into a single output file.
// Pages are added in order: all pages from the first file, then all from the second, etc.
// The output file is only created once every input has been imported.
func MergeFiles(outputPath string, inputPaths ...string) error {
	pdf, err := merge(inputPaths)
	if err != nil {
		return err
	}
	return writePDFToFile(pdf, outputPath)
}

// Merge combines multiple PDF files and writes the result to w.
func Merge(w io.Writer, inputPaths ...string) error {
	pdf, err := merge(inputPaths)
	if err != nil {
		return err
	}
	data, err := output(pdf)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func merge(inputPaths []string) (*gofpdf.Fpdf, error) {
	if len(inputPaths) == 0 {
		return nil, fmt.Errorf("pageops: no input files provided")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("cardsheet", true)

	for _, inputPath := range inputPaths {
		if err := appendFile(pdf, inputPath); err != nil {
			return nil, fmt.Errorf("pageops: merging %s: %w", inputPath, err)
		}
	}
	return pdf, nil
}

// appendFile imports all pages from a PDF file into the target PDF.
func appendFile(pdf *gofpdf.Fpdf, inputPath string) error {
	src, err := openSource(pdf, inputPath)
	if err != nil {
		return err
	}

	for i := 1; i <= src.pageCount(); i++ {
		tplID, err := src.importPage(pdf, i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		size := src.pageSize(i)
		pdf.AddPageFormat("P", size)
		src.imp.UseImportedTemplate(pdf, tplID, 0, 0, size.Wd, size.Ht)
	}

	return pdf.Error()
}
