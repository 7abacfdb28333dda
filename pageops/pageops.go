// Package pageops combines generated card sheets into a single print run.
//
// Pages are imported as templates with the gofpdi contrib package and
// placed on pages of the source's own size.
package pageops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/jung-kurt/gofpdf/contrib/gofpdi"
)

// ErrNotPDF is returned for inputs that do not start with a PDF header.
var ErrNotPDF = errors.New("pageops: not a PDF file")

const mediaBox = "/MediaBox"

// fallbackSize is used when a source page reports no media box.
var fallbackSize = gofpdf.SizeType{Wd: 595.28, Ht: 841.89}

// source is one input file opened for import.
type source struct {
	path  string
	imp   *gofpdi.Importer
	first int // template of page 1, imported while counting
	sizes map[int]map[string]map[string]float64
}

// openSource checks the header of path and imports its first page into pdf,
// which also loads the page boxes of every page.
func openSource(pdf *gofpdf.Fpdf, path string) (*source, error) {
	if err := checkHeader(path); err != nil {
		return nil, err
	}
	s := &source{path: path, imp: gofpdi.NewImporter()}
	err := guard(func() {
		s.first = s.imp.ImportPage(pdf, path, 1, mediaBox)
		s.sizes = s.imp.GetPageSizes()
	})
	if err != nil {
		return nil, fmt.Errorf("pageops: importing %s: %w", path, err)
	}
	if len(s.sizes) == 0 {
		return nil, fmt.Errorf("pageops: %s has no pages", path)
	}
	return s, nil
}

func (s *source) pageCount() int {
	return len(s.sizes)
}

// pageSize returns the media box size of page n.
func (s *source) pageSize(n int) gofpdf.SizeType {
	if dims, ok := s.sizes[n]; ok {
		if mb, ok := dims[mediaBox]; ok && mb["w"] > 0 && mb["h"] > 0 {
			return gofpdf.SizeType{Wd: mb["w"], Ht: mb["h"]}
		}
	}
	return fallbackSize
}

// importPage returns the template for page n.
func (s *source) importPage(pdf *gofpdf.Fpdf, n int) (tpl int, err error) {
	if n == 1 {
		return s.first, nil
	}
	err = guard(func() {
		tpl = s.imp.ImportPage(pdf, s.path, n, mediaBox)
	})
	return tpl, err
}

// guard turns a panic raised by the importer on malformed input into an
// error.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}

func checkHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("pageops: %w", err)
	}
	defer f.Close()

	head := make([]byte, 5)
	if _, err := io.ReadFull(f, head); err != nil || !bytes.Equal(head, []byte("%PDF-")) {
		return fmt.Errorf("%w: %s", ErrNotPDF, path)
	}
	return nil
}

// PageCount returns the number of pages in the PDF file at path.
func PageCount(path string) (int, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	s, err := openSource(pdf, path)
	if err != nil {
		return 0, err
	}
	return s.pageCount(), nil
}

// output renders the whole document into memory.
func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pageops: %w", err)
	}
	return buf.Bytes(), nil
}

// writePDFToFile writes the PDF to a file. Nothing is created when the
// document fails to render.
func writePDFToFile(pdf *gofpdf.Fpdf, filename string) error {
	data, err := output(pdf)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("pageops: writing %s: %w", filename, err)
	}
	return nil
}
