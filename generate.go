// Package cardsheet turns a tabular file of questions and answers into a
// printable duplex sheet of ten cards: page one holds the colored fronts,
// page two the answers, mirrored so each answer lands behind its question.
package cardsheet

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/imaging"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/render"
	"github.com/lvillar/cardsheet/sheet"
	"github.com/lvillar/cardsheet/tabular"
	"github.com/lvillar/cardsheet/textfit"
)

// Input is one deck to generate.
type Input struct {
	// Content is the tabular text.
	Content string
	// Filename is the name the content came from. It picks the deck color
	// when none is configured and titles the PDF.
	Filename string
	// Image optionally decorates every front face.
	Image io.Reader
}

// Report describes a generated sheet.
type Report struct {
	*sheet.Report
	Deck    deck.Summary
	Dialect tabular.Dialect
	Header  bool
	Pages   int
	// ImageUsed is false when no image was given or it could not be decoded.
	ImageUsed bool
}

// CardErrors returns one CardError per degraded face.
func (r *Report) CardErrors() []*CardError {
	var out []*CardError
	for _, c := range r.Degraded() {
		op := "draw"
		if c.Face == sheet.FaceFront && r.ImageUsed {
			op = "image"
		}
		out = append(out, &CardError{Slot: c.Slot, Face: c.Face.String(), Op: op, Err: c.Err})
	}
	return out
}

// Generator renders card sheets.
type Generator struct {
	cfg generatorConfig
}

// New returns a Generator configured by opts.
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Generator{cfg: cfg}
}

func (g *Generator) validate() error {
	c := g.cfg
	if c.defaultColor != "" && !c.defaultColor.Valid() {
		return invalidOption("unknown color %q", c.defaultColor)
	}
	if !render.ValidFamily(c.fontFamily) {
		return invalidOption("font family %q is not a core font", c.fontFamily)
	}
	if c.overflow == textfit.OverflowShrink && c.minFontSize <= 0 {
		return invalidOption("minimum font size must be positive, got %g", c.minFontSize)
	}
	return nil
}

// DefaultColor returns the deck color used for a file name.
func (g *Generator) DefaultColor(filename string) card.ColorKey {
	if g.cfg.defaultColor.Valid() {
		return g.cfg.defaultColor
	}
	return card.ColorFromFilename(filepath.Base(filename))
}

// Generate parses in and writes a two-page PDF to w. Nothing is written
// unless the whole document renders; input without any card record fails
// with ErrNoCards.
func (g *Generator) Generate(w io.Writer, in Input) (*Report, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	log := g.cfg.logger.With(zap.String("input", in.Filename))

	parsed := tabular.ParseResult(in.Content)
	log.Debug("parsed input",
		zap.String("delimiter", parsed.Dialect.Name()),
		zap.Bool("sniffed", parsed.Dialect.Sniffed),
		zap.Bool("header", parsed.Header),
		zap.Int("records", len(parsed.Records)))
	if parsed.Err != nil {
		log.Warn("input truncated at malformed row", zap.Error(parsed.Err))
	}
	if len(parsed.Records) == 0 {
		return nil, ErrNoCards
	}

	d, summary := deck.Assemble(parsed.Records)
	if summary.Dropped > 0 {
		log.Warn("deck is full, extra records dropped",
			zap.Int("size", deck.Size), zap.Int("dropped", summary.Dropped))
	}

	title := g.cfg.title
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(in.Filename), filepath.Ext(in.Filename))
	}
	grid := layout.Default()
	doc := render.NewDocument(layout.Size{W: grid.PageW, H: grid.PageH}, title)

	b := sheet.New(doc)
	b.Grid = grid
	b.Duplex = layout.NewDuplex(grid, g.cfg.flip)
	b.Fitter.Overflow = g.cfg.overflow
	b.Fitter.MinFontSize = g.cfg.minFontSize
	b.FontFamily = g.cfg.fontFamily
	b.Borders = g.cfg.borders
	b.TempDir = g.cfg.tempDir
	b.Logger = log

	var warnings []string
	if in.Image != nil {
		img, format, err := imaging.Decode(in.Image)
		if err != nil {
			log.Warn("image ignored", zap.Error(err))
			warnings = append(warnings, err.Error())
		} else {
			b.Image = imaging.Bound(img, g.cfg.imageMaxPixels)
			log.Debug("image loaded", zap.String("format", format),
				zap.Stringer("bounds", b.Image.Bounds()))
		}
	}

	color := g.DefaultColor(in.Filename)
	srep, err := b.Build(d, color)
	if err != nil {
		return nil, fmt.Errorf("cardsheet: %w", err)
	}
	srep.Warnings = append(warnings, srep.Warnings...)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("cardsheet: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("cardsheet: writing output: %w", err)
	}

	rep := &Report{
		Report:    srep,
		Deck:      summary,
		Dialect:   parsed.Dialect,
		Header:    parsed.Header,
		Pages:     doc.PageCount(),
		ImageUsed: b.Image != nil,
	}
	log.Info("sheet generated",
		zap.String("color", string(color)),
		zap.Int("cards", summary.Used),
		zap.Int("degraded", len(rep.Degraded())),
		zap.Int("truncated", len(rep.Truncated())),
		zap.Int("bytes", buf.Len()))
	return rep, nil
}

// GenerateFile is Generate writing to the file at path. The file is only
// created once the document has rendered.
func (g *Generator) GenerateFile(path string, in Input) (*Report, error) {
	var buf bytes.Buffer
	rep, err := g.Generate(&buf, in)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("cardsheet: %w", err)
	}
	return rep, nil
}
