// Package sheet lays a deck out on a duplex sheet: one page of fronts, one
// page of backs registered against them.
package sheet

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/deck"
	"github.com/lvillar/cardsheet/imaging"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/render"
	"github.com/lvillar/cardsheet/style"
	"github.com/lvillar/cardsheet/textfit"
)

// Spacing separates the image region from the cell edge and the text box.
const Spacing = 0.8 * layout.Cm

// Backend draws instruction lists page by page.
type Backend interface {
	textfit.Measurer
	AddPage()
	Execute(ops []render.Op) error
}

// Builder draws a deck onto a Backend.
type Builder struct {
	Grid    layout.Grid
	Duplex  layout.Duplex
	Fitter  textfit.Fitter
	Backend Backend
	Logger  *zap.Logger

	FontFamily string
	Borders    bool
	// Image, when set, decorates every front face. It should already be
	// decoded and bounded.
	Image   image.Image
	TempDir string
}

// New returns a Builder on the default grid with vertical flip, borders and
// the clamp overflow policy.
func New(backend Backend) *Builder {
	g := layout.Default()
	return &Builder{
		Grid:       g,
		Duplex:     layout.NewDuplex(g, layout.FlipVertical),
		Fitter:     textfit.New(backend),
		Backend:    backend,
		Logger:     zap.NewNop(),
		FontFamily: style.DefaultFamily,
		Borders:    true,
	}
}

// Build draws the fronts on a first page and the backs on a second one.
// Failures of single faces are recorded in the report; the returned error
// is reserved for an unusable builder.
func (b *Builder) Build(d deck.Deck, defaultColor card.ColorKey) (*Report, error) {
	if b.Backend == nil {
		return nil, errors.New("sheet: no backend")
	}
	if b.Fitter.Measurer == nil {
		b.Fitter.Measurer = b.Backend
	}
	if b.Logger == nil {
		b.Logger = zap.NewNop()
	}

	rep := &Report{DefaultColor: defaultColor}

	b.Backend.AddPage()
	for slot, rec := range d {
		res, cleanup := b.front(slot, rec, defaultColor)
		rep.Cards = append(rep.Cards, res)
		rep.Warnings = append(rep.Warnings, cleanup...)
	}

	b.Backend.AddPage()
	for slot, rec := range d {
		rep.Cards = append(rep.Cards, b.back(slot, rec))
	}
	return rep, nil
}

func (b *Builder) front(slot int, rec card.Record, defaultColor card.ColorKey) (CardResult, []string) {
	addr := b.Duplex.Front(slot)
	cell := b.Grid.Cell(addr)
	key := card.Resolve(rec.Color, defaultColor)
	bg := style.FromColorful(key.Color())
	st := style.Front(b.FontFamily, textfit.Foreground(key.Color()))

	res := CardResult{Slot: slot, Face: FaceFront, Cell: addr, Color: key, Blank: rec.IsBlank()}
	var cleanup []string

	if b.Image != nil {
		ops, block, cerr, err := b.imageFront(cell, rec.Question, bg, st)
		if cerr != nil {
			cleanup = append(cleanup, cerr.Error())
			b.Logger.Warn("temp image not removed", zap.Int("slot", slot), zap.Error(cerr))
		}
		if err == nil {
			res.Ops, res.Truncated = ops, block.Truncated
			b.logFace(res)
			return res, cleanup
		}
		res.Status = StatusDegraded
		res.Warning = err.Error()
		res.Err = err
		b.Logger.Warn("image layout failed, drawing text only",
			zap.Int("slot", slot), zap.Error(err))
	}

	block := b.Fitter.Fit(cell, rec.Question, st)
	ops := b.withBorder(cell, render.FillRect{Rect: cell, Color: bg}, render.DrawText{Block: block})
	if err := b.Backend.Execute(ops); err != nil {
		b.degrade(&res, err)
		return res, cleanup
	}
	res.Ops, res.Truncated = ops, block.Truncated
	b.logFace(res)
	return res, cleanup
}

// imageFront draws the front with the image in a square region at the
// bottom of the cell and the text above it, shrunk to fit. The temporary PNG is
// removed before returning; a failed removal is reported in cleanupErr.
func (b *Builder) imageFront(cell layout.Rect, text string, bg style.RGBColor, st style.TextStyle) (ops []render.Op, block textfit.Block, cleanupErr, err error) {
	flat, err := imaging.Flatten(b.Image, bg)
	if err != nil {
		return nil, block, nil, err
	}
	art, err := imaging.WriteTemp(flat, b.TempDir)
	if err != nil {
		return nil, block, nil, err
	}
	defer func() { cleanupErr = art.Release() }()

	region, textBox := ImageRegions(cell)
	w, h := imaging.AspectFit(flat, region.W, region.H)
	imgRect := layout.Rect{
		X: region.X + (region.W-w)/2,
		Y: region.Y + (region.H-h)/2,
		W: w,
		H: h,
	}

	fitter := b.Fitter
	fitter.Overflow = textfit.OverflowShrink
	block = fitter.Fit(textArea(cell, textBox, fitter.Padding), text, st)
	ops = b.withBorder(cell,
		render.FillRect{Rect: cell, Color: bg},
		render.DrawImage{Path: art.Path, Rect: imgRect, Type: "PNG"},
		render.DrawText{Block: block},
	)
	if err := b.Backend.Execute(ops); err != nil {
		return nil, block, nil, err
	}
	return ops, block, nil, nil
}

// ImageRegions splits a front cell into the square image region and the
// text box above it.
func ImageRegions(cell layout.Rect) (img, text layout.Rect) {
	side := cell.H / 2
	img = layout.Rect{X: cell.X + (cell.W-side)/2, Y: cell.Y + Spacing, W: side, H: side}
	text = layout.Rect{
		X: cell.X,
		Y: img.Y + img.H + Spacing,
		W: cell.W,
		H: max(cell.H-(3*Spacing+img.H), 0),
	}
	return img, text
}

// textArea is where image-mode text is fitted: it starts at the bottom of
// the text box and grows up to the padding below the cell's top edge. The
// text box alone is too short to hold a single padded line.
func textArea(cell, textBox layout.Rect, pad float64) layout.Rect {
	return layout.Rect{
		X: textBox.X,
		Y: textBox.Y - pad,
		W: textBox.W,
		H: cell.Top() - textBox.Y + pad,
	}
}

func (b *Builder) back(slot int, rec card.Record) CardResult {
	addr := b.Duplex.Back(slot)
	cell := b.Grid.Cell(addr)
	res := CardResult{Slot: slot, Face: FaceBack, Cell: addr, Blank: rec.IsBlank()}

	block := b.Fitter.Fit(cell, rec.Back, style.Back(b.FontFamily))
	ops := b.withBorder(cell, render.DrawText{Block: block})
	if err := b.Backend.Execute(ops); err != nil {
		b.degrade(&res, err)
		return res
	}
	res.Ops, res.Truncated = ops, block.Truncated
	b.logFace(res)
	return res
}

func (b *Builder) withBorder(cell layout.Rect, ops ...render.Op) []render.Op {
	if b.Borders {
		ops = append(ops, render.StrokeRect{Rect: cell, Border: style.Hairline})
	}
	return ops
}

func (b *Builder) degrade(res *CardResult, err error) {
	res.Status = StatusDegraded
	res.Err = errors.Join(res.Err, err)
	if res.Warning != "" {
		res.Warning = fmt.Sprintf("%s; %v", res.Warning, err)
	} else {
		res.Warning = err.Error()
	}
	b.Logger.Warn("card face not drawn",
		zap.Int("slot", res.Slot), zap.Stringer("face", res.Face), zap.Error(err))
}

func (b *Builder) logFace(res CardResult) {
	if ce := b.Logger.Check(zap.DebugLevel, "card face drawn"); ce != nil {
		ce.Write(
			zap.Int("slot", res.Slot),
			zap.Stringer("face", res.Face),
			zap.Stringer("cell", res.Cell),
			zap.Stringer("status", res.Status),
			zap.Bool("blank", res.Blank),
			zap.Bool("truncated", res.Truncated),
			zap.Strings("ops", render.Describe(res.Ops)),
		)
	}
}
