package cardsheet

import (
	"go.uber.org/zap"

	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/imaging"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/style"
	"github.com/lvillar/cardsheet/textfit"
)

// Option configures a Generator created with New.
type Option func(*generatorConfig)

type generatorConfig struct {
	defaultColor   card.ColorKey
	flip           layout.FlipAxis
	overflow       textfit.Overflow
	minFontSize    float64
	fontFamily     string
	borders        bool
	imageMaxPixels int
	tempDir        string
	logger         *zap.Logger
	title          string
}

func defaultConfig() generatorConfig {
	return generatorConfig{
		flip:           layout.FlipVertical,
		overflow:       textfit.OverflowClamp,
		minFontSize:    textfit.DefaultMinFontSize,
		fontFamily:     style.DefaultFamily,
		borders:        true,
		imageMaxPixels: imaging.DefaultMaxPixels,
		logger:         zap.NewNop(),
	}
}

// WithDefaultColor sets the deck color, overriding the guess made from the
// input file name. Cards with their own color tag keep it.
func WithDefaultColor(c card.ColorKey) Option {
	return func(cfg *generatorConfig) {
		cfg.defaultColor = c
	}
}

// WithFlipAxis sets how the back page is mirrored.
// layout.FlipVertical (the default) mirrors columns, layout.FlipHorizontal
// mirrors rows.
func WithFlipAxis(a layout.FlipAxis) Option {
	return func(cfg *generatorConfig) {
		cfg.flip = a
	}
}

// WithOverflow sets the policy for text taller than its card.
func WithOverflow(o textfit.Overflow) Option {
	return func(cfg *generatorConfig) {
		cfg.overflow = o
	}
}

// WithMinFontSize bounds how far textfit.OverflowShrink may reduce text.
func WithMinFontSize(size float64) Option {
	return func(cfg *generatorConfig) {
		cfg.minFontSize = size
	}
}

// WithFontFamily selects one of the core fonts (Helvetica, Arial, Times,
// Courier).
func WithFontFamily(family string) Option {
	return func(cfg *generatorConfig) {
		cfg.fontFamily = family
	}
}

// WithBorders toggles the light gray cutting border around each card.
func WithBorders(on bool) Option {
	return func(cfg *generatorConfig) {
		cfg.borders = on
	}
}

// WithImageMaxPixels bounds the longer side of the front image before it is
// embedded. Zero or less keeps the original size.
func WithImageMaxPixels(n int) Option {
	return func(cfg *generatorConfig) {
		cfg.imageMaxPixels = n
	}
}

// WithTempDir sets where composited images are written while drawing.
func WithTempDir(dir string) Option {
	return func(cfg *generatorConfig) {
		cfg.tempDir = dir
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(cfg *generatorConfig) {
		if l == nil {
			l = zap.NewNop()
		}
		cfg.logger = l
	}
}

// WithTitle sets the PDF title. It defaults to the input file name.
func WithTitle(title string) Option {
	return func(cfg *generatorConfig) {
		cfg.title = title
	}
}
