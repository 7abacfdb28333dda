// Package config reads and writes the cardsheet TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/lvillar/cardsheet"
	"github.com/lvillar/cardsheet/card"
	"github.com/lvillar/cardsheet/imaging"
	"github.com/lvillar/cardsheet/layout"
	"github.com/lvillar/cardsheet/render"
	"github.com/lvillar/cardsheet/style"
	"github.com/lvillar/cardsheet/textfit"
)

// DefaultOutput is the file written when no output path is given.
const DefaultOutput = "cartes_recto_verso.pdf"

// Config holds the user settings. Empty fields fall back to built-in
// defaults.
type Config struct {
	// DefaultColor overrides the color guessed from the file name.
	DefaultColor   string  `toml:"default_color"`
	FlipAxis       string  `toml:"flip_axis"`
	Overflow       string  `toml:"overflow"`
	MinFontSize    float64 `toml:"min_font_size"`
	FontFamily     string  `toml:"font_family"`
	Borders        bool    `toml:"borders"`
	ImageMaxPixels int     `toml:"image_max_pixels"`
	Output         string  `toml:"output"`
	TempDir        string  `toml:"temp_dir"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		FlipAxis:       layout.FlipVertical.String(),
		Overflow:       textfit.OverflowClamp.String(),
		MinFontSize:    textfit.DefaultMinFontSize,
		FontFamily:     style.DefaultFamily,
		Borders:        true,
		ImageMaxPixels: imaging.DefaultMaxPixels,
		Output:         DefaultOutput,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// Path returns the path to the config file
func Path() string {
	return filepath.Join(GetXDGConfigHome(), "cardsheet", "config.toml")
}

// Load reads the config file at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: %s: unknown keys %v", path, undecoded)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory when needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: creating %s: %w", path, err)
	}
	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		file.Close()
		return fmt.Errorf("config: encoding: %w", err)
	}
	return file.Close()
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if c.DefaultColor != "" {
		if _, ok := card.ParseColorKey(c.DefaultColor); !ok {
			return fmt.Errorf("unknown default_color %q (want one of %v)", c.DefaultColor, card.ColorKeys)
		}
	}
	if _, err := layout.ParseFlipAxis(c.FlipAxis); err != nil {
		return err
	}
	if _, err := textfit.ParseOverflow(c.Overflow); err != nil {
		return err
	}
	if c.FontFamily != "" && !render.ValidFamily(c.FontFamily) {
		return fmt.Errorf("font_family %q is not one of %v", c.FontFamily, render.CoreFamilies)
	}
	if c.MinFontSize < 0 {
		return fmt.Errorf("min_font_size must not be negative")
	}
	return nil
}

// Options turns the settings into generator options. Call Validate first;
// invalid enumerations are skipped here.
func (c *Config) Options(logger *zap.Logger) []cardsheet.Option {
	opts := []cardsheet.Option{
		cardsheet.WithBorders(c.Borders),
		cardsheet.WithImageMaxPixels(c.ImageMaxPixels),
		cardsheet.WithTempDir(c.TempDir),
		cardsheet.WithLogger(logger),
	}
	if key, ok := card.ParseColorKey(c.DefaultColor); ok {
		opts = append(opts, cardsheet.WithDefaultColor(key))
	}
	if axis, err := layout.ParseFlipAxis(c.FlipAxis); err == nil {
		opts = append(opts, cardsheet.WithFlipAxis(axis))
	}
	if o, err := textfit.ParseOverflow(c.Overflow); err == nil {
		opts = append(opts, cardsheet.WithOverflow(o))
	}
	if c.MinFontSize > 0 {
		opts = append(opts, cardsheet.WithMinFontSize(c.MinFontSize))
	}
	if c.FontFamily != "" {
		opts = append(opts, cardsheet.WithFontFamily(c.FontFamily))
	}
	return opts
}
