package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
)

// Artifact is a temporary PNG file holding one composited image. It must be
// released once the image has been drawn.
type Artifact struct {
	Path     string
	released bool
}

// WriteTemp encodes img as PNG into a new file in dir (the system temp
// directory when dir is empty).
func WriteTemp(img image.Image, dir string) (*Artifact, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(dir, "cardsheet-*.png")
	if err != nil {
		return nil, fmt.Errorf("imaging: creating temp file: %w", err)
	}
	a := &Artifact{Path: f.Name()}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, errors.Join(fmt.Errorf("imaging: writing %s: %w", a.Path, err), a.Release())
	}
	if err := f.Close(); err != nil {
		return nil, errors.Join(fmt.Errorf("imaging: closing %s: %w", a.Path, err), a.Release())
	}
	return a, nil
}

// Release deletes the file. It is safe to call more than once; only the
// first call touches the file system.
func (a *Artifact) Release() error {
	if a == nil || a.released {
		return nil
	}
	a.released = true
	if err := os.Remove(a.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("imaging: removing temp file: %w", err)
	}
	return nil
}
