// Package imaging prepares the optional front-face image: decoding,
// downscaling, flattening its transparency onto the card color and writing
// the result to a scoped temporary PNG.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultMaxPixels bounds the longer side of the embedded image.
const DefaultMaxPixels = 1024

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP,
// WebP) and returns it with its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imaging: decoding image: %w", err)
	}
	return img, format, nil
}

// Bound downscales img so neither side exceeds maxPixels. Smaller images
// and a non-positive bound leave img unchanged.
func Bound(img image.Image, maxPixels int) image.Image {
	if maxPixels <= 0 {
		return img
	}
	b := img.Bounds()
	if b.Dx() <= maxPixels && b.Dy() <= maxPixels {
		return img
	}
	return resize.Thumbnail(uint(maxPixels), uint(maxPixels), img, resize.Lanczos3)
}

// Flatten composites img over an opaque background of color bg, removing
// any transparency.
func Flatten(img image.Image, bg color.Color) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("imaging: no image to flatten")
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("imaging: empty image %v", b)
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(opaque(bg)), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst, nil
}

func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
}

// EncodePNG returns img encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("imaging: encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// AspectFit returns the largest w x h with img's aspect ratio that fits in
// a boxW x boxH box.
func AspectFit(img image.Image, boxW, boxH float64) (w, h float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return boxW, boxH
	}
	ratio := float64(b.Dx()) / float64(b.Dy())
	if boxW/boxH > ratio {
		return boxH * ratio, boxH
	}
	return boxW, boxW / ratio
}
