// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imaging

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// Image kinds
const (
	KindPhoto  = "photo"
	KindSymbol = "symbol"
)

// Default rendering sizes in pixels (square)
const (
	DefaultPhotoSize  = 180
	DefaultSymbolSize = 60
)

// UnreadableImageError is returned when a file cannot be opened or decoded
type UnreadableImageError struct {
	Path string
	Err  error
}

func (e *UnreadableImageError) Error() string {
	return fmt.Sprintf("unreadable image %s: %v", e.Path, e.Err)
}

func (e *UnreadableImageError) Unwrap() error {
	return e.Err
}

// Loader reads JPEG/PNG files from disk and resizes them.
// It satisfies election.ImageLoader.
type Loader struct {
	PhotoSize  int
	SymbolSize int
}

func NewLoader(photoSize, symbolSize int) *Loader {
	if photoSize <= 0 {
		photoSize = DefaultPhotoSize
	}
	if symbolSize <= 0 {
		symbolSize = DefaultSymbolSize
	}
	return &Loader{PhotoSize: photoSize, SymbolSize: symbolSize}
}

func (l *Loader) LoadPhoto(path string) (image.Image, error) {
	return Load(path, l.PhotoSize, l.PhotoSize)
}

func (l *Loader) LoadSymbol(path string) (image.Image, error) {
	return Load(path, l.SymbolSize, l.SymbolSize)
}

// Load decodes the image at path and scales it to width x height
func Load(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &UnreadableImageError{Path: path, Err: err}
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, &UnreadableImageError{Path: path, Err: err}
	}

	return Resize(src, width, height), nil
}

// Resize scales src to exactly width x height using Catmull-Rom resampling
func Resize(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
