// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, name string, w, h int, asJPEG bool) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	if asJPEG {
		require.NoError(t, jpeg.Encode(f, img, nil))
	} else {
		require.NoError(t, png.Encode(f, img))
	}
	return path
}

func TestLoader_Sizes(t *testing.T) {
	loader := NewLoader(0, 0)
	photoPath := writeImage(t, "photo.png", 400, 300, false)
	symbolPath := writeImage(t, "symbol.jpg", 32, 32, true)

	photo, err := loader.LoadPhoto(photoPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, DefaultPhotoSize, DefaultPhotoSize), photo.Bounds())

	symbol, err := loader.LoadSymbol(symbolPath)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, DefaultSymbolSize, DefaultSymbolSize), symbol.Bounds())
}

func TestLoader_CustomSizes(t *testing.T) {
	loader := NewLoader(90, 30)
	path := writeImage(t, "photo.png", 10, 10, false)

	photo, err := loader.LoadPhoto(path)
	require.NoError(t, err)
	assert.Equal(t, 90, photo.Bounds().Dx())

	symbol, err := loader.LoadSymbol(path)
	require.NoError(t, err)
	assert.Equal(t, 30, symbol.Bounds().Dy())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"), 10, 10)

	var unreadable *UnreadableImageError
	require.ErrorAs(t, err, &unreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a png"), 0o644))

	_, err := Load(path, 10, 10)

	var unreadable *UnreadableImageError
	require.ErrorAs(t, err, &unreadable)
	assert.Equal(t, path, unreadable.Path)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, Resize(image.NewRGBA(image.Rect(0, 0, 5, 5)), 2, 2)))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, decoded.Bounds().Dx())
}
