// Package assetstest writes small card image sets for tests.
package assetstest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanaland/cardfan/internal/card"
)

// WriteCards writes a 4x6 PNG named "<id>.png" for each id into dir.
func WriteCards(t testing.TB, dir string, ids ...card.ID) {
	t.Helper()

	for _, id := range ids {
		img := image.NewRGBA(image.Rect(0, 0, 4, 6))
		shade := uint8(id * 4)
		for y := 0; y < 6; y++ {
			for x := 0; x < 4; x++ {
				img.Set(x, y, color.RGBA{shade, 255 - shade, 128, 255})
			}
		}

		f, err := os.Create(filepath.Join(dir, id.String()+".png"))
		if err != nil {
			t.Fatalf("create card %d: %v", id, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			t.Fatalf("encode card %d: %v", id, err)
		}
		if err := f.Close(); err != nil {
			t.Fatalf("close card %d: %v", id, err)
		}
	}
}

// WriteFullSet writes all 52 cards into a fresh temp dir and returns it.
func WriteFullSet(t testing.TB) string {
	t.Helper()
	dir := t.TempDir()
	WriteCards(t, dir, card.All()...)
	return dir
}
