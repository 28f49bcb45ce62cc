package card

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 52 ", want: 52},
		{in: "0", wantErr: true},
		{in: "53", wantErr: true},
		{in: "ace", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseID(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAll(t *testing.T) {
	ids := All()
	require.Len(t, ids, DeckSize)
	assert.Equal(t, ID(1), ids[0])
	assert.Equal(t, ID(52), ids[51])
	assert.Equal(t, "Card 7", ID(7).AltText())
}

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderDimensions(t *testing.T) {
	r := NewRenderer(8, 4, "")
	art := r.Render(solid(40, 40, color.RGBA{255, 0, 0, 255}), false)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 8, len([]rune(ansi.Strip(line))))
	}
	assert.Contains(t, art, "\x1b[38;2;")
	assert.Contains(t, art, "\x1b[0m")
}

func TestHalfBlockBlendsPairs(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{255, 0, 0, 255})
	img.Set(1, 0, color.RGBA{0, 0, 255, 255})
	img.Set(0, 1, color.White)
	img.Set(1, 1, color.Black)

	fg, bg := halfBlock(img, 0, 0)
	assert.Equal(t, color.RGBA{128, 0, 128, 255}, fg)
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, bg)
}

func TestHalfBlockOutsideImageIsBlack(t *testing.T) {
	img := solid(1, 1, color.RGBA{255, 0, 0, 255})

	fg, bg := halfBlock(img, 0, 0)
	assert.Equal(t, color.RGBA{128, 0, 0, 255}, fg)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, bg)
}

func TestRenderEnlarged(t *testing.T) {
	r := NewRenderer(8, 4, "")
	r.TrueColor = false

	art := r.Render(solid(10, 10, color.White), true)
	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, strings.Repeat("▀", 10), lines[0])
}

func TestRenderFileUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "1.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(4, 4, color.Black)))
	require.NoError(t, f.Close())

	r := NewRenderer(2, 2, filepath.Join(dir, "cache"))
	first, err := r.RenderFile(path, false)
	require.NoError(t, err)

	// The cached copy is served even once the source is gone.
	require.NoError(t, os.Remove(path))
	second, err := r.RenderFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = r.RenderFile(path, true)
	assert.Error(t, err)
}
