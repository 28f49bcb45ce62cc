package assets_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardfan/internal/assets"
	"github.com/arcanaland/cardfan/internal/assets/assetstest"
	"github.com/arcanaland/cardfan/internal/card"
)

func TestOpenWithoutManifest(t *testing.T) {
	dir := t.TempDir()
	assetstest.WriteCards(t, dir, 1, 2)

	s, err := assets.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), s.Name)
	assert.Equal(t, filepath.Join(dir, "7.png"), s.ImagePath(7))
	assert.Equal(t, "Card 7", s.AltText(7))

	img, err := s.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 4, img.Bounds().Dx())

	_, err = s.Load(context.Background(), 3)
	assert.ErrorIs(t, err, assets.ErrNotFound)

	_, err = s.Load(context.Background(), 99)
	assert.ErrorIs(t, err, card.ErrInvalidID)
}

func TestOpenWithManifest(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, assets.ManifestFile), []byte(`
[deck]
name = "Classic"
image_pattern = "front/card-%d.png"

[deck.alt_text]
1 = "Ace of spades"
`), 0644))

	s, err := assets.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "Classic", s.Name)
	assert.Equal(t, filepath.Join(dir, "front", "card-12.png"), s.ImagePath(12))
	assert.Equal(t, "Ace of spades", s.AltText(1))
	assert.Equal(t, "Card 2", s.AltText(2))
}

func TestOpenRejectsBadPattern(t *testing.T) {
	for _, pattern := range []string{"card.png", "%d-%d.png", "../%d.png", "%s.png"} {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, assets.ManifestFile),
			[]byte("[deck]\nimage_pattern = \""+pattern+"\"\n"), 0644))

		_, err := assets.Open(dir)
		assert.Error(t, err, pattern)
	}
}

func TestLoadHonoursCancelledContext(t *testing.T) {
	dir := t.TempDir()
	assetstest.WriteCards(t, dir, 1)
	s, err := assets.Open(dir)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Load(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cards")
	require.NoError(t, assets.Init(dir))

	s, err := assets.Open(dir)
	require.NoError(t, err)
	assert.Equal(t, "cards", s.Name)
	assert.Equal(t, assets.DefaultImagePattern, s.Manifest.Deck.ImagePattern)

	// Second init keeps the existing manifest.
	require.NoError(t, assets.Init(dir))
}

func TestOpenMissingDir(t *testing.T) {
	_, err := assets.Open(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
