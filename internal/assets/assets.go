package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardfan/internal/card"
)

// ManifestFile is the optional manifest at the root of an asset directory.
const ManifestFile = "deck.toml"

// DefaultImagePattern names card images by identifier.
const DefaultImagePattern = "%d.png"

// ErrNotFound is returned when a card image does not exist.
var ErrNotFound = errors.New("card image not found")

// Set is a directory holding one image per card identifier
type Set struct {
	Name     string
	Path     string
	Manifest Manifest
}

// Manifest describes an asset directory
type Manifest struct {
	Deck DeckSection `toml:"deck"`
}

// DeckSection is the [deck] table of deck.toml.
type DeckSection struct {
	Name         string            `toml:"name"`
	Author       string            `toml:"author"`
	License      string            `toml:"license"`
	ImagePattern string            `toml:"image_pattern"`
	AltText      map[string]string `toml:"alt_text"`
}

// Open loads an asset set from a directory. The manifest is optional;
// without one the set uses DefaultImagePattern.
func Open(dir string) (*Set, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("asset directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %s is not a directory", dir)
	}

	s := &Set{
		Name: filepath.Base(dir),
		Path: dir,
	}

	manifestPath := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		if _, err := toml.DecodeFile(manifestPath, &s.Manifest); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", ManifestFile, err)
		}
	}

	if s.Manifest.Deck.Name != "" {
		s.Name = s.Manifest.Deck.Name
	}
	if s.Manifest.Deck.ImagePattern == "" {
		s.Manifest.Deck.ImagePattern = DefaultImagePattern
	}
	if err := checkPattern(s.Manifest.Deck.ImagePattern); err != nil {
		return nil, err
	}

	return s, nil
}

func checkPattern(pattern string) error {
	if strings.Count(pattern, "%d") != 1 || strings.Count(pattern, "%") != 1 {
		return fmt.Errorf("image_pattern %q must contain exactly one %%d", pattern)
	}
	if strings.Contains(pattern, "..") || filepath.IsAbs(pattern) {
		return fmt.Errorf("image_pattern %q must stay inside the asset directory", pattern)
	}
	return nil
}

// ImagePath resolves a card identifier to its image file.
func (s *Set) ImagePath(id card.ID) string {
	return filepath.Join(s.Path, fmt.Sprintf(s.Manifest.Deck.ImagePattern, int(id)))
}

// AltText returns the manifest alt text for id, or the default.
func (s *Set) AltText(id card.ID) string {
	if text, ok := s.Manifest.Deck.AltText[id.String()]; ok && text != "" {
		return text
	}
	return id.AltText()
}

// Load opens and decodes the image for id.
func (s *Set) Load(ctx context.Context, id card.ID) (image.Image, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", card.ErrInvalidID, int(id))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.ImagePath(id)
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// Init creates an asset directory with a default manifest. An existing
// manifest is left untouched.
func Init(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating asset directory: %w", err)
	}

	manifestPath := filepath.Join(dir, ManifestFile)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil
	}

	file, err := os.Create(manifestPath)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", ManifestFile, err)
	}
	defer file.Close()

	m := Manifest{Deck: DeckSection{
		Name:         filepath.Base(dir),
		ImagePattern: DefaultImagePattern,
	}}
	if err := toml.NewEncoder(file).Encode(m); err != nil {
		return fmt.Errorf("error encoding %s: %w", ManifestFile, err)
	}
	return nil
}
