package validator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardfan/internal/assets"
	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/preload"
)

// ValidationResults holds the problems found in an asset directory.
// Errors make the directory unusable; warnings do not.
type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks an asset directory.
type Validator struct {
	AssetPath string
	Options   preload.Options
	Results   ValidationResults
}

// NewValidator creates a validator for the directory at assetPath. Image
// decoding uses the concurrency and timeout of opts.
func NewValidator(assetPath string, opts preload.Options) *Validator {
	opts.Policy = preload.Skip
	return &Validator{
		AssetPath: assetPath,
		Options:   opts,
		Results:   ValidationResults{},
	}
}

// Validate checks that the asset directory can serve every card.
func (v *Validator) Validate(ctx context.Context) (ValidationResults, error) {
	set, err := v.validateManifest()
	if err != nil {
		return v.Results, err
	}

	v.validateImages(ctx, set)
	v.validateStrayFiles(set)

	return v.Results, nil
}

func (v *Validator) validateManifest() (*assets.Set, error) {
	manifestPath := filepath.Join(v.AssetPath, assets.ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s not found, using image pattern %q", assets.ManifestFile, assets.DefaultImagePattern))
	} else {
		var m assets.Manifest
		if _, err := toml.DecodeFile(manifestPath, &m); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", assets.ManifestFile, err)
		}
		if m.Deck.Name == "" {
			v.Results.Warnings = append(v.Results.Warnings, "deck.name is not set in "+assets.ManifestFile)
		}
		for key := range m.Deck.AltText {
			if _, err := card.ParseID(key); err != nil {
				v.Results.Errors = append(v.Results.Errors,
					fmt.Sprintf("deck.alt_text has unknown card %q", key))
			}
		}
	}

	return assets.Open(v.AssetPath)
}

// validateImages loads every card image and reports the ones that fail.
func (v *Validator) validateImages(ctx context.Context, set *assets.Set) {
	res := preload.Preload(ctx, set, card.All(), v.Options)

	var missing, broken []string
	for _, id := range card.All() {
		err, failed := res.Missing[id]
		if !failed {
			continue
		}
		if errors.Is(err, assets.ErrNotFound) {
			missing = append(missing, id.String())
		} else {
			broken = append(broken, fmt.Sprintf("%d (%v)", int(id), err))
		}
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing card images: %s", strings.Join(missing, ", ")))
	}
	for _, b := range broken {
		v.Results.Errors = append(v.Results.Errors, "unreadable card image: "+b)
	}
}

// validateStrayFiles warns about files next to the card images that no
// card identifier maps to.
func (v *Validator) validateStrayFiles(set *assets.Set) {
	expected := map[string]bool{}
	for _, id := range card.All() {
		expected[set.ImagePath(id)] = true
	}

	imageDir := filepath.Dir(set.ImagePath(1))
	entries, err := os.ReadDir(imageDir)
	if err != nil {
		return
	}

	var stray []string
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == assets.ManifestFile {
			continue
		}
		if !expected[filepath.Join(imageDir, entry.Name())] {
			stray = append(stray, entry.Name())
		}
	}
	sort.Strings(stray)

	if len(stray) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("files not used by any card: %s", strings.Join(stray, ", ")))
	}
}
