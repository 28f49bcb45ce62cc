package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/cardfan/internal/assets"
	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/config"
	"github.com/arcanaland/cardfan/internal/deck"
	"github.com/arcanaland/cardfan/internal/logging"
	"github.com/arcanaland/cardfan/internal/preload"
)

// env is what every command needs once config is loaded.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if dir, _ := cmd.Flags().GetString("assets"); dir != "" {
		cfg.AssetDir = dir
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, logger: logger}, nil
}

func (e *env) openAssets() (*assets.Set, error) {
	set, err := assets.Open(e.cfg.AssetDir)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun 'cardfan assets init' and copy 1.png ... 52.png into %s", err, e.cfg.AssetDir)
	}
	return set, nil
}

func (e *env) preloadOptions() (preload.Options, error) {
	policy, err := preload.ParsePolicy(e.cfg.OnLoadFailure)
	if err != nil {
		return preload.Options{}, err
	}
	return preload.Options{
		Timeout:     e.cfg.PreloadTimeout.Duration,
		Concurrency: e.cfg.PreloadConcurrency,
		Policy:      policy,
		Logger:      e.logger,
	}, nil
}

func (e *env) renderer() *card.Renderer {
	return card.NewRenderer(e.cfg.ArtWidth, e.cfg.ArtHeight, config.GetCacheDir())
}

func rngFromFlags(cmd *cobra.Command) deck.RNG {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return deck.SeededRNG(seed)
	}
	return deck.StdRNG{}
}

// terminalWidth falls back to 80 columns when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

func addAssetsFlag(c *cobra.Command) {
	c.Flags().StringP("assets", "a", "", "Card image directory (overrides asset_dir in the config)")
}

func addSeedFlag(c *cobra.Command) {
	c.Flags().Uint64("seed", 0, "Seed the deck for a reproducible draw order")
}
