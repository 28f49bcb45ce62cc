package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card image directory",
	Long: `Validate checks that a directory holds a loadable image for every card
identifier from 1 to 52. Without a path the configured asset directory is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		assetPath := e.cfg.AssetDir
		if len(args) == 1 {
			assetPath = args[0]
		}

		opts, err := e.preloadOptions()
		if err != nil {
			return err
		}

		v := validator.NewValidator(assetPath, opts)
		results, err := v.Validate(cmd.Context())
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ '%s' has all %d card images.\n", assetPath, card.DeckSize)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d validation errors:\n", assetPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
