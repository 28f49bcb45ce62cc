package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardfan",
	Short: "Draw cards from a 52-card deck and fan them out in your terminal",
	Long: `Cardfan draws random cards from a virtual 52-card deck and shows the
hand as a fan. Each card identifier (1-52) maps to one image in your
asset directory, rendered as ANSI art when a card is hovered.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}
