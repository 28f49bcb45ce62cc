package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardfan/internal/session"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw cards and print the fanned hand once",
	Long: `Draw takes cards from a fresh deck and prints the resulting fan.

Examples:
  cardfan draw -n 5
  cardfan draw -n 8 --seed 42 --hover 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n < 0 {
			return fmt.Errorf("count must not be negative")
		}

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		set, err := e.openAssets()
		if err != nil {
			return err
		}

		t, err := newTable(e, set, session.New(rngFromFlags(cmd), e.logger))
		if err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			t.draw(cmd.Context())
		}

		if cmd.Flags().Changed("hover") {
			i, _ := cmd.Flags().GetInt("hover")
			t.hover.Enter(i, len(t.session.Hand()))
		}

		fmt.Fprint(cmd.OutOrStdout(), t.frame())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(drawCmd)

	drawCmd.Flags().IntP("count", "n", 1, "Number of cards to draw")
	drawCmd.Flags().Int("hover", 0, "Position in the hand to pop out")
	addSeedFlag(drawCmd)
	addAssetsFlag(drawCmd)
}
