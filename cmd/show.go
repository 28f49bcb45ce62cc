package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/view"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a single card as ANSI art",
	Long: `Show renders one card image from your asset directory as ANSI art.
Card identifiers run from 1 to 52.

Examples:
  cardfan show 7
  cardfan show --enlarged 52
  cardfan show --assets ./cards 1`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := card.ParseID(args[0])
		if err != nil {
			return err
		}
		enlarged, _ := cmd.Flags().GetBool("enlarged")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		set, err := e.openAssets()
		if err != nil {
			return err
		}

		art, err := e.renderer().RenderFile(set.ImagePath(id), enlarged)
		if err != nil {
			return fmt.Errorf("error rendering card %d: %w", int(id), err)
		}

		info := colorize.CyanString("Card: ") + colorize.HiWhiteString("%d", int(id)) + "\n" +
			colorize.CyanString("Deck: ") + colorize.HiWhiteString("%s", set.Name) + "\n" +
			colorize.CyanString("Alt:  ") + colorize.HiWhiteString("%s", set.AltText(id)) + "\n" +
			colorize.CyanString("File: ") + colorize.HiWhiteString("%s", set.ImagePath(id)) + "\n"

		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprint(out, view.JoinColumns(art, info, 4))
		fmt.Fprintln(out)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("enlarged", false, "Render the card at its enlarged size")
	addAssetsFlag(showCmd)
}
