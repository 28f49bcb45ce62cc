package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/hand"
)

var (
	layoutHeaderStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff")).Padding(0, 1)
	layoutCellStyle    = lipgloss.NewStyle().Padding(0, 1)
	layoutHoveredStyle = layoutCellStyle.Foreground(lipgloss.Color("#f0b400"))
	layoutBorderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the fan transforms for a hand of n cards",
	Long: `Layout prints the CSS transform, stacking order and shadow row slot of
every card in a hand of n cards, optionally with one card popped out.

Examples:
  cardfan layout -n 5
  cardfan layout -n 52 --hover 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("count")
		if n < 0 || n > card.DeckSize {
			return fmt.Errorf("count must be between 0 and %d", card.DeckSize)
		}

		h := make(hand.Hand, n)
		for i := range h {
			h[i] = card.ID(i + 1)
		}

		hover := hand.NoHover
		if cmd.Flags().Changed("hover") {
			i, _ := cmd.Flags().GetInt("hover")
			hover.Enter(i, n)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "cards: %d  angle increment: %.4gdeg  reserved height: %gpx\n\n",
			n, hand.AngleIncrement(hand.Total(n)), hand.ReservedHeight(h, hover))

		fmt.Fprintln(out, layoutTable(h, hover))
		return nil
	},
}

// layoutTable renders one row per placement, the hovered row marked with *.
func layoutTable(h hand.Hand, hover hand.Hover) string {
	shadow := hand.ShadowRow(h, hover)
	placements := hand.Layout(h, hover)

	rows := make([][]string, 0, len(placements))
	for i, p := range placements {
		pos := strconv.Itoa(p.Index)
		if p.Hovered {
			pos += " *"
		}
		rows = append(rows, []string{
			pos,
			strconv.Itoa(int(p.Card)),
			strconv.Itoa(p.Z),
			p.CSS(),
			fmt.Sprintf("%gpx", shadow[i].Height),
		})
	}

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(layoutBorderStyle).
		Headers("POS", "CARD", "Z", "TRANSFORM", "SHADOW").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == ltable.HeaderRow:
				return layoutHeaderStyle
			case row >= 0 && row < len(placements) && placements[row].Hovered:
				return layoutHoveredStyle
			default:
				return layoutCellStyle
			}
		})
	return t.String()
}

func init() {
	RootCmd.AddCommand(layoutCmd)

	layoutCmd.Flags().IntP("count", "n", 5, "Number of cards in the hand")
	layoutCmd.Flags().Int("hover", 0, "Position in the hand to pop out")
}
