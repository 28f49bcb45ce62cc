package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcanaland/cardfan/internal/hand"
	"github.com/arcanaland/cardfan/internal/preload"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#58a6ff"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f85149"))
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#0070f3")).
			Padding(0, 2)
)

// NoMoreCardsNotice is shown when a draw is attempted on an empty deck.
const NoMoreCardsNotice = "No more cards in the deck!"

// Screen is everything shown for one frame of the interactive view.
type Screen struct {
	Title     string
	Hand      hand.Hand
	Hover     hand.Hover
	Remaining int
	State     preload.State
	Failed    int // card images that could not be loaded
	Notice    string
	// Art is the enlarged rendering of the hovered card, if any.
	Art string
}

// Render composes the header, fan, hovered card art and key help.
func (s Screen) Render(f *Fan) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(s.Title))
	b.WriteString("  ")
	b.WriteString(buttonStyle.Render("Draw a Card"))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(fmt.Sprintf("hand %d · deck %d", len(s.Hand), s.Remaining)))
	if s.Failed > 0 {
		b.WriteString(subtleStyle.Render(" · "))
		b.WriteString(noticeStyle.Render(failedText(s.Failed)))
	}
	b.WriteString("\n\n")

	if len(s.Hand) > 0 {
		fan := f.Render(hand.Layout(s.Hand, s.Hover), s.State)
		if s.Art != "" && s.State == preload.Ready {
			fan = JoinColumns(fan, s.Art, 4)
		}
		b.WriteString(fan)
	}

	if s.Notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(s.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("[d] draw  [←/→] hover  [esc] clear  [q] quit"))
	b.WriteString("\n")
	return b.String()
}

func failedText(n int) string {
	if n == 1 {
		return "1 image failed to load"
	}
	return fmt.Sprintf("%d images failed to load", n)
}

// JoinColumns places right beside left, padding each line of left to a
// common visible width.
func JoinColumns(left, right string, gap int) string {
	ll := strings.Split(strings.TrimSuffix(left, "\n"), "\n")
	rl := strings.Split(strings.TrimSuffix(right, "\n"), "\n")

	lw := 0
	for _, l := range ll {
		lw = max(lw, visibleWidth(l))
	}

	n := max(len(ll), len(rl))
	var b strings.Builder
	for i := 0; i < n; i++ {
		l, r := "", ""
		if i < len(ll) {
			l = ll[i]
		}
		if i < len(rl) {
			r = rl[i]
		}
		b.WriteString(l)
		if r != "" {
			b.WriteString(strings.Repeat(" ", lw-visibleWidth(l)+gap))
			b.WriteString(r)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func visibleWidth(s string) int {
	return lipgloss.Width(s)
}
