package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardfan/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Draw cards interactively",
	Long: `Play opens an interactive table with a full deck.

Keys:
  d, space    draw a card
  ←/→, h/l    move the hover between cards
  esc, 0      clear the hover
  q, ctrl-c   quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("play needs an interactive terminal; use 'cardfan draw' instead")
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

		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("error entering raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)

		out := cmd.OutOrStdout()
		paint(out, t.frame())

		buf := make([]byte, 8)
		for {
			n, err := os.Stdin.Read(buf)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("error reading input: %w", err)
			}

			switch parseKey(buf[:n]) {
			case keyQuit:
				paint(out, "")
				return nil
			case keyDraw:
				t.draw(cmd.Context())
			case keyNext:
				t.notice = ""
				t.hover.Next(len(t.session.Hand()))
			case keyPrev:
				t.notice = ""
				t.hover.Prev(len(t.session.Hand()))
			case keyClear:
				t.notice = ""
				t.hover.Leave()
			default:
				continue
			}

			if err := cmd.Context().Err(); err != nil {
				return nil
			}
			paint(out, t.frame())
		}
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	addSeedFlag(playCmd)
	addAssetsFlag(playCmd)
}

type key int

const (
	keyNone key = iota
	keyDraw
	keyNext
	keyPrev
	keyClear
	keyQuit
)

func parseKey(b []byte) key {
	switch string(b) {
	case "d", "D", " ":
		return keyDraw
	case "l", "\x1b[C":
		return keyNext
	case "h", "\x1b[D":
		return keyPrev
	case "\x1b", "0":
		return keyClear
	case "q", "Q", "\x03":
		return keyQuit
	}
	return keyNone
}

// paint clears the screen and writes s with the CRLF line endings raw
// mode needs.
func paint(w io.Writer, s string) {
	fmt.Fprint(w, "\x1b[H\x1b[2J")
	fmt.Fprint(w, strings.ReplaceAll(s, "\n", "\r\n"))
}
