package cmd

import (
	"context"
	"errors"

	"github.com/arcanaland/cardfan/internal/assets"
	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/hand"
	"github.com/arcanaland/cardfan/internal/preload"
	"github.com/arcanaland/cardfan/internal/session"
	"github.com/arcanaland/cardfan/internal/view"
)

// table ties one session to its image tracker and hover state.
type table struct {
	set      *assets.Set
	session  *session.Session
	tracker  *preload.Tracker
	renderer *card.Renderer
	fan      *view.Fan
	hover    hand.Hover
	notice   string
}

func newTable(e *env, set *assets.Set, sess *session.Session) (*table, error) {
	opts, err := e.preloadOptions()
	if err != nil {
		return nil, err
	}

	fan := view.NewFan(terminalWidth() / 2)
	fan.Label = func(p hand.Placement) string {
		if p.Hovered {
			return set.AltText(p.Card)
		}
		return p.Card.String()
	}

	return &table{
		set:      set,
		session:  sess,
		tracker:  preload.NewTracker(set, opts),
		renderer: e.renderer(),
		fan:      fan,
	}, nil
}

// draw pulls one card and loads its image. An empty deck only sets the
// notice.
func (t *table) draw(ctx context.Context) {
	t.notice = ""
	if _, err := t.session.Draw(); err != nil {
		if errors.Is(err, session.ErrNoMoreCards) {
			t.notice = view.NoMoreCardsNotice
		} else {
			t.notice = err.Error()
		}
		return
	}
	t.tracker.Sync(ctx, t.session.Hand())
}

func (t *table) frame() string {
	h := t.session.Hand()
	s := view.Screen{
		Title:     t.set.Name,
		Hand:      h,
		Hover:     t.hover,
		Remaining: t.session.Remaining(),
		State:     t.tracker.State(h),
		Failed:    t.tracker.Failed(),
		Notice:    t.notice,
	}

	if i, ok := t.hover.Within(len(h)); ok {
		if img, ok := t.tracker.Image(h[i]); ok {
			s.Art = t.renderer.Render(img, true)
		}
	}

	return s.Render(t.fan)
}
