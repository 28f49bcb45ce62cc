package preload

import (
	"context"
	"image"

	"github.com/arcanaland/cardfan/internal/card"
)

// Tracker keeps the images of a growing hand. Each card is attempted
// once; failed cards are not retried.
type Tracker struct {
	loader  Loader
	opts    Options
	images  map[card.ID]image.Image
	missing map[card.ID]error
}

// NewTracker returns an empty tracker that loads through loader with opts.
func NewTracker(loader Loader, opts Options) *Tracker {
	return &Tracker{
		loader:  loader,
		opts:    opts,
		images:  make(map[card.ID]image.Image),
		missing: make(map[card.ID]error),
	}
}

// Sync preloads the cards of ids not attempted yet and returns the
// state of the whole hand.
func (t *Tracker) Sync(ctx context.Context, ids []card.ID) State {
	var pending []card.ID
	for _, id := range ids {
		if _, ok := t.images[id]; ok {
			continue
		}
		if _, ok := t.missing[id]; ok {
			continue
		}
		pending = append(pending, id)
	}

	if len(pending) > 0 {
		res := Preload(ctx, t.loader, pending, t.opts)
		for id, img := range res.Images {
			t.images[id] = img
		}
		for id, err := range res.Missing {
			t.missing[id] = err
		}
	}

	return t.State(ids)
}

// State reports whether the hand ids can be shown.
func (t *Tracker) State(ids []card.ID) State {
	for _, id := range ids {
		if _, ok := t.images[id]; ok {
			continue
		}
		if _, failed := t.missing[id]; failed && t.opts.Policy == Skip {
			continue
		}
		return Loading
	}
	return Ready
}

// Image returns the loaded image for id.
func (t *Tracker) Image(id card.ID) (image.Image, bool) {
	img, ok := t.images[id]
	return img, ok
}

// Failed returns how many cards could not be loaded.
func (t *Tracker) Failed() int {
	return len(t.missing)
}
