package preload

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/arcanaland/cardfan/internal/card"
)

// State is the image-loading state of a hand. It only moves from
// Loading to Ready.
type State int

const (
	Loading State = iota
	Ready
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Policy decides what a failed load does to the batch.
type Policy int

const (
	// Skip logs the failure and lets the batch become Ready without that image.
	Skip Policy = iota
	// Stall keeps the batch Loading after any failure.
	Stall
)

// ParsePolicy maps a config value to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "skip", "":
		return Skip, nil
	case "stall":
		return Stall, nil
	default:
		return 0, fmt.Errorf("unknown load failure policy %q", s)
	}
}

// Loader fetches one card image.
type Loader interface {
	Load(ctx context.Context, id card.ID) (image.Image, error)
}

// Options controls one preload batch. The zero value loads every card at
// once with no timeout and skips failures.
type Options struct {
	Timeout     time.Duration // zero means no timeout
	Concurrency int           // zero means one goroutine per card
	Policy      Policy
	Logger      *zap.Logger
}

// Result is the outcome of one preload batch.
type Result struct {
	State   State
	Images  map[card.ID]image.Image
	Missing map[card.ID]error
}

// Err joins the load failures in card order, or returns nil.
func (r Result) Err() error {
	if len(r.Missing) == 0 {
		return nil
	}
	ids := make([]card.ID, 0, len(r.Missing))
	for id := range r.Missing {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	errs := make([]error, len(ids))
	for i, id := range ids {
		errs[i] = fmt.Errorf("card %d: %w", int(id), r.Missing[id])
	}
	return errors.Join(errs...)
}

// Preload loads every distinct card in ids and waits for all of them.
// Loads that have not finished when ctx is cancelled or the timeout
// expires are recorded as missing.
func Preload(ctx context.Context, loader Loader, ids []card.ID, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	res := Result{
		Images:  make(map[card.ID]image.Image, len(ids)),
		Missing: make(map[card.ID]error),
	}
	var mu sync.Mutex

	// Failures are collected rather than returned, so one bad image does
	// not cancel its siblings.
	g := new(errgroup.Group)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}

	seen := make(map[card.ID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		g.Go(func() error {
			img, err := load(ctx, loader, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("error preloading card image", zap.Int("card", int(id)), zap.Error(err))
				res.Missing[id] = err
				return nil
			}
			res.Images[id] = img
			return nil
		})
	}
	_ = g.Wait()

	switch {
	case len(res.Missing) == 0:
		res.State = Ready
	case opts.Policy == Skip:
		logger.Warn("hand ready with missing images", zap.Int("missing", len(res.Missing)))
		res.State = Ready
	default:
		res.State = Loading
	}
	return res
}

// load runs one Load, giving up as soon as ctx is done even if the
// loader itself ignores cancellation.
func load(ctx context.Context, loader Loader, id card.ID) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		img image.Image
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		img, err := loader.Load(ctx, id)
		done <- outcome{img, err}
	}()

	select {
	case o := <-done:
		return o.img, o.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
