package deck

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/cardfan/internal/card"
)

// ErrEmpty is returned when drawing from a deck with no cards left.
var ErrEmpty = errors.New("deck is empty")

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// StdRNG delegates to math/rand/v2 (auto-seeded).
type StdRNG struct{}

// Intn returns a uniform value in [0, n) from the global generator.
func (StdRNG) Intn(n int) int { return rand.IntN(n) }

type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

// SeededRNG returns a reproducible RNG.
func SeededRNG(seed uint64) RNG {
	return seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Deck is the pool of card identifiers not yet drawn. It only ever shrinks.
type Deck struct {
	cards []card.ID
	rng   RNG
}

// New returns a full deck holding identifiers 1..52 in order.
func New(rng RNG) *Deck {
	return &Deck{cards: card.All(), rng: rng}
}

// FromCards returns a deck whose remaining cards are exactly ids.
func FromCards(rng RNG, ids ...card.ID) (*Deck, error) {
	seen := make(map[card.ID]bool, len(ids))
	cards := make([]card.ID, 0, len(ids))
	for _, id := range ids {
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %d", card.ErrInvalidID, int(id))
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate card %d", int(id))
		}
		seen[id] = true
		cards = append(cards, id)
	}
	return &Deck{cards: cards, rng: rng}, nil
}

// Draw removes a uniformly random card and returns it.
func (d *Deck) Draw() (card.ID, error) {
	if len(d.cards) == 0 {
		return 0, ErrEmpty
	}

	i := d.rng.Intn(len(d.cards))
	id := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return id, nil
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Remaining returns a copy of the cards left, in their current order.
func (d *Deck) Remaining() []card.ID {
	out := make([]card.ID, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether id has not been drawn yet.
func (d *Deck) Contains(id card.ID) bool {
	for _, c := range d.cards {
		if c == id {
			return true
		}
	}
	return false
}
