package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arcanaland/cardfan/internal/card"
	"github.com/arcanaland/cardfan/internal/deck"
	"github.com/arcanaland/cardfan/internal/hand"
)

// ErrNoMoreCards is returned by a draw from an empty deck.
var ErrNoMoreCards = errors.New("no more cards in the deck")

// Session owns the deck and the drawn hand for one run. Draw is the only
// way either changes.
type Session struct {
	deck   *deck.Deck
	hand   hand.Hand
	logger *zap.Logger
}

// New starts a session with a full deck and an empty hand.
func New(rng deck.RNG, logger *zap.Logger) *Session {
	return FromDeck(deck.New(rng), logger)
}

// FromDeck starts a session around an existing deck.
func FromDeck(d *deck.Deck, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{deck: d, logger: logger}
}

// Draw moves one random card from the deck to the end of the hand. On an
// empty deck nothing changes and ErrNoMoreCards is returned.
func (s *Session) Draw() (card.ID, error) {
	id, err := s.deck.Draw()
	if errors.Is(err, deck.ErrEmpty) {
		s.logger.Debug("draw from empty deck")
		return 0, ErrNoMoreCards
	}
	if err != nil {
		return 0, fmt.Errorf("draw: %w", err)
	}

	s.hand = append(s.hand, id)
	s.logger.Debug("drew card",
		zap.Int("card", int(id)),
		zap.Int("hand", len(s.hand)),
		zap.Int("remaining", s.deck.Len()),
	)
	return id, nil
}

// Hand returns a copy of the drawn cards in draw order.
func (s *Session) Hand() hand.Hand {
	out := make(hand.Hand, len(s.hand))
	copy(out, s.hand)
	return out
}

// Remaining returns how many cards are left in the deck.
func (s *Session) Remaining() int {
	return s.deck.Len()
}
