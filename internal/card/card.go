package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DeckSize is the number of distinct card identifiers.
const DeckSize = 52

// ErrInvalidID is returned when an identifier falls outside 1..DeckSize.
var ErrInvalidID = errors.New("invalid card id")

// ID is an opaque card identifier in [1, 52]. It carries no suit or rank,
// only an index into the 52-image asset set.
type ID int

// Valid reports whether the identifier is in range.
func (id ID) Valid() bool {
	return id >= 1 && id <= DeckSize
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// AltText is the descriptive text shown in place of the image.
func (id ID) AltText() string {
	return fmt.Sprintf("Card %d", int(id))
}

// ParseID parses a decimal card identifier.
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	id := ID(n)
	if !id.Valid() {
		return 0, fmt.Errorf("%w: %d not in 1..%d", ErrInvalidID, n, DeckSize)
	}
	return id, nil
}

// All returns every identifier in ascending order.
func All() []ID {
	ids := make([]ID, DeckSize)
	for i := range ids {
		ids[i] = ID(i + 1)
	}
	return ids
}
