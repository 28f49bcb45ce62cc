package hand

import (
	"fmt"
	"math"

	"github.com/arcanaland/cardfan/internal/card"
)

// Fan geometry, in CSS degrees and pixels.
const (
	MaxCards          = card.DeckSize
	MaxAngleIncrement = 5.0
	MaxRadius         = 20.0
	CardSpacing       = 20.0
	CardWidth         = 125.0
	CardHeight        = 181.5
	HoverLift         = 30.0
	HoveredHeight     = 230.0
	ShadowPadding     = 15.0
)

// Hand is the ordered sequence of drawn cards, in draw order.
type Hand []card.ID

// Placement is the visual transform of one card in the fan.
type Placement struct {
	Card     card.ID
	Index    int
	Rotation float64 // degrees, clockwise
	X        float64 // px from the fan centre
	Y        float64 // px, negative is up
	Z        int
	Hovered  bool
}

// CSS formats the placement as a CSS transform.
func (p Placement) CSS() string {
	return fmt.Sprintf("rotate(%sdeg) translate(%spx, %spx)", num(p.Rotation), num(p.X), num(p.Y))
}

func num(f float64) string {
	if f == 0 {
		// avoid "-0"
		return "0"
	}
	return fmt.Sprintf("%.4g", f)
}

// ShadowSlot is one placeholder in the shadow row. It holds no card and
// only reserves vertical space.
type ShadowSlot struct {
	Index  int
	X      float64
	Height float64
}

// Total caps the hand length at MaxCards.
func Total(n int) int {
	if n > MaxCards {
		return MaxCards
	}
	if n < 0 {
		return 0
	}
	return n
}

// AngleIncrement is the rotation step between neighbouring cards. It
// shrinks as the hand grows and never exceeds MaxAngleIncrement.
func AngleIncrement(total int) float64 {
	if total <= 1 {
		return 0
	}
	return math.Min(MaxAngleIncrement, (MaxRadius*math.Pi)/float64(total*2-2))
}

// Rotation is the resting angle of card i, symmetric about 0.
func Rotation(i, total int) float64 {
	inc := AngleIncrement(total)
	return -inc*float64(total-1)/2 + float64(i)*inc
}

// X is the resting horizontal offset of card i from the fan centre.
func X(i, total int) float64 {
	if total <= 1 {
		return 0
	}
	width := float64(total) * CardSpacing
	return float64(i)/float64(total-1)*width - width/2
}

// Layout computes the placement of every card in h.
func Layout(h Hand, hover Hover) []Placement {
	total := Total(len(h))
	hovered, active := hover.Within(total)

	out := make([]Placement, 0, total)
	for i := 0; i < total; i++ {
		p := Placement{
			Card:     h[i],
			Index:    i,
			Rotation: Rotation(i, total),
			X:        X(i, total),
		}

		switch {
		case !active:
			p.Z = i + 1
		case hovered == i:
			p.Hovered = true
			p.Rotation = 0
			if i != len(h)-1 {
				p.X -= CardWidth / 2
			}
			p.Y = -HoverLift
			p.Z = MaxCards + 1
		default:
			p.Z = i
		}

		out = append(out, p)
	}
	return out
}

// ShadowRow derives the placeholder row from the hover state.
func ShadowRow(h Hand, hover Hover) []ShadowSlot {
	total := Total(len(h))
	hovered, active := hover.Within(total)

	out := make([]ShadowSlot, total)
	for i := range out {
		height := CardHeight
		if active && hovered == i {
			height = HoveredHeight
		}
		out[i] = ShadowSlot{Index: i, X: X(i, total), Height: height + ShadowPadding}
	}
	return out
}

// ReservedHeight is the vertical space the fan needs, popped-out card included.
func ReservedHeight(h Hand, hover Hover) float64 {
	if len(h) == 0 {
		return 0
	}
	reserved := 0.0
	for _, s := range ShadowRow(h, hover) {
		reserved = math.Max(reserved, s.Height)
	}
	return reserved
}
