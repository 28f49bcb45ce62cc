package hand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardfan/internal/card"
)

func fullHand(n int) Hand {
	h := make(Hand, n)
	for i := range h {
		h[i] = card.ID(i + 1)
	}
	return h
}

func TestAngleIncrement(t *testing.T) {
	cases := []struct {
		name  string
		total int
		want  float64
	}{
		{name: "empty", total: 0, want: 0},
		{name: "single card", total: 1, want: 0},
		{name: "two cards hit the cap", total: 2, want: MaxAngleIncrement},
		{name: "seven cards still capped", total: 7, want: MaxAngleIncrement},
		{name: "eight cards use the radius", total: 8, want: 20 * math.Pi / 14},
		{name: "full deck", total: 52, want: 20 * math.Pi / 102},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AngleIncrement(tc.total)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.LessOrEqual(t, got, MaxAngleIncrement)
			assert.False(t, math.IsNaN(got))
		})
	}
}

func TestSingleCardIsCentred(t *testing.T) {
	p := Layout(fullHand(1), NoHover)
	require.Len(t, p, 1)
	assert.Zero(t, p[0].Rotation)
	assert.Zero(t, p[0].X)
	assert.Equal(t, 1, p[0].Z)
	assert.Equal(t, "rotate(0deg) translate(0px, 0px)", p[0].CSS())
}

func TestFanIsSymmetric(t *testing.T) {
	for _, total := range []int{2, 3, 8, 52} {
		p := Layout(fullHand(total), NoHover)
		for i := range p {
			j := total - 1 - i
			assert.InDelta(t, -p[i].Rotation, p[j].Rotation, 1e-9)
			assert.InDelta(t, -p[i].X, p[j].X, 1e-9)
		}
		width := float64(total) * CardSpacing
		assert.InDelta(t, -width/2, p[0].X, 1e-9)
		assert.InDelta(t, width/2, p[total-1].X, 1e-9)
	}
}

func TestDefaultStackingFollowsDrawOrder(t *testing.T) {
	p := Layout(fullHand(5), NoHover)
	for i, pl := range p {
		assert.Equal(t, i+1, pl.Z)
		assert.False(t, pl.Hovered)
	}
}

func TestHoverPopsCardOut(t *testing.T) {
	h := fullHand(52)

	for i := 0; i < 52; i++ {
		p := Layout(h, HoverAt(i))
		hovered := p[i]

		assert.True(t, hovered.Hovered)
		assert.Zero(t, hovered.Rotation)
		assert.Equal(t, -HoverLift, hovered.Y)
		assert.Greater(t, hovered.Z, MaxCards, "hovered card must sit above every draw-order z")

		if i == len(h)-1 {
			assert.InDelta(t, X(i, 52), hovered.X, 1e-9)
		} else {
			assert.InDelta(t, X(i, 52)-CardWidth/2, hovered.X, 1e-9)
		}

		for j, other := range p {
			if j == i {
				continue
			}
			assert.Equal(t, j, other.Z)
			assert.Less(t, other.Z, hovered.Z)
			assert.InDelta(t, Rotation(j, 52), other.Rotation, 1e-9)
		}
	}
}

func TestLeaveRevertsLayout(t *testing.T) {
	h := fullHand(6)
	before := Layout(h, NoHover)

	hover := NoHover
	hover.Enter(2, len(h))
	assert.NotEqual(t, before, Layout(h, hover))

	hover.Leave()
	assert.Equal(t, before, Layout(h, hover))
}

func TestTotalIsCapped(t *testing.T) {
	h := append(fullHand(52), 1, 2)
	assert.Len(t, Layout(h, NoHover), MaxCards)
	assert.Len(t, ShadowRow(h, NoHover), MaxCards)
}

func TestShadowRow(t *testing.T) {
	h := fullHand(3)

	row := ShadowRow(h, NoHover)
	require.Len(t, row, 3)
	for i, s := range row {
		assert.Equal(t, CardHeight+ShadowPadding, s.Height)
		assert.InDelta(t, X(i, 3), s.X, 1e-9)
	}
	assert.Equal(t, CardHeight+ShadowPadding, ReservedHeight(h, NoHover))

	row = ShadowRow(h, HoverAt(1))
	assert.Equal(t, HoveredHeight+ShadowPadding, row[1].Height)
	assert.Equal(t, CardHeight+ShadowPadding, row[0].Height)
	assert.Equal(t, HoveredHeight+ShadowPadding, ReservedHeight(h, HoverAt(1)))

	assert.Zero(t, ReservedHeight(nil, NoHover))
}

func TestHoverPastEndIsIgnored(t *testing.T) {
	h := Hand{1, 2, 3}

	for _, hover := range []Hover{HoverAt(5), HoverAt(3), HoverAt(-1)} {
		assert.Equal(t, Layout(h, NoHover), Layout(h, hover))
		assert.Equal(t, ShadowRow(h, NoHover), ShadowRow(h, hover))
		assert.Equal(t, CardHeight+ShadowPadding, ReservedHeight(h, hover))
	}

	for i, p := range Layout(h, HoverAt(5)) {
		assert.False(t, p.Hovered)
		assert.Equal(t, i+1, p.Z)
	}
}
