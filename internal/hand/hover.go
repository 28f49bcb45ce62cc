package hand

// Hover is the single owner of the pointed-at card. Both the fan and the
// shadow row read it; only Enter and Leave change it.
type Hover struct {
	index  int
	active bool
}

// NoHover is the cleared state.
var NoHover = Hover{}

// HoverAt returns a hover state pointing at card i.
func HoverAt(i int) Hover {
	return Hover{index: i, active: true}
}

// Index returns the hovered position, if any.
func (h Hover) Index() (int, bool) {
	return h.index, h.active
}

// Within returns the hovered position when it lies inside a hand of
// total cards. A hover past the end counts as no hover.
func (h Hover) Within(total int) (int, bool) {
	if !h.active || h.index < 0 || h.index >= Total(total) {
		return 0, false
	}
	return h.index, true
}

// Enter points at card i of a hand of total cards. Positions outside
// the hand are ignored.
func (h *Hover) Enter(i, total int) {
	if i < 0 || i >= Total(total) {
		return
	}
	h.index, h.active = i, true
}

// Leave clears the hover.
func (h *Hover) Leave() {
	*h = NoHover
}

// Next moves the hover one card right, starting at the first card.
func (h *Hover) Next(total int) {
	total = Total(total)
	if total == 0 {
		return
	}
	if !h.active {
		h.Enter(0, total)
		return
	}
	h.Enter(min(h.index+1, total-1), total)
}

// Prev moves the hover one card left, starting at the last card.
func (h *Hover) Prev(total int) {
	total = Total(total)
	if total == 0 {
		return
	}
	if !h.active {
		h.Enter(total-1, total)
		return
	}
	h.Enter(max(h.index-1, 0), total)
}
