package domain

import "fmt"

// Hand is the ordered set of tiles a player holds. Order only matters for
// index-based selection.
type Hand struct {
	tiles []Tile
}

// NewHand returns a hand holding the given tiles in order.
func NewHand(tiles ...Tile) *Hand {
	return &Hand{tiles: append([]Tile(nil), tiles...)}
}

// Add appends a tile to the hand.
func (h *Hand) Add(t Tile) {
	h.tiles = append(h.tiles, t)
}

// Peek returns the tile at index without removing it.
func (h *Hand) Peek(index int) (Tile, error) {
	if err := h.checkIndex(index); err != nil {
		return Tile{}, err
	}
	return h.tiles[index], nil
}

// TakeAt removes and returns the tile at index.
func (h *Hand) TakeAt(index int) (Tile, error) {
	if err := h.checkIndex(index); err != nil {
		return Tile{}, err
	}
	t := h.tiles[index]
	h.tiles = append(h.tiles[:index], h.tiles[index+1:]...)
	return t, nil
}

func (h *Hand) checkIndex(index int) error {
	if index < 0 || index >= len(h.tiles) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(h.tiles))
	}
	return nil
}

// Size returns the number of tiles held.
func (h *Hand) Size() int {
	return len(h.tiles)
}

// IsEmpty reports whether the hand has been played out.
func (h *Hand) IsEmpty() bool {
	return len(h.tiles) == 0
}

// HasLegalMove reports whether any held tile matches head or tail. It does not
// know about an empty chain; use HasLegalMoveOn for that.
func (h *Hand) HasLegalMove(head, tail int) bool {
	for _, t := range h.tiles {
		if t.MatchesEnd(head) || t.MatchesEnd(tail) {
			return true
		}
	}
	return false
}

// HasLegalMoveOn is HasLegalMove against a chain, where an empty chain accepts
// any tile.
func (h *Hand) HasLegalMoveOn(c *Chain) bool {
	if c.IsEmpty() {
		return !h.IsEmpty()
	}
	return h.HasLegalMove(c.OpenEnds())
}

// PipTotal sums the pips of every held tile.
func (h *Hand) PipTotal() int {
	total := 0
	for _, t := range h.tiles {
		total += t.Pips()
	}
	return total
}

// Tiles returns a copy of the held tiles in index order.
func (h *Hand) Tiles() []Tile {
	return append([]Tile(nil), h.tiles...)
}
