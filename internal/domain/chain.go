package domain

import "fmt"

// NoEnd is the open-end value reported by an empty chain.
const NoEnd = -1

// Chain is the line of played tiles on the table. head is the exposed pip on
// the left of the first tile and tail the exposed pip on the right of the last.
type Chain struct {
	tiles []Tile
	head  int
	tail  int
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{head: NoEnd, tail: NoEnd}
}

// IsEmpty reports whether nothing has been played yet.
func (c *Chain) IsEmpty() bool {
	return len(c.tiles) == 0
}

// Len returns the number of played tiles.
func (c *Chain) Len() int {
	return len(c.tiles)
}

// OpenEnds returns the head and tail values, NoEnd for both when empty.
func (c *Chain) OpenEnds() (head, tail int) {
	return c.head, c.tail
}

// Accepts reports whether t could be placed on at least one end.
func (c *Chain) Accepts(t Tile) bool {
	return c.IsEmpty() || t.MatchesEnd(c.head) || t.MatchesEnd(c.tail)
}

// CanJoinHead reports whether t can be placed at the head.
func (c *Chain) CanJoinHead(t Tile) bool {
	return c.IsEmpty() || t.MatchesEnd(c.head)
}

// CanJoinTail reports whether t can be placed at the tail.
func (c *Chain) CanJoinTail(t Tile) bool {
	return c.IsEmpty() || t.MatchesEnd(c.tail)
}

// PlaceAtHead orients t so its right face abuts the head and prepends it. On
// an empty chain t is placed as given and sets both ends. The placed tile, in
// its final orientation, is returned.
func (c *Chain) PlaceAtHead(t Tile) (Tile, error) {
	if c.IsEmpty() {
		c.start(t)
		return t, nil
	}
	if !t.MatchesEnd(c.head) {
		return Tile{}, fmt.Errorf("%w: %s at head %d", ErrNoMatch, t, c.head)
	}
	if t.Right != c.head {
		t.Flip()
	}
	c.tiles = append([]Tile{t}, c.tiles...)
	c.head = t.Left
	return t, nil
}

// PlaceAtTail orients t so its left face abuts the tail and appends it. On an
// empty chain t is placed as given and sets both ends.
func (c *Chain) PlaceAtTail(t Tile) (Tile, error) {
	if c.IsEmpty() {
		c.start(t)
		return t, nil
	}
	if !t.MatchesEnd(c.tail) {
		return Tile{}, fmt.Errorf("%w: %s at tail %d", ErrNoMatch, t, c.tail)
	}
	if t.Left != c.tail {
		t.Flip()
	}
	c.tiles = append(c.tiles, t)
	c.tail = t.Right
	return t, nil
}

func (c *Chain) start(t Tile) {
	c.tiles = []Tile{t}
	c.head = t.Left
	c.tail = t.Right
}

// Tiles returns a copy of the played tiles, head first.
func (c *Chain) Tiles() []Tile {
	return append([]Tile(nil), c.tiles...)
}
