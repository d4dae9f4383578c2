package domain

import (
	"fmt"
	"math/rand"
)

// SetSize returns how many tiles a full set up to maxPip contains.
func SetSize(maxPip int) int {
	if maxPip < 0 {
		return 0
	}
	return (maxPip + 1) * (maxPip + 2) / 2
}

// GenerateFull returns every unordered pair (i, j) with 0 <= i <= j <= maxPip,
// each exactly once, low pip on the left.
func GenerateFull(maxPip int) ([]Tile, error) {
	if maxPip < 0 {
		return nil, fmt.Errorf("%w: max pip %d", ErrPipOutOfRange, maxPip)
	}
	tiles := make([]Tile, 0, SetSize(maxPip))
	for i := 0; i <= maxPip; i++ {
		for j := i; j <= maxPip; j++ {
			tiles = append(tiles, Tile{Left: i, Right: j})
		}
	}
	return tiles, nil
}

// TileSet is the draw pile. Tiles leave from the end of the slice.
type TileSet struct {
	tiles []Tile
}

// NewTileSet returns a pile holding the full, unshuffled set for maxPip.
func NewTileSet(maxPip int) (*TileSet, error) {
	tiles, err := GenerateFull(maxPip)
	if err != nil {
		return nil, err
	}
	return &TileSet{tiles: tiles}, nil
}

// NewTileSetFrom returns a pile holding exactly the given tiles, last one on top.
func NewTileSetFrom(tiles []Tile) *TileSet {
	return &TileSet{tiles: append([]Tile(nil), tiles...)}
}

// Shuffle randomizes the pile order using rng.
func (s *TileSet) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(s.tiles), func(i, j int) { s.tiles[i], s.tiles[j] = s.tiles[j], s.tiles[i] })
}

// Deal removes n tiles from the top of the pile. The pile is left untouched
// when fewer than n remain or n is negative.
func (s *TileSet) Deal(n int) ([]Tile, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: deal %d", ErrNegativeCount, n)
	}
	if n > len(s.tiles) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientTiles, n, len(s.tiles))
	}
	out := make([]Tile, 0, n)
	for range n {
		out = append(out, s.pop())
	}
	return out, nil
}

// Draw removes the top tile.
func (s *TileSet) Draw() (Tile, error) {
	if len(s.tiles) == 0 {
		return Tile{}, ErrPileEmpty
	}
	return s.pop(), nil
}

func (s *TileSet) pop() Tile {
	last := len(s.tiles) - 1
	t := s.tiles[last]
	s.tiles = s.tiles[:last]
	return t
}

// Len returns the number of tiles left in the pile.
func (s *TileSet) Len() int {
	return len(s.tiles)
}

// IsEmpty reports whether nothing is left to draw.
func (s *TileSet) IsEmpty() bool {
	return len(s.tiles) == 0
}

// Tiles returns a copy of the pile, bottom first.
func (s *TileSet) Tiles() []Tile {
	return append([]Tile(nil), s.tiles...)
}
