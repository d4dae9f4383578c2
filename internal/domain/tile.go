package domain

import "fmt"

// DefaultMaxPip is the highest pip value of a standard double-six set.
const DefaultMaxPip = 6

// Tile is a single domino. Left and Right are the current orientation; the
// pair itself is unordered.
type Tile struct {
	Left  int
	Right int
}

// NewTile builds a tile after checking both pips lie in [0, maxPip].
func NewTile(a, b, maxPip int) (Tile, error) {
	if a < 0 || a > maxPip || b < 0 || b > maxPip {
		return Tile{}, fmt.Errorf("%w: [%d|%d] with max %d", ErrPipOutOfRange, a, b, maxPip)
	}
	return Tile{Left: a, Right: b}, nil
}

// MatchesEnd reports whether either face equals value.
func (t Tile) MatchesEnd(value int) bool {
	return t.Left == value || t.Right == value
}

// Flip swaps which face is exposed on each side.
func (t *Tile) Flip() {
	t.Left, t.Right = t.Right, t.Left
}

// Flipped returns a copy with the faces swapped.
func (t Tile) Flipped() Tile {
	return Tile{Left: t.Right, Right: t.Left}
}

// Pips returns the sum of both faces.
func (t Tile) Pips() int {
	return t.Left + t.Right
}

// Same reports whether two tiles are the same piece regardless of orientation.
func (t Tile) Same(other Tile) bool {
	return t == other || t == other.Flipped()
}

// Key returns the orientation-free identity of the tile, low pip first.
func (t Tile) Key() [2]int {
	if t.Left <= t.Right {
		return [2]int{t.Left, t.Right}
	}
	return [2]int{t.Right, t.Left}
}

func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t.Left, t.Right)
}

// FormatTiles renders tiles back to back, the way the table is shown.
func FormatTiles(tiles []Tile) string {
	out := make([]byte, 0, len(tiles)*5)
	for _, t := range tiles {
		out = append(out, t.String()...)
	}
	return string(out)
}
