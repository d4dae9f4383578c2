package app

import (
	"fmt"
	"strings"
)

// Side selects the end of the chain a tile is laid on.
type Side string

const (
	SideUnset Side = ""
	SideHead  Side = "head"
	SideTail  Side = "tail"
)

// ParseSide reads a player's head/tail answer.
func ParseSide(input string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case string(SideHead):
		return SideHead, nil
	case string(SideTail):
		return SideTail, nil
	default:
		return SideUnset, fmt.Errorf("%w: %q", ErrInvalidSideSelection, input)
	}
}

func (s Side) valid() bool {
	return s == SideHead || s == SideTail
}
