package domain

// DefaultHandSize is how many tiles each player starts with.
const DefaultHandSize = 7

// Rules are the tunable parameters of a game.
type Rules struct {
	MaxPip   int
	HandSize int
}

// DefaultRules returns the double-six, seven-tile game.
func DefaultRules() Rules {
	return Rules{MaxPip: DefaultMaxPip, HandSize: DefaultHandSize}
}

// TilesNeeded returns how many tiles the initial deal takes from the pile.
func (r Rules) TilesNeeded() int {
	return r.HandSize * PlayerCount
}
