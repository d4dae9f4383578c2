package domain

// Phase represents the lifecycle stage of a dominoes game.
type Phase string

const (
	// PhasePlaying indicates the game is waiting on the current player.
	PhasePlaying Phase = "playing"
	// PhaseEnded indicates a player emptied their hand.
	PhaseEnded Phase = "ended"
	// PhaseAbandoned indicates a player quit before the game finished.
	PhaseAbandoned Phase = "abandoned"
)

// PlayerCount is fixed: the game is always heads-up.
const PlayerCount = 2

// Player holds the domain state for one participant.
type Player struct {
	Name string
	Seat int // 0 or 1
	Hand *Hand
}

// Game captures the full state of one game: both players, the pile and the
// table. Every tile of the set is in exactly one of Pile, a hand or Chain.
type Game struct {
	ID      string
	Phase   Phase
	MaxPip  int
	Players [PlayerCount]*Player
	Pile    *TileSet
	Chain   *Chain

	CurrentSeat int
	Turn        int // 1-based number of the turn under way
}

// Current returns the player whose turn it is.
func (g *Game) Current() *Player {
	return g.Players[g.CurrentSeat]
}

// Opponent returns the player waiting for their turn.
func (g *Game) Opponent() *Player {
	return g.Players[1-g.CurrentSeat]
}

// SwitchPlayer hands the turn to the other seat.
func (g *Game) SwitchPlayer() {
	g.CurrentSeat = 1 - g.CurrentSeat
}

// IsOver reports whether either hand has been played out.
func (g *Game) IsOver() bool {
	for _, p := range g.Players {
		if p != nil && p.Hand.IsEmpty() {
			return true
		}
	}
	return false
}

// Winner returns the player with an empty hand, or nil.
func (g *Game) Winner() *Player {
	for _, p := range g.Players {
		if p != nil && p.Hand.IsEmpty() {
			return p
		}
	}
	return nil
}

// AllTiles gathers every tile the game owns: pile, both hands and the chain.
func (g *Game) AllTiles() []Tile {
	all := g.Pile.Tiles()
	for _, p := range g.Players {
		all = append(all, p.Hand.Tiles()...)
	}
	return append(all, g.Chain.Tiles()...)
}
