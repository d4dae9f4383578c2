package app

import "dominoes/internal/domain"

// EventKind identifies emitted game events for the front end to render.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventTurnStarted   EventKind = "turn_started"
	EventTilePlayed    EventKind = "tile_played"
	EventTileDrawn     EventKind = "tile_drawn"
	EventDrawSkipped   EventKind = "draw_skipped"
	EventGameEnded     EventKind = "game_ended"
	EventGameAbandoned EventKind = "game_abandoned"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []int // seats; empty means everyone at the table
}

type GameStartedPayload struct {
	GameID      string
	Players     [domain.PlayerCount]string
	FirstPlayer string
	PileSize    int
}

type HandDealtPayload struct {
	Player string
	Seat   int
	Hand   []domain.Tile
}

type TurnStartedPayload struct {
	Turn   int
	Player string
	Seat   int
}

type TilePlayedPayload struct {
	Player string
	Seat   int
	Tile   domain.Tile // orientation as laid on the table
	Side   Side
	Head   int
	Tail   int
}

type TileDrawnPayload struct {
	Player    string
	Seat      int
	Tile      domain.Tile
	PileLeft  int
	HandCount int
}

type DrawSkippedPayload struct {
	Player string
	Seat   int
}

type GameEndedPayload struct {
	Winner string
	Seat   int
	Turns  int
}

type GameAbandonedPayload struct {
	QuitBy string
	Seat   int
	Turns  int
}
