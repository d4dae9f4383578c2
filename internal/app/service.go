package app

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"dominoes/internal/domain"
)

// Service contains the dominoes use-cases operating on domain state.
type Service struct {
	rng *rand.Rand
	log logrus.FieldLogger
}

// NewService constructs a Service with provided rng or a time-seeded default.
// A nil logger discards all output.
func NewService(rng *rand.Rand, logger logrus.FieldLogger) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Service{rng: rng, log: logger}
}

var (
	ErrInvalidRules         = errors.New("invalid game rules")
	ErrGameOver             = errors.New("game is over")
	ErrIllegalMove          = errors.New("tile matches neither open end")
	ErrInvalidSideSelection = errors.New("side must be head or tail")
	ErrSideMismatch         = errors.New("tile cannot join the chosen end")
)

// PlayCheck describes a validated, not yet applied, play.
type PlayCheck struct {
	Tile      domain.Tile
	NeedsSide bool // false on an empty chain, where the side is forced
	Head      bool // tile can join the head
	Tail      bool // tile can join the tail
}

// NewGame shuffles a fresh set, deals both hands alternately and gives the
// first turn to the first seat.
func (s *Service) NewGame(names [domain.PlayerCount]string, rules domain.Rules) (*domain.Game, []Event, error) {
	if rules.HandSize < 1 || rules.MaxPip < 0 {
		return nil, nil, fmt.Errorf("%w: max pip %d, hand size %d", ErrInvalidRules, rules.MaxPip, rules.HandSize)
	}
	if need, have := rules.TilesNeeded(), domain.SetSize(rules.MaxPip); need > have {
		return nil, nil, fmt.Errorf("deal %d hands of %d from %d tiles: %w",
			domain.PlayerCount, rules.HandSize, have, domain.ErrInsufficientTiles)
	}

	pile, err := domain.NewTileSet(rules.MaxPip)
	if err != nil {
		return nil, nil, err
	}
	pile.Shuffle(s.rng)

	game := &domain.Game{
		ID:     uuid.NewString(),
		Phase:  domain.PhasePlaying,
		MaxPip: rules.MaxPip,
		Pile:   pile,
		Chain:  domain.NewChain(),
		Turn:   1,
	}
	for seat := range game.Players {
		name := strings.TrimSpace(names[seat])
		if name == "" {
			name = DefaultPlayerNames[seat]
		}
		game.Players[seat] = &domain.Player{Name: name, Seat: seat, Hand: domain.NewHand()}
	}

	// One tile at a time, seat order, like a dealer around the table.
	for range rules.HandSize {
		for _, pl := range game.Players {
			dealt, err := pile.Deal(1)
			if err != nil {
				return nil, nil, fmt.Errorf("deal to %s: %w", pl.Name, err)
			}
			pl.Hand.Add(dealt[0])
		}
	}

	events := []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:      game.ID,
			Players:     [domain.PlayerCount]string{game.Players[0].Name, game.Players[1].Name},
			FirstPlayer: game.Current().Name,
			PileSize:    pile.Len(),
		},
	}}
	for _, pl := range game.Players {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Player: pl.Name, Seat: pl.Seat, Hand: pl.Hand.Tiles()},
			Recipients: []int{pl.Seat},
		})
	}
	events = append(events, s.turnStarted(game))

	s.gameLogger(game).WithFields(logrus.Fields{
		"max_pip":   rules.MaxPip,
		"hand_size": rules.HandSize,
		"pile":      pile.Len(),
	}).Info("game started")

	return game, events, nil
}

// CheckPlay validates playing the tile at index without changing anything.
func (s *Service) CheckPlay(game *domain.Game, index int) (PlayCheck, error) {
	if err := ensurePlaying(game); err != nil {
		return PlayCheck{}, err
	}
	tile, err := game.Current().Hand.Peek(index)
	if err != nil {
		return PlayCheck{}, err
	}
	if !game.Chain.Accepts(tile) {
		head, tail := game.Chain.OpenEnds()
		return PlayCheck{}, fmt.Errorf("%w: %s against %d/%d", ErrIllegalMove, tile, head, tail)
	}
	return PlayCheck{
		Tile:      tile,
		NeedsSide: !game.Chain.IsEmpty(),
		Head:      game.Chain.CanJoinHead(tile),
		Tail:      game.Chain.CanJoinTail(tile),
	}, nil
}

// Play lays the current player's tile at index on side. A rejected play leaves
// the game exactly as it was and the same player to move.
func (s *Service) Play(game *domain.Game, index int, side Side) ([]Event, error) {
	log := s.gameLogger(game).WithFields(logrus.Fields{"index": index, "side": side})
	log.WithField("stage", StageValidating).Debug("play requested")

	check, err := s.CheckPlay(game, index)
	if err != nil {
		log.WithError(err).Debug("play rejected")
		return nil, err
	}
	if !check.NeedsSide {
		side = FirstPlaySide
	}
	if !side.valid() {
		err := fmt.Errorf("%w: %q", ErrInvalidSideSelection, side)
		log.WithError(err).Debug("play rejected")
		return nil, err
	}
	if (side == SideHead && !check.Head) || (side == SideTail && !check.Tail) {
		err := fmt.Errorf("%w: %s on %s", ErrSideMismatch, check.Tile, side)
		log.WithError(err).Debug("play rejected")
		return nil, err
	}

	log.WithField("stage", StageApplying).Debug("applying play")
	player := game.Current()
	tile, err := player.Hand.TakeAt(index)
	if err != nil {
		return nil, err
	}
	var placed domain.Tile
	if side == SideHead {
		placed, err = game.Chain.PlaceAtHead(tile)
	} else {
		placed, err = game.Chain.PlaceAtTail(tile)
	}
	if err != nil {
		return nil, fmt.Errorf("place %s on %s: %w", tile, side, err)
	}

	head, tail := game.Chain.OpenEnds()
	log.WithFields(logrus.Fields{"tile": placed.String(), "head": head, "tail": tail}).Info("tile played")

	events := []Event{{
		Kind: EventTilePlayed,
		Payload: TilePlayedPayload{
			Player: player.Name,
			Seat:   player.Seat,
			Tile:   placed,
			Side:   side,
			Head:   head,
			Tail:   tail,
		},
	}}
	return append(events, s.finishAction(game)...), nil
}

// Draw moves the top tile of the pile into the current player's hand. With an
// empty pile the turn is still spent.
func (s *Service) Draw(game *domain.Game) ([]Event, error) {
	if err := ensurePlaying(game); err != nil {
		return nil, err
	}
	log := s.gameLogger(game)
	player := game.Current()

	var events []Event
	tile, err := game.Pile.Draw()
	switch {
	case errors.Is(err, domain.ErrPileEmpty):
		log.Info("draw skipped, pile empty")
		events = append(events, Event{
			Kind:    EventDrawSkipped,
			Payload: DrawSkippedPayload{Player: player.Name, Seat: player.Seat},
		})
	case err != nil:
		return nil, err
	default:
		player.Hand.Add(tile)
		log.WithFields(logrus.Fields{"tile": tile.String(), "pile": game.Pile.Len()}).Info("tile drawn")
		events = append(events, Event{
			Kind: EventTileDrawn,
			Payload: TileDrawnPayload{
				Player:    player.Name,
				Seat:      player.Seat,
				Tile:      tile,
				PileLeft:  game.Pile.Len(),
				HandCount: player.Hand.Size(),
			},
		})
	}
	return append(events, s.finishAction(game)...), nil
}

// Quit abandons the game on behalf of the current player. Quitting a finished
// game does nothing.
func (s *Service) Quit(game *domain.Game) []Event {
	if game.Phase != domain.PhasePlaying {
		return nil
	}
	game.Phase = domain.PhaseAbandoned
	player := game.Current()
	s.gameLogger(game).Info("game abandoned")
	return []Event{{
		Kind:    EventGameAbandoned,
		Payload: GameAbandonedPayload{QuitBy: player.Name, Seat: player.Seat, Turns: game.Turn},
	}}
}

// finishAction ends the game or passes the turn after an applied action.
func (s *Service) finishAction(game *domain.Game) []Event {
	if winner := game.Winner(); winner != nil {
		game.Phase = domain.PhaseEnded
		s.gameLogger(game).WithField("winner", winner.Name).Info("game ended")
		return []Event{{
			Kind:    EventGameEnded,
			Payload: GameEndedPayload{Winner: winner.Name, Seat: winner.Seat, Turns: game.Turn},
		}}
	}

	s.gameLogger(game).WithField("stage", StageSwitchingPlayer).Debug("passing turn")
	game.SwitchPlayer()
	game.Turn++
	return []Event{s.turnStarted(game)}
}

func (s *Service) turnStarted(game *domain.Game) Event {
	return Event{
		Kind:    EventTurnStarted,
		Payload: TurnStartedPayload{Turn: game.Turn, Player: game.Current().Name, Seat: game.CurrentSeat},
	}
}

func (s *Service) gameLogger(game *domain.Game) logrus.FieldLogger {
	fields := logrus.Fields{"game_id": game.ID, "turn": game.Turn}
	if pl := game.Players[game.CurrentSeat]; pl != nil {
		fields["player"] = pl.Name
	}
	return s.log.WithFields(fields)
}

func ensurePlaying(game *domain.Game) error {
	if game.Phase != domain.PhasePlaying {
		return fmt.Errorf("%w: %s", ErrGameOver, game.Phase)
	}
	return nil
}
