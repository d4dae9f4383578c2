// Package console drives a game from a terminal: it prompts the current
// player, forwards their choice to the app service and prints the outcome.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"dominoes/internal/app"
	"dominoes/internal/domain"
)

// Result summarises how a session finished.
type Result struct {
	GameID    string
	Winner    string // empty when abandoned
	Abandoned bool
	Turns     int
}

// Session is one game played over a reader and writer.
type Session struct {
	svc   *app.Service
	in    *lineReader
	out   io.Writer
	rules domain.Rules
	log   logrus.FieldLogger
}

// NewSession wires a terminal session. A nil logger discards output.
func NewSession(svc *app.Service, in io.Reader, out io.Writer, rules domain.Rules, logger logrus.FieldLogger) *Session {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Session{svc: svc, in: newLineReader(in), out: out, rules: rules, log: logger}
}

// errQuit signals the player asked to leave. End of input and cancellation
// are treated the same way.
var errQuit = errors.New("player quit")

// Run plays a full game. Blank names are asked for first. Setup failures are
// returned; quitting is a normal result.
func (s *Session) Run(ctx context.Context, names [domain.PlayerCount]string) (Result, error) {
	defer s.in.close()

	s.printf("========================================\n")
	s.printf("      DOMINOES GAME - 2 PLAYER MODE     \n")
	s.printf("========================================\n")

	for seat := range names {
		if strings.TrimSpace(names[seat]) != "" {
			continue
		}
		s.printf("Enter Player %d name: ", seat+1)
		line, err := s.in.next(ctx)
		if err != nil {
			s.printf("\n")
			return Result{Abandoned: true}, nil
		}
		names[seat] = line
	}

	game, events, err := s.svc.NewGame(names, s.rules)
	if err != nil {
		return Result{}, err
	}
	s.render(events)
	s.printf("\n[GAME INITIALIZED]\n")
	s.printf("Type 'exit' anytime to quit.\n")

	for game.Phase == domain.PhasePlaying {
		s.printTurnHeader(game)

		events, err := s.takeTurn(ctx, game)
		if errors.Is(err, errQuit) {
			s.render(s.svc.Quit(game))
			break
		}
		if err != nil {
			s.log.WithFields(logrus.Fields{"game_id": game.ID, "turn": game.Turn}).WithError(err).Debug("turn retried")
			s.printf("%s\n", describe(err))
			continue
		}
		s.render(events)
		s.printGameState(game)
	}

	s.printSummary(game)
	res := Result{GameID: game.ID, Abandoned: game.Phase == domain.PhaseAbandoned, Turns: game.Turn}
	if w := game.Winner(); w != nil && !res.Abandoned {
		res.Winner = w.Name
	}
	return res, nil
}

// takeTurn reads one command and applies it. Any error other than errQuit
// means nothing changed and the same player goes again.
func (s *Session) takeTurn(ctx context.Context, game *domain.Game) ([]app.Event, error) {
	hand := game.Current().Hand
	if !hand.HasLegalMoveOn(game.Chain) {
		s.printf("No playable domino. Type 'draw' to draw.\n")
	}
	s.printf("Enter domino index to play (0-%d), 'draw' to draw, or 'exit' to quit: ", hand.Size()-1)
	line, err := s.readLine(ctx)
	if err != nil {
		return nil, err
	}

	cmd, err := parseCommand(line)
	if err != nil {
		return nil, err
	}
	switch cmd.kind {
	case cmdQuit:
		return nil, errQuit
	case cmdDraw:
		return s.svc.Draw(game)
	}

	check, err := s.svc.CheckPlay(game, cmd.index)
	if err != nil {
		return nil, err
	}
	side := app.SideUnset
	if check.NeedsSide {
		s.printf("Play on 'head' or 'tail'? ")
		answer, err := s.readLine(ctx)
		if err != nil {
			return nil, err
		}
		if isQuit(answer) {
			return nil, errQuit
		}
		if side, err = app.ParseSide(answer); err != nil {
			return nil, err
		}
	}
	return s.svc.Play(game, cmd.index, side)
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	line, err := s.in.next(ctx)
	if err != nil {
		s.printf("\n")
		s.log.WithError(err).Debug("input closed")
		return "", errQuit
	}
	return line, nil
}

func describe(err error) string {
	switch {
	case errors.Is(err, errInvalidInput):
		return "Invalid input."
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return "Invalid index."
	case errors.Is(err, app.ErrIllegalMove):
		return "That domino cannot be played on either side. Try again."
	case errors.Is(err, app.ErrInvalidSideSelection):
		return "Please answer 'head' or 'tail'. Try again."
	case errors.Is(err, app.ErrSideMismatch):
		return "That domino does not match that end. Try again."
	default:
		return err.Error()
	}
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
