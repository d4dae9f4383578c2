package console

import (
	"bytes"
	"context"
	"io"
	"math/rand"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dominoes/internal/app"
	"dominoes/internal/domain"
)

// tinyRules deal one tile each from a three-tile set, so whoever plays first wins.
var tinyRules = domain.Rules{MaxPip: 1, HandSize: 1}

func runSession(t *testing.T, rules domain.Rules, seed int64, names [domain.PlayerCount]string, input string) (Result, string) {
	t.Helper()
	var out bytes.Buffer
	svc := app.NewService(rand.New(rand.NewSource(seed)), nil)
	sess := NewSession(svc, strings.NewReader(input), &out, rules, nil)
	res, err := sess.Run(context.Background(), names)
	require.NoError(t, err)
	return res, out.String()
}

func TestSessionAsksNamesAndFirstPlayWins(t *testing.T) {
	res, out := runSession(t, tinyRules, 1, [domain.PlayerCount]string{}, "ann\nbob\n0\n")

	assert.Equal(t, "ann", res.Winner)
	assert.False(t, res.Abandoned)
	assert.Equal(t, 1, res.Turns)
	assert.Contains(t, out, "Enter Player 1 name: ")
	assert.Contains(t, out, "Enter Player 2 name: ")
	assert.Contains(t, out, "+++ ann's Turn +++")
	assert.Contains(t, out, "bob has 1 in hand.")
	assert.Contains(t, out, "ann played")
	assert.Contains(t, out, "on the tail.")
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "ann wins!")
}

func TestSessionRetriesBadInputWithoutSpendingTurn(t *testing.T) {
	res, out := runSession(t, tinyRules, 2, [domain.PlayerCount]string{"ann", "bob"}, "foo\n5\n-1\n\n0\n")

	assert.Equal(t, "ann", res.Winner)
	assert.Equal(t, 2, strings.Count(out, "Invalid input."))
	assert.Equal(t, 2, strings.Count(out, "Invalid index."))
	assert.NotContains(t, out, "--- Turn 2 ---")
	assert.NotContains(t, out, noMoveHint)
	assert.Equal(t, 5, strings.Count(out, "+++ ann's Turn +++"))
}

func TestSessionDrawPassesTurn(t *testing.T) {
	res, out := runSession(t, tinyRules, 3, [domain.PlayerCount]string{"ann", "bob"}, "draw\n0\n")

	assert.Equal(t, "bob", res.Winner)
	assert.Equal(t, 2, res.Turns)
	assert.Contains(t, out, "ann drew")
	assert.Contains(t, out, "Remaining in pool: 0")
	assert.Contains(t, out, "--- Turn 2 ---")
	assert.Contains(t, out, "bob wins!")
}

func TestSessionDrawOnEmptyPile(t *testing.T) {
	// Two hands of three use up the whole double-two set.
	rules := domain.Rules{MaxPip: 2, HandSize: 3}
	res, out := runSession(t, rules, 4, [domain.PlayerCount]string{"ann", "bob"}, "draw\nexit\n")

	assert.True(t, res.Abandoned)
	assert.Contains(t, out, "No dominoes left to draw!")
	assert.Contains(t, out, "+++ bob's Turn +++")
	assert.Contains(t, out, "Game exited by bob.")
}

func TestSessionExitAbandons(t *testing.T) {
	for _, input := range []string{"exit\n", "EXIT\n", "quit\n", ""} {
		t.Run(strconv.Quote(input), func(t *testing.T) {
			res, out := runSession(t, tinyRules, 5, [domain.PlayerCount]string{"ann", "bob"}, input)
			assert.True(t, res.Abandoned)
			assert.Empty(t, res.Winner)
			assert.Contains(t, out, "Game ended prematurely.")
		})
	}
}

func TestSessionEOFDuringNames(t *testing.T) {
	res, _ := runSession(t, tinyRules, 6, [domain.PlayerCount]string{}, "ann\n")
	assert.True(t, res.Abandoned)
	assert.Empty(t, res.GameID)
}

func TestSessionCancelledContext(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sess := NewSession(app.NewService(rand.New(rand.NewSource(7)), nil), pr, &out, tinyRules, nil)
	res, err := sess.Run(ctx, [domain.PlayerCount]string{"ann", "bob"})
	require.NoError(t, err)
	assert.True(t, res.Abandoned)
}

func TestSessionSetupError(t *testing.T) {
	var out bytes.Buffer
	sess := NewSession(app.NewService(nil, nil), strings.NewReader(""), &out, domain.Rules{MaxPip: 1, HandSize: 4}, nil)
	_, err := sess.Run(context.Background(), [domain.PlayerCount]string{"ann", "bob"})
	assert.ErrorIs(t, err, domain.ErrInsufficientTiles)
}

// planGame plays a mirror game with the same seed and returns the input lines
// that replay it, plus the mirror's final state. The first side prompt gets a
// bad answer once to exercise the retry.
func planGame(t *testing.T, seed int64) (string, *domain.Game) {
	t.Helper()
	svc := app.NewService(rand.New(rand.NewSource(seed)), nil)
	game, _, err := svc.NewGame([domain.PlayerCount]string{"ann", "bob"}, domain.DefaultRules())
	require.NoError(t, err)

	var lines []string
	badSideSent := false
	for step := 0; step < 300 && game.Phase == domain.PhasePlaying; step++ {
		played := false
		for i := 0; i < game.Current().Hand.Size() && !played; i++ {
			check, err := svc.CheckPlay(game, i)
			if err != nil {
				continue
			}
			idx := strconv.Itoa(i)
			side := app.SideUnset
			if check.NeedsSide {
				side = app.SideTail
				if check.Head {
					side = app.SideHead
				}
				if !badSideSent {
					lines = append(lines, idx, "sideways")
					badSideSent = true
				}
				lines = append(lines, idx, string(side))
			} else {
				lines = append(lines, idx)
			}
			_, err = svc.Play(game, i, side)
			require.NoError(t, err)
			played = true
		}
		if !played {
			lines = append(lines, "draw")
			_, err := svc.Draw(game)
			require.NoError(t, err)
		}
	}
	if game.Phase == domain.PhasePlaying {
		lines = append(lines, "exit")
		svc.Quit(game)
	}
	return strings.Join(lines, "\n") + "\n", game
}

func TestSessionFullGameMatchesEngine(t *testing.T) {
	for _, seed := range []int64{11, 12, 13} {
		t.Run(strconv.FormatInt(seed, 10), func(t *testing.T) {
			input, mirror := planGame(t, seed)
			res, out := runSession(t, domain.DefaultRules(), seed, [domain.PlayerCount]string{"ann", "bob"}, input)

			assert.Equal(t, mirror.Phase == domain.PhaseAbandoned, res.Abandoned)
			assert.Equal(t, mirror.Turn, res.Turns)
			if w := mirror.Winner(); w != nil && mirror.Phase == domain.PhaseEnded {
				assert.Equal(t, w.Name, res.Winner)
				assert.Contains(t, out, w.Name+" wins!")
			}
			assert.Contains(t, out, "Please answer 'head' or 'tail'.")
			assert.Equal(t, strings.Count(input, "draw\n"), strings.Count(out, noMoveHint))
			assert.NotContains(t, out, "does not match")
		})
	}
}

const noMoveHint = "No playable domino. Type 'draw' to draw."

func TestTakeTurnHintsWhenNothingPlays(t *testing.T) {
	chain := domain.NewChain()
	_, err := chain.PlaceAtTail(domain.Tile{Left: 6, Right: 6})
	require.NoError(t, err)
	game := &domain.Game{
		ID:    "g1",
		Phase: domain.PhasePlaying,
		Players: [domain.PlayerCount]*domain.Player{
			{Name: "ann", Seat: 0, Hand: domain.NewHand(domain.Tile{Left: 0, Right: 1})},
			{Name: "bob", Seat: 1, Hand: domain.NewHand(domain.Tile{Left: 2, Right: 3})},
		},
		Pile:  domain.NewTileSetFrom([]domain.Tile{{Left: 4, Right: 5}}),
		Chain: chain,
		Turn:  1,
	}

	var out bytes.Buffer
	sess := NewSession(app.NewService(nil, nil), strings.NewReader("draw\n"), &out, tinyRules, nil)
	defer sess.in.close()
	events, err := sess.takeTurn(context.Background(), game)
	require.NoError(t, err)

	assert.Contains(t, out.String(), noMoveHint)
	assert.NotEmpty(t, events)
	assert.Equal(t, 2, game.Players[0].Hand.Size())
	assert.Equal(t, 1, game.CurrentSeat)
}

func TestSessionReleasesReaderOnReturn(t *testing.T) {
	before := runtime.NumGoroutine()
	for seed := int64(0); seed < 20; seed++ {
		res, _ := runSession(t, tinyRules, seed, [domain.PlayerCount]string{"ann", "bob"}, "0\nleft\nover\n")
		require.Equal(t, "ann", res.Winner)
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before)
}

func TestLineReaderStartsOnFirstRead(t *testing.T) {
	pr, pw := io.Pipe()
	lr := newLineReader(pr)
	defer lr.close()

	// A pipe write blocks until someone reads it.
	written := make(chan struct{})
	go func() {
		_, _ = pw.Write([]byte("hello\n"))
		close(written)
	}()
	select {
	case <-written:
		t.Fatal("input consumed before the first read")
	case <-time.After(50 * time.Millisecond):
	}

	line, err := lr.next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello", line)
	<-written
	require.NoError(t, pw.Close())
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    command
		wantErr bool
	}{
		{in: "3", want: command{kind: cmdPlay, index: 3}},
		{in: " 0 ", want: command{kind: cmdPlay, index: 0}},
		{in: "-2", want: command{kind: cmdPlay, index: -2}},
		{in: "draw", want: command{kind: cmdDraw}},
		{in: "Draw", want: command{kind: cmdDraw}},
		{in: "Exit", want: command{kind: cmdQuit}},
		{in: "quit", want: command{kind: cmdQuit}},
		{in: "play", wantErr: true},
		{in: "3abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCommand(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
