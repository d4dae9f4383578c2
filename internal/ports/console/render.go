package console

import (
	"strconv"
	"strings"

	"dominoes/internal/app"
	"dominoes/internal/domain"
)

func (s *Session) render(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.GameStartedPayload:
			s.printf("\n%s vs %s. %d tiles left in the pool.\n", p.Players[0], p.Players[1], p.PileSize)
		case app.TilePlayedPayload:
			s.printf("%s played %s on the %s.\n", p.Player, p.Tile, p.Side)
		case app.TileDrawnPayload:
			s.printf("%s drew %s\n", p.Player, p.Tile)
		case app.DrawSkippedPayload:
			s.printf("No dominoes left to draw!\n")
		case app.GameAbandonedPayload:
			s.printf("\nGame exited by %s.\n", p.QuitBy)
		}
	}
}

func (s *Session) printTurnHeader(game *domain.Game) {
	pl := game.Current()
	s.printf("\n--- Turn %d ---\n", game.Turn)
	s.printf("\n+++ %s's Turn +++\n", pl.Name)
	s.printf("%s's Hand: %s\n", pl.Name, formatHand(pl.Hand))
	opp := game.Opponent()
	s.printf("%s has %d in hand.\n", opp.Name, opp.Hand.Size())
}

func (s *Session) printGameState(game *domain.Game) {
	table := "[empty]"
	if !game.Chain.IsEmpty() {
		table = domain.FormatTiles(game.Chain.Tiles())
	}
	head, tail := game.Chain.OpenEnds()
	s.printf("\nTable: %s\n", table)
	s.printf("Head: %s | Tail: %s\n", formatEnd(head), formatEnd(tail))
	s.printf("Remaining in pool: %d\n", game.Pile.Len())
}

func (s *Session) printSummary(game *domain.Game) {
	s.printf("\n===================================\n")
	s.printf("            GAME OVER              \n")
	s.printf("===================================\n")

	if w := game.Winner(); w != nil && game.Phase == domain.PhaseEnded {
		s.printf("%s wins!\n", w.Name)
	} else {
		s.printf("Game ended prematurely.\n")
	}
	for _, pl := range game.Players {
		s.printf("%s: %d tiles left (%d pips)\n", pl.Name, pl.Hand.Size(), pl.Hand.PipTotal())
	}
}

func formatHand(h *domain.Hand) string {
	var b strings.Builder
	for i, t := range h.Tiles() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(t.String())
	}
	return b.String()
}

func formatEnd(v int) string {
	if v == domain.NoEnd {
		return "-"
	}
	return strconv.Itoa(v)
}
