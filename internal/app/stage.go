package app

import "dominoes/internal/domain"

// Stage is a step of the turn state machine. Validating, Applying and
// SwitchingPlayer only exist inside a single Play or Draw call.
type Stage string

const (
	StageAwaitingChoice  Stage = "awaiting_choice"
	StageValidating      Stage = "validating"
	StageApplying        Stage = "applying"
	StageSwitchingPlayer Stage = "switching_player"
	StageGameOver        Stage = "game_over"
	StageAbandoned       Stage = "abandoned"
)

// Stage reports the externally observable stage of game.
func (s *Service) Stage(game *domain.Game) Stage {
	switch game.Phase {
	case domain.PhaseEnded:
		return StageGameOver
	case domain.PhaseAbandoned:
		return StageAbandoned
	default:
		return StageAwaitingChoice
	}
}
