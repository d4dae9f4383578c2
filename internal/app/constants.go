package app

import "dominoes/internal/domain"

// FirstPlaySide is where the opening tile goes. With an empty table either end
// is equivalent, so the player is never asked.
const FirstPlaySide = SideTail

// DefaultPlayerNames label seats whose player left the name blank.
var DefaultPlayerNames = [domain.PlayerCount]string{"Player 1", "Player 2"}
