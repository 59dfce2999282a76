// Package all links every catalog game into a binary. Import it for its side
// effects.
package all

import (
	_ "github.com/vovakirdan/minigames/internal/games/airplane"
	_ "github.com/vovakirdan/minigames/internal/games/beeshooter"
	_ "github.com/vovakirdan/minigames/internal/games/explorer"
	_ "github.com/vovakirdan/minigames/internal/games/fighter"
	_ "github.com/vovakirdan/minigames/internal/games/invaders"
	_ "github.com/vovakirdan/minigames/internal/games/lasermaze"
	_ "github.com/vovakirdan/minigames/internal/games/parkour"
	_ "github.com/vovakirdan/minigames/internal/games/racing"
	_ "github.com/vovakirdan/minigames/internal/games/snake"
	_ "github.com/vovakirdan/minigames/internal/games/tankbattle"
	_ "github.com/vovakirdan/minigames/internal/games/tetris"
	_ "github.com/vovakirdan/minigames/internal/games/whackmole"
)
