package gameplay

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"awaresnake/pkg/engine/world"
)

// PlaceFood picks a uniformly random free cell on a gridSize board.
// It samples and rejects cells on the snake; if sampling keeps missing it
// scans the board for the remaining free cells. It returns false only when
// the snake covers every cell.
func PlaceFood(rng *rand.Rand, snake []world.Position, gridSize int) (world.Position, bool) {
	occupied := mapset.New[world.Position]()
	for _, s := range snake {
		occupied.Put(s)
	}

	total := gridSize * gridSize
	if occupied.Size() >= total {
		return world.Position{}, false
	}

	maxAttempts := total * 4
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := world.Position{X: rng.Intn(gridSize), Y: rng.Intn(gridSize)}
		if !occupied.Has(p) {
			return p, true
		}
	}

	free := make([]world.Position, 0, total-occupied.Size())
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			p := world.Position{X: x, Y: y}
			if !occupied.Has(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return world.Position{}, false
	}
	return free[rng.Intn(len(free))], true
}
