package state

import "awaresnake/pkg/engine/world"

// CellKind classifies a grid cell for drawing
type CellKind int

const (
	CellEmpty CellKind = iota
	CellHead
	CellBody
	CellFood
)

// String returns the CSS-friendly class name of the cell kind
func (k CellKind) String() string {
	switch k {
	case CellHead:
		return "head"
	case CellBody:
		return "body"
	case CellFood:
		return "food"
	default:
		return "empty"
	}
}

// Snapshot is an immutable view of a game handed to renderers
type Snapshot struct {
	Snake          []world.Position `json:"snake"`
	Food           world.Position   `json:"food"`
	GridSize       int              `json:"gridSize"`
	Direction      string           `json:"direction"`
	Score          int              `json:"score"`
	GameOver       bool             `json:"gameOver"`
	Won            bool             `json:"won"`
	Paused         bool             `json:"paused"`
	HasRealized    bool             `json:"hasRealized"`
	IsEscaping     bool             `json:"isEscaping"`
	EscapeAttempts int              `json:"escapeAttempts"`
	Messages       []string         `json:"messages"`
	Tick           uint64           `json:"tick"`
}

// CellCount returns the number of cells on the board
func (s Snapshot) CellCount() int {
	return s.GridSize * s.GridSize
}

// CellAt classifies the cell at p. The head wins over food and body.
func (s Snapshot) CellAt(p world.Position) CellKind {
	for i, seg := range s.Snake {
		if seg != p {
			continue
		}
		if i == 0 {
			return CellHead
		}
		return CellBody
	}
	if s.Food == p {
		return CellFood
	}
	return CellEmpty
}

// Cells returns the board classified row by row (Cells()[y][x])
func (s Snapshot) Cells() [][]CellKind {
	rows := make([][]CellKind, s.GridSize)
	for y := range rows {
		rows[y] = make([]CellKind, s.GridSize)
	}
	for i := len(s.Snake) - 1; i >= 1; i-- {
		p := s.Snake[i]
		if p.InBounds(s.GridSize) {
			rows[p.Y][p.X] = CellBody
		}
	}
	if s.Food.InBounds(s.GridSize) && rows[s.Food.Y][s.Food.X] == CellEmpty {
		rows[s.Food.Y][s.Food.X] = CellFood
	}
	if len(s.Snake) > 0 && s.Snake[0].InBounds(s.GridSize) {
		rows[s.Snake[0].Y][s.Snake[0].X] = CellHead
	}
	return rows
}
