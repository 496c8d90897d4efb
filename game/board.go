package game

// Cell is the content of a single board square.
type Cell byte

const (
	Empty Cell = iota
	King
	Knight
)

// GridSize is the board edge length. The game is played on a fixed 5x5 grid.
const GridSize = 5

// Position identifies a square by (row, col), both in [0, GridSize).
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// knightOffsets are the chess-knight L-shaped move deltas.
var knightOffsets = [8]Position{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// kingOffsets are the 8 single-step deltas around a square.
var kingOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
	{0, 1}, {1, -1}, {1, 0}, {1, 1},
}

// Board is the 5x5 grid. It is a value type: assignment copies the whole
// grid, so scratch evaluations always work on an independent copy.
type Board [GridSize][GridSize]Cell

// NewBoard returns the starting layout: King at the center, one Knight in
// each corner.
func NewBoard() Board {
	var b Board
	b[GridSize/2][GridSize/2] = King
	corners := []Position{
		{0, 0}, {0, GridSize - 1},
		{GridSize - 1, 0}, {GridSize - 1, GridSize - 1},
	}
	for _, p := range corners {
		b[p.Row][p.Col] = Knight
	}
	return b
}

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

func (b *Board) At(p Position) Cell {
	return b[p.Row][p.Col]
}

func (b *Board) Set(p Position, c Cell) {
	b[p.Row][p.Col] = c
}

// Positions returns every square holding the given piece type in row-major
// order.
func (b *Board) Positions(c Cell) []Position {
	var positions []Position
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			if b[r][col] == c {
				positions = append(positions, Position{r, col})
			}
		}
	}
	return positions
}

// FindKing locates the King. The second return is false if no King is on the
// board, which no reachable state produces.
func (b *Board) FindKing() (Position, bool) {
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if b[r][c] == King {
				return Position{r, c}, true
			}
		}
	}
	return Position{}, false
}

// UnderAttack reports whether a Knight occupies any square a knight-move
// offset away from p. This is a static one-step reachability check: it does
// not consider Knights that would first have to move.
func (b *Board) UnderAttack(p Position) bool {
	for _, off := range knightOffsets {
		n := Position{p.Row + off.Row, p.Col + off.Col}
		if b.InBounds(n) && b.At(n) == Knight {
			return true
		}
	}
	return false
}

// Manhattan returns the Manhattan distance between two squares.
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
