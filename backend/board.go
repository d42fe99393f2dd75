package main

import "fmt"

const DefaultBoardSize = 48

type StoneColor int

const (
	ColorBlack StoneColor = iota
	ColorWhite
)

func (c StoneColor) Opponent() StoneColor {
	if c == ColorBlack {
		return ColorWhite
	}
	return ColorBlack
}

func (c StoneColor) String() string {
	if c == ColorBlack {
		return "Black"
	}
	return "White"
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) Neighbors() [4]Position {
	return [4]Position{
		{p.X + 1, p.Y},
		{p.X - 1, p.Y},
		{p.X, p.Y + 1},
		{p.X, p.Y - 1},
	}
}

func (p Position) Equals(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Board is value-immutable: PlaceStone and RemoveStones return derived
// boards and never touch the receiver's map.
type Board struct {
	size   int
	stones map[Position]StoneColor
}

func NewBoard(size int) Board {
	return Board{size: size, stones: map[Position]StoneColor{}}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) InBounds(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < b.size && p.Y < b.size
}

func (b Board) IsEdge(p Position) bool {
	return p.X == 0 || p.Y == 0 || p.X == b.size-1 || p.Y == b.size-1
}

func (b Board) IsEmpty(p Position) bool {
	if !b.InBounds(p) {
		return false
	}
	_, occupied := b.stones[p]
	return !occupied
}

func (b Board) StoneAt(p Position) (StoneColor, bool) {
	color, ok := b.stones[p]
	return color, ok
}

func (b Board) StoneCount() int {
	return len(b.stones)
}

func (b Board) PlaceStone(p Position, color StoneColor) (Board, error) {
	if !b.InBounds(p) {
		return b, fmt.Errorf("position (%d,%d) out of bounds for size %d", p.X, p.Y, b.size)
	}
	if _, occupied := b.stones[p]; occupied {
		return b, fmt.Errorf("position (%d,%d) is occupied", p.X, p.Y)
	}
	next := b.cloneStones()
	next.stones[p] = color
	return next, nil
}

func (b Board) RemoveStones(positions []Position) Board {
	if len(positions) == 0 {
		return b
	}
	next := b.cloneStones()
	for _, p := range positions {
		delete(next.stones, p)
	}
	return next
}

// Stones returns occupied positions in row-major order.
func (b Board) Stones() []Position {
	out := make([]Position, 0, len(b.stones))
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			p := Position{X: x, Y: y}
			if _, ok := b.stones[p]; ok {
				out = append(out, p)
			}
		}
	}
	return out
}

func (b Board) CountEmpty() int {
	return b.size*b.size - len(b.stones)
}

func (b Board) cloneStones() Board {
	next := Board{size: b.size, stones: make(map[Position]StoneColor, len(b.stones)+1)}
	for p, c := range b.stones {
		next.stones[p] = c
	}
	return next
}
