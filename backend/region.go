package main

import "sort"

// Region is the result of a single escape search: the cells reachable from
// the seed through empty or target-color cells, the opponent stones that
// blocked traversal, and whether the region reaches an empty edge cell.
type Region struct {
	Cells     map[Position]struct{}
	Wall      map[Position]struct{}
	CanEscape bool
}

func (r Region) Contains(p Position) bool {
	_, ok := r.Cells[p]
	return ok
}

// FindRegion runs the escape search seeded at start for targetColor. Once an
// escape is confirmed the search stops expanding through empty cells and only
// finishes walking the target-color stones, so every stone of the connected
// group ends up in Cells without flooding open territory.
func FindRegion(b Board, start Position, targetColor StoneColor) Region {
	region := Region{
		Cells: map[Position]struct{}{},
		Wall:  map[Position]struct{}{},
	}
	visited := map[Position]struct{}{}
	stack := []Position{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[p]; seen {
			continue
		}
		if !b.InBounds(p) {
			continue
		}
		visited[p] = struct{}{}

		color, occupied := b.StoneAt(p)
		if occupied && color != targetColor {
			region.Wall[p] = struct{}{}
			continue
		}
		region.Cells[p] = struct{}{}
		if !occupied && b.IsEdge(p) {
			region.CanEscape = true
		}

		for _, n := range p.Neighbors() {
			if _, seen := visited[n]; seen {
				continue
			}
			if !b.InBounds(n) {
				continue
			}
			if region.CanEscape {
				// Escape already proven: only finish enumerating the
				// stone group, never re-flood empty territory.
				if c, ok := b.StoneAt(n); !ok || c != targetColor {
					continue
				}
			}
			stack = append(stack, n)
		}
	}
	return region
}

// StonesOf lists the targetColor stones inside the region, sorted row-major.
func (r Region) StonesOf(b Board, color StoneColor) []Position {
	out := []Position{}
	for p := range r.Cells {
		if c, ok := b.StoneAt(p); ok && c == color {
			out = append(out, p)
		}
	}
	sortPositions(out)
	return out
}

func sortPositions(positions []Position) {
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})
}

func positionSetToSorted(set map[Position]struct{}) []Position {
	out := make([]Position, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sortPositions(out)
	return out
}
