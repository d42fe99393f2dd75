package main

import (
	"math/rand"
	"testing"
)

func mustPlace(t *testing.T, b Board, p Position, color StoneColor) Board {
	t.Helper()
	next, err := b.PlaceStone(p, color)
	if err != nil {
		t.Fatalf("placing %v at (%d,%d): %v", color, p.X, p.Y, err)
	}
	return next
}

func TestFindRegionEnclosedSingleStone(t *testing.T) {
	b := NewBoard(9)
	center := Position{X: 4, Y: 4}
	b = mustPlace(t, b, center, ColorWhite)
	walls := []Position{{X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 3}, {X: 4, Y: 5}}
	for _, p := range walls {
		b = mustPlace(t, b, p, ColorBlack)
	}

	region := FindRegion(b, center, ColorWhite)
	if region.CanEscape {
		t.Fatalf("fully surrounded stone must not escape")
	}
	if len(region.Cells) != 1 || !region.Contains(center) {
		t.Fatalf("expected region of the single stone, got %d cells", len(region.Cells))
	}
	if len(region.Wall) != 4 {
		t.Fatalf("expected 4 wall stones, got %d", len(region.Wall))
	}
	for _, p := range walls {
		if _, ok := region.Wall[p]; !ok {
			t.Fatalf("wall missing (%d,%d)", p.X, p.Y)
		}
	}
}

func TestFindRegionEscapesThroughGap(t *testing.T) {
	b := NewBoard(9)
	center := Position{X: 4, Y: 4}
	b = mustPlace(t, b, center, ColorWhite)
	for _, p := range []Position{{X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 3}} {
		b = mustPlace(t, b, p, ColorBlack)
	}

	region := FindRegion(b, center, ColorWhite)
	if !region.CanEscape {
		t.Fatalf("stone with an open gap must escape")
	}
}

func TestFindRegionCollectsFullGroupAfterEscape(t *testing.T) {
	// A multi-branch group in open territory: the early exit must still
	// visit every stone of the group.
	b := NewBoard(15)
	group := []Position{
		{X: 7, Y: 7}, {X: 8, Y: 7}, {X: 9, Y: 7},
		{X: 7, Y: 8}, {X: 7, Y: 9},
		{X: 9, Y: 6}, {X: 9, Y: 5},
	}
	for _, p := range group {
		b = mustPlace(t, b, p, ColorBlack)
	}
	region := FindRegion(b, group[0], ColorBlack)
	if !region.CanEscape {
		t.Fatalf("open-board group must escape")
	}
	for _, p := range group {
		if !region.Contains(p) {
			t.Fatalf("group stone (%d,%d) missing from region after early exit", p.X, p.Y)
		}
	}
}

// brute-force reference: BFS over empty/target cells with no early exit.
func bruteForceEscape(b Board, start Position, target StoneColor) bool {
	visited := map[Position]struct{}{}
	queue := []Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if _, seen := visited[p]; seen {
			continue
		}
		if !b.InBounds(p) {
			continue
		}
		if c, ok := b.StoneAt(p); ok && c != target {
			continue
		}
		visited[p] = struct{}{}
		if b.IsEmpty(p) && b.IsEdge(p) {
			return true
		}
		for _, n := range p.Neighbors() {
			queue = append(queue, n)
		}
	}
	return false
}

func TestEscapePropertyAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		size := 5 + rng.Intn(8)
		b := NewBoard(size)
		stones := rng.Intn(size * size / 2)
		for i := 0; i < stones; i++ {
			p := Position{X: rng.Intn(size), Y: rng.Intn(size)}
			if !b.IsEmpty(p) {
				continue
			}
			color := ColorBlack
			if rng.Intn(2) == 1 {
				color = ColorWhite
			}
			b = mustPlace(t, b, p, color)
		}
		for _, seed := range b.Stones() {
			target, _ := b.StoneAt(seed)
			region := FindRegion(b, seed, target)
			want := bruteForceEscape(b, seed, target)
			if region.CanEscape != want {
				t.Fatalf("trial %d size %d seed (%d,%d): CanEscape=%v, brute force=%v",
					trial, size, seed.X, seed.Y, region.CanEscape, want)
			}
		}
	}
}
