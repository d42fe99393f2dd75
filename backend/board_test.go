package main

import "testing"

func TestPlaceStoneReturnsDerivedBoard(t *testing.T) {
	b := NewBoard(9)
	p := Position{X: 4, Y: 4}
	next, err := b.PlaceStone(p, ColorBlack)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.IsEmpty(p) {
		t.Fatalf("original board mutated by PlaceStone")
	}
	color, ok := next.StoneAt(p)
	if !ok || color != ColorBlack {
		t.Fatalf("expected black stone at (4,4), got ok=%v color=%v", ok, color)
	}
}

func TestPlaceStoneRejectsOccupiedAndOutOfBounds(t *testing.T) {
	b := NewBoard(9)
	p := Position{X: 0, Y: 0}
	b, err := b.PlaceStone(p, ColorWhite)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.PlaceStone(p, ColorBlack); err == nil {
		t.Fatalf("expected error placing on occupied cell")
	}
	if _, err := b.PlaceStone(Position{X: 9, Y: 0}, ColorBlack); err == nil {
		t.Fatalf("expected error placing out of bounds")
	}
	if _, err := b.PlaceStone(Position{X: -1, Y: 3}, ColorBlack); err == nil {
		t.Fatalf("expected error placing at negative coordinate")
	}
}

func TestRemoveStonesLeavesOriginalIntact(t *testing.T) {
	b := NewBoard(9)
	positions := []Position{{X: 1, Y: 1}, {X: 2, Y: 1}}
	for _, p := range positions {
		var err error
		b, err = b.PlaceStone(p, ColorWhite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	removed := b.RemoveStones(positions)
	if removed.StoneCount() != 0 {
		t.Fatalf("expected empty board after removal, got %d stones", removed.StoneCount())
	}
	if removed.CountEmpty() != 81 {
		t.Fatalf("expected 81 empty cells, got %d", removed.CountEmpty())
	}
	if b.StoneCount() != 2 {
		t.Fatalf("original board mutated by RemoveStones, got %d stones", b.StoneCount())
	}
}

func TestStonesAreRowMajorOrdered(t *testing.T) {
	b := NewBoard(5)
	for _, p := range []Position{{X: 3, Y: 2}, {X: 0, Y: 0}, {X: 4, Y: 2}, {X: 1, Y: 4}} {
		var err error
		b, err = b.PlaceStone(p, ColorBlack)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	got := b.Stones()
	want := []Position{{X: 0, Y: 0}, {X: 3, Y: 2}, {X: 4, Y: 2}, {X: 1, Y: 4}}
	if len(got) != len(want) {
		t.Fatalf("expected %d stones, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equals(want[i]) {
			t.Fatalf("stone %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestOpponentIsTotalAndSymmetric(t *testing.T) {
	if ColorBlack.Opponent() != ColorWhite || ColorWhite.Opponent() != ColorBlack {
		t.Fatalf("opponent mapping broken")
	}
	if ColorBlack.Opponent().Opponent() != ColorBlack {
		t.Fatalf("opponent mapping not symmetric")
	}
}
