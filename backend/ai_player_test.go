package main

import (
	"math/rand"
	"testing"
	"time"
)

func TestGenerateCandidatesOpeningNearCenterAndStars(t *testing.T) {
	b := NewBoard(9)
	last := Position{X: 4, Y: 4}
	b = mustPlace(t, b, last, ColorBlack)

	candidates := generateCandidates(b, ColorWhite, DifficultyFor(5), &last, nil)
	if len(candidates) == 0 {
		t.Fatal("opening pool is empty")
	}
	for _, cand := range candidates {
		if cand.Equals(last) {
			t.Fatalf("occupied cell (%d,%d) in candidate pool", cand.X, cand.Y)
		}
		nearCenter := maxAbs(cand.X-4, cand.Y-4) <= 3
		star := false
		for _, s := range starPoints(9) {
			if cand.Equals(s) {
				star = true
			}
		}
		if !nearCenter && !star {
			t.Fatalf("opening candidate (%d,%d) outside center region and star points", cand.X, cand.Y)
		}
	}
}

func TestGenerateCandidatesMidgameHugsStones(t *testing.T) {
	b := NewBoard(15)
	stones := []Position{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 10, Y: 10}, {X: 11, Y: 10}}
	for i, p := range stones {
		color := ColorBlack
		if i%2 == 1 {
			color = ColorWhite
		}
		b = mustPlace(t, b, p, color)
	}
	last := stones[3]
	cfg := DifficultyFor(5)

	candidates := generateCandidates(b, ColorBlack, cfg, &last, nil)
	for _, cand := range candidates {
		within := false
		for _, stone := range stones {
			if maxAbs(cand.X-stone.X, cand.Y-stone.Y) <= cfg.CandidateRadius+1 {
				within = true
				break
			}
		}
		if !within {
			t.Fatalf("midgame candidate (%d,%d) far from every stone", cand.X, cand.Y)
		}
	}
}

func TestGenerateCandidatesSkipsEnclosureInteriors(t *testing.T) {
	b := NewBoard(9)
	b = mustPlace(t, b, Position{X: 4, Y: 4}, ColorWhite)
	for _, p := range []Position{{X: 3, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 3}} {
		b = mustPlace(t, b, p, ColorBlack)
	}
	result := ProcessMove(b, Position{X: 4, Y: 5}, ColorBlack, nil)
	if !result.Valid {
		t.Fatalf("setup capture failed: %v", result.Err)
	}
	candidates := generateCandidates(result.Board, ColorWhite, DifficultyFor(5), nil, result.NewEnclosures)
	for _, cand := range candidates {
		if cand.Equals(Position{X: 4, Y: 4}) {
			t.Fatal("fort interior offered as a candidate")
		}
	}
}

func TestSelectMoveRepliesNearOpening(t *testing.T) {
	b := NewBoard(9)
	opening := Position{X: 4, Y: 4}
	b = mustPlace(t, b, opening, ColorBlack)

	ai := NewAIPlayer(5, 7)
	move, ok := ai.SelectMove(b, ColorWhite, &opening, nil)
	if !ok {
		t.Fatal("engine passed on a nearly empty board")
	}
	if move.Equals(opening) {
		t.Fatal("engine picked the occupied opening cell")
	}
	if maxAbs(move.X-opening.X, move.Y-opening.Y) > 4 {
		t.Fatalf("reply (%d,%d) ignores the opening stone", move.X, move.Y)
	}
}

func TestSelectMoveIsDeterministicPerSeed(t *testing.T) {
	buildBoard := func() Board {
		b := NewBoard(11)
		b = mustPlace(t, b, Position{X: 5, Y: 5}, ColorBlack)
		b = mustPlace(t, b, Position{X: 5, Y: 6}, ColorWhite)
		b = mustPlace(t, b, Position{X: 6, Y: 5}, ColorBlack)
		b = mustPlace(t, b, Position{X: 4, Y: 6}, ColorWhite)
		return b
	}
	last := Position{X: 4, Y: 6}

	first, ok1 := NewAIPlayer(5, 42).SelectMove(buildBoard(), ColorBlack, &last, nil)
	second, ok2 := NewAIPlayer(5, 42).SelectMove(buildBoard(), ColorBlack, &last, nil)
	if !ok1 || !ok2 {
		t.Fatal("engine passed unexpectedly")
	}
	if !first.Equals(second) {
		t.Fatalf("same seed gave (%d,%d) then (%d,%d)", first.X, first.Y, second.X, second.Y)
	}
}

func TestSelectTopCandidateStaysWithinMargin(t *testing.T) {
	scored := []ScoredCandidate{
		{Pos: Position{X: 1, Y: 1}, Score: 100},
		{Pos: Position{X: 2, Y: 1}, Score: 99},
		{Pos: Position{X: 3, Y: 1}, Score: 98.5},
		{Pos: Position{X: 4, Y: 1}, Score: 50},
		{Pos: Position{X: 5, Y: 1}, Score: 10},
	}
	cfg := DifficultyFor(10)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		picked := selectTopCandidate(append([]ScoredCandidate(nil), scored...), cfg, rng)
		best := 100.0
		found := false
		for _, sc := range scored {
			if sc.Pos.Equals(picked) {
				found = true
				if best-sc.Score > selectionMargin {
					t.Fatalf("pick (%d,%d) with score %f outside margin", picked.X, picked.Y, sc.Score)
				}
			}
		}
		if !found {
			t.Fatalf("pick (%d,%d) not in the scored list", picked.X, picked.Y)
		}
	}
}

func TestSelectTopCandidateBlunderStaysInTopFraction(t *testing.T) {
	scored := make([]ScoredCandidate, 10)
	for i := range scored {
		scored[i] = ScoredCandidate{Pos: Position{X: i, Y: 0}, Score: float64(100 - 10*i)}
	}
	cfg := DifficultyFor(1)
	pool := int(cfg.TopFraction * float64(len(scored)))
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		// Scores are 10 apart, so only the top move is within the margin;
		// every other pick must come from the blunder pool.
		picked := selectTopCandidate(append([]ScoredCandidate(nil), scored...), cfg, rng)
		if picked.X >= pool {
			t.Fatalf("level 1 pick (%d,0) outside the blunder pool of %d", picked.X, pool)
		}
	}
}

func TestSelectMovePassesOnFullBoard(t *testing.T) {
	b := NewBoard(3)
	color := ColorBlack
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b = mustPlace(t, b, Position{X: x, Y: y}, color)
			color = color.Opponent()
		}
	}
	ai := NewAIPlayer(5, 1)
	if _, ok := ai.SelectMove(b, ColorBlack, nil, nil); ok {
		t.Fatal("engine must pass when no empty cell remains")
	}
}

func TestStartThinkingDeliversOneMove(t *testing.T) {
	settings := DefaultGameSettings()
	settings.BoardSize = 9
	state := DefaultGameState(settings)
	state.Board = mustPlace(t, state.Board, Position{X: 4, Y: 4}, ColorBlack)
	state.ToMove = ColorWhite
	state.HasLastMove = true
	state.LastMove = Position{X: 4, Y: 4}

	ai := NewAIPlayer(5, 11)
	ai.StartThinking(state)
	deadline := time.After(5 * time.Second)
	for !ai.HasMoveReady() {
		select {
		case <-deadline:
			t.Fatal("worker never produced a move")
		case <-time.After(time.Millisecond):
		}
	}
	move, pass := ai.TakeMove()
	if pass {
		t.Fatal("worker passed on a nearly empty board")
	}
	if !state.Board.IsEmpty(move) {
		t.Fatalf("worker picked occupied cell (%d,%d)", move.X, move.Y)
	}
	if ai.HasMoveReady() {
		t.Fatal("TakeMove must clear the ready flag")
	}
}
