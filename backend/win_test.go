package main

import "testing"

func TestCheckWinConditionDoublePassEndsGame(t *testing.T) {
	result := CheckWinCondition(10, 200, 3, 1, 2, ModeMoveLimit)
	if !result.Over || !result.HasWinner || result.Winner != ColorBlack {
		t.Fatalf("expected black win after double pass, got %+v", result)
	}
	if result.Reason != "both players passed" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}

	result = CheckWinCondition(10, 20, 2, 2, 2, ModeCaptureRace)
	if !result.Over || result.HasWinner {
		t.Fatalf("equal captures after double pass should draw, got %+v", result)
	}
}

func TestCheckWinConditionSinglePassDoesNotEnd(t *testing.T) {
	result := CheckWinCondition(10, 200, 5, 0, 1, ModeMoveLimit)
	if result.Over {
		t.Fatalf("single pass must not end the game, got %+v", result)
	}
}

func TestCheckWinConditionMoveLimit(t *testing.T) {
	if result := CheckWinCondition(199, 200, 0, 0, 0, ModeMoveLimit); result.Over {
		t.Fatalf("game ended below move limit: %+v", result)
	}
	result := CheckWinCondition(200, 200, 1, 4, 0, ModeMoveLimit)
	if !result.Over || !result.HasWinner || result.Winner != ColorWhite {
		t.Fatalf("expected white win at move limit, got %+v", result)
	}
	if result.Reason != "move limit reached" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}
	result = CheckWinCondition(200, 200, 3, 3, 0, ModeMoveLimit)
	if !result.Over || result.HasWinner {
		t.Fatalf("equal captures at move limit should draw, got %+v", result)
	}
}

func TestCheckWinConditionCaptureRace(t *testing.T) {
	if result := CheckWinCondition(50, 20, 19, 10, 0, ModeCaptureRace); result.Over {
		t.Fatalf("game ended below capture target: %+v", result)
	}
	result := CheckWinCondition(50, 20, 20, 10, 0, ModeCaptureRace)
	if !result.Over || result.Winner != ColorBlack {
		t.Fatalf("expected black win on capture target, got %+v", result)
	}
	result = CheckWinCondition(50, 20, 3, 20, 0, ModeCaptureRace)
	if !result.Over || result.Winner != ColorWhite {
		t.Fatalf("expected white win on capture target, got %+v", result)
	}
}
