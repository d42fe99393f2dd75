package main

type GameMode int

const (
	ModeMoveLimit GameMode = iota
	ModeCaptureRace
)

func (m GameMode) String() string {
	if m == ModeCaptureRace {
		return "capture_race"
	}
	return "move_limit"
}

type WinResult struct {
	Over      bool
	HasWinner bool
	Winner    StoneColor
	Reason    string
}

// CheckWinCondition is a pure function over accumulated game counters. Two
// consecutive passes end either mode; captures break the tie and an equal
// count is a draw.
func CheckWinCondition(moveCount, target, blackCaptures, whiteCaptures, consecutivePasses int, mode GameMode) WinResult {
	if consecutivePasses >= 2 {
		return winnerByCaptures(blackCaptures, whiteCaptures, "both players passed")
	}
	switch mode {
	case ModeCaptureRace:
		if blackCaptures >= target && blackCaptures >= whiteCaptures {
			return WinResult{Over: true, HasWinner: true, Winner: ColorBlack, Reason: "capture target reached"}
		}
		if whiteCaptures >= target {
			return WinResult{Over: true, HasWinner: true, Winner: ColorWhite, Reason: "capture target reached"}
		}
	default:
		if moveCount >= target {
			return winnerByCaptures(blackCaptures, whiteCaptures, "move limit reached")
		}
	}
	return WinResult{}
}

func winnerByCaptures(blackCaptures, whiteCaptures int, reason string) WinResult {
	if blackCaptures > whiteCaptures {
		return WinResult{Over: true, HasWinner: true, Winner: ColorBlack, Reason: reason}
	}
	if whiteCaptures > blackCaptures {
		return WinResult{Over: true, HasWinner: true, Winner: ColorWhite, Reason: reason}
	}
	return WinResult{Over: true, Reason: reason}
}
