package main

type PlayerType int

const (
	PlayerHuman PlayerType = iota
	PlayerAI
)

type GameSettings struct {
	BoardSize       int      `json:"board_size"`
	Mode            GameMode `json:"-"`
	TargetMoves     int      `json:"target_moves"`
	CaptureTarget   int      `json:"capture_target"`
	BlackStarts     bool     `json:"black_starts"`
	BlackType       PlayerType
	WhiteType       PlayerType
	BlackDifficulty int `json:"black_difficulty"`
	WhiteDifficulty int `json:"white_difficulty"`
	AISeed          int64
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:       DefaultBoardSize,
		Mode:            ModeMoveLimit,
		TargetMoves:     200,
		CaptureTarget:   20,
		BlackStarts:     true,
		BlackType:       PlayerHuman,
		WhiteType:       PlayerAI,
		BlackDifficulty: 5,
		WhiteDifficulty: 5,
	}
}

// WinTarget is the counter CheckWinCondition compares against in the
// configured mode.
func (s GameSettings) WinTarget() int {
	if s.Mode == ModeCaptureRace {
		return s.CaptureTarget
	}
	return s.TargetMoves
}
