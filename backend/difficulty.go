package main

// DifficultyConfig tunes the AI pipeline for one of the ten levels. The
// structs are immutable; scoring code never switches on the raw level.
type DifficultyConfig struct {
	Level           int
	Strength        float64
	CandidateRadius int
	OpeningRadius   int

	EnableEncirclementProgress bool
	EnableEncirclementBlock    bool
	EnableUrgentDefense        bool
	EnableCaptureBlock         bool

	// TopFraction widens the random pool used for deliberate sub-optimal
	// picks; BlunderChance is how often such a pick happens at all.
	TopFraction   float64
	BlunderChance float64
}

const (
	selectionMargin  = 2.0
	invalidMoveScore = -1_000_000.0
)

var difficultyLevels = [...]DifficultyConfig{
	{Level: 1, Strength: 0.1, CandidateRadius: 1, OpeningRadius: 2, TopFraction: 0.5, BlunderChance: 0.35},
	{Level: 2, Strength: 0.2, CandidateRadius: 1, OpeningRadius: 2, TopFraction: 0.4, BlunderChance: 0.2},
	{Level: 3, Strength: 0.3, CandidateRadius: 2, OpeningRadius: 2, EnableEncirclementProgress: true, TopFraction: 0.3, BlunderChance: 0.1},
	{Level: 4, Strength: 0.4, CandidateRadius: 2, OpeningRadius: 2, EnableEncirclementProgress: true, EnableEncirclementBlock: true, TopFraction: 0.25, BlunderChance: 0.05},
	{Level: 5, Strength: 0.5, CandidateRadius: 2, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
	{Level: 6, Strength: 0.6, CandidateRadius: 2, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
	{Level: 7, Strength: 0.7, CandidateRadius: 2, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
	{Level: 8, Strength: 0.8, CandidateRadius: 2, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
	{Level: 9, Strength: 0.9, CandidateRadius: 3, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
	{Level: 10, Strength: 1.0, CandidateRadius: 3, OpeningRadius: 3, EnableEncirclementProgress: true, EnableEncirclementBlock: true, EnableUrgentDefense: true, EnableCaptureBlock: true},
}

func DifficultyLabel(level int) string {
	cfg := DifficultyFor(level)
	switch {
	case cfg.Level <= 2:
		return "AI (beginner)"
	case cfg.Level <= 4:
		return "AI (casual)"
	case cfg.Level <= 7:
		return "AI (standard)"
	default:
		return "AI (strong)"
	}
}

func DifficultyFor(level int) DifficultyConfig {
	if level < 1 {
		level = 1
	}
	if level > len(difficultyLevels) {
		level = len(difficultyLevels)
	}
	return difficultyLevels[level-1]
}

// evalWeights is the central weight table for the scoring evaluators.
type evalWeights struct {
	Position             float64
	Liberties            float64
	Connection           float64
	Territory            float64
	Capture              float64
	EncirclementProgress float64
	EncirclementBlock    float64
	UrgentDefense        float64
	CaptureBlock         float64
}

func defaultEvalWeights() evalWeights {
	return evalWeights{
		Position:             1,
		Liberties:            2,
		Connection:           3,
		Territory:            5,
		Capture:              10,
		EncirclementProgress: 15,
		EncirclementBlock:    30,
		UrgentDefense:        50,
		CaptureBlock:         100,
	}
}
