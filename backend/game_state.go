package main

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusBlackWon
	StatusWhiteWon
	StatusDraw
)

func (s GameStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusBlackWon:
		return "black_won"
	case StatusWhiteWon:
		return "white_won"
	case StatusDraw:
		return "draw"
	default:
		return "not_started"
	}
}

type GameState struct {
	Board             Board
	ToMove            StoneColor
	Status            GameStatus
	MoveCount         int
	CapturedBlack     int
	CapturedWhite     int
	ConsecutivePasses int
	Enclosures        []Enclosure
	HasLastMove       bool
	LastMove          Position
	LastMessage       string
	WinReason         string
}

func DefaultGameState(settings GameSettings) GameState {
	state := GameState{}
	state.Reset(settings)
	return state
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = NewBoard(settings.BoardSize)
	if settings.BlackStarts {
		s.ToMove = ColorBlack
	} else {
		s.ToMove = ColorWhite
	}
	s.Status = StatusNotStarted
	s.MoveCount = 0
	s.CapturedBlack = 0
	s.CapturedWhite = 0
	s.ConsecutivePasses = 0
	s.Enclosures = nil
	s.HasLastMove = false
	s.LastMove = Position{X: -1, Y: -1}
	s.LastMessage = ""
	s.WinReason = ""
}

// Clone is cheap: Board is value-immutable, only the enclosure slice header
// needs detaching.
func (s GameState) Clone() GameState {
	clone := s
	clone.Enclosures = cloneEnclosures(s.Enclosures)
	return clone
}

func (s GameState) CapturesOf(color StoneColor) int {
	if color == ColorBlack {
		return s.CapturedBlack
	}
	return s.CapturedWhite
}
