package main

import (
	"time"

	"go.uber.org/zap"
)

type Game struct {
	settings    GameSettings
	state       GameState
	history     MoveHistory
	blackPlayer IPlayer
	whitePlayer IPlayer
	turnStart   time.Time
	logger      *zap.SugaredLogger
}

func NewGame(settings GameSettings, logger *zap.SugaredLogger) Game {
	g := Game{logger: logger}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
		g.logMatchup()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

// TryApplyMove places a stone for the side to move, folds captures and new
// enclosures into the game state, and evaluates the win condition.
func (g *Game) TryApplyMove(move Position) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()

	result := ProcessMove(g.state.Board, move, g.state.ToMove, g.state.Enclosures)
	if !result.Valid {
		g.state.LastMessage = "Illegal move: " + result.Err.String()
		return false, g.state.LastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	mover := g.state.ToMove

	g.state.Board = result.Board
	g.state.Enclosures = append(g.state.Enclosures, result.NewEnclosures...)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.LastMessage = ""
	g.state.MoveCount++
	g.state.ConsecutivePasses = 0
	if mover == ColorBlack {
		g.state.CapturedBlack += len(result.Captured)
	} else {
		g.state.CapturedWhite += len(result.Captured)
	}

	g.history.Push(HistoryEntry{
		Move:              move,
		Player:            mover,
		IsAi:              isAiMove,
		ElapsedMs:         elapsedMs,
		CapturedPositions: result.Captured,
		NewEnclosures:     result.NewEnclosures,
	})
	if g.logger != nil {
		fields := []any{
			"player", mover.String(),
			"x", move.X, "y", move.Y,
			"ai", isAiMove,
			"captured", len(result.Captured),
			"enclosures", len(result.NewEnclosures),
			"elapsed_ms", elapsedMs,
		}
		if GetConfig().LogMoveStats {
			fields = append(fields, "stones", result.Board.StoneCount(), "empty", result.Board.CountEmpty())
		}
		g.logger.Infow("move played", fields...)
	}

	g.state.ToMove = mover.Opponent()
	g.finishIfOver()
	g.turnStart = time.Now()
	return true, ""
}

// TryPass records a pass for the side to move.
func (g *Game) TryPass() (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	mover := g.state.ToMove
	g.state.ConsecutivePasses++
	g.state.MoveCount++
	g.state.HasLastMove = false
	g.history.Push(HistoryEntry{
		Player: mover,
		Pass:   true,
		IsAi:   player != nil && !player.IsHuman(),
	})
	if g.logger != nil {
		g.logger.Infow("pass", "player", mover.String(), "consecutive", g.state.ConsecutivePasses)
	}
	g.state.ToMove = mover.Opponent()
	g.finishIfOver()
	g.turnStart = time.Now()
	return true, ""
}

func (g *Game) finishIfOver() {
	result := CheckWinCondition(
		g.state.MoveCount,
		g.settings.WinTarget(),
		g.state.CapturedBlack,
		g.state.CapturedWhite,
		g.state.ConsecutivePasses,
		g.settings.Mode,
	)
	if !result.Over {
		return
	}
	g.state.WinReason = result.Reason
	switch {
	case !result.HasWinner:
		g.state.Status = StatusDraw
	case result.Winner == ColorBlack:
		g.state.Status = StatusBlackWon
	default:
		g.state.Status = StatusWhiteWon
	}
	if g.logger != nil {
		g.logger.Infow("game over", "status", g.state.Status.String(), "reason", result.Reason)
	}
}

// Tick advances the game by at most one move: applies a pending human move
// or drives the AI worker. Returns true when the state changed.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		human, ok := player.(*HumanPlayer)
		if !ok || !human.HasPendingMove() {
			return false
		}
		move, pass := human.TakePendingMove()
		if pass {
			applied, _ := g.TryPass()
			return applied
		}
		applied, _ := g.TryApplyMove(move)
		return applied
	}
	ai, ok := player.(*AIPlayer)
	if !ok {
		move, hasMove := player.ChooseMove(g.state.Clone())
		if !hasMove {
			applied, _ := g.TryPass()
			return applied
		}
		applied, _ := g.TryApplyMove(move)
		return applied
	}
	if ai.HasMoveReady() {
		// Optional pacing so AI-vs-AI games stay watchable in the frontend.
		if delay := time.Duration(GetConfig().AiMoveDelayMs) * time.Millisecond; delay > 0 && time.Since(g.turnStart) < delay {
			return false
		}
		move, pass := ai.TakeMove()
		if pass {
			applied, _ := g.TryPass()
			return applied
		}
		applied, _ := g.TryApplyMove(move)
		if !applied {
			// A rejected engine move would stall the turn loop; pass
			// rather than spin.
			applied, _ = g.TryPass()
		}
		return applied
	}
	if !ai.IsThinking() {
		ai.StartThinking(g.state.Clone())
	}
	return false
}

func (g *Game) SubmitHumanMove(move Position) bool {
	human, ok := g.currentPlayer().(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingMove(move)
	return true
}

func (g *Game) SubmitHumanPass() bool {
	human, ok := g.currentPlayer().(*HumanPlayer)
	if !ok {
		return false
	}
	human.SetPendingPass()
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	if g.state.ToMove == ColorBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = NewHumanPlayer()
	} else {
		g.blackPlayer = NewAIPlayer(g.settings.BlackDifficulty, g.settings.AISeed)
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = NewHumanPlayer()
	} else {
		g.whitePlayer = NewAIPlayer(g.settings.WhiteDifficulty, g.settings.AISeed)
	}
}

func (g *Game) logMatchup() {
	if g.logger == nil {
		return
	}
	label := func(t PlayerType, level int) string {
		if t == PlayerAI {
			return DifficultyLabel(level)
		}
		return "Human"
	}
	g.logger.Infow("game started",
		"board_size", g.settings.BoardSize,
		"mode", g.settings.Mode.String(),
		"black", label(g.settings.BlackType, g.settings.BlackDifficulty),
		"white", label(g.settings.WhiteType, g.settings.WhiteDifficulty),
	)
}
