package main

import (
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// AIPlayer computes one move per turn. The full pipeline (candidates, veto,
// scoring, selection) runs as a one-shot worker on cloned inputs; nothing
// computed during a turn survives into the next one.
type AIPlayer struct {
	level int

	rngMu sync.Mutex
	rng   *rand.Rand

	moveMu     sync.Mutex
	readyMove  Position
	readyPass  bool
	thinking   atomic.Bool
	moveReady  atomic.Bool
	workerDone chan struct{}
}

func NewAIPlayer(level int, seed int64) *AIPlayer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AIPlayer{level: level, rng: rand.New(rand.NewSource(seed))}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Level() int {
	return a.level
}

// SelectMove runs the pipeline synchronously. The second result is false
// when no legal move survives: the side must pass.
func (a *AIPlayer) SelectMove(b Board, color StoneColor, lastOpponentMove *Position, enclosures []Enclosure) (Position, bool) {
	cfg := DifficultyFor(a.level)
	ctx := newAIContext(b, color, enclosures)

	candidates := generateCandidates(b, color, cfg, lastOpponentMove, enclosures)
	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if !passesVetoes(ctx, cand) {
			continue
		}
		score := scoreCandidate(ctx, cand, cfg)
		if score <= invalidMoveScore {
			continue
		}
		scored = append(scored, ScoredCandidate{Pos: cand, Score: score})
	}
	if len(scored) == 0 {
		// Vetoes can empty the pool while legal moves still exist; a
		// fallback scan keeps the engine from passing prematurely.
		if fallback, ok := firstLegalMove(b, color, enclosures); ok {
			return fallback, true
		}
		return Position{}, false
	}

	a.rngMu.Lock()
	defer a.rngMu.Unlock()
	return selectTopCandidate(scored, cfg, a.rng), true
}

// selectTopCandidate sorts descending and picks uniformly among the moves
// within the fixed margin of the best score. Low difficulties occasionally
// pick from a wider slice of the list instead.
func selectTopCandidate(scored []ScoredCandidate, cfg DifficultyConfig, rng *rand.Rand) Position {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		if scored[i].Pos.Y != scored[j].Pos.Y {
			return scored[i].Pos.Y < scored[j].Pos.Y
		}
		return scored[i].Pos.X < scored[j].Pos.X
	})

	if cfg.BlunderChance > 0 && rng.Float64() < cfg.BlunderChance {
		pool := int(cfg.TopFraction * float64(len(scored)))
		if pool < 1 {
			pool = 1
		}
		return scored[rng.Intn(pool)].Pos
	}

	best := scored[0].Score
	withinMargin := 1
	for withinMargin < len(scored) && best-scored[withinMargin].Score <= selectionMargin {
		withinMargin++
	}
	return scored[rng.Intn(withinMargin)].Pos
}

func firstLegalMove(b Board, color StoneColor, enclosures []Enclosure) (Position, bool) {
	for y := 0; y < b.Size(); y++ {
		for x := 0; x < b.Size(); x++ {
			p := Position{X: x, Y: y}
			if !b.IsEmpty(p) || insideAnyEnclosure(enclosures, p) {
				continue
			}
			return p, true
		}
	}
	return Position{}, false
}

// ChooseMove satisfies IPlayer for synchronous callers (tests, trainer).
func (a *AIPlayer) ChooseMove(state GameState) (Position, bool) {
	var last *Position
	if state.HasLastMove {
		move := state.LastMove
		last = &move
	}
	return a.SelectMove(state.Board, state.ToMove, last, state.Enclosures)
}

// StartThinking dispatches the turn computation to a worker goroutine.
// Inputs are cloned in; the single result is handed back via TakeMove.
func (a *AIPlayer) StartThinking(state GameState) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move, ok := a.ChooseMove(stateCopy)
		a.moveMu.Lock()
		a.readyMove = move
		a.readyPass = !ok
		a.moveMu.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

// TakeMove returns the computed move; pass is true when the side has no
// legal move.
func (a *AIPlayer) TakeMove() (Position, bool) {
	a.moveMu.Lock()
	defer a.moveMu.Unlock()
	a.moveReady.Store(false)
	return a.readyMove, a.readyPass
}
