package main

import "math"

type ScoredCandidate struct {
	Pos   Position
	Score float64
}

// scoreCandidate simulates the move and accumulates the weighted evaluator
// sum on the post-move board. An invalid simulation gets the negative
// sentinel so it sorts last without separate filtering.
func scoreCandidate(ctx *aiContext, cand Position, cfg DifficultyConfig) float64 {
	sim := ProcessMove(ctx.board, cand, ctx.color, ctx.enclosures)
	if !sim.Valid {
		return invalidMoveScore
	}
	w := defaultEvalWeights()
	after := sim.Board

	score := w.Position * scorePosition(after, cand)
	score += w.Liberties * scoreLiberties(after, cand)
	score += w.Connection * scoreConnection(after, cand, ctx.color)
	score += w.Territory * scoreTerritory(after, cand, ctx.color)
	score += w.Capture * scoreCapture(sim)

	if cfg.EnableEncirclementProgress {
		score += w.EncirclementProgress * scoreEncirclementProgress(ctx, after, cand)
	}
	if cfg.EnableEncirclementBlock {
		score += w.EncirclementBlock * scoreEncirclementBlock(ctx, after)
	}
	if cfg.EnableUrgentDefense {
		score += w.UrgentDefense * scoreUrgentDefense(ctx, after, cand)
	}
	if cfg.EnableCaptureBlock {
		score += w.CaptureBlock * scoreCaptureBlock(ctx, cand)
	}
	return score
}

func scorePosition(b Board, cand Position) float64 {
	half := float64(b.Size()) / 2
	center := float64(b.Size()-1) / 2
	dist := math.Hypot(float64(cand.X)-center, float64(cand.Y)-center)
	return 1 - dist/half
}

func scoreLiberties(b Board, cand Position) float64 {
	empty := 0
	for _, n := range cand.Neighbors() {
		if b.IsEmpty(n) {
			empty++
		}
	}
	return float64(empty) * 5
}

func scoreConnection(b Board, cand Position, color StoneColor) float64 {
	adjacent := 0
	for _, n := range cand.Neighbors() {
		if c, ok := b.StoneAt(n); ok && c == color {
			adjacent++
		}
	}
	ringTwo := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			if maxAbs(dx, dy) != 2 {
				continue
			}
			p := Position{X: cand.X + dx, Y: cand.Y + dy}
			if c, ok := b.StoneAt(p); ok && c == color {
				ringTwo++
			}
		}
	}
	return float64(adjacent)*10 + float64(ringTwo)*2
}

func scoreTerritory(b Board, cand Position, color StoneColor) float64 {
	friendly := 0
	cells := 0
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p := Position{X: cand.X + dx, Y: cand.Y + dy}
			if !b.InBounds(p) {
				continue
			}
			cells++
			if c, ok := b.StoneAt(p); ok && c == color {
				friendly++
			}
		}
	}
	if cells == 0 {
		return 0
	}
	return float64(friendly) / float64(cells) * 30
}

func scoreCapture(sim MoveResult) float64 {
	score := float64(len(sim.Captured)) * 50
	if len(sim.NewEnclosures) > 0 {
		score += 200
	}
	for _, e := range sim.NewEnclosures {
		score += float64(len(e.Interior)) * 5
	}
	return score
}

// scoreEncirclementProgress rewards tightening the net around nearby
// opponent groups: fewer edge exits after the move than before.
func scoreEncirclementProgress(ctx *aiContext, after Board, cand Position) float64 {
	score := 0.0
	for _, g := range ctx.groupsOf(ctx.color.Opponent()) {
		if !groupNear(g, cand, 3) {
			continue
		}
		afterGroup := analyzeGroup(after, g.stones[0])
		if afterGroup == nil || afterGroup.color != g.color {
			continue
		}
		reduction := g.edgeExits - afterGroup.edgeExits
		if reduction <= 0 {
			continue
		}
		score += 30 + 10*float64(reduction)
		if afterGroup.edgeExits <= 3 {
			score += 5
		}
	}
	return score
}

// scoreEncirclementBlock rewards reopening escape routes for own groups
// that are already mostly walled in.
func scoreEncirclementBlock(ctx *aiContext, after Board) float64 {
	score := 0.0
	for _, g := range ctx.groupsOf(ctx.color) {
		if g.edgeExits > 3 || g.oppBoundaryFraction() < 0.5 {
			continue
		}
		afterGroup := analyzeGroup(after, g.stones[0])
		if afterGroup == nil {
			continue
		}
		increase := afterGroup.edgeExits - g.edgeExits
		if increase > 0 {
			score += 40 + 10*float64(increase)
		}
	}
	return score
}

func scoreUrgentDefense(ctx *aiContext, after Board, cand Position) float64 {
	score := 0.0
	for _, g := range ctx.groupsOf(ctx.color) {
		if g.edgeExits > 2 {
			continue
		}
		if groupNear(g, cand, 1) {
			score += 50
		}
		afterGroup := analyzeGroup(after, g.stones[0])
		if afterGroup != nil && afterGroup.edgeExits > g.edgeExits {
			score += 100
		}
		if g.isCriticalGap(cand) {
			score += 80
		}
	}
	return score
}

// scoreCaptureBlock rewards occupying the exact cell from which the
// opponent could capture own stones next turn.
func scoreCaptureBlock(ctx *aiContext, cand Position) float64 {
	if stones, ok := ctx.threatMap()[cand]; ok {
		return 150 + 30*float64(stones)
	}
	return 0
}

func groupNear(g *groupInfo, p Position, radius int) bool {
	for _, stone := range g.stones {
		if maxAbs(stone.X-p.X, stone.Y-p.Y) <= radius {
			return true
		}
	}
	return false
}

func maxAbs(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
