package main

// passesVetoes runs the pre-scoring filters. Any failure drops the
// candidate before it is ever scored.
func passesVetoes(ctx *aiContext, cand Position) bool {
	if insideAnyEnclosure(ctx.enclosures, cand) {
		return false
	}
	sim := ProcessMove(ctx.board, cand, ctx.color, ctx.enclosures)
	if !sim.Valid {
		return false
	}
	group := analyzeGroup(sim.Board, cand)
	if !survivesEncirclementProbe(ctx, sim, group) {
		return false
	}
	return dangerVerdict(group.edgeExits, group.oppBoundaryFraction(), len(group.criticalGaps))
}

// survivesEncirclementProbe simulates every opponent reply on the gaps of
// the just-placed group and vetoes the candidate if any single reply
// captures own stones. A group with three or more exits cannot be shut in
// by one move, so the simulation is skipped entirely.
func survivesEncirclementProbe(ctx *aiContext, sim MoveResult, group *groupInfo) bool {
	if group.edgeExits >= 3 {
		return true
	}
	opponent := ctx.color.Opponent()
	enclosures := ctx.enclosures
	if len(sim.NewEnclosures) > 0 {
		enclosures = append(cloneEnclosures(enclosures), sim.NewEnclosures...)
	}
	for _, gap := range group.gaps {
		reply := ProcessMove(sim.Board, gap, opponent, enclosures)
		if reply.Valid && len(reply.Captured) > 0 {
			return false
		}
	}
	return true
}

// dangerVerdict is the danger-zone table: true means the candidate passes.
func dangerVerdict(edgeExits int, oppFraction float64, criticalGaps int) bool {
	switch {
	case edgeExits == 0:
		return false
	case edgeExits <= 2:
		return oppFraction < 0.6
	case edgeExits <= 4:
		return oppFraction < 0.4 || criticalGaps < edgeExits
	default:
		return true
	}
}
