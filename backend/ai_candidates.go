package main

// generateCandidates builds the cell pool the AI will consider. Early game
// it works from the board center and the star points; afterwards it takes a
// radius around every stone (and the opponent's last move, which is already
// a stone but keeps a wider ring at high radius settings).
func generateCandidates(b Board, color StoneColor, cfg DifficultyConfig, lastOpponentMove *Position, enclosures []Enclosure) []Position {
	set := map[Position]struct{}{}
	add := func(p Position) {
		if !b.InBounds(p) || !b.IsEmpty(p) {
			return
		}
		if insideAnyEnclosure(enclosures, p) {
			return
		}
		set[p] = struct{}{}
	}

	if b.StoneCount() < 4 {
		center := Position{X: b.Size() / 2, Y: b.Size() / 2}
		addRadius(add, center, cfg.OpeningRadius)
		for _, star := range starPoints(b.Size()) {
			add(star)
		}
		if lastOpponentMove != nil {
			addRadius(add, *lastOpponentMove, cfg.CandidateRadius)
		}
	} else {
		for _, stone := range b.Stones() {
			addRadius(add, stone, cfg.CandidateRadius)
		}
		if lastOpponentMove != nil {
			addRadius(add, *lastOpponentMove, cfg.CandidateRadius+1)
		}
	}
	return positionSetToSorted(set)
}

func addRadius(add func(Position), center Position, radius int) {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			add(Position{X: center.X + dx, Y: center.Y + dy})
		}
	}
}

func starPoints(size int) []Position {
	q := size / 4
	h := size / 2
	marks := []int{q, h, size - 1 - q}
	out := []Position{}
	for _, y := range marks {
		for _, x := range marks {
			out = append(out, Position{X: x, Y: y})
		}
	}
	return out
}
