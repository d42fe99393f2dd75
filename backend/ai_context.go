package main

// groupInfo describes one connected stone group and its surroundings:
// the empty cells touching it (gaps), how much of its boundary the opponent
// already holds, and how many of its gaps still reach the board edge.
type groupInfo struct {
	color    StoneColor
	stones   []Position
	stoneSet map[Position]struct{}

	gaps        []Position
	oppBoundary int
	boundary    int

	edgeExits    int
	criticalGaps []Position
}

func (g *groupInfo) oppBoundaryFraction() float64 {
	if g.boundary == 0 {
		return 0
	}
	return float64(g.oppBoundary) / float64(g.boundary)
}

func (g *groupInfo) hasStone(p Position) bool {
	_, ok := g.stoneSet[p]
	return ok
}

func (g *groupInfo) isCriticalGap(p Position) bool {
	for _, gap := range g.criticalGaps {
		if gap.Equals(p) {
			return true
		}
	}
	return false
}

// aiContext is the per-turn scratch cache: group analyses and the opponent
// threat map are computed at most once per turn and thrown away with it.
type aiContext struct {
	board      Board
	color      StoneColor
	enclosures []Enclosure

	groupByStone map[Position]*groupInfo
	groups       []*groupInfo

	threats      map[Position]int
	threatsReady bool
}

func newAIContext(b Board, color StoneColor, enclosures []Enclosure) *aiContext {
	return &aiContext{
		board:        b,
		color:        color,
		enclosures:   enclosures,
		groupByStone: map[Position]*groupInfo{},
		threats:      map[Position]int{},
	}
}

func (ctx *aiContext) groupAt(p Position) *groupInfo {
	if g, ok := ctx.groupByStone[p]; ok {
		return g
	}
	g := analyzeGroup(ctx.board, p)
	if g == nil {
		return nil
	}
	for _, stone := range g.stones {
		ctx.groupByStone[stone] = g
	}
	ctx.groups = append(ctx.groups, g)
	return g
}

func (ctx *aiContext) groupsOf(color StoneColor) []*groupInfo {
	out := []*groupInfo{}
	for _, p := range ctx.board.Stones() {
		if c, _ := ctx.board.StoneAt(p); c != color {
			continue
		}
		g := ctx.groupAt(p)
		if g != nil && g.stones[0].Equals(p) {
			out = append(out, g)
		}
	}
	return out
}

// analyzeGroup floods the same-color stone group at seed and classifies its
// boundary. Returns nil when seed is empty.
func analyzeGroup(b Board, seed Position) *groupInfo {
	color, ok := b.StoneAt(seed)
	if !ok {
		return nil
	}
	g := &groupInfo{color: color, stoneSet: map[Position]struct{}{}}
	stack := []Position{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := g.stoneSet[p]; seen {
			continue
		}
		if c, occ := b.StoneAt(p); !occ || c != color {
			continue
		}
		g.stoneSet[p] = struct{}{}
		for _, n := range p.Neighbors() {
			if b.InBounds(n) {
				stack = append(stack, n)
			}
		}
	}
	g.stones = positionSetToSorted(g.stoneSet)

	gapSet := map[Position]struct{}{}
	oppSet := map[Position]struct{}{}
	for stone := range g.stoneSet {
		for _, n := range stone.Neighbors() {
			if !b.InBounds(n) {
				continue
			}
			if c, occ := b.StoneAt(n); occ {
				if c != color {
					oppSet[n] = struct{}{}
				}
				continue
			}
			gapSet[n] = struct{}{}
		}
	}
	g.gaps = positionSetToSorted(gapSet)
	g.oppBoundary = len(oppSet)
	g.boundary = len(oppSet) + len(gapSet)

	escaping := escapingGaps(b, g, Position{X: -1, Y: -1})
	g.edgeExits = len(escaping)

	// Critical gaps only matter while the group can still be shut in; the
	// veto table never consults them past four exits.
	if g.edgeExits > 0 && g.edgeExits <= 4 {
		for _, gap := range escaping {
			if b.IsEdge(gap) {
				g.criticalGaps = append(g.criticalGaps, gap)
				continue
			}
			if len(escapingGaps(b, g, gap)) == 0 {
				g.criticalGaps = append(g.criticalGaps, gap)
			}
		}
	}
	return g
}

// escapingGaps returns the group's gaps from which the board edge is
// reachable through empty (or same-color) cells, treating blocked as an
// opponent stone. Each escaping gap counts as one edge exit.
func escapingGaps(b Board, g *groupInfo, blocked Position) []Position {
	reach := map[Position]struct{}{}
	escaped := false
	stack := []Position{}
	for stone := range g.stoneSet {
		stack = append(stack, stone)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := reach[p]; seen {
			continue
		}
		if !b.InBounds(p) || p.Equals(blocked) {
			continue
		}
		if c, occ := b.StoneAt(p); occ && c != g.color {
			continue
		}
		reach[p] = struct{}{}
		if b.IsEmpty(p) && b.IsEdge(p) {
			escaped = true
		}
		for _, n := range p.Neighbors() {
			stack = append(stack, n)
		}
	}
	if !escaped {
		return nil
	}
	out := []Position{}
	for _, gap := range g.gaps {
		if gap.Equals(blocked) {
			continue
		}
		if _, ok := reach[gap]; !ok {
			continue
		}
		if gapReachesEdge(b, g, gap, blocked) {
			out = append(out, gap)
		}
	}
	return out
}

// gapReachesEdge walks from one gap toward the edge without passing back
// through the group's own stones, so two gaps sharing the group as a bridge
// don't both claim the same corridor.
func gapReachesEdge(b Board, g *groupInfo, from, blocked Position) bool {
	visited := map[Position]struct{}{}
	stack := []Position{from}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[p]; seen {
			continue
		}
		if !b.InBounds(p) || p.Equals(blocked) {
			continue
		}
		if c, occ := b.StoneAt(p); occ {
			if c != g.color || g.hasStone(p) {
				continue
			}
		}
		visited[p] = struct{}{}
		if b.IsEmpty(p) && b.IsEdge(p) {
			return true
		}
		for _, n := range p.Neighbors() {
			stack = append(stack, n)
		}
	}
	return false
}

// threatMap lazily enumerates opponent replies that would capture own
// stones on the current board: for every own group with few exits, each gap
// is simulated as an opponent move. Maps reply cell to stones it captures.
func (ctx *aiContext) threatMap() map[Position]int {
	if ctx.threatsReady {
		return ctx.threats
	}
	ctx.threatsReady = true
	opponent := ctx.color.Opponent()
	for _, g := range ctx.groupsOf(ctx.color) {
		if g.edgeExits > 3 {
			continue
		}
		for _, gap := range g.gaps {
			if _, done := ctx.threats[gap]; done {
				continue
			}
			reply := ProcessMove(ctx.board, gap, opponent, ctx.enclosures)
			if reply.Valid && len(reply.Captured) > 0 {
				ctx.threats[gap] = len(reply.Captured)
			}
		}
	}
	return ctx.threats
}
