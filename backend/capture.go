package main

type MoveError int

const (
	ErrNone MoveError = iota
	ErrOutOfBounds
	ErrOccupied
	ErrInsideEnclosure
)

func (e MoveError) String() string {
	switch e {
	case ErrOutOfBounds:
		return "out of bounds"
	case ErrOccupied:
		return "occupied"
	case ErrInsideEnclosure:
		return "inside enclosure"
	default:
		return ""
	}
}

type MoveResult struct {
	Valid         bool
	Err           MoveError
	Board         Board
	Captured      []Position
	NewEnclosures []Enclosure
}

// ProcessMove validates the placement, resolves captures of the opponent
// color, and derives new enclosures, both from captures and from empty
// regions freshly closed off by the mover. The input board and enclosure
// list are never mutated; for fixed inputs the result is deterministic.
func ProcessMove(b Board, pos Position, color StoneColor, enclosures []Enclosure) MoveResult {
	if !b.InBounds(pos) {
		return MoveResult{Err: ErrOutOfBounds, Board: b}
	}
	if !b.IsEmpty(pos) {
		return MoveResult{Err: ErrOccupied, Board: b}
	}
	if insideAnyEnclosure(enclosures, pos) {
		return MoveResult{Err: ErrInsideEnclosure, Board: b}
	}

	placed, err := b.PlaceStone(pos, color)
	if err != nil {
		return MoveResult{Err: ErrOccupied, Board: b}
	}

	opponent := color.Opponent()
	captured := map[Position]struct{}{}
	newEnclosures := []Enclosure{}

	// Every opponent stone seeds at most one region search per call: the
	// checked set carries all cells a previous seed already visited.
	checked := map[Position]struct{}{}
	for y := 0; y < placed.Size(); y++ {
		for x := 0; x < placed.Size(); x++ {
			seed := Position{X: x, Y: y}
			if _, done := checked[seed]; done {
				continue
			}
			if c, ok := placed.StoneAt(seed); !ok || c != opponent {
				continue
			}
			region := FindRegion(placed, seed, opponent)
			for cell := range region.Cells {
				checked[cell] = struct{}{}
			}
			if region.CanEscape {
				continue
			}
			for _, cell := range region.StonesOf(placed, opponent) {
				captured[cell] = struct{}{}
			}
			// Capturing the wall of an earlier fort merges its interior into
			// this region; those cells stay with the fort that already owns
			// them so registered interiors never intersect.
			interior := map[Position]struct{}{}
			for cell := range region.Cells {
				if insideAnyEnclosure(enclosures, cell) {
					continue
				}
				interior[cell] = struct{}{}
			}
			if len(region.Wall) > 0 && len(interior) > 0 {
				newEnclosures = append(newEnclosures, NewEnclosure(color, region.Wall, interior))
			}
		}
	}

	capturedList := positionSetToSorted(captured)
	final := placed.RemoveStones(capturedList)

	// Territory pass: empty regions sealed off entirely by the mover's
	// stones. Seeding the escape search with the opponent as target makes
	// the mover's stones the wall and lets any touch of a surviving
	// opponent group escape through that group's own edge path, which
	// disqualifies the claim.
	territoryChecked := map[Position]struct{}{}
	for y := 0; y < final.Size(); y++ {
		for x := 0; x < final.Size(); x++ {
			seed := Position{X: x, Y: y}
			if _, done := territoryChecked[seed]; done {
				continue
			}
			if !final.IsEmpty(seed) {
				continue
			}
			if insideAnyEnclosure(enclosures, seed) || insideAnyEnclosure(newEnclosures, seed) {
				continue
			}
			region := FindRegion(final, seed, opponent)
			for cell := range region.Cells {
				territoryChecked[cell] = struct{}{}
			}
			if region.CanEscape || len(region.Wall) == 0 {
				continue
			}
			interior := map[Position]struct{}{}
			for cell := range region.Cells {
				if insideAnyEnclosure(enclosures, cell) {
					continue
				}
				interior[cell] = struct{}{}
			}
			if len(interior) == 0 {
				continue
			}
			overlaps := false
			for cell := range interior {
				if insideAnyEnclosure(newEnclosures, cell) {
					overlaps = true
					break
				}
			}
			if overlaps {
				continue
			}
			newEnclosures = append(newEnclosures, NewEnclosure(color, region.Wall, interior))
		}
	}

	return MoveResult{
		Valid:         true,
		Board:         final,
		Captured:      capturedList,
		NewEnclosures: newEnclosures,
	}
}
