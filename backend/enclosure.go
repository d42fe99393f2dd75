package main

// Enclosure is a completed fort: the encircling stones and the claimed
// interior. Interior and wall never overlap, and interiors of registered
// enclosures never intersect each other. The list grows for the rest of the
// game and is owned by the caller; the engine only appends.
type Enclosure struct {
	Owner    StoneColor `json:"owner"`
	Wall     []Position `json:"wall"`
	Interior []Position `json:"interior"`
}

func NewEnclosure(owner StoneColor, wall, interior map[Position]struct{}) Enclosure {
	return Enclosure{
		Owner:    owner,
		Wall:     positionSetToSorted(wall),
		Interior: positionSetToSorted(interior),
	}
}

func (e Enclosure) ContainsInterior(p Position) bool {
	for _, cell := range e.Interior {
		if cell.Equals(p) {
			return true
		}
	}
	return false
}

func insideAnyEnclosure(enclosures []Enclosure, p Position) bool {
	for _, e := range enclosures {
		if e.ContainsInterior(p) {
			return true
		}
	}
	return false
}

func cloneEnclosures(enclosures []Enclosure) []Enclosure {
	return append([]Enclosure(nil), enclosures...)
}
