package main

type HistoryEntry struct {
	Move              Position
	Player            StoneColor
	Pass              bool
	IsAi              bool
	ElapsedMs         float64
	CapturedPositions []Position
	NewEnclosures     []Enclosure
}

type MoveHistory struct {
	entries []HistoryEntry
}

func (h *MoveHistory) Clear() {
	h.entries = nil
}

func (h *MoveHistory) Push(entry HistoryEntry) {
	h.entries = append(h.entries, entry)
}

func (h MoveHistory) Size() int {
	return len(h.entries)
}

func (h MoveHistory) All() []HistoryEntry {
	return append([]HistoryEntry(nil), h.entries...)
}
