package main

type HumanPlayer struct {
	pending     bool
	pendingMove Position
	pendingPass bool
}

func NewHumanPlayer() *HumanPlayer {
	return &HumanPlayer{}
}

func (h *HumanPlayer) IsHuman() bool {
	return true
}

func (h *HumanPlayer) ChooseMove(GameState) (Position, bool) {
	return Position{}, false
}

func (h *HumanPlayer) SetPendingMove(move Position) {
	h.pendingMove = move
	h.pendingPass = false
	h.pending = true
}

func (h *HumanPlayer) SetPendingPass() {
	h.pendingPass = true
	h.pending = true
}

func (h *HumanPlayer) HasPendingMove() bool {
	return h.pending
}

func (h *HumanPlayer) TakePendingMove() (Position, bool) {
	h.pending = false
	return h.pendingMove, h.pendingPass
}
