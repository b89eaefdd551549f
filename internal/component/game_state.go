package component

// GamePhase — фаза игровой сессии
type GamePhase int

const (
	PhaseReady GamePhase = iota
	PhaseActive
	PhaseWin
	PhaseLose
)

func (p GamePhase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhaseActive:
		return "Active"
	case PhaseWin:
		return "Win"
	case PhaseLose:
		return "Lose"
	}
	return "Unknown"
}

// IsTerminal reports whether the session is over.
func (p GamePhase) IsTerminal() bool {
	return p == PhaseWin || p == PhaseLose
}
