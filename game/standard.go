package game

type StandardRules struct {
	KillsToWin     int
	SurroundCount  int
	TurnLimit      int
	ChargeCooldown int
	Zones          []Position
}

// NewStandardRules returns the default rule set: 3 captures win for the
// King, 3 surrounding Knights or 30 turns win for the Knights, a 5-turn
// charge cooldown, and no safe zones.
func NewStandardRules() *StandardRules {
	return &StandardRules{
		KillsToWin:     3,
		SurroundCount:  3,
		TurnLimit:      30,
		ChargeCooldown: 5,
	}
}

// WithSafeZones returns a copy of the rules using the given escape squares.
func (sr StandardRules) WithSafeZones(zones ...Position) *StandardRules {
	sr.Zones = append([]Position(nil), zones...)
	return &sr
}

func (sr *StandardRules) KillTarget() int { return sr.KillsToWin }

func (sr *StandardRules) SurroundThreshold() int { return sr.SurroundCount }

func (sr *StandardRules) MaxTurns() int { return sr.TurnLimit }

func (sr *StandardRules) ChargeCooldownTurns() int { return sr.ChargeCooldown }

func (sr *StandardRules) SafeZones() []Position { return sr.Zones }

func (sr *StandardRules) StartingBoard() Board { return NewBoard() }
