package config

// Escalation tracks the one-way hard level and derives the obstacle
// parameters that depend on it.
type Escalation struct {
	cfg    DifficultyConfig
	base   ObstacleConfig
	chance float64
	hard   bool
}

// NewEscalation creates an escalation tracker in the normal level.
func NewEscalation(cfg SpaceConfig) *Escalation {
	return &Escalation{
		cfg:    cfg.Difficulty,
		base:   cfg.Obstacle,
		chance: cfg.Spawn.ObstacleChance,
	}
}

// IsEnabled returns whether the hard level can ever be reached.
func (e *Escalation) IsEnabled() bool {
	return e.cfg.Enabled && e.cfg.HardScore > 0
}

// Update latches the hard level once score reaches the threshold.
// It returns true only on the call that performed the transition.
func (e *Escalation) Update(score int) bool {
	if e.hard || !e.IsEnabled() || score < e.cfg.HardScore {
		return false
	}
	e.hard = true
	return true
}

// Hard reports whether the hard level has been reached.
func (e *Escalation) Hard() bool {
	return e.hard
}

// ObstacleSpeed returns the per-tick obstacle fall speed for the current level.
func (e *Escalation) ObstacleSpeed() int {
	if e.hard {
		return e.cfg.HardObstacleSpeed
	}
	return e.base.Speed
}

// ObstacleChance returns the per-tick obstacle spawn probability for the current level.
func (e *Escalation) ObstacleChance() float64 {
	if e.hard {
		return e.cfg.HardObstacleChance
	}
	return e.chance
}
