package config

// Curve computes the round deadline from the current score.
type Curve struct {
	cfg RoundConfig
}

// NewCurve creates a difficulty curve for the given round settings.
func NewCurve(cfg RoundConfig) Curve {
	return Curve{cfg: cfg}
}

// RoundMillis returns the deadline in milliseconds for a round played at score.
// Negative scores are treated as zero.
func (c Curve) RoundMillis(score int) int64 {
	if score < 0 {
		score = 0
	}
	d := int64(c.cfg.BaseMs) - int64(score)*int64(c.cfg.StepMs)
	return max(d, int64(c.cfg.FloorMs))
}

// FloorScore returns the lowest score whose deadline equals the floor,
// i.e. the point where difficulty stops increasing. A flat curve (no step)
// reports 0.
func (c Curve) FloorScore() int {
	if c.cfg.StepMs <= 0 {
		return 0
	}
	span := c.cfg.BaseMs - c.cfg.FloorMs
	if span <= 0 {
		return 0
	}
	return (span + c.cfg.StepMs - 1) / c.cfg.StepMs
}
