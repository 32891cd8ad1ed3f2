package game

import "math"

// DiscountRule selects how replay XP is reduced at settlement
type DiscountRule int

const (
	// DiscountRound66 rounds xp*0.66 to the nearest integer
	DiscountRound66 DiscountRule = iota
	// DiscountTwoThirdsFloor computes 2*xp/3 with integer division
	DiscountTwoThirdsFloor
)

// Apply reduces xp according to the rule
func (d DiscountRule) Apply(xp int) int {
	switch d {
	case DiscountTwoThirdsFloor:
		return 2 * xp / 3
	default:
		return int(math.Round(float64(xp) * 0.66))
	}
}

// Outcome is what a finished game hands to settlement. XP is the raw
// amount before any replay discount; LivesLost is 0 or 1.
type Outcome struct {
	ListID    int64
	LessonID  int64
	XP        int
	LivesLost int
	Elapsed   int
	Discount  DiscountRule
	GemsBonus int
}

// Terminal signals that an action ended the session. Extra carries
// game-specific fields merged into the final envelope result.
type Terminal struct {
	Outcome Outcome
	Extra   map[string]interface{}
}
