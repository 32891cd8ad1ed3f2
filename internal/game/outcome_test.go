package game

import "testing"

func TestDiscountRuleApply(t *testing.T) {
	tests := []struct {
		name string
		rule DiscountRule
		xp   int
		want int
	}{
		{name: "round66 of 20", rule: DiscountRound66, xp: 20, want: 13},
		{name: "round66 of 15", rule: DiscountRound66, xp: 15, want: 10},
		{name: "round66 of 5", rule: DiscountRound66, xp: 5, want: 3},
		{name: "round66 of 0", rule: DiscountRound66, xp: 0, want: 0},
		{name: "two thirds of 20", rule: DiscountTwoThirdsFloor, xp: 20, want: 13},
		{name: "two thirds of 17 floors", rule: DiscountTwoThirdsFloor, xp: 17, want: 11},
		{name: "two thirds of 5 floors", rule: DiscountTwoThirdsFloor, xp: 5, want: 3},
		{name: "two thirds of 0", rule: DiscountTwoThirdsFloor, xp: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.Apply(tt.xp); got != tt.want {
				t.Errorf("Apply(%d) = %d, want %d", tt.xp, got, tt.want)
			}
		})
	}
}
