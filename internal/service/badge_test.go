package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateBadges(t *testing.T) {
	cases := []struct {
		name   string
		xp     int
		earned []string
		want   []string
	}{
		{"below first threshold", 80, nil, []string{}},
		{"exactly first threshold", 100, nil, []string{"Beginner Badge 🥉"}},
		{"jump to 250 awards both", 250, nil, []string{"Beginner Badge 🥉", "Intermediate Badge 🥈"}},
		{"already earned are skipped", 260, []string{"Beginner Badge 🥉", "Intermediate Badge 🥈"}, []string{}},
		{"jump to 1000 awards all", 1000, nil, []string{
			"Beginner Badge 🥉", "Intermediate Badge 🥈", "Advanced Badge 🥇", "Expert Badge 🏆",
		}},
		{"gap in earned set is filled", 520, []string{"Intermediate Badge 🥈"}, []string{"Beginner Badge 🥉", "Advanced Badge 🥇"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EvaluateBadges(tc.xp, tc.earned))
		})
	}
}

func TestBadgeThresholdsAscending(t *testing.T) {
	for i := 1; i < len(BadgeThresholds); i++ {
		assert.Less(t, BadgeThresholds[i-1].XP, BadgeThresholds[i].XP)
	}
}
