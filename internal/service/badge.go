package service

// BadgeThreshold maps a cumulative XP total to the badge it unlocks.
type BadgeThreshold struct {
	XP   int
	Name string
}

// BadgeThresholds is ordered by ascending XP.
var BadgeThresholds = []BadgeThreshold{
	{XP: 100, Name: "Beginner Badge 🥉"},
	{XP: 250, Name: "Intermediate Badge 🥈"},
	{XP: 500, Name: "Advanced Badge 🥇"},
	{XP: 1000, Name: "Expert Badge 🏆"},
}

// EvaluateBadges returns every badge reached at xp that is not in earned,
// in threshold order.
func EvaluateBadges(xp int, earned []string) []string {
	have := make(map[string]struct{}, len(earned))
	for _, name := range earned {
		have[name] = struct{}{}
	}

	newBadges := []string{}
	for _, t := range BadgeThresholds {
		if xp < t.XP {
			break
		}
		if _, ok := have[t.Name]; ok {
			continue
		}
		newBadges = append(newBadges, t.Name)
	}
	return newBadges
}
