package engine

// TierInfo describes one rank band. Color is a hex string suitable for
// terminal styling; Badge is a single display glyph.
type TierInfo struct {
	Name      string
	Threshold int
	Color     string
	Badge     string
}

// Tiers is ordered by ascending threshold. The first entry has threshold 0
// so every non-negative EXP total maps onto a rank.
var Tiers = []TierInfo{
	{Name: "Awakened Initiate", Threshold: 0, Color: "#7B879D", Badge: "◇"},
	{Name: "Iron Body", Threshold: 200, Color: "#BF8040", Badge: "◆"},
	{Name: "Shadow Candidate", Threshold: 600, Color: "#8C47D1", Badge: "▲"},
	{Name: "Dungeon Conqueror", Threshold: 1500, Color: "#308CE8", Badge: "★"},
	{Name: "Elite Hunter", Threshold: 3500, Color: "#22C373", Badge: "✦"},
	{Name: "Shadow Commander", Threshold: 7000, Color: "#F4C025", Badge: "⬡"},
	{Name: "Monarch's Vessel", Threshold: 14000, Color: "#E23636", Badge: "♛"},
	{Name: "Shadow Monarch", Threshold: 25000, Color: "#E6E6E6", Badge: "👑"},
}

// MaxTierIndex is the index of the final rank.
var MaxTierIndex = len(Tiers) - 1

// TierForExp returns the highest tier index whose threshold is <= exp.
func TierForExp(exp int) int {
	for i := len(Tiers) - 1; i >= 0; i-- {
		if exp >= Tiers[i].Threshold {
			return i
		}
	}
	return 0
}

// TierProgress returns progress from the tier's threshold towards the next
// one, in [0,1]. The last tier always reports 1.
func TierProgress(exp int, tierIndex int) float64 {
	tierIndex = clampTierIndex(tierIndex)
	if tierIndex == MaxTierIndex {
		return 1
	}
	current := Tiers[tierIndex].Threshold
	next := Tiers[tierIndex+1].Threshold
	p := float64(exp-current) / float64(next-current)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ExpToNextTier returns how much EXP is missing to reach the next rank.
// ok is false at the final rank.
func ExpToNextTier(exp int) (missing int, ok bool) {
	idx := TierForExp(exp)
	if idx == MaxTierIndex {
		return 0, false
	}
	return Tiers[idx+1].Threshold - exp, true
}

func clampTierIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > MaxTierIndex {
		return MaxTierIndex
	}
	return i
}
