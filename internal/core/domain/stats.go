package domain

// UserStats holds the derived aggregates for one user. Consistency is the
// percentage of the trailing 30 days with at least one journal created,
// rounded and clamped to [0,100].
type UserStats struct {
	TotalLikes     int `json:"totalLikes"`
	TotalReads     int `json:"totalReads"`
	Consistency    int `json:"consistency"`
	JournalsCount  int `json:"journalsCount"`
	RecentActivity int `json:"recentActivity"`
}

// ConsistencyWindowDays is the trailing window for the consistency score.
const ConsistencyWindowDays = 30

// ConsistencyScore converts a count of distinct writing days in the trailing
// window into a 0-100 percentage.
func ConsistencyScore(distinctDays int) int {
	score := int(float64(distinctDays)/float64(ConsistencyWindowDays)*100 + 0.5)
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
