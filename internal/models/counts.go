package models

import "github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"

// DailyCountTable maps user -> date -> commit count. Counts are always >= 1;
// a missing date means zero commits.
type DailyCountTable map[string]map[timeutil.Date]int

// Add increments the count for user on date.
func (t DailyCountTable) Add(user string, date timeutil.Date) {
	days, ok := t[user]
	if !ok {
		days = make(map[timeutil.Date]int)
		t[user] = days
	}
	days[date]++
}

// TotalCountTable maps user -> commit count, with every requested user present.
type TotalCountTable map[string]int

// NewTotalCountTable starts every user at zero.
func NewTotalCountTable(users []string) TotalCountTable {
	t := make(TotalCountTable, len(users))
	for _, u := range users {
		t[u] = 0
	}
	return t
}

// CommitDataResponse is the envelope returned for raw commit collections.
type CommitDataResponse struct {
	CommitsData []CommitRecord `json:"commits_data"`
}
