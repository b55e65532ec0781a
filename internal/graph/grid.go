// Package graph pivots daily commit counts into a dense user x date grid and
// renders it as a GitHub-style heatmap.
package graph

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
	"github.com/Kamar-Folarin/github-commit-graph/internal/models"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// Grid is a dense table of commit counts. Counts[i][j] belongs to Users[i] on Dates[j].
type Grid struct {
	Users  []string
	Dates  []timeutil.Date
	Counts [][]int
}

// BuildDenseGrid lays out every user present in table against every date
// present for any user. Users sort lexicographically, dates chronologically,
// and absent pairs are 0.
func BuildDenseGrid(table models.DailyCountTable) (*Grid, error) {
	users := make([]string, 0, len(table))
	seen := make(map[timeutil.Date]struct{})
	for user, days := range table {
		users = append(users, user)
		for d := range days {
			seen[d] = struct{}{}
		}
	}
	if len(users) == 0 || len(seen) == 0 {
		return nil, errors.NewNoDataError("no commits found for the requested users and date")
	}

	dates := make([]timeutil.Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(users)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	counts := make([][]int, len(users))
	for i, user := range users {
		row := make([]int, len(dates))
		for j, d := range dates {
			row[j] = table[user][d]
		}
		counts[i] = row
	}

	return &Grid{Users: users, Dates: dates, Counts: counts}, nil
}

func (g *Grid) Rows() int { return len(g.Users) }

func (g *Grid) Cols() int { return len(g.Dates) }

// Max is the largest count in the grid.
func (g *Grid) Max() (int, error) {
	data := make(stats.Float64Data, 0, g.Rows()*g.Cols())
	for _, row := range g.Counts {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	peak, err := stats.Max(data)
	if err != nil {
		return 0, errors.NewNoDataError("grid has no cells")
	}
	return int(peak), nil
}

// DateLabels returns the column dates as YYYY-MM-DD strings.
func (g *Grid) DateLabels() []string {
	labels := make([]string, len(g.Dates))
	for i, d := range g.Dates {
		labels[i] = d.String()
	}
	return labels
}
