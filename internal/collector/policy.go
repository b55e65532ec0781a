package collector

import (
	"fmt"

	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// Policy decides whether a date is in scope relative to the filter date.
type Policy int

const (
	// SinceDate keeps dates on or after the filter date.
	SinceDate Policy = iota
	// ExactDate keeps only the filter date itself.
	ExactDate
)

// PolicyFor maps the exact_date request flag onto a Policy.
func PolicyFor(exact bool) Policy {
	if exact {
		return ExactDate
	}
	return SinceDate
}

// Match reports whether date satisfies the policy for filter.
func (p Policy) Match(date, filter timeutil.Date) bool {
	switch p {
	case ExactDate:
		return date.Equal(filter)
	case SinceDate:
		return !date.Before(filter)
	default:
		return false
	}
}

func (p Policy) String() string {
	switch p {
	case ExactDate:
		return "exact"
	case SinceDate:
		return "since"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
