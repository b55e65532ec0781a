// Package collector walks users -> repositories -> commits against the GitHub
// API, keeping only what the active date policy allows, and counts the result.
package collector

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
	"github.com/Kamar-Folarin/github-commit-graph/internal/github"
	"github.com/Kamar-Folarin/github-commit-graph/internal/models"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// Collector gathers commits for a fixed set of users. A Collector is built per
// request and holds no state between calls.
type Collector struct {
	fetcher    github.Fetcher
	users      []string
	filterDate timeutil.Date
	policy     Policy
	normalizer timeutil.Normalizer
	logger     *logrus.Logger
}

// Option allows configuring a Collector
type Option func(*Collector)

// WithNormalizer sets the zone commit and repository timestamps are reported in.
func WithNormalizer(n timeutil.Normalizer) Option {
	return func(c *Collector) {
		c.normalizer = n
	}
}

// WithLogger sets the logger. Defaults to logrus' standard logger.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Collector) {
		c.logger = logger
	}
}

// New creates a Collector for users. The users slice is copied.
func New(fetcher github.Fetcher, users []string, filterDate timeutil.Date, policy Policy, opts ...Option) *Collector {
	c := &Collector{
		fetcher:    fetcher,
		users:      append([]string(nil), users...),
		filterDate: filterDate,
		policy:     policy,
		normalizer: timeutil.NewNormalizer(nil),
		logger:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewForUser is New for a single user identifier.
func NewForUser(fetcher github.Fetcher, user string, filterDate timeutil.Date, policy Policy, opts ...Option) *Collector {
	return New(fetcher, []string{user}, filterDate, policy, opts...)
}

// Users returns the requested users in order.
func (c *Collector) Users() []string {
	return append([]string(nil), c.users...)
}

// ListQualifyingRepositories returns the names of user's repositories whose
// last update, in the local zone, satisfies the policy.
func (c *Collector) ListQualifyingRepositories(ctx context.Context, user string) ([]string, error) {
	logger := c.logger.WithFields(logrus.Fields{
		"user":        user,
		"filter_date": c.filterDate.String(),
		"policy":      c.policy.String(),
	})

	var payload []github.RepositoryPayload
	if err := c.fetcher.FetchJSON(ctx, github.UserReposPath(user), &payload); err != nil {
		logger.WithError(err).Error("Failed to fetch repositories")
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to fetch repos for %s", user), err)
	}

	names := make([]string, 0, len(payload))
	for _, p := range payload {
		repo, err := c.toRepositoryRecord(user, p)
		if err != nil {
			return nil, err
		}
		if c.policy.Match(c.normalizer.LocalDate(repo.UpdatedAt), c.filterDate) {
			names = append(names, repo.Name)
		}
	}

	logger.WithFields(logrus.Fields{
		"repositories": len(payload),
		"qualifying":   len(names),
	}).Debug("Filtered repositories")

	return names, nil
}

// FetchRepositoryCommits returns the commits of user/repositoryName whose
// local date satisfies the policy, in upstream order.
func (c *Collector) FetchRepositoryCommits(ctx context.Context, repositoryName, user string) ([]models.CommitRecord, error) {
	logger := c.logger.WithFields(logrus.Fields{
		"user":       user,
		"repository": repositoryName,
	})

	var payload []github.CommitPayload
	if err := c.fetcher.FetchJSON(ctx, github.RepoCommitsPath(user, repositoryName), &payload); err != nil {
		logger.WithError(err).Error("Failed to fetch commits")
		return nil, errors.NewUpstreamError(fmt.Sprintf("failed to fetch commits for %s/%s", user, repositoryName), err)
	}

	commits := make([]models.CommitRecord, 0, len(payload))
	for _, p := range payload {
		record, err := c.toCommitRecord(repositoryName, user, p)
		if err != nil {
			return nil, err
		}
		if c.policy.Match(record.CommitDate, c.filterDate) {
			commits = append(commits, record)
		}
	}

	logger.WithFields(logrus.Fields{
		"commits":  len(payload),
		"retained": len(commits),
	}).Debug("Filtered commits")

	return commits, nil
}

// CollectAll visits every user and every qualifying repository in order and
// concatenates the retained commits. Any upstream failure aborts the walk.
func (c *Collector) CollectAll(ctx context.Context) ([]models.CommitRecord, error) {
	var all []models.CommitRecord
	for _, user := range c.users {
		repos, err := c.ListQualifyingRepositories(ctx, user)
		if err != nil {
			return nil, err
		}
		for _, repo := range repos {
			commits, err := c.FetchRepositoryCommits(ctx, repo, user)
			if err != nil {
				return nil, err
			}
			all = append(all, commits...)
		}
	}

	c.logger.WithFields(logrus.Fields{
		"users":   len(c.users),
		"commits": len(all),
	}).Info("Collected commits")

	if all == nil {
		all = []models.CommitRecord{}
	}
	return all, nil
}

// CountDaily groups collected commits by owner and date.
func (c *Collector) CountDaily(ctx context.Context) (models.DailyCountTable, error) {
	commits, err := c.CollectAll(ctx)
	if err != nil {
		return nil, err
	}
	table := make(models.DailyCountTable)
	for _, commit := range commits {
		table.Add(commit.RepositoryOwner, commit.CommitDate)
	}
	return table, nil
}

// CountTotals counts collected commits per owner. Every requested user is
// present, with zero when nothing was found.
func (c *Collector) CountTotals(ctx context.Context) (models.TotalCountTable, error) {
	commits, err := c.CollectAll(ctx)
	if err != nil {
		return nil, err
	}
	table := models.NewTotalCountTable(c.users)
	for _, commit := range commits {
		table[commit.RepositoryOwner]++
	}
	return table, nil
}

func (c *Collector) toRepositoryRecord(user string, p github.RepositoryPayload) (models.RepositoryRecord, error) {
	updatedAt, err := c.normalizer.ParseLocal(p.UpdatedAt)
	if err != nil {
		return models.RepositoryRecord{}, errors.NewUpstreamError(fmt.Sprintf("malformed updated_at for %s/%s", user, p.Name), err)
	}
	return models.RepositoryRecord{
		Name:      p.Name,
		FullName:  p.FullName,
		Owner:     user,
		UpdatedAt: updatedAt,
	}, nil
}

func (c *Collector) toCommitRecord(repositoryName, user string, p github.CommitPayload) (models.CommitRecord, error) {
	createdAt, err := c.normalizer.ParseLocal(p.Commit.Author.Date)
	if err != nil {
		return models.CommitRecord{}, errors.NewUpstreamError(fmt.Sprintf("malformed date for commit %s in %s/%s", p.SHA, user, repositoryName), err)
	}

	var login *string
	if p.Author != nil {
		l := p.Author.Login
		login = &l
	}

	return models.NewCommitRecord(
		repositoryName,
		user,
		login,
		p.Commit.Author.Name,
		p.Commit.Author.Email,
		p.Commit.Message,
		p.SHA,
		p.HTMLURL,
		createdAt,
	), nil
}
