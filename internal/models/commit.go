package models

import (
	"time"

	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// CommitRecord is a single collected commit. CommitDate is always the date of
// CommitCreatedAt in the local zone CommitCreatedAt is expressed in.
type CommitRecord struct {
	RepositoryName    string        `json:"repository_name"`
	RepositoryOwner   string        `json:"repository_owner"`
	CommitUserLogin   *string       `json:"commit_user_login"`
	CommitAuthorName  string        `json:"commit_author_name"`
	CommitAuthorEmail string        `json:"commit_author_email"`
	CommitMessage     string        `json:"commit_message"`
	CommitSHA         string        `json:"commit_sha"`
	CommitURL         string        `json:"commit_url"`
	CommitDate        timeutil.Date `json:"commit_date"`
	CommitCreatedAt   time.Time     `json:"commit_created_at"`
}

// NewCommitRecord builds a record from a local-zone timestamp, deriving CommitDate from it.
func NewCommitRecord(repositoryName, repositoryOwner string, login *string, authorName, authorEmail, message, sha, url string, createdAt time.Time) CommitRecord {
	return CommitRecord{
		RepositoryName:    repositoryName,
		RepositoryOwner:   repositoryOwner,
		CommitUserLogin:   login,
		CommitAuthorName:  authorName,
		CommitAuthorEmail: authorEmail,
		CommitMessage:     message,
		CommitSHA:         sha,
		CommitURL:         url,
		CommitDate:        timeutil.DateOf(createdAt),
		CommitCreatedAt:   createdAt,
	}
}

// Login returns the committer login, or "" when the commit has no linked GitHub account.
func (c CommitRecord) Login() string {
	if c.CommitUserLogin == nil {
		return ""
	}
	return *c.CommitUserLogin
}
