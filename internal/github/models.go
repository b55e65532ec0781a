package github

import (
	"fmt"
	"net/url"
)

// RepositoryPayload is the subset of a `GET /users/{user}/repos` item we read.
// Timestamps are kept as text so the caller decides how strictly to parse them.
type RepositoryPayload struct {
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
	UpdatedAt string `json:"updated_at"`
	Owner     struct {
		Login string `json:"login"`
	} `json:"owner"`
}

// CommitPayload is the subset of a `GET /repos/{owner}/{repo}/commits` item we read.
type CommitPayload struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Date  string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	// Author is null when the commit email is not linked to a GitHub account.
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
}

// UserReposPath is the API path listing a user's repositories.
func UserReposPath(user string) string {
	return fmt.Sprintf("users/%s/repos", url.PathEscape(user))
}

// RepoCommitsPath is the API path listing a repository's commits.
func RepoCommitsPath(owner, repo string) string {
	return fmt.Sprintf("repos/%s/%s/commits", url.PathEscape(owner), url.PathEscape(repo))
}
