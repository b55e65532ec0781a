package github

import (
	stderrors "errors"
	"fmt"
)

// GitHubError is a failed upstream request. StatusCode is 0 when no response
// was received.
type GitHubError struct {
	StatusCode int
	Path       string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d) for %s: %v", e.StatusCode, e.Path, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d) for %s", e.StatusCode, e.Path)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// NewGitHubError creates a new GitHubError with the given status code and path
func NewGitHubError(statusCode int, path string, err error) error {
	return &GitHubError{
		StatusCode: statusCode,
		Path:       path,
		Err:        err,
	}
}

// StatusCode extracts the upstream status from err, or 0.
func StatusCode(err error) int {
	var ghErr *GitHubError
	if stderrors.As(err, &ghErr) {
		return ghErr.StatusCode
	}
	return 0
}
