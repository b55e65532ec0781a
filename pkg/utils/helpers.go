package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// FirstName returns the first space separated word of a commit author name.
func FirstName(name string) string {
	first, _, _ := strings.Cut(name, " ")
	return first
}

// EmailUsername returns the part of an email address before the @.
func EmailUsername(email string) string {
	user, _, _ := strings.Cut(email, "@")
	return user
}

// ShortSHA abbreviates a commit SHA the way git log --oneline does.
func ShortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

// ParseCommitURL splits https://github.com/{owner}/{repo}/commit/{sha}.
func ParseCommitURL(commitURL string) (owner, repo, sha string, err error) {
	u, err := url.Parse(commitURL)
	if err != nil {
		return "", "", "", err
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 || parts[2] != "commit" {
		return "", "", "", fmt.Errorf("invalid GitHub commit URL")
	}

	return parts[0], parts[1], parts[3], nil
}
