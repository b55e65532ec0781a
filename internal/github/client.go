package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v55/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	// DefaultAPIBaseURL is the public GitHub REST endpoint.
	DefaultAPIBaseURL = "https://api.github.com"
	// DefaultRequestTimeout bounds every upstream request.
	DefaultRequestTimeout = 10 * time.Second

	acceptHeader = "application/vnd.github+json"
)

// Fetcher issues a single authenticated GET against the upstream API and
// decodes the JSON body into out. Implementations must fail with a
// *GitHubError for any status other than 200.
type Fetcher interface {
	FetchJSON(ctx context.Context, path string, out interface{}) error
}

// GitHubClient is the production Fetcher. It builds requests through
// go-github so base URL handling, the user agent and error response decoding
// follow the library, while the payload shapes stay ours.
type GitHubClient struct {
	client *gh.Client
	logger *logrus.Logger
}

// ClientOption allows configuring the GitHub client
type ClientOption func(*clientOptions)

type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// WithBaseURL points the client at another API root, such as GitHub Enterprise or a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout overrides DefaultRequestTimeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(o *clientOptions) {
		o.timeout = timeout
	}
}

// WithHTTPClient replaces the oauth2 client. The token is then not attached.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// NewGitHubClient creates a new GitHub client with the given token and options
func NewGitHubClient(token string, logger *logrus.Logger, opts ...ClientOption) (*GitHubClient, error) {
	o := &clientOptions{
		baseURL: DefaultAPIBaseURL,
		timeout: DefaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token, TokenType: "Bearer"},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = o.timeout

	baseURL, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", o.baseURL, err)
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = baseURL

	return &GitHubClient{
		client: client,
		logger: logger,
	}, nil
}

// FetchJSON performs a single GET request for path, relative to the API root.
func (c *GitHubClient) FetchJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	logger := c.logger.WithField("path", path)
	logger.Debug("Requesting GitHub API")

	start := time.Now()
	resp, err := c.client.Do(ctx, req, out)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logger.WithError(err).WithField("status", status).Warn("GitHub API request failed")
		return NewGitHubError(status, path, err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.WithField("status", resp.StatusCode).Warn("Unexpected GitHub API status")
		return NewGitHubError(resp.StatusCode, path, nil)
	}

	logger.WithFields(logrus.Fields{
		"status":               resp.StatusCode,
		"duration":             time.Since(start),
		"rate_limit_remaining": resp.Rate.Remaining,
	}).Debug("GitHub API request succeeded")

	return nil
}
