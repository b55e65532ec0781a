package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Kamar-Folarin/github-commit-graph/internal/errors"
	"github.com/Kamar-Folarin/github-commit-graph/internal/github"
	"github.com/Kamar-Folarin/github-commit-graph/internal/graph"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// MockFetcher is a mock implementation of github.Fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) FetchJSON(ctx context.Context, path string, out interface{}) error {
	args := m.Called(ctx, path, out)
	return args.Error(0)
}

func (m *MockFetcher) respond(path, body string) {
	m.On("FetchJSON", mock.Anything, path, mock.Anything).
		Run(func(args mock.Arguments) {
			if err := json.Unmarshal([]byte(body), args.Get(2)); err != nil {
				panic(err)
			}
		}).
		Return(nil).
		Once()
}

func (m *MockFetcher) fail(path string, status int) {
	m.On("FetchJSON", mock.Anything, path, mock.Anything).
		Return(github.NewGitHubError(status, path, nil)).
		Once()
}

const (
	aliceRepos = `[
		{"name": "graph", "full_name": "alice/graph", "updated_at": "2024-01-05T12:00:00Z", "owner": {"login": "alice"}}
	]`
	aliceReposOnSecond = `[
		{"name": "graph", "full_name": "alice/graph", "updated_at": "2024-01-02T18:00:00Z", "owner": {"login": "alice"}}
	]`
	aliceGraphCommits = `[
		{"sha": "c1", "html_url": "https://github.com/alice/graph/commit/c1",
		 "commit": {"message": "first", "author": {"name": "Alice Liddell", "email": "alice@example.com", "date": "2024-01-02T15:00:00Z"}},
		 "author": {"login": "alice"}},
		{"sha": "c2", "html_url": "https://github.com/alice/graph/commit/c2",
		 "commit": {"message": "second", "author": {"name": "Alice Liddell", "email": "alice@example.com", "date": "2024-01-03T15:00:00Z"}},
		 "author": null},
		{"sha": "c0", "html_url": "https://github.com/alice/graph/commit/c0",
		 "commit": {"message": "new year", "author": {"name": "Alice Liddell", "email": "alice@example.com", "date": "2024-01-01T02:00:00Z"}},
		 "author": {"login": "alice"}}
	]`
	bobRepos = `[
		{"name": "old", "full_name": "bob/old", "updated_at": "2023-12-20T12:00:00Z", "owner": {"login": "bob"}}
	]`

	scenarioBody = `{"users_list": ["alice", "bob"], "filter_date": "2024-01-01"}`
)

func scenarioFetcher() *MockFetcher {
	fetcher := new(MockFetcher)
	fetcher.respond("users/alice/repos", aliceRepos)
	fetcher.respond("repos/alice/graph/commits", aliceGraphCommits)
	fetcher.respond("users/bob/repos", bobRepos)
	return fetcher
}

func setupTestHandler(t *testing.T, fetcher *MockFetcher) (*gin.Engine, *Handler) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	renderer, err := graph.NewRenderer(graph.WithCellSize(10))
	require.NoError(t, err)

	handler := NewHandler(fetcher, renderer, timeutil.NewNormalizer(nil), logger)
	return SetupRouter(handler, logger), handler
}

func postJSON(router http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Detail
}

func TestRoot(t *testing.T) {
	router, _ := setupTestHandler(t, new(MockFetcher))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello World"}`, w.Body.String())
}

func TestCommitData(t *testing.T) {
	fetcher := scenarioFetcher()
	router, _ := setupTestHandler(t, fetcher)

	w := postJSON(router, "/commit_data/", scenarioBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CommitsData []map[string]interface{} `json:"commits_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.CommitsData, 2)

	first := resp.CommitsData[0]
	assert.Equal(t, "graph", first["repository_name"])
	assert.Equal(t, "alice", first["repository_owner"])
	assert.Equal(t, "alice", first["commit_user_login"])
	assert.Equal(t, "c1", first["commit_sha"])
	assert.Equal(t, "2024-01-02", first["commit_date"])
	assert.Equal(t, "2024-01-02T12:00:00-03:00", first["commit_created_at"])

	assert.Nil(t, resp.CommitsData[1]["commit_user_login"])
	fetcher.AssertExpectations(t)
}

func TestCommitData_SingleUserString(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.respond("users/bob/repos", bobRepos)
	router, _ := setupTestHandler(t, fetcher)

	w := postJSON(router, "/commit_data/", `{"users_list": "bob", "filter_date": "2024-01-01"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"commits_data": []}`, w.Body.String())
	fetcher.AssertExpectations(t)
}

func TestCommitData_ExactDate(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.respond("users/alice/repos", aliceReposOnSecond)
	fetcher.respond("repos/alice/graph/commits", aliceGraphCommits)
	router, _ := setupTestHandler(t, fetcher)

	w := postJSON(router, "/commit_data/", `{"users_list": ["alice"], "filter_date": "2024-01-02", "exact_date": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		CommitsData []struct {
			SHA string `json:"commit_sha"`
		} `json:"commits_data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.CommitsData, 1)
	assert.Equal(t, "c1", resp.CommitsData[0].SHA)
}

func TestValidationRejectsBeforeFetching(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"day first date", "/commit_data/", `{"users_list": ["alice"], "filter_date": "01-01-2024"}`},
		{"missing filter date", "/commit_data/", `{"users_list": ["alice"]}`},
		{"missing users", "/daily_commit_count/", `{"filter_date": "2024-01-01"}`},
		{"empty user name", "/daily_commit_count/", `{"users_list": [""], "filter_date": "2024-01-01"}`},
		{"users of wrong type", "/commit_data/", `{"users_list": 42, "filter_date": "2024-01-01"}`},
		{"not json", "/plot_commit_graph/", `users=alice`},
		{"counter bad date", "/commit_counter/", `{"users_list": ["alice"], "filter_date": "2024/01/01"}`},
		{"counter missing users", "/commit_counter/", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := new(MockFetcher)
			router, _ := setupTestHandler(t, fetcher)

			w := postJSON(router, tt.path, tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			assert.NotEmpty(t, decodeDetail(t, w))
			fetcher.AssertNotCalled(t, "FetchJSON", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestInvalidDateDetail(t *testing.T) {
	router, _ := setupTestHandler(t, new(MockFetcher))

	w := postJSON(router, "/daily_commit_count/", `{"users_list": ["alice"], "filter_date": "01-01-2024"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "01-01-2024")
}

func TestCommitCounter(t *testing.T) {
	t.Run("explicit date", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.respond("users/alice/repos", aliceReposOnSecond)
		fetcher.respond("repos/alice/graph/commits", aliceGraphCommits)
		fetcher.respond("users/bob/repos", bobRepos)
		router, _ := setupTestHandler(t, fetcher)

		w := postJSON(router, "/commit_counter/", `{"users_list": ["alice", "bob"], "filter_date": "2024-01-02"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"alice": 1, "bob": 0}`, w.Body.String())
		fetcher.AssertExpectations(t)
	})

	t.Run("defaults to yesterday", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.respond("users/alice/repos", aliceReposOnSecond)
		fetcher.respond("repos/alice/graph/commits", aliceGraphCommits)
		router, handler := setupTestHandler(t, fetcher)
		// 02:00 UTC on the 4th is still the 3rd at UTC-03:00.
		handler.now = func() time.Time { return time.Date(2024, time.January, 4, 2, 0, 0, 0, time.UTC) }

		w := postJSON(router, "/commit_counter/", `{"users_list": "alice"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"alice": 1}`, w.Body.String())
	})
}

func TestDailyCommitCount(t *testing.T) {
	fetcher := scenarioFetcher()
	router, _ := setupTestHandler(t, fetcher)

	w := postJSON(router, "/daily_commit_count/", scenarioBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"alice": {"2024-01-02": 1, "2024-01-03": 1}}`, w.Body.String())
}

func TestDailyCommitCount_UpstreamFailure(t *testing.T) {
	fetcher := new(MockFetcher)
	fetcher.fail("users/alice/repos", http.StatusInternalServerError)
	router, _ := setupTestHandler(t, fetcher)

	w := postJSON(router, "/daily_commit_count/", scenarioBody)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "failed to fetch repos for alice", decodeDetail(t, w))
	fetcher.AssertNotCalled(t, "FetchJSON", mock.Anything, "users/bob/repos", mock.Anything)
}

func TestPlotCommitGraph(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		router, _ := setupTestHandler(t, scenarioFetcher())

		w := postJSON(router, "/plot_commit_graph/", scenarioBody)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "inline", w.Header().Get("Content-Disposition"))

		img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
		require.NoError(t, err)
		// one user row, two date columns
		assert.Equal(t, 20, img.Bounds().Dx())
		assert.Equal(t, 10, img.Bounds().Dy())
	})

	t.Run("html", func(t *testing.T) {
		router, _ := setupTestHandler(t, scenarioFetcher())

		w := postJSON(router, "/plot_commit_graph/?format=html", scenarioBody)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "2024-01-03")
	})

	t.Run("unknown format", func(t *testing.T) {
		fetcher := new(MockFetcher)
		router, _ := setupTestHandler(t, fetcher)

		w := postJSON(router, "/plot_commit_graph/?format=svg", scenarioBody)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		fetcher.AssertNotCalled(t, "FetchJSON", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("no commits", func(t *testing.T) {
		fetcher := new(MockFetcher)
		fetcher.respond("users/bob/repos", bobRepos)
		router, _ := setupTestHandler(t, fetcher)

		w := postJSON(router, "/plot_commit_graph/", `{"users_list": ["bob"], "filter_date": "2024-01-01"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NotEmpty(t, decodeDetail(t, w))
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", apperrors.NewValidationError("users_list is required", nil), http.StatusUnprocessableEntity},
		{"format", apperrors.NewFormatError("bad date", nil), http.StatusUnprocessableEntity},
		{"no data", apperrors.NewNoDataError("nothing to plot"), http.StatusNotFound},
		{"upstream", apperrors.NewUpstreamError("failed", nil), http.StatusBadGateway},
		{"upstream caused by format", apperrors.NewUpstreamError("bad payload", apperrors.NewFormatError("bad timestamp", nil)), http.StatusBadGateway},
		{"config", apperrors.NewConfigError("GITHUB_TOKEN", "is required"), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
