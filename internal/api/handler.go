package api

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Kamar-Folarin/github-commit-graph/internal/aggregator"
	"github.com/Kamar-Folarin/github-commit-graph/internal/collector"
	"github.com/Kamar-Folarin/github-commit-graph/internal/errors"
	"github.com/Kamar-Folarin/github-commit-graph/internal/github"
	"github.com/Kamar-Folarin/github-commit-graph/internal/graph"
	"github.com/Kamar-Folarin/github-commit-graph/internal/models"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
)

// Handler serves the commit graph API. Every request builds its own collector;
// the fetcher and renderer are stateless and shared.
type Handler struct {
	fetcher    github.Fetcher
	renderer   *graph.Renderer
	normalizer timeutil.Normalizer
	logger     *logrus.Logger
	now        func() time.Time
}

// NewHandler creates a new API handler
func NewHandler(fetcher github.Fetcher, renderer *graph.Renderer, normalizer timeutil.Normalizer, logger *logrus.Logger) *Handler {
	return &Handler{
		fetcher:    fetcher,
		renderer:   renderer,
		normalizer: normalizer,
		logger:     logger,
		now:        time.Now,
	}
}

// Root godoc
// @Summary API health check
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Hello World"})
}

// CommitData godoc
// @Summary Get commit data from GitHub users
// @Description Collects every commit in the users' recently updated repositories on or after filter_date (or exactly on it with exact_date).
// @Tags commits
// @Accept json
// @Produce json
// @Param request body CommitDataRequest true "Users and filter date"
// @Success 200 {object} CommitDataResponseDoc
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /commit_data/ [post]
func (h *Handler) CommitData(c *gin.Context) {
	var req CommitDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, errors.NewValidationError(bindingMessage(err), err))
		return
	}
	filterDate, err := timeutil.ParseDate(req.FilterDate)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	commits, err := h.newCollector(c, req.UsersList, filterDate, collector.PolicyFor(req.ExactDate)).CollectAll(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.CommitDataResponse{CommitsData: commits})
}

// CommitCounter godoc
// @Summary Get commit count of GitHub users
// @Description Counts each user's commits made exactly on filter_date, which defaults to yesterday. Every requested user is present in the result.
// @Tags commits
// @Accept json
// @Produce json
// @Param request body CommitCounterRequest true "Users and optional filter date"
// @Success 200 {object} map[string]int
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /commit_counter/ [post]
func (h *Handler) CommitCounter(c *gin.Context) {
	var req CommitCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, errors.NewValidationError(bindingMessage(err), err))
		return
	}

	filterDate := h.normalizer.Today(h.now()).AddDays(-1)
	if req.FilterDate != "" {
		parsed, err := timeutil.ParseDate(req.FilterDate)
		if err != nil {
			h.respondWithError(c, err)
			return
		}
		filterDate = parsed
	}

	agg := aggregator.NewAggregator(h.newCollector(c, req.UsersList, filterDate, collector.ExactDate))
	totals, err := agg.Totals(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// DailyCommitCount godoc
// @Summary Get daily commit count of GitHub users
// @Description Counts commits per user and day. Users or days without commits are absent.
// @Tags commits
// @Accept json
// @Produce json
// @Param request body CommitDataRequest true "Users and filter date"
// @Success 200 {object} map[string]map[string]int
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /daily_commit_count/ [post]
func (h *Handler) DailyCommitCount(c *gin.Context) {
	agg, ok := h.bindAggregator(c)
	if !ok {
		return
	}

	daily, err := agg.Daily(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, daily)
}

// PlotCommitGraph godoc
// @Summary Plot commit graph of users
// @Description Renders the daily commit counts as a heatmap, one row per user and one column per day.
// @Tags graph
// @Accept json
// @Produce png
// @Produce html
// @Param request body CommitDataRequest true "Users and filter date"
// @Param format query string false "png (default) or html"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /plot_commit_graph/ [post]
func (h *Handler) PlotCommitGraph(c *gin.Context) {
	format := c.DefaultQuery("format", "png")
	if format != "png" && format != "html" {
		h.respondWithError(c, errors.NewValidationError(fmt.Sprintf("unsupported format %q (expected png or html)", format), nil))
		return
	}

	agg, ok := h.bindAggregator(c)
	if !ok {
		return
	}

	daily, err := agg.Daily(c.Request.Context())
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	grid, err := graph.BuildDenseGrid(daily)
	if err != nil {
		h.respondWithError(c, err)
		return
	}

	if format == "html" {
		var buf bytes.Buffer
		if err := h.renderer.RenderHTML(grid, &buf); err != nil {
			h.respondWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
		return
	}

	image, err := h.renderer.RenderPNG(grid)
	if err != nil {
		h.respondWithError(c, err)
		return
	}
	c.Header("Content-Disposition", "inline")
	c.Data(http.StatusOK, "image/png", image)
}

// bindAggregator validates a CommitDataRequest and builds the aggregator for it.
// It writes the error response itself and reports false on failure.
func (h *Handler) bindAggregator(c *gin.Context) (*aggregator.Aggregator, bool) {
	var req CommitDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondWithError(c, errors.NewValidationError(bindingMessage(err), err))
		return nil, false
	}
	filterDate, err := timeutil.ParseDate(req.FilterDate)
	if err != nil {
		h.respondWithError(c, err)
		return nil, false
	}
	col := h.newCollector(c, req.UsersList, filterDate, collector.PolicyFor(req.ExactDate))
	return aggregator.NewAggregator(col), true
}

func (h *Handler) newCollector(c *gin.Context, users []string, filterDate timeutil.Date, policy collector.Policy) *collector.Collector {
	h.requestLogger(c).WithFields(logrus.Fields{
		"users":       users,
		"filter_date": filterDate.String(),
		"policy":      policy.String(),
	}).Info("Collecting commits")

	return collector.New(h.fetcher, users, filterDate, policy,
		collector.WithNormalizer(h.normalizer),
		collector.WithLogger(h.logger),
	)
}

func (h *Handler) requestLogger(c *gin.Context) *logrus.Entry {
	return h.logger.WithField(requestIDKey, c.GetString(requestIDKey))
}

func (h *Handler) respondWithError(c *gin.Context, err error) {
	status := statusFor(err)
	entry := h.requestLogger(c).WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error("Request failed")
	} else {
		entry.Warn("Invalid request")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: errors.MessageOf(err)})
}

// statusFor maps the outermost error type to an HTTP status.
func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.ErrInvalidInput, errors.ErrFormat:
		return http.StatusUnprocessableEntity
	case errors.ErrNoData:
		return http.StatusNotFound
	case errors.ErrUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func bindingMessage(err error) string {
	return fmt.Sprintf("invalid request body: %v", err)
}
