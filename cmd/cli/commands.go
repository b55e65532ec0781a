package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/github-commit-graph/internal/aggregator"
	"github.com/Kamar-Folarin/github-commit-graph/internal/collector"
	"github.com/Kamar-Folarin/github-commit-graph/internal/config"
	"github.com/Kamar-Folarin/github-commit-graph/internal/github"
	"github.com/Kamar-Folarin/github-commit-graph/internal/graph"
	"github.com/Kamar-Folarin/github-commit-graph/internal/timeutil"
	"github.com/Kamar-Folarin/github-commit-graph/pkg/utils"
)

// runtime is everything a command needs, built from config and flags.
type runtime struct {
	cfg        *config.Config
	logger     *logrus.Logger
	fetcher    github.Fetcher
	normalizer timeutil.Normalizer
}

func setup() (*runtime, error) {
	cfg, err := config.LoadFrom(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		warn("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	normalizer, err := timeutil.LoadNormalizer(cfg.LocalTimezone)
	if err != nil {
		return nil, err
	}

	client, err := github.NewGitHubClient(cfg.GitHub.Token, logger,
		github.WithBaseURL(cfg.GitHub.APIBaseURL),
		github.WithTimeout(cfg.RequestTimeout()),
	)
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, logger: logger, fetcher: client, normalizer: normalizer}, nil
}

func (rt *runtime) collector(filterDate timeutil.Date, policy collector.Policy) *collector.Collector {
	return collector.New(rt.fetcher, users, filterDate, policy,
		collector.WithNormalizer(rt.normalizer),
		collector.WithLogger(rt.logger),
	)
}

// requiredDate parses --date, which every command but totals needs.
func requiredDate() (timeutil.Date, error) {
	if dateFlag == "" {
		return timeutil.Date{}, fmt.Errorf("--date is required")
	}
	return timeutil.ParseDate(dateFlag)
}

func runCommits(cmd *cobra.Command, args []string) error {
	filterDate, err := requiredDate()
	if err != nil {
		return err
	}
	rt, err := setup()
	if err != nil {
		return err
	}

	commits, err := rt.collector(filterDate, collector.PolicyFor(exactDate)).CollectAll(cmd.Context())
	if err != nil {
		return err
	}
	if len(commits) == 0 {
		warn("No commits found since %s", filterDate)
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Date", "Time", "Repository", "Author", "User", "SHA", "Message"})
	for _, c := range commits {
		table.Append([]string{
			c.CommitDate.String(),
			c.CommitCreatedAt.Format("15:04"),
			c.RepositoryOwner + "/" + c.RepositoryName,
			utils.FirstName(c.CommitAuthorName),
			utils.EmailUsername(c.CommitAuthorEmail),
			utils.ShortSHA(c.CommitSHA),
			firstLine(c.CommitMessage),
		})
	}
	table.Render()
	info("%d commits", len(commits))
	return nil
}

func runTotals(cmd *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}

	filterDate := rt.normalizer.Today(time.Now()).AddDays(-1)
	if dateFlag != "" {
		if filterDate, err = timeutil.ParseDate(dateFlag); err != nil {
			return err
		}
	}

	agg := aggregator.NewAggregator(rt.collector(filterDate, collector.ExactDate))
	totals, err := agg.Totals(cmd.Context())
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Commits on " + filterDate.String()})
	for _, user := range users {
		table.Append([]string{user, strconv.Itoa(totals[user])})
	}
	table.Render()
	return nil
}

func runDaily(cmd *cobra.Command, args []string) error {
	filterDate, err := requiredDate()
	if err != nil {
		return err
	}
	rt, err := setup()
	if err != nil {
		return err
	}

	agg := aggregator.NewAggregator(rt.collector(filterDate, collector.PolicyFor(exactDate)))
	daily, err := agg.Daily(cmd.Context())
	if err != nil {
		return err
	}
	if len(daily) == 0 {
		warn("No commits found since %s", filterDate)
		return nil
	}

	names := make([]string, 0, len(daily))
	for user := range daily {
		names = append(names, user)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Date", "Commits"})
	for _, user := range names {
		dates := make([]timeutil.Date, 0, len(daily[user]))
		for d := range daily[user] {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		for _, d := range dates {
			table.Append([]string{user, d.String(), strconv.Itoa(daily[user][d])})
		}
	}
	table.Render()
	return nil
}

func runGraph(cmd *cobra.Command, args []string) error {
	filterDate, err := requiredDate()
	if err != nil {
		return err
	}
	rt, err := setup()
	if err != nil {
		return err
	}
	renderer, err := graph.NewRenderer(graph.WithCellSize(rt.cfg.GraphCellSize))
	if err != nil {
		return err
	}

	agg := aggregator.NewAggregator(rt.collector(filterDate, collector.PolicyFor(exactDate)))
	daily, err := agg.Daily(cmd.Context())
	if err != nil {
		return err
	}
	grid, err := graph.BuildDenseGrid(daily)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = "commit_graph.png"
		if asHTML {
			path = "commit_graph.html"
		}
	}

	if asHTML {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		if err := renderer.RenderHTML(grid, f); err != nil {
			return err
		}
	} else {
		image, err := renderer.RenderPNG(grid)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, image, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	info("Wrote %dx%d graph to %s", grid.Rows(), grid.Cols(), path)
	return nil
}

func firstLine(message string) string {
	for i, r := range message {
		if r == '\n' {
			return message[:i]
		}
	}
	return message
}
