package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"limelight/internal/config"
	"limelight/internal/model"
	"limelight/internal/recommend"
	"limelight/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything it printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// writeTestConfig saves a default config into a temp dir and returns its
// path. Output paths point into the same dir; politeness delays are zeroed.
func writeTestConfig(t *testing.T) (string, config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Search.PageDelaySeconds = 0
	cfg.Search.QueryDelaySeconds = 0
	cfg.Output.LeadsCSV = filepath.Join(dir, "influencers.csv")
	cfg.Output.ScoredCSV = filepath.Join(dir, "recommendations.csv")
	cfg.Output.HTML = filepath.Join(dir, "recommendations.html")
	path := filepath.Join(dir, "limelight.yaml")
	require.NoError(t, config.Save(path, cfg))
	return path, cfg
}

func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"X_BEARER_TOKEN", "X_CONSUMER_KEY", "X_CONSUMER_SECRET",
		"TWITTER_API_KEY", "TWITTER_API_SECRET",
	} {
		t.Setenv(k, "")
	}
}

func TestVersionFlag(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = RunWithArgs("0.1.0-test", []string{"--version"})
	})
	assert.NoError(t, err)
	assert.Equal(t, "limelight 0.1.0-test", strings.TrimSpace(output))
}

func TestNoArgsPrintsBannerAndHelp(t *testing.T) {
	var err error
	output := captureStdout(t, func() {
		err = RunWithArgs("test", []string{})
	})
	assert.NoError(t, err)
	assert.Contains(t, output, "Usage")
	assert.Contains(t, output, "analyze")
}

func TestHelpFlagDoesNotError(t *testing.T) {
	err := RunWithArgs("test", []string{"--help"})
	assert.NoError(t, err)
}

func TestAllSubcommandsExist(t *testing.T) {
	expected := []string{"init", "find", "analyze", "report"}
	parser, _, _ := buildParser("test")

	for _, name := range expected {
		cmd := parser.Find(name)
		assert.NotNil(t, cmd, "subcommand %q should exist", name)
	}
}

func TestUnknownSubcommandFails(t *testing.T) {
	parser, _, _ := buildParser("test")
	_, err := parser.ParseArgs([]string{"nonexistent"})
	require.Error(t, err)
}

func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limelight.yaml")

	captureStdout(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"init", "--path", path}))
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Campaigns, 2)
	assert.Equal(t, 100, cfg.Search.PageSize)
}

func TestInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "limelight.yaml")
	captureStdout(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"init", "--path", path}))
	})

	err := RunWithArgs("test", []string{"init", "--path", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	captureStdout(t, func() {
		assert.NoError(t, RunWithArgs("test", []string{"init", "--path", path, "--force"}))
	})
}

// recordingSearcher satisfies xclient.Searcher and records what it was
// asked for.
type recordingSearcher struct {
	pageSize int
	maxPages int
	queries  []string
}

func (s *recordingSearcher) Search(_ context.Context, query string, pageSize, maxPages int) ([]model.Tweet, map[string]model.User, error) {
	s.pageSize = pageSize
	s.maxPages = maxPages
	s.queries = append(s.queries, query)
	return nil, map[string]model.User{}, nil
}

func TestFindFlagOverrides(t *testing.T) {
	clearCredentialEnv(t)
	path, cfg := writeTestConfig(t)
	altCSV := filepath.Join(t.TempDir(), "leads.csv")

	fake := &recordingSearcher{}
	parser, _, cmds := buildParser("test")
	cmds.Find.searcher = fake

	captureStdout(t, func() {
		_, err := parser.ParseArgs([]string{
			"--config", path, "find", "--out", altCSV, "--max-pages", "2", "--page-size", "25",
		})
		require.NoError(t, err)
	})

	assert.Equal(t, 25, fake.pageSize)
	assert.Equal(t, 2, fake.maxPages)
	assert.Len(t, fake.queries, 2, "both campaigns searched")

	_, err := os.Stat(altCSV)
	assert.NoError(t, err)
	_, statErr := os.Stat(cfg.Output.LeadsCSV)
	assert.True(t, os.IsNotExist(statErr), "configured path must not be touched when overridden")
}

func TestFindFailsWithoutCredentials(t *testing.T) {
	clearCredentialEnv(t)
	path, _ := writeTestConfig(t)

	err := RunWithArgs("test", []string{"--config", path, "find"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestAnalyzeFailsWithoutConfig(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	err := RunWithArgs("test", []string{"--config", missing, "analyze"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestReportRejectsUnknownMode(t *testing.T) {
	clearCredentialEnv(t)
	path, _ := writeTestConfig(t)

	err := RunWithArgs("test", []string{"--config", path, "report", "--mode", "fancy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report mode")
}

func TestReportRendersFromCSV(t *testing.T) {
	clearCredentialEnv(t)
	path, cfg := writeTestConfig(t)

	inf := model.Influencer{
		User:        model.User{Username: "alice", FollowersCount: 9000},
		TweetsFound: 1, TotalLikes: 10,
	}
	require.NoError(t, report.WriteRecommendations(cfg.Output.ScoredCSV, recommend.Rank([]model.Influencer{inf})))

	output := captureStdout(t, func() {
		require.NoError(t, RunWithArgs("test", []string{"--config", path, "report"}))
	})
	assert.Contains(t, output, "Done: "+cfg.Output.HTML)

	html, err := os.ReadFile(cfg.Output.HTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Total: 1")
}

func TestReportFlagOverrides(t *testing.T) {
	clearCredentialEnv(t)
	path, cfg := writeTestConfig(t)

	altCSV := filepath.Join(t.TempDir(), "alt.csv")
	altHTML := filepath.Join(t.TempDir(), "alt.html")
	require.NoError(t, report.WriteRecommendations(altCSV, nil))

	captureStdout(t, func() {
		require.NoError(t, RunWithArgs("test", []string{
			"--config", path, "report", "--csv", altCSV, "--out", altHTML, "--mode", "embed",
		}))
	})

	html, err := os.ReadFile(altHTML)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Total: 0")
	assert.Contains(t, string(html), "widgets.js")

	_, statErr := os.Stat(cfg.Output.HTML)
	assert.True(t, os.IsNotExist(statErr), "configured path must not be touched when overridden")
}
