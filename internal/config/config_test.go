package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Campaigns, 2)
	assert.Equal(t, 100, cfg.Search.PageSize)
	assert.Equal(t, 60, cfg.Search.CooldownSeconds)
	assert.Equal(t, "recommendations.csv", cfg.Output.ScoredCSV)
}

func TestValidateRejectsOversizedPage(t *testing.T) {
	cfg := Default()
	cfg.Search.PageSize = 200
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Search.PageSize = 5
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsEmptyCampaigns(t *testing.T) {
	cfg := Default()
	cfg.Campaigns = nil
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Campaigns[0].Query = ""
	assert.Error(t, cfg.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "limelight.yaml")

	want := Default()
	want.Output.TopN = 7
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want.Campaigns, got.Campaigns)
	assert.Equal(t, 7, got.Output.TopN)
	assert.Equal(t, want.Search, got.Search)
}

func TestSaveStripsSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "limelight.yaml")

	cfg := Default()
	cfg.Credentials.ConsumerKey = "sekrit-ck-123"
	cfg.Credentials.ConsumerSecret = "sekrit-cs-456"
	cfg.Credentials.BearerToken = "sekrit-bt-789"
	require.NoError(t, Save(path, cfg))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	raw := string(b)
	assert.NotContains(t, raw, "sekrit-ck-123")
	assert.NotContains(t, raw, "sekrit-cs-456")
	assert.NotContains(t, raw, "sekrit-bt-789")
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("X_CONSUMER_KEY", "env-key")
	t.Setenv("X_CONSUMER_SECRET", "env-secret")
	t.Setenv("X_BEARER_TOKEN", "")
	t.Setenv("METRICS_ADDR", ":9321")

	cfg := Default()
	cfg.ResolveEnv()
	assert.Equal(t, "env-key", cfg.Credentials.ConsumerKey)
	assert.Equal(t, "env-secret", cfg.Credentials.ConsumerSecret)
	assert.Equal(t, ":9321", cfg.MetricsAddr)
}

func TestResolveEnvLegacyFallback(t *testing.T) {
	t.Setenv("X_CONSUMER_KEY", "")
	t.Setenv("X_CONSUMER_SECRET", "")
	t.Setenv("TWITTER_API_KEY", "legacy-key")
	t.Setenv("TWITTER_API_SECRET", "legacy-secret")

	cfg := Default()
	cfg.ResolveEnv()
	assert.Equal(t, "legacy-key", cfg.Credentials.ConsumerKey)
	assert.Equal(t, "legacy-secret", cfg.Credentials.ConsumerSecret)
}

func TestRequireCredentials(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.RequireCredentials())

	cfg.Credentials.ConsumerKey = "k"
	assert.Error(t, cfg.RequireCredentials(), "key without secret is not enough")

	cfg.Credentials.ConsumerSecret = "s"
	assert.NoError(t, cfg.RequireCredentials())

	cfg = Default()
	cfg.Credentials.BearerToken = "token"
	assert.NoError(t, cfg.RequireCredentials())
}
