package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where init writes the config and commands look first.
const DefaultPath = "./limelight.yaml"

var validate = validator.New()

// Config is the application's configuration model: which campaigns to scan,
// how to talk to the API, and where the outputs go.
type Config struct {
	Campaigns   []Campaign        `yaml:"campaigns" validate:"min=1,dive"`
	Credentials CredentialsConfig `yaml:"credentials"`
	Search      SearchConfig      `yaml:"search"`
	Output      OutputConfig      `yaml:"output"`
	MetricsAddr string            `yaml:"metricsAddr"`
}

// Campaign is one saved search: a human label plus the boolean query
// submitted verbatim to the recent-search endpoint.
type Campaign struct {
	Label string `yaml:"label" validate:"required"`
	Query string `yaml:"query" validate:"required"`
}

type CredentialsConfig struct {
	// Pre-issued bearer token. If empty, read from env X_BEARER_TOKEN;
	// if still empty, one is minted from the consumer key/secret pair.
	BearerToken string `yaml:"bearerToken"`
	// App-only OAuth2 credentials. If empty, read X_CONSUMER_KEY /
	// X_CONSUMER_SECRET (TWITTER_API_KEY / TWITTER_API_SECRET accepted
	// as legacy fallbacks).
	ConsumerKey    string `yaml:"consumerKey"`
	ConsumerSecret string `yaml:"consumerSecret"`
}

type SearchConfig struct {
	// Results per page; the API caps this at 100.
	PageSize int `yaml:"pageSize" validate:"min=10,max=100"`
	// Pages fetched per campaign query before giving up on the cursor.
	MaxPages int `yaml:"maxPages" validate:"min=1"`
	// Politeness delay between successive page requests.
	PageDelaySeconds int `yaml:"pageDelaySeconds" validate:"min=0"`
	// Pause between campaign queries.
	QueryDelaySeconds int `yaml:"queryDelaySeconds" validate:"min=0"`
	// Sleep after a rate-limit response before retrying the same page.
	CooldownSeconds int `yaml:"cooldownSeconds" validate:"min=1"`
	// Per-request HTTP timeout.
	TimeoutSeconds int `yaml:"timeoutSeconds" validate:"min=1"`
}

func (s SearchConfig) PageDelay() time.Duration  { return time.Duration(s.PageDelaySeconds) * time.Second }
func (s SearchConfig) QueryDelay() time.Duration { return time.Duration(s.QueryDelaySeconds) * time.Second }
func (s SearchConfig) Cooldown() time.Duration   { return time.Duration(s.CooldownSeconds) * time.Second }
func (s SearchConfig) Timeout() time.Duration    { return time.Duration(s.TimeoutSeconds) * time.Second }

type OutputConfig struct {
	// Reach-ranked CSV written by `find`.
	LeadsCSV string `yaml:"leadsCSV" validate:"required"`
	// Scored CSV written by `analyze` and read back by `report`.
	ScoredCSV string `yaml:"scoredCSV" validate:"required"`
	// HTML document written by `report`.
	HTML string `yaml:"html" validate:"required"`
	// Rows in the console preview tables.
	TopN int `yaml:"topN" validate:"min=1"`
}

// Default returns the stock configuration, including the two campaign
// queries the tool was built around.
func Default() Config {
	return Config{
		Campaigns: []Campaign{
			{
				Label: "Euphoria_fi",
				Query: `(Euphoria_fi OR euphoria.fi OR "x.com/Euphoria_fi") -is:retweet lang:en`,
			},
			{
				Label: "Polymarket 5 min",
				Query: `("Polymarket 5 min" OR "Polymarket 5min") -is:retweet lang:en`,
			},
		},
		Credentials: CredentialsConfig{},
		Search: SearchConfig{
			PageSize:          100,
			MaxPages:          5,
			PageDelaySeconds:  1,
			QueryDelaySeconds: 2,
			CooldownSeconds:   60,
			TimeoutSeconds:    30,
		},
		Output: OutputConfig{
			LeadsCSV:  "influencers.csv",
			ScoredCSV: "recommendations.csv",
			HTML:      "recommendations.html",
			TopN:      15,
		},
	}
}

// ResolveEnv fills in config fields from environment variables if not set.
// A .env file in the working directory is honored when present.
func (c *Config) ResolveEnv() {
	_ = godotenv.Load()
	if c.Credentials.BearerToken == "" {
		c.Credentials.BearerToken = os.Getenv("X_BEARER_TOKEN")
	}
	if c.Credentials.ConsumerKey == "" {
		c.Credentials.ConsumerKey = firstEnv("X_CONSUMER_KEY", "TWITTER_API_KEY")
	}
	if c.Credentials.ConsumerSecret == "" {
		c.Credentials.ConsumerSecret = firstEnv("X_CONSUMER_SECRET", "TWITTER_API_SECRET")
	}
	if c.MetricsAddr == "" {
		c.MetricsAddr = os.Getenv("METRICS_ADDR")
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks structural constraints (page size bounds, required
// outputs). Credentials are checked separately by RequireCredentials so a
// config without secrets can still be written and read.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RequireCredentials fails when neither a bearer token nor a consumer
// key/secret pair is available. Called before any network use.
func (c *Config) RequireCredentials() error {
	if c.Credentials.BearerToken != "" {
		return nil
	}
	if c.Credentials.ConsumerKey != "" && c.Credentials.ConsumerSecret != "" {
		return nil
	}
	return errors.New("missing credentials: set X_CONSUMER_KEY and X_CONSUMER_SECRET (or X_BEARER_TOKEN) in the environment or .env")
}

// Load reads YAML config from path, resolves env overrides, and validates.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ResolveEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes YAML config to path, creating directories as needed. Secrets
// resolved from the environment are not persisted.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	cfg.Credentials = CredentialsConfig{}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
