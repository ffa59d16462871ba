package cli

import (
	"context"
	"fmt"

	"limelight/internal/config"
	"limelight/internal/logging"
	"limelight/internal/metrics"
	"limelight/internal/xclient"
)

// loadConfig reads the config named by the global flag and arms the ambient
// stack (verbose logging, optional metrics endpoint).
func (g *GlobalFlags) loadConfig() (config.Config, error) {
	logging.SetVerbose(g.Verbose)
	cfg, err := config.Load(g.Config)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config %s: %w (run `limelight init` first)", g.Config, err)
	}
	metrics.StartServer(cfg.MetricsAddr)
	return cfg, nil
}

// buildSearcher resolves credentials into a live API client. A configured
// bearer token is used as-is; otherwise the consumer key pair is exchanged
// for an app-only token.
func buildSearcher(ctx context.Context, cfg config.Config) (xclient.Searcher, error) {
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}
	bearer := cfg.Credentials.BearerToken
	if bearer == "" {
		fmt.Println("Fetching bearer token...")
		var err error
		bearer, err = xclient.BearerToken(ctx, xclient.DefaultTokenURL,
			cfg.Credentials.ConsumerKey, cfg.Credentials.ConsumerSecret, cfg.Search.Timeout())
		if err != nil {
			return nil, err
		}
	}
	return xclient.NewClient(bearer, cfg.Search), nil
}
