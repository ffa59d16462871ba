package cli

import (
	"context"
	"io"
	"os"

	"limelight/internal/cmdlog"
	"limelight/internal/config"
	"limelight/internal/jobs"
	"limelight/internal/xclient"
)

// Execute implements the go-flags Commander interface for AnalyzeCommand.
func (c *AnalyzeCommand) Execute(args []string) error {
	return cmdlog.Run("analyze", func() error {
		cfg, err := c.globals.loadConfig()
		if err != nil {
			return err
		}
		if c.Out != "" {
			cfg.Output.ScoredCSV = c.Out
		}
		if c.MaxPages > 0 {
			cfg.Search.MaxPages = c.MaxPages
		}
		if c.PageSize > 0 {
			cfg.Search.PageSize = c.PageSize
		}

		ctx := context.Background()
		searcher := c.searcher
		if searcher == nil {
			if searcher, err = buildSearcher(ctx, cfg); err != nil {
				return err
			}
		}
		return c.executeWithSearcher(ctx, searcher, cfg, os.Stdout)
	})
}

// executeWithSearcher runs the analyze stage against a provided client (for
// testing).
func (c *AnalyzeCommand) executeWithSearcher(ctx context.Context, searcher xclient.Searcher, cfg config.Config, out io.Writer) error {
	return jobs.RunAnalyze(ctx, searcher, cfg, out)
}
