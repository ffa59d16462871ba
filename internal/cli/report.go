package cli

import (
	"io"
	"os"

	"limelight/internal/cmdlog"
	"limelight/internal/config"
	"limelight/internal/jobs"
	"limelight/internal/report"
)

// Execute implements the go-flags Commander interface for ReportCommand.
func (c *ReportCommand) Execute(args []string) error {
	return cmdlog.Run("report", func() error {
		cfg, err := c.globals.loadConfig()
		if err != nil {
			return err
		}
		return c.executeWithConfig(cfg, os.Stdout)
	})
}

// executeWithConfig renders the report with flag overrides applied (for
// testing).
func (c *ReportCommand) executeWithConfig(cfg config.Config, out io.Writer) error {
	mode, err := report.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	csvPath := c.CSV
	if csvPath == "" {
		csvPath = cfg.Output.ScoredCSV
	}
	htmlPath := c.Out
	if htmlPath == "" {
		htmlPath = cfg.Output.HTML
	}
	return jobs.RunReport(cfg, csvPath, htmlPath, mode, out)
}
