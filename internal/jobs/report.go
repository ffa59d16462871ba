package jobs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"limelight/internal/config"
	"limelight/internal/logging"
	"limelight/internal/metrics"
	"limelight/internal/report"
)

// RunReport reads a previously written scored CSV and renders the browsable
// HTML page. Re-rendering needs no API credentials.
func RunReport(cfg config.Config, csvPath, htmlPath string, mode report.Mode, out io.Writer) error {
	start := time.Now()

	rows, err := report.ReadRecommendations(csvPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", csvPath, err)
	}

	f, err := os.Create(htmlPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.RenderHTML(f, rows, mode, subtitle(cfg)); err != nil {
		return fmt.Errorf("rendering %s: %w", htmlPath, err)
	}

	fmt.Fprintf(out, "Done: %s (%d cards)\n", htmlPath, len(rows))
	if abs, err := filepath.Abs(htmlPath); err == nil {
		fmt.Fprintf(out, "Open in browser: file://%s\n", abs)
	}

	logging.Info("report_done", map[string]any{
		"rows": len(rows), "csv": csvPath, "html": htmlPath, "mode": string(mode),
	})
	metrics.ObserveRunDuration(start)
	return nil
}

func subtitle(cfg config.Config) string {
	var labels []string
	for _, c := range cfg.Campaigns {
		if c.Label != "" {
			labels = append(labels, c.Label)
		}
	}
	if len(labels) == 0 {
		return "Ranked by audience liveliness, not raw follower count"
	}
	return strings.Join(labels, " & ") + " · embedded tweets & extra metrics to decide"
}
