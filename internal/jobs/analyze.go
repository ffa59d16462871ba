package jobs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"limelight/internal/analytics"
	"limelight/internal/config"
	"limelight/internal/logging"
	"limelight/internal/metrics"
	"limelight/internal/recommend"
	"limelight/internal/report"
	"limelight/internal/util"
	"limelight/internal/xclient"
)

const previewWidth = 80

// RunAnalyze searches every campaign, scores the aggregated authors into
// hire tiers, and writes the scored CSV plus a console shortlist.
func RunAnalyze(ctx context.Context, client xclient.Searcher, cfg config.Config, out io.Writer) error {
	start := time.Now()

	tweets, users, err := searchCampaigns(ctx, client, cfg, out)
	if err != nil {
		return err
	}

	infs := analytics.BuildInfluencers(tweets, users)
	recs := recommend.Rank(infs)

	var strong, consider, skip int
	for _, r := range recs {
		metrics.IncTier(string(r.Tier))
		switch r.Tier {
		case recommend.TierStrong:
			strong++
		case recommend.TierConsider:
			consider++
		default:
			skip++
		}
	}

	if err := report.WriteRecommendations(cfg.Output.ScoredCSV, recs); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.ScoredCSV, err)
	}

	fmt.Fprintf(out, "\nResults saved to %s\n", cfg.Output.ScoredCSV)
	fmt.Fprintf(out, "Strong hire: %d | Consider: %d | Skip: %d\n\n", strong, consider, skip)
	printShortlist(out, recs)

	logging.Info("analyze_done", map[string]any{
		"influencers": len(recs), "strong": strong, "consider": consider, "skip": skip,
	})
	metrics.ObserveRunDuration(start)
	return nil
}

// printShortlist lists every non-Skip author with a one-line excerpt of
// their first sampled tweet.
func printShortlist(out io.Writer, recs []recommend.Recommendation) {
	fmt.Fprintln(out, "Top recommendations (Strong hire + Consider):")
	fmt.Fprintln(out, strings.Repeat("-", 100))
	for _, r := range recs {
		if r.Tier == recommend.TierSkip {
			continue
		}
		mark := ""
		if r.Verified {
			mark = "✓"
		}
		fmt.Fprintf(out, "%-12s @%-18s %8d followers  ER:%s  engagements:%d  %s\n",
			r.Tier, r.Username, r.FollowersCount, recommend.FormatRate(r.Rate), r.Total, mark)
		if len(r.SampleTweets) > 0 {
			preview := util.Ellipsize(util.NormalizeWhitespace(r.SampleTweets[0]), previewWidth)
			if preview != "" {
				fmt.Fprintf(out, "             «%s»\n", preview)
			}
		}
	}
	fmt.Fprintln(out, strings.Repeat("-", 100))
}
