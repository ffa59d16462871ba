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
	"limelight/internal/model"
	"limelight/internal/report"
	"limelight/internal/xclient"
)

// RunFind searches every configured campaign, aggregates the discovered
// authors, and writes the reach-sorted leads CSV. Progress goes to out for
// the operator; structured events go to the JSON log.
func RunFind(ctx context.Context, client xclient.Searcher, cfg config.Config, out io.Writer) error {
	start := time.Now()

	tweets, users, err := searchCampaigns(ctx, client, cfg, out)
	if err != nil {
		return err
	}

	infs := analytics.BuildInfluencers(tweets, users)
	analytics.SortByReach(infs)

	if err := report.WriteLeads(cfg.Output.LeadsCSV, infs); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.LeadsCSV, err)
	}

	fmt.Fprintf(out, "\nInfluencers found: %d\n", len(infs))
	fmt.Fprintf(out, "Results saved to %s\n\n", cfg.Output.LeadsCSV)
	printTopByReach(out, infs, cfg.Output.TopN)

	logging.Info("find_done", map[string]any{
		"tweets": len(tweets), "authors": len(users), "influencers": len(infs),
	})
	metrics.ObserveRunDuration(start)
	return nil
}

// searchCampaigns runs every campaign query in order and returns the union
// of results. Any failure aborts the whole run; partial results are dropped.
func searchCampaigns(ctx context.Context, client xclient.Searcher, cfg config.Config, out io.Writer) ([]model.Tweet, map[string]model.User, error) {
	var allTweets []model.Tweet
	allUsers := make(map[string]model.User)

	for i, campaign := range cfg.Campaigns {
		if i > 0 {
			if err := waitBetween(ctx, cfg.Search.QueryDelay()); err != nil {
				return nil, nil, err
			}
		}

		label := campaign.Label
		if label == "" {
			label = campaign.Query
		}
		fmt.Fprintf(out, "Searching: %s...\n", label)
		logging.Info("campaign_search", map[string]any{"label": label, "query": campaign.Query})

		tweets, users, err := client.Search(ctx, campaign.Query, cfg.Search.PageSize, cfg.Search.MaxPages)
		if err != nil {
			return nil, nil, fmt.Errorf("searching %s: %w", label, err)
		}
		fmt.Fprintf(out, "  tweets: %d, unique authors: %d\n", len(tweets), len(users))

		allTweets = append(allTweets, tweets...)
		for id, u := range users {
			allUsers[id] = u
		}
	}
	return allTweets, allUsers, nil
}

func printTopByReach(out io.Writer, infs []model.Influencer, topN int) {
	fmt.Fprintf(out, "Top %d by reach (followers):\n", topN)
	fmt.Fprintln(out, strings.Repeat("-", 80))
	for i, inf := range infs {
		if i >= topN {
			break
		}
		mark := ""
		if inf.Verified {
			mark = "✓"
		}
		fmt.Fprintf(out, "%2d. @%-20s %8d followers  tweets: %d  likes: %d  %s\n",
			i+1, inf.Username, inf.FollowersCount, inf.TweetsFound, inf.TotalLikes, mark)
	}
	fmt.Fprintln(out, strings.Repeat("-", 80))
}

func waitBetween(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
