package xclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"limelight/internal/config"
	"limelight/internal/logging"
	"limelight/internal/metrics"
	"limelight/internal/model"

	"golang.org/x/time/rate"
)

const (
	defaultAPIBase = "https://api.twitter.com/2"

	tweetFields = "created_at,public_metrics,author_id,text"
	userFields  = "public_metrics,username,name,verified,created_at,profile_image_url"
)

// Searcher is the query surface the drivers need from the API client.
type Searcher interface {
	Search(ctx context.Context, query string, pageSize, maxPages int) ([]model.Tweet, map[string]model.User, error)
}

// Client is a bearer-token client for the X API v2 recent-search endpoint.
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
	cooldown    time.Duration
}

// NewClient builds a search client from resolved credentials and the search
// section of the config.
func NewClient(bearerToken string, cfg config.SearchConfig) *Client {
	return &Client{
		baseURL:     defaultAPIBase,
		bearerToken: bearerToken,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
		limiter:     newPageLimiter(cfg.PageDelay()),
		cooldown:    cfg.Cooldown(),
	}
}

func (c *Client) auth(req *http.Request) {
	if c.bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	}
	req.Header.Set("Accept", "application/json")
}

// searchPage is the wire shape of one recent-search response.
type searchPage struct {
	Data []struct {
		ID            string    `json:"id"`
		Text          string    `json:"text"`
		CreatedAt     time.Time `json:"created_at"`
		AuthorID      string    `json:"author_id"`
		PublicMetrics struct {
			LikeCount    int `json:"like_count"`
			ReplyCount   int `json:"reply_count"`
			RetweetCount int `json:"retweet_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []struct {
			ID              string    `json:"id"`
			Name            string    `json:"name"`
			Username        string    `json:"username"`
			Verified        bool      `json:"verified"`
			CreatedAt       time.Time `json:"created_at"`
			ProfileImageURL string    `json:"profile_image_url"`
			PublicMetrics   struct {
				FollowersCount int `json:"followers_count"`
				FollowingCount int `json:"following_count"`
				TweetCount     int `json:"tweet_count"`
				ListedCount    int `json:"listed_count"`
			} `json:"public_metrics"`
		} `json:"users"`
	} `json:"includes"`
	Meta struct {
		NextToken string `json:"next_token"`
	} `json:"meta"`
}

// Search pages through recent-search results for query until the API stops
// returning a continuation token or maxPages pages have been fetched. It
// returns the union of all pages' tweets and a deduplicated author-id →
// profile map (last-seen profile wins).
//
// A 429 response sleeps the fixed cooldown and retries the same page; the
// retry neither advances the continuation token nor counts against
// maxPages, and there is no retry cap. Any other non-2xx status aborts.
func (c *Client) Search(ctx context.Context, query string, pageSize, maxPages int) ([]model.Tweet, map[string]model.User, error) {
	var (
		tweets    []model.Tweet
		usersByID = make(map[string]model.User)
		nextToken string
	)

	for page := 0; page < maxPages; {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.searchURL(query, pageSize, nextToken), nil)
		if err != nil {
			return nil, nil, err
		}
		c.auth(req)

		metrics.SearchRequests.Inc()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("recent search: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			metrics.RateLimitHits.Inc()
			fmt.Printf("Rate limited; cooling down %s...\n", c.cooldown)
			logging.Info("rate_limited", map[string]any{"cooldown": c.cooldown.String()})
			if err := sleep(ctx, c.cooldown); err != nil {
				return nil, nil, err
			}
			continue
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, nil, fmt.Errorf("x api status %d", resp.StatusCode)
		}

		var raw searchPage
		err = json.NewDecoder(resp.Body).Decode(&raw)
		resp.Body.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("decode search page: %w", err)
		}

		for _, d := range raw.Data {
			tweets = append(tweets, model.Tweet{
				ID:           d.ID,
				AuthorID:     d.AuthorID,
				Text:         d.Text,
				CreatedAt:    d.CreatedAt,
				LikeCount:    d.PublicMetrics.LikeCount,
				RetweetCount: d.PublicMetrics.RetweetCount,
				ReplyCount:   d.PublicMetrics.ReplyCount,
			})
		}
		for _, u := range raw.Includes.Users {
			usersByID[u.ID] = model.User{
				ID:              u.ID,
				Username:        u.Username,
				Name:            u.Name,
				Verified:        u.Verified,
				FollowersCount:  u.PublicMetrics.FollowersCount,
				FollowingCount:  u.PublicMetrics.FollowingCount,
				TweetCount:      u.PublicMetrics.TweetCount,
				ListedCount:     u.PublicMetrics.ListedCount,
				CreatedAt:       u.CreatedAt,
				ProfileImageURL: u.ProfileImageURL,
			}
		}

		metrics.SearchPages.Inc()
		logging.Debug("search_page", map[string]any{
			"query":  query,
			"page":   page,
			"tweets": len(raw.Data),
			"users":  len(raw.Includes.Users),
		})

		nextToken = raw.Meta.NextToken
		if nextToken == "" {
			break
		}
		page++
	}

	return tweets, usersByID, nil
}

func (c *Client) searchURL(query string, pageSize int, nextToken string) string {
	v := url.Values{}
	v.Set("query", query)
	v.Set("max_results", fmt.Sprintf("%d", clamp(pageSize, 10, 100)))
	v.Set("tweet.fields", tweetFields)
	v.Set("user.fields", userFields)
	v.Set("expansions", "author_id")
	if nextToken != "" {
		v.Set("next_token", nextToken)
	}
	return c.baseURL + "/tweets/search/recent?" + v.Encode()
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
