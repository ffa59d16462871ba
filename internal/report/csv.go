package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"limelight/internal/model"
	"limelight/internal/recommend"
)

const xBase = "https://x.com"

// ProfileURL builds the public profile link for a handle.
func ProfileURL(username string) string {
	return xBase + "/" + username
}

// TweetURL builds the canonical status link for a tweet.
func TweetURL(username, tweetID string) string {
	return fmt.Sprintf("%s/%s/status/%s", xBase, username, tweetID)
}

// Row is one line of the scored CSV, the handoff format between the analyze
// and report stages. Numeric fields parse tolerantly on the way back in, so
// a hand-edited file still renders.
type Row struct {
	Recommendation  string
	Username        string
	Name            string
	ProfileURL      string
	ProfileImageURL string
	FollowersCount  int
	FollowingCount  int
	ListedCount     int
	CreatedAt       string
	TweetsFound     int
	TotalLikes      int
	TotalRetweets   int
	TotalReplies    int
	TotalEngagement int
	EngagementRate  float64
	Reason          string
	SampleTweets    [3]string
	TweetDates      [3]string
	TweetURLs       [3]string
}

var recommendationsHeader = []string{
	"recommendation",
	"username",
	"name",
	"profile_url",
	"profile_image_url",
	"followers_count",
	"following_count",
	"listed_count",
	"created_at",
	"tweets_found",
	"total_likes",
	"total_retweets",
	"total_replies",
	"total_engagement",
	"engagement_rate",
	"recommendation_reason",
	"sample_tweet_1",
	"sample_tweet_2",
	"sample_tweet_3",
	"tweet_date_1",
	"tweet_date_2",
	"tweet_date_3",
	"tweet_url_1",
	"tweet_url_2",
	"tweet_url_3",
}

// rowFrom flattens a scored influencer into CSV shape. Only the first three
// samples survive the export.
func rowFrom(rec recommend.Recommendation) Row {
	r := Row{
		Recommendation:  string(rec.Tier),
		Username:        rec.Username,
		Name:            rec.Name,
		ProfileURL:      ProfileURL(rec.Username),
		ProfileImageURL: rec.ProfileImageURL,
		FollowersCount:  rec.FollowersCount,
		FollowingCount:  rec.FollowingCount,
		ListedCount:     rec.ListedCount,
		TweetsFound:     rec.TweetsFound,
		TotalLikes:      rec.TotalLikes,
		TotalRetweets:   rec.TotalRetweets,
		TotalReplies:    rec.TotalReplies,
		TotalEngagement: rec.Total,
		EngagementRate:  rec.Rate,
		Reason:          rec.Reason,
	}
	if !rec.CreatedAt.IsZero() {
		r.CreatedAt = rec.CreatedAt.Format(time.RFC3339)
	}
	for i := 0; i < 3; i++ {
		if i < len(rec.SampleTweets) {
			r.SampleTweets[i] = rec.SampleTweets[i]
		}
		if i < len(rec.SampleDates) && !rec.SampleDates[i].IsZero() {
			r.TweetDates[i] = rec.SampleDates[i].Format(time.RFC3339)
		}
		if i < len(rec.SampleIDs) {
			r.TweetURLs[i] = TweetURL(rec.Username, rec.SampleIDs[i])
		}
	}
	return r
}

func (r Row) record() []string {
	listed := ""
	if r.ListedCount != 0 {
		listed = strconv.Itoa(r.ListedCount)
	}
	return []string{
		r.Recommendation,
		r.Username,
		r.Name,
		r.ProfileURL,
		r.ProfileImageURL,
		strconv.Itoa(r.FollowersCount),
		strconv.Itoa(r.FollowingCount),
		listed,
		r.CreatedAt,
		strconv.Itoa(r.TweetsFound),
		strconv.Itoa(r.TotalLikes),
		strconv.Itoa(r.TotalRetweets),
		strconv.Itoa(r.TotalReplies),
		strconv.Itoa(r.TotalEngagement),
		fmt.Sprintf("%.4f", r.EngagementRate),
		r.Reason,
		r.SampleTweets[0], r.SampleTweets[1], r.SampleTweets[2],
		r.TweetDates[0], r.TweetDates[1], r.TweetDates[2],
		r.TweetURLs[0], r.TweetURLs[1], r.TweetURLs[2],
	}
}

// WriteRecommendations writes the scored CSV, one row per influencer in the
// order given.
func WriteRecommendations(path string, recs []recommend.Recommendation) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(recommendationsHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := writer.Write(rowFrom(rec).record()); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteLeads writes the reach-sorted CSV produced by the find stage.
func WriteLeads(path string, infs []model.Influencer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{
		"username",
		"name",
		"user_id",
		"verified",
		"followers_count",
		"following_count",
		"tweets_found",
		"total_likes",
		"total_retweets",
		"total_replies",
		"profile_url",
	}); err != nil {
		return err
	}

	for _, inf := range infs {
		if err := writer.Write([]string{
			inf.Username,
			inf.Name,
			inf.ID,
			strconv.FormatBool(inf.Verified),
			strconv.Itoa(inf.FollowersCount),
			strconv.Itoa(inf.FollowingCount),
			strconv.Itoa(inf.TweetsFound),
			strconv.Itoa(inf.TotalLikes),
			strconv.Itoa(inf.TotalRetweets),
			strconv.Itoa(inf.TotalReplies),
			ProfileURL(inf.Username),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
