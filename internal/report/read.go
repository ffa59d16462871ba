package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ReadRecommendations loads a scored CSV back into rows. Columns are located
// by header name, so column order and extra columns do not matter; missing or
// malformed numerics read as zero.
func ReadRecommendations(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}
	intField := func(record []string, name string) int {
		n, _ := strconv.Atoi(field(record, name))
		return n
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}

		rate, _ := strconv.ParseFloat(field(record, "engagement_rate"), 64)
		row := Row{
			Recommendation:  field(record, "recommendation"),
			Username:        field(record, "username"),
			Name:            field(record, "name"),
			ProfileURL:      field(record, "profile_url"),
			ProfileImageURL: field(record, "profile_image_url"),
			FollowersCount:  intField(record, "followers_count"),
			FollowingCount:  intField(record, "following_count"),
			ListedCount:     intField(record, "listed_count"),
			CreatedAt:       field(record, "created_at"),
			TweetsFound:     intField(record, "tweets_found"),
			TotalLikes:      intField(record, "total_likes"),
			TotalRetweets:   intField(record, "total_retweets"),
			TotalReplies:    intField(record, "total_replies"),
			TotalEngagement: intField(record, "total_engagement"),
			EngagementRate:  rate,
			Reason:          field(record, "recommendation_reason"),
		}
		for i := 0; i < 3; i++ {
			n := strconv.Itoa(i + 1)
			row.SampleTweets[i] = field(record, "sample_tweet_"+n)
			row.TweetDates[i] = field(record, "tweet_date_"+n)
			row.TweetURLs[i] = field(record, "tweet_url_"+n)
		}
		rows = append(rows, row)
	}
	return rows, nil
}
