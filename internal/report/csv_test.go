package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"limelight/internal/model"
	"limelight/internal/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRec() recommend.Recommendation {
	inf := model.Influencer{
		User: model.User{
			ID: "42", Username: "alice", Name: "Alice", Verified: true,
			FollowersCount: 9000, FollowingCount: 300, ListedCount: 12,
			CreatedAt:       time.Date(2013, 12, 14, 0, 0, 0, 0, time.UTC),
			ProfileImageURL: "https://img/alice.png",
		},
		TweetsFound: 2, TotalLikes: 10, TotalRetweets: 3, TotalReplies: 5,
		SampleTweets: []string{"first, with comma", "second"},
		SampleIDs:    []string{"t1", "t2"},
		SampleDates: []time.Time{
			time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 8, 2, 11, 0, 0, 0, time.UTC),
		},
	}
	return recommend.Evaluate(inf)
}

func TestWriteRecommendationsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recommendations.csv")
	require.NoError(t, WriteRecommendations(path, []recommend.Recommendation{sampleRec()}))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, recommendationsHeader, records[0])

	row := records[1]
	require.Len(t, row, len(recommendationsHeader))
	assert.Equal(t, "alice", row[1])
	assert.Equal(t, "https://x.com/alice", row[3])
	assert.Equal(t, "9000", row[5])
	assert.Equal(t, "12", row[7])
	assert.Equal(t, "2013-12-14T00:00:00Z", row[8])
	assert.Equal(t, "18", row[13], "total engagement")
	assert.Equal(t, "0.0010", row[14], "rate rendered with 4 decimals")
	assert.Equal(t, "first, with comma", row[16])
	assert.Equal(t, "", row[18], "absent third sample is empty")
	assert.Equal(t, "https://x.com/alice/status/t1", row[22])
	assert.Equal(t, "", row[24])
}

func TestWriteRecommendationsOmitsZeroListedAndDate(t *testing.T) {
	rec := sampleRec()
	rec.ListedCount = 0
	rec.CreatedAt = time.Time{}

	path := filepath.Join(t.TempDir(), "recommendations.csv")
	require.NoError(t, WriteRecommendations(path, []recommend.Recommendation{rec}))

	rows, err := ReadRecommendations(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].ListedCount)
	assert.Empty(t, rows[0].CreatedAt)
}

func TestRecommendationsRoundTrip(t *testing.T) {
	rec := sampleRec()
	path := filepath.Join(t.TempDir(), "recommendations.csv")
	require.NoError(t, WriteRecommendations(path, []recommend.Recommendation{rec}))

	rows, err := ReadRecommendations(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, string(rec.Tier), row.Recommendation)
	assert.Equal(t, "alice", row.Username)
	assert.Equal(t, 9000, row.FollowersCount)
	assert.Equal(t, 300, row.FollowingCount)
	assert.Equal(t, 2, row.TweetsFound)
	assert.Equal(t, 18, row.TotalEngagement)
	assert.InDelta(t, 0.001, row.EngagementRate, 1e-9)
	assert.Equal(t, rec.Reason, row.Reason)
	assert.Equal(t, "first, with comma", row.SampleTweets[0])
	assert.Equal(t, "https://x.com/alice/status/t2", row.TweetURLs[1])

	// Re-deriving the verdict from the numeric columns must agree with the
	// stored one.
	inf := model.Influencer{
		User: model.User{
			FollowersCount: row.FollowersCount,
			FollowingCount: row.FollowingCount,
		},
		TweetsFound: row.TweetsFound, TotalLikes: row.TotalLikes,
		TotalRetweets: row.TotalRetweets, TotalReplies: row.TotalReplies,
	}
	tier, _ := recommend.Classify(inf, recommend.EngagementRate(inf), recommend.TotalEngagement(inf))
	assert.Equal(t, row.Recommendation, string(tier))
}

func TestReadRecommendationsTolerant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.csv")
	raw := "username,followers_count,engagement_rate,recommendation\n" +
		"bob,not-a-number,garbage,Consider\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	rows, err := ReadRecommendations(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "bob", rows[0].Username)
	assert.Zero(t, rows[0].FollowersCount)
	assert.Zero(t, rows[0].EngagementRate)
	assert.Equal(t, "Consider", rows[0].Recommendation)
	assert.Empty(t, rows[0].Name, "missing columns read as empty")
}

func TestWriteLeads(t *testing.T) {
	infs := []model.Influencer{
		{
			User: model.User{
				ID: "7", Username: "bob", Name: "Bob", Verified: false,
				FollowersCount: 50, FollowingCount: 10,
			},
			TweetsFound: 1, TotalLikes: 2, TotalRetweets: 0, TotalReplies: 1,
		},
	}

	path := filepath.Join(t.TempDir(), "influencers.csv")
	require.NoError(t, WriteLeads(path, infs))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, []string{
		"username", "name", "user_id", "verified", "followers_count",
		"following_count", "tweets_found", "total_likes", "total_retweets",
		"total_replies", "profile_url",
	}, records[0])
	assert.Equal(t, []string{
		"bob", "Bob", "7", "false", "50", "10", "1", "2", "0", "1",
		"https://x.com/bob",
	}, records[1])
}
