package analytics

import (
	"sort"
	"strings"

	"limelight/internal/model"
	"limelight/internal/util"
)

const sampleTextLimit = 500

// BuildInfluencers folds a flat tweet list into one Influencer per author,
// in the order authors first appear. Tweets whose author has no profile in
// users are skipped; the profile is copied once and never overwritten by
// later pages.
func BuildInfluencers(tweets []model.Tweet, users map[string]model.User) []model.Influencer {
	out := make([]model.Influencer, 0, len(users))
	index := make(map[string]int, len(users))

	for _, t := range tweets {
		u, ok := users[t.AuthorID]
		if t.AuthorID == "" || !ok {
			continue
		}
		i, seen := index[t.AuthorID]
		if !seen {
			i = len(out)
			index[t.AuthorID] = i
			out = append(out, model.Influencer{User: u})
		}

		inf := &out[i]
		inf.TweetsFound++
		inf.TotalLikes += t.LikeCount
		inf.TotalRetweets += t.RetweetCount
		inf.TotalReplies += t.ReplyCount

		if len(inf.SampleTweets) < model.MaxSampleTweets {
			if text := strings.TrimSpace(t.Text); text != "" {
				inf.SampleTweets = append(inf.SampleTweets, util.TruncateRunes(text, sampleTextLimit))
				inf.SampleIDs = append(inf.SampleIDs, t.ID)
				inf.SampleDates = append(inf.SampleDates, t.CreatedAt)
			}
		}
	}
	return out
}

// WeightedEngagement is the reach-scan sort key: likes + 2x retweets +
// replies.
func WeightedEngagement(inf model.Influencer) int {
	return inf.TotalLikes + 2*inf.TotalRetweets + inf.TotalReplies
}

// SortByReach orders by follower count, breaking ties by weighted
// engagement. The sort is stable so equal authors keep first-seen order.
func SortByReach(infs []model.Influencer) {
	sort.SliceStable(infs, func(i, j int) bool {
		if infs[i].FollowersCount != infs[j].FollowersCount {
			return infs[i].FollowersCount > infs[j].FollowersCount
		}
		return WeightedEngagement(infs[i]) > WeightedEngagement(infs[j])
	})
}
