package recommend

import (
	"fmt"
	"sort"

	"limelight/internal/model"
)

// Tier is the hiring verdict for one influencer.
type Tier string

const (
	TierStrong   Tier = "Strong hire"
	TierConsider Tier = "Consider"
	TierSkip     Tier = "Skip"
)

// Order gives Tier its sort rank. Unknown tiers sink to the bottom with Skip.
func (t Tier) Order() int {
	switch t {
	case TierStrong:
		return 0
	case TierConsider:
		return 1
	default:
		return 2
	}
}

// Decision thresholds. An account following 50x more people than follow it
// back is treated as a bot.
const (
	maxFollowingRatio = 50

	minFollowersStrong  = 5000
	minERStrong         = 0.0008
	minEngagementStrong = 20

	minFollowersConsider  = 2000
	minERConsider         = 0.0002
	minEngagementConsider = 5

	largeAudienceFloor = 10000
	deadFeedFloor      = 100000
	tinyAudienceCeil   = 1000
	negligibleER       = 0.00005
)

// Recommendation bundles an influencer with its verdict.
type Recommendation struct {
	model.Influencer

	Rate   float64
	Total  int
	Tier   Tier
	Reason string
}

// EngagementRate is total engagement normalized by audience exposure:
// every found tweet is assumed shown to the full follower base once.
// Zero-follower accounts divide by 1 so they still rank instead of NaN-ing.
func EngagementRate(inf model.Influencer) float64 {
	if inf.TweetsFound == 0 {
		return 0
	}
	followers := inf.FollowersCount
	if followers < 1 {
		followers = 1
	}
	return float64(TotalEngagement(inf)) / float64(inf.TweetsFound*followers)
}

// TotalEngagement is the unweighted sum of likes, retweets and replies.
func TotalEngagement(inf model.Influencer) int {
	return inf.TotalLikes + inf.TotalRetweets + inf.TotalReplies
}

// Classify runs the ordered decision list and returns the first verdict
// that fires, with a human-readable reason for the CSV.
func Classify(inf model.Influencer, rate float64, total int) (Tier, string) {
	followers := inf.FollowersCount
	following := inf.FollowingCount

	if followers > 0 && following > maxFollowingRatio*followers {
		return TierSkip, "Following >> followers, likely bot or follow-back account"
	}
	if total == 0 && followers > deadFeedFloor {
		return TierSkip, "Large audience but zero engagement on these tweets — dead feed"
	}
	if followers < tinyAudienceCeil {
		return TierSkip, "Too small audience for promo"
	}

	if followers >= minFollowersStrong && rate >= minERStrong && total >= minEngagementStrong {
		reason := fmt.Sprintf("ER %s, %d engagements, live audience", FormatRate(rate), total)
		if LooksPromo(inf.SampleTweets) {
			reason += ", already does promo-style content"
		}
		return TierStrong, reason
	}

	if followers >= minFollowersConsider &&
		(rate >= minERConsider || (total >= minEngagementConsider && followers >= largeAudienceFloor)) {
		reason := fmt.Sprintf("ER %s, %d engagements", FormatRate(rate), total)
		if rate < minERConsider && total >= minEngagementConsider {
			reason = fmt.Sprintf("Large audience (%d), some engagement (%d)", followers, total)
		}
		return TierConsider, reason
	}

	if total == 0 {
		return TierSkip, "No engagement on found tweets — dead audience"
	}
	if rate < negligibleER {
		return TierSkip, fmt.Sprintf("Very low ER (%s)", FormatRate(rate))
	}
	return TierSkip, "Below Consider threshold"
}

// Evaluate scores a single influencer.
func Evaluate(inf model.Influencer) Recommendation {
	rate := EngagementRate(inf)
	total := TotalEngagement(inf)
	tier, reason := Classify(inf, rate, total)
	return Recommendation{Influencer: inf, Rate: rate, Total: total, Tier: tier, Reason: reason}
}

// Rank evaluates every influencer and orders the result: Strong hire first,
// then Consider, then Skip; within a tier by rate desc, then followers desc.
func Rank(infs []model.Influencer) []Recommendation {
	recs := make([]Recommendation, 0, len(infs))
	for _, inf := range infs {
		recs = append(recs, Evaluate(inf))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if a, b := recs[i].Tier.Order(), recs[j].Tier.Order(); a != b {
			return a < b
		}
		if recs[i].Rate != recs[j].Rate {
			return recs[i].Rate > recs[j].Rate
		}
		return recs[i].FollowersCount > recs[j].FollowersCount
	})
	return recs
}

// FormatRate renders an engagement rate as a percentage, "0.08%" style.
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate*100)
}
