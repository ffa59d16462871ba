package model

import "time"

// User represents a subset of X user fields used by the tool.
type User struct {
	ID              string
	Username        string
	Name            string
	Verified        bool
	FollowersCount  int
	FollowingCount  int
	TweetCount      int
	ListedCount     int
	CreatedAt       time.Time
	ProfileImageURL string
}

// Tweet represents a subset of X tweet fields used by the tool.
type Tweet struct {
	ID           string
	AuthorID     string
	Text         string
	CreatedAt    time.Time
	LikeCount    int
	RetweetCount int
	ReplyCount   int
}

// MaxSampleTweets caps how many tweet texts are kept per influencer.
const MaxSampleTweets = 5

// Influencer is one unique author folded across every campaign search of a
// run. Profile fields are copied from the first sighting and never
// overwritten; totals accumulate over every matching tweet.
type Influencer struct {
	User

	TweetsFound   int
	TotalLikes    int
	TotalRetweets int
	TotalReplies  int

	// Sample slices stay in lockstep: one entry each per sampled tweet,
	// at most MaxSampleTweets, first-seen order, non-empty texts only.
	SampleTweets []string
	SampleIDs    []string
	SampleDates  []time.Time
}
