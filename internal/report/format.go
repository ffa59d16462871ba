package report

import (
	"fmt"
	"strconv"
	"time"
)

// CompactCount renders follower-scale numbers the way profile pages do:
// 1234 -> "1.2K", 3400000 -> "3.4M".
func CompactCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return strconv.Itoa(n)
	}
}

// FormatJoined turns a stored account-creation timestamp into "Joined Mon
// YYYY". Empty or unparsable input renders as "".
func FormatJoined(createdAt string) string {
	if createdAt == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return ""
	}
	return t.Format("Joined Jan 2006")
}

// FollowRatio summarizes followers vs following: "12x" for clearly organic
// accounts, "1.5x" near parity, "1:20" for follow-back profiles, "—" when
// following is zero.
func FollowRatio(followers, following int) string {
	if following <= 0 {
		return "—"
	}
	ratio := float64(followers) / float64(following)
	switch {
	case ratio >= 10:
		return fmt.Sprintf("%.0fx", ratio)
	case ratio >= 1:
		return fmt.Sprintf("%.1fx", ratio)
	case ratio > 0:
		return fmt.Sprintf("1:%.0f", 1/ratio)
	default:
		return "—"
	}
}

// formatTweetDate renders a stored tweet timestamp for preview cards.
func formatTweetDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return ""
	}
	return t.Format("Jan 2, 2006")
}
