package recommend

import (
	"strings"

	"limelight/internal/util"
)

// Token groups for spotting accounts that already post promotional content.
// Links and brand names catch explicit shilling; the hype words catch the
// "check out this new gem 🚀" register even without a link.
var (
	promoLinkTokens = []string{"http", "polymarket", "euphoria", ".fi"}
	promoHypeTokens = []string{"check", "try", "new", "launch", "alpha", "gem", "🔥", "💎", "🚀"}
)

// LooksPromo reports whether the sampled tweets read like promo content.
// Empty samples never match.
func LooksPromo(samples []string) bool {
	if len(samples) == 0 {
		return false
	}
	joined := strings.Join(samples, " ")
	return util.ContainsAnyCaseInsensitive(joined, promoLinkTokens) ||
		util.ContainsAnyCaseInsensitive(joined, promoHypeTokens)
}
