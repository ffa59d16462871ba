package report

import (
	"fmt"
	"html/template"
	"io"
	"regexp"
	"sort"
	"strings"

	"limelight/internal/recommend"
	"limelight/internal/util"
)

// Mode selects how tweet previews are rendered in the HTML report.
type Mode string

const (
	// ModeCard renders self-contained styled preview cards. Works offline.
	ModeCard Mode = "card"
	// ModeEmbed renders official X blockquote embeds hydrated by widgets.js.
	ModeEmbed Mode = "embed"
)

// ParseMode validates a mode flag value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeCard, ModeEmbed:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown report mode %q (want card or embed)", s)
	}
}

const previewTextLimit = 500

type htmlPage struct {
	Subtitle string
	Total    int
	Embed    bool
	Cards    []htmlCard
}

type htmlCard struct {
	Tier       string
	TierClass  string
	Username   string
	Name       string
	ProfileURL string
	Followers  string
	Engagement int
	RatePct    string
	Joined     string
	Listed     string
	Ratio      string
	Tweets     int
	Likes      int
	Retweets   int
	Replies    int
	Reason     string
	Previews   []htmlPreview
}

type htmlPreview struct {
	EmbedURL  string
	Text      string
	TextHTML  template.HTML
	AvatarURL string
	Username  string
	Date      string
	ViewURL   string
}

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// linkify turns bare URLs in tweet text into anchors. Everything around the
// anchors is escaped first, so the returned HTML carries no raw user input.
func linkify(text string) template.HTML {
	var b strings.Builder
	last := 0
	for _, loc := range urlPattern.FindAllStringIndex(text, -1) {
		b.WriteString(template.HTMLEscapeString(text[last:loc[0]]))
		u := template.HTMLEscapeString(text[loc[0]:loc[1]])
		b.WriteString(`<a href="` + u + `" target="_blank" rel="noopener">` + u + `</a>`)
		last = loc[1]
	}
	b.WriteString(template.HTMLEscapeString(text[last:]))
	return template.HTML(b.String())
}

func tierClass(tier string) string {
	return strings.ReplaceAll(strings.ToLower(tier), " ", "-")
}

func buildCard(row Row, mode Mode) htmlCard {
	c := htmlCard{
		Tier:       row.Recommendation,
		TierClass:  tierClass(row.Recommendation),
		Username:   row.Username,
		Name:       row.Name,
		ProfileURL: row.ProfileURL,
		Followers:  CompactCount(row.FollowersCount),
		Engagement: row.TotalEngagement,
		RatePct:    recommend.FormatRate(row.EngagementRate),
		Joined:     FormatJoined(row.CreatedAt),
		Ratio:      FollowRatio(row.FollowersCount, row.FollowingCount),
		Tweets:     row.TweetsFound,
		Likes:      row.TotalLikes,
		Retweets:   row.TotalRetweets,
		Replies:    row.TotalReplies,
		Reason:     row.Reason,
	}
	if c.ProfileURL == "" && row.Username != "" {
		c.ProfileURL = ProfileURL(row.Username)
	}
	if row.ListedCount > 0 {
		c.Listed = CompactCount(row.ListedCount)
	}
	if c.Ratio == "—" {
		c.Ratio = ""
	}

	for i := 0; i < 3; i++ {
		url := row.TweetURLs[i]
		text := strings.TrimSpace(row.SampleTweets[i])
		if url == "" && text == "" {
			continue
		}
		p := htmlPreview{
			Text:      util.Ellipsize(text, previewTextLimit),
			AvatarURL: row.ProfileImageURL,
			Username:  row.Username,
			Date:      formatTweetDate(row.TweetDates[i]),
			ViewURL:   url,
		}
		if p.ViewURL == "" {
			p.ViewURL = c.ProfileURL
		}
		if mode == ModeEmbed {
			p.EmbedURL = url
		} else {
			p.TextHTML = linkify(p.Text)
		}
		c.Previews = append(c.Previews, p)
	}
	return c
}

// RenderHTML writes the self-contained report page. Rows are re-sorted by
// tier then engagement rate, so a hand-reordered CSV still renders ranked.
func RenderHTML(w io.Writer, rows []Row, mode Mode, subtitle string) error {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a := recommend.Tier(sorted[i].Recommendation).Order()
		b := recommend.Tier(sorted[j].Recommendation).Order()
		if a != b {
			return a < b
		}
		return sorted[i].EngagementRate > sorted[j].EngagementRate
	})

	page := htmlPage{
		Subtitle: subtitle,
		Total:    len(sorted),
		Embed:    mode == ModeEmbed,
	}
	for _, row := range sorted {
		page.Cards = append(page.Cards, buildCard(row, mode))
	}
	return pageTemplate.Execute(w, page)
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Influencer recommendations</title>
  <style>
    :root {
      --bg: #0d0d0f;
      --surface: #16161a;
      --surface2: #1c1c21;
      --text: #e4e4e7;
      --text2: #a1a1aa;
      --accent-strong: #22c55e;
      --accent-consider: #eab308;
      --accent-skip: #71717a;
      --border: #27272a;
      --link: #3b82f6;
      --link-hover: #60a5fa;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 1.5rem;
      background: var(--bg);
      color: var(--text);
      font-family: system-ui, sans-serif;
      font-size: 15px;
      line-height: 1.5;
    }
    .container { max-width: 960px; margin: 0 auto; }
    h1 { font-size: 1.75rem; font-weight: 700; margin-bottom: 0.25rem; }
    .subtitle { color: var(--text2); margin-bottom: 1.5rem; }
    .filters { display: flex; gap: 0.5rem; margin-bottom: 1.5rem; flex-wrap: wrap; }
    .filters button {
      padding: 0.5rem 1rem;
      border: 1px solid var(--border);
      background: var(--surface);
      color: var(--text2);
      border-radius: 8px;
      cursor: pointer;
      font-family: inherit;
      font-size: 0.9rem;
    }
    .filters button:hover { color: var(--text); background: var(--surface2); }
    .filters button.active { color: var(--text); border-color: var(--accent-strong); background: var(--surface2); }
    .filters button.active.consider { border-color: var(--accent-consider); }
    .filters button.active.skip { border-color: var(--accent-skip); }
    .count { color: var(--text2); font-size: 0.9rem; margin-bottom: 1rem; }
    .grid { display: grid; gap: 1rem; }
    .card {
      background: var(--surface);
      border: 1px solid var(--border);
      border-radius: 12px;
      padding: 1.25rem;
    }
    .card:hover { border-color: #3f3f46; }
    .card.card-strong-hire { border-left: 4px solid var(--accent-strong); }
    .card.card-consider { border-left: 4px solid var(--accent-consider); }
    .card.card-skip { border-left: 4px solid var(--accent-skip); opacity: 0.75; }
    .card.hidden { display: none; }
    .card-header { display: flex; align-items: center; gap: 0.5rem; flex-wrap: wrap; margin-bottom: 0.5rem; }
    .badge {
      font-size: 0.7rem;
      font-weight: 600;
      text-transform: uppercase;
      letter-spacing: 0.05em;
      padding: 0.2rem 0.5rem;
      border-radius: 6px;
    }
    .badge-strong-hire { background: rgba(34, 197, 94, 0.2); color: var(--accent-strong); }
    .badge-consider { background: rgba(234, 179, 8, 0.2); color: var(--accent-consider); }
    .badge-skip { background: rgba(113, 113, 122, 0.2); color: var(--accent-skip); }
    .profile-link { color: var(--link); text-decoration: none; font-weight: 600; font-family: monospace; }
    .profile-link:hover { color: var(--link-hover); text-decoration: underline; }
    .name { color: var(--text2); font-size: 0.9rem; }
    .card-metrics { display: flex; gap: 1rem; margin-bottom: 0.35rem; font-size: 0.85rem; color: var(--text2); }
    .card-extra { font-size: 0.8rem; color: var(--text2); margin-bottom: 0.5rem; opacity: 0.9; }
    .reason { margin: 0.5rem 0 0.75rem; font-size: 0.9rem; color: var(--text2); }
    .previews { margin-top: 0.75rem; }
    .preview {
      margin-bottom: 0.75rem;
      padding: 0.75rem;
      background: var(--bg);
      border-radius: 8px;
      border: 1px solid var(--border);
    }
    .preview-header { display: flex; align-items: center; gap: 0.5rem; margin-bottom: 0.4rem; }
    .preview-header img { width: 28px; height: 28px; border-radius: 50%; }
    .preview-header .handle { font-family: monospace; font-size: 0.85rem; color: var(--text); }
    .preview-header .date { font-size: 0.8rem; color: var(--text2); }
    .preview-text {
      margin: 0 0 0.4rem;
      font-size: 0.9rem;
      color: var(--text2);
      white-space: pre-wrap;
      word-break: break-word;
    }
    .preview-text a { color: var(--link); }
    .view-original { font-size: 0.8rem; color: var(--link); text-decoration: none; }
    .view-original:hover { color: var(--link-hover); text-decoration: underline; }
    .embed-wrap { margin-bottom: 1rem; min-height: 120px; }
    .embed-wrap .twitter-tweet { margin: 0 auto; }
  </style>
</head>
<body>
  <div class="container">
    <h1>Influencer recommendations</h1>
{{- if .Subtitle}}
    <p class="subtitle">{{.Subtitle}}</p>
{{- end}}
    <div class="filters">
      <button type="button" class="filter-btn active" data-filter="all">All</button>
      <button type="button" class="filter-btn" data-filter="Strong hire">Strong hire</button>
      <button type="button" class="filter-btn" data-filter="Consider">Consider</button>
      <button type="button" class="filter-btn" data-filter="Skip">Skip</button>
    </div>
    <p class="count">Total: {{.Total}}</p>
    <div class="grid">
{{- range .Cards}}
      <article class="card card-{{.TierClass}}" data-recommendation="{{.Tier}}">
        <div class="card-header">
          <span class="badge badge-{{.TierClass}}">{{.Tier}}</span>
          <a href="{{.ProfileURL}}" target="_blank" rel="noopener" class="profile-link">@{{.Username}}</a>
          <span class="name">{{.Name}}</span>
        </div>
        <div class="card-metrics">
          <span title="Followers">Followers {{.Followers}}</span>
          <span title="Total engagements">Engagement {{.Engagement}}</span>
          <span title="Engagement rate">ER {{.RatePct}}</span>
        </div>
        <div class="card-extra">
          {{- if .Joined}}<span title="Account creation date">{{.Joined}}</span> · {{end -}}
          {{- if .Listed}}<span title="List count (quality signal)">Listed {{.Listed}}</span> · {{end -}}
          {{- if .Ratio}}<span title="Followers / Following">F/Following {{.Ratio}}</span> · {{end -}}
          <span title="Matching tweets in search">Matching tweets {{.Tweets}}</span> ·
          <span title="Likes / RTs / Replies on those">&#9829; {{.Likes}} · RT {{.Retweets}} · &#8617; {{.Replies}}</span>
        </div>
        <p class="reason">{{.Reason}}</p>
        <div class="previews">
{{- range .Previews}}
{{- if .EmbedURL}}
          <div class="embed-wrap">
            <blockquote class="twitter-tweet" data-dnt="true"><a href="{{.EmbedURL}}"></a></blockquote>
          </div>
{{- else if $.Embed}}
          <div class="preview">
            <p class="preview-text">{{.Text}}</p>
          </div>
{{- else}}
          <div class="preview">
            <div class="preview-header">
{{- if .AvatarURL}}
              <img src="{{.AvatarURL}}" alt="" loading="lazy">
{{- end}}
              <span class="handle">@{{.Username}}</span>
{{- if .Date}}
              <span class="date">{{.Date}}</span>
{{- end}}
            </div>
{{- if .Text}}
            <p class="preview-text">{{.TextHTML}}</p>
{{- end}}
            <a href="{{.ViewURL}}" target="_blank" rel="noopener" class="view-original">View original</a>
          </div>
{{- end}}
{{- end}}
        </div>
      </article>
{{- end}}
    </div>
  </div>
{{- if .Embed}}
  <script async src="https://platform.twitter.com/widgets.js" charset="utf-8"></script>
{{- end}}
  <script>
    document.querySelectorAll('.filter-btn').forEach(btn => {
      btn.addEventListener('click', () => {
        document.querySelectorAll('.filter-btn').forEach(b => b.classList.remove('active', 'consider', 'skip'));
        btn.classList.add('active');
        if (btn.dataset.filter === 'Consider') btn.classList.add('consider');
        if (btn.dataset.filter === 'Skip') btn.classList.add('skip');
        const filter = btn.dataset.filter;
        document.querySelectorAll('.card').forEach(card => {
          const rec = card.dataset.recommendation;
          card.classList.toggle('hidden', filter !== 'all' && rec !== filter);
        });
      });
    });
  </script>
</body>
</html>
`))
