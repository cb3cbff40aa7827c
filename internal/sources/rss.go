package sources

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
	"gopkg.in/yaml.v3"

	"github.com/deusflow/malariawatch/internal/article"
)

// Feed is one RSS endpoint from the feeds config file.
type Feed struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Source   string `yaml:"source"`   // source family label, e.g. "African Media"
	Type     string `yaml:"type"`     // "official", "research" or empty
	Language string `yaml:"language"` // defaults to "en"
	Filter   bool   `yaml:"filter"`   // apply the malaria keyword pre-filter
	Bridge   bool   `yaml:"bridge"`   // fetch through rss2json instead of direct parse
}

type FeedsConfig struct {
	Feeds []Feed `yaml:"feeds"`
}

// LoadFeeds reads the feed list from a YAML file.
func LoadFeeds(path string) ([]Feed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg FeedsConfig
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse feeds config: %w", err)
	}
	return cfg.Feeds, nil
}

// FeedCollector fetches one RSS feed, directly or through the rss2json
// bridge for feeds that block plain readers.
type FeedCollector struct {
	feed       Feed
	rss2jsonAK string
}

func NewFeedCollector(feed Feed, rss2jsonAPIKey string) *FeedCollector {
	return &FeedCollector{feed: feed, rss2jsonAK: rss2jsonAPIKey}
}

func (c *FeedCollector) Name() string { return c.feed.Name }

func (c *FeedCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	if c.feed.Bridge && c.rss2jsonAK != "" {
		return c.fetchBridged(ctx)
	}
	return c.fetchDirect(ctx)
}

func (c *FeedCollector) fetchDirect(ctx context.Context) ([]article.Raw, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(c.feed.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", c.feed.URL, err)
	}

	var articles []article.Raw
	for _, item := range feed.Items {
		if c.feed.Filter && !isMalariaRelated(item.Title, item.Description) {
			continue
		}
		raw := article.Raw{
			Title:        item.Title,
			Description:  item.Description,
			URL:          item.Link,
			PublishedRaw: item.Published,
			Source:       c.feed.Source,
			SourceName:   c.feed.Name,
			Language:     c.feed.Language,
			Type:         c.feed.Type,
			UniqueID:     firstNonEmpty(item.Link, item.GUID, c.feed.Name+"-"+item.Title),
		}
		if item.Image != nil {
			raw.ImageURL = item.Image.URL
		}
		if raw.ImageURL == "" {
			raw.ImageURL = extractImageFromDescription(item.Description)
		}
		articles = append(articles, raw)
	}
	return articles, nil
}

// rss2json response shape.
type bridgeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Items   []struct {
		Title       string `json:"title"`
		Link        string `json:"link"`
		GUID        string `json:"guid"`
		PubDate     string `json:"pubDate"`
		Description string `json:"description"`
		Thumbnail   string `json:"thumbnail"`
		Enclosure   struct {
			Link string `json:"link"`
		} `json:"enclosure"`
	} `json:"items"`
}

func (c *FeedCollector) fetchBridged(ctx context.Context) ([]article.Raw, error) {
	bridgeURL := fmt.Sprintf("https://api.rss2json.com/v1/api.json?rss_url=%s&api_key=%s&count=50",
		url.QueryEscape(c.feed.URL), url.QueryEscape(c.rss2jsonAK))

	var resp bridgeResponse
	if err := getJSON(ctx, bridgeURL, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "error" {
		return nil, fmt.Errorf("rss2json: %s", resp.Message)
	}

	var articles []article.Raw
	for _, item := range resp.Items {
		if c.feed.Filter && !isMalariaRelated(item.Title, item.Description) {
			continue
		}
		imageURL := item.Thumbnail
		if imageURL == "" {
			imageURL = item.Enclosure.Link
		}
		if imageURL == "" {
			imageURL = extractImageFromDescription(item.Description)
		}
		articles = append(articles, article.Raw{
			Title:        item.Title,
			Description:  item.Description,
			URL:          item.Link,
			PublishedRaw: item.PubDate,
			Source:       c.feed.Source,
			SourceName:   c.feed.Name,
			Language:     c.feed.Language,
			Type:         c.feed.Type,
			UniqueID:     firstNonEmpty(item.Link, item.GUID, c.feed.Name+"-"+item.Title),
			ImageURL:     imageURL,
		})
	}
	return articles, nil
}

// malariaKeywords is the pre-filter applied to broad health feeds whose
// volume would otherwise swamp the scorer.
var malariaKeywords = []string{
	"malaria", "mosquito", "bednet", "artemisinin",
	"anopheles", "plasmodium",
	"seasonal malaria chemoprevention", "intermittent preventive treatment",
	"indoor residual spraying", "rapid diagnostic test",
}

func isMalariaRelated(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	for _, kw := range malariaKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

var imgSrcRe = regexp.MustCompile(`(?i)<img[^>]+src="([^"]+)"`)

func extractImageFromDescription(description string) string {
	if m := imgSrcRe.FindStringSubmatch(description); m != nil {
		return m[1]
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
