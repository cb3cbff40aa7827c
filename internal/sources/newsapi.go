package sources

import (
	"context"
	"fmt"
	"net/url"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

// searchQuery is the shared multilingual query for the news APIs.
const searchQuery = "malaria OR paludisme OR malária"

// NewsAPICollector queries newsapi.org /v2/everything per English keyword.
type NewsAPICollector struct {
	apiKey   string
	keywords []string
}

func NewNewsAPICollector(apiKey string) *NewsAPICollector {
	return &NewsAPICollector{
		apiKey:   apiKey,
		keywords: []string{"malaria", "plasmodium", "antimalarial"},
	}
}

func (c *NewsAPICollector) Name() string { return "NewsAPI" }

func (c *NewsAPICollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	var all []article.Raw
	for _, keyword := range c.keywords {
		endpoint := fmt.Sprintf(
			"https://newsapi.org/v2/everything?q=%s&language=en&sortBy=publishedAt&apiKey=%s&pageSize=100",
			url.QueryEscape(keyword), url.QueryEscape(c.apiKey))

		var resp struct {
			Status   string `json:"status"`
			Message  string `json:"message"`
			Articles []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				URL         string `json:"url"`
				PublishedAt string `json:"publishedAt"`
				URLToImage  string `json:"urlToImage"`
			} `json:"articles"`
		}
		if err := getJSON(ctx, endpoint, &resp); err != nil {
			logger.Warn("newsapi keyword failed", "keyword", keyword, "error", err)
			continue
		}
		if resp.Status != "ok" {
			logger.Warn("newsapi rejected query", "keyword", keyword, "message", resp.Message)
			continue
		}
		for _, a := range resp.Articles {
			all = append(all, article.Raw{
				Title:        a.Title,
				Description:  a.Description,
				URL:          a.URL,
				PublishedRaw: a.PublishedAt,
				Source:       "NewsAPI",
				Language:     "en",
				UniqueID:     a.URL,
				ImageURL:     a.URLToImage,
			})
		}
	}
	return all, nil
}

// GNewsCollector queries gnews.io across the corpus languages.
type GNewsCollector struct {
	apiKey    string
	languages []string
}

func NewGNewsCollector(apiKey string) *GNewsCollector {
	return &GNewsCollector{apiKey: apiKey, languages: []string{"en", "fr", "pt", "es"}}
}

func (c *GNewsCollector) Name() string { return "Google News" }

func (c *GNewsCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	var all []article.Raw
	for _, lang := range c.languages {
		endpoint := fmt.Sprintf(
			"https://gnews.io/api/v4/search?apikey=%s&q=%s&lang=%s&sortby=publishedAt&max=100&in=title,description",
			url.QueryEscape(c.apiKey), url.QueryEscape("(malaria OR plasmodium)"), lang)

		var resp struct {
			Articles []struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				URL         string `json:"url"`
				PublishedAt string `json:"publishedAt"`
				Image       string `json:"image"`
			} `json:"articles"`
		}
		if err := getJSON(ctx, endpoint, &resp); err != nil {
			logger.Warn("gnews language failed", "lang", lang, "error", err)
			continue
		}
		for _, a := range resp.Articles {
			all = append(all, article.Raw{
				Title:        a.Title,
				Description:  a.Description,
				URL:          a.URL,
				PublishedRaw: a.PublishedAt,
				Source:       "Google News",
				Language:     lang,
				UniqueID:     a.URL,
				ImageURL:     a.Image,
			})
		}
	}
	return all, nil
}

// NewsDataCollector queries newsdata.io, all languages in one call.
type NewsDataCollector struct {
	apiKey string
}

func NewNewsDataCollector(apiKey string) *NewsDataCollector {
	return &NewsDataCollector{apiKey: apiKey}
}

func (c *NewsDataCollector) Name() string { return "NewsData.io" }

func (c *NewsDataCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	endpoint := fmt.Sprintf(
		"https://newsdata.io/api/1/news?apikey=%s&q=%s&language=en,fr,pt,es",
		url.QueryEscape(c.apiKey), url.QueryEscape(searchQuery))

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Link        string `json:"link"`
			PubDate     string `json:"pubDate"`
			Language    string `json:"language"`
			ImageURL    string `json:"image_url"`
		} `json:"results"`
	}
	if err := getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("newsdata.io: status %q", resp.Status)
	}

	var all []article.Raw
	for _, a := range resp.Results {
		all = append(all, article.Raw{
			Title:        a.Title,
			Description:  a.Description,
			URL:          a.Link,
			PublishedRaw: a.PubDate,
			Source:       "NewsData.io",
			Language:     a.Language,
			UniqueID:     a.Link,
			ImageURL:     a.ImageURL,
		})
	}
	return all, nil
}

// GuardianCollector queries the Guardian Open Platform.
type GuardianCollector struct {
	apiKey string
}

func NewGuardianCollector(apiKey string) *GuardianCollector {
	return &GuardianCollector{apiKey: apiKey}
}

func (c *GuardianCollector) Name() string { return "Guardian" }

func (c *GuardianCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	endpoint := fmt.Sprintf(
		"https://content.guardianapis.com/search?q=%s&page-size=100&show-fields=thumbnail,bodyText&api-key=%s",
		url.QueryEscape(searchQuery), url.QueryEscape(c.apiKey))

	var resp struct {
		Response struct {
			Results []struct {
				WebTitle           string `json:"webTitle"`
				WebURL             string `json:"webUrl"`
				WebPublicationDate string `json:"webPublicationDate"`
				Fields             struct {
					Thumbnail string `json:"thumbnail"`
					BodyText  string `json:"bodyText"`
				} `json:"fields"`
			} `json:"results"`
		} `json:"response"`
	}
	if err := getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	var all []article.Raw
	for _, a := range resp.Response.Results {
		description := a.Fields.BodyText
		if len(description) > 300 {
			description = description[:300]
		}
		all = append(all, article.Raw{
			Title:        a.WebTitle,
			Description:  description,
			URL:          a.WebURL,
			PublishedRaw: a.WebPublicationDate,
			Source:       "Guardian",
			Language:     "en",
			UniqueID:     a.WebURL,
			ImageURL:     a.Fields.Thumbnail,
			FullContent:  a.Fields.BodyText,
		})
	}
	return all, nil
}
