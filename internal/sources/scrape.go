package sources

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

// MalariaConsortiumCollector scrapes the Malaria Consortium news listing.
type MalariaConsortiumCollector struct{}

func (MalariaConsortiumCollector) Name() string { return "Malaria Consortium" }

func (MalariaConsortiumCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	doc, err := fetchDocument(ctx, "https://www.malariaconsortium.org/news-events/news")
	if err != nil {
		return nil, err
	}

	var all []article.Raw
	doc.Find(".news-list-item").Each(func(i int, s *goquery.Selection) {
		title := strings.TrimSpace(s.Find("h3").Text())
		link, _ := s.Find("a").Attr("href")
		if title == "" || link == "" {
			return
		}
		fullURL := absoluteURL("https://www.malariaconsortium.org", link)
		all = append(all, article.Raw{
			Title:        title,
			Description:  strings.TrimSpace(s.Find(".news-list-item-description").Text()),
			URL:          fullURL,
			PublishedRaw: strings.TrimSpace(s.Find(".news-list-item-date").Text()),
			Source:       "Malaria Consortium",
			Language:     "en",
			UniqueID:     fullURL,
		})
	})
	return all, nil
}

// GaviCollector scrapes the Gavi press release listing.
type GaviCollector struct{}

func (GaviCollector) Name() string { return "Gavi" }

func (GaviCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	doc, err := fetchDocument(ctx, "https://www.gavi.org/news-resources/news-releases")
	if err != nil {
		return nil, err
	}

	var all []article.Raw
	doc.Find("div.sf-news-releases-view .list-item").Each(func(i int, s *goquery.Selection) {
		titleLink := s.Find("h3.item-title a")
		title := strings.TrimSpace(titleLink.Text())
		link, _ := titleLink.Attr("href")
		if title == "" || link == "" {
			return
		}
		fullURL := absoluteURL("https://www.gavi.org", link)
		all = append(all, article.Raw{
			Title:        title,
			Description:  strings.TrimSpace(s.Find(".item-summary").Text()),
			URL:          fullURL,
			PublishedRaw: strings.TrimSpace(s.Find(".item-publication-date").Text()),
			Source:       "Gavi",
			Language:     "en",
			UniqueID:     fullURL,
		})
	})
	return all, nil
}

// AllAfricaCollector scrapes the AllAfrica malaria topic page, a fallback
// for when their RSS endpoints reject feed readers.
type AllAfricaCollector struct{}

func (AllAfricaCollector) Name() string { return "AllAfrica Malaria Scrape" }

func (AllAfricaCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	doc, err := fetchDocument(ctx, "https://allafrica.com/malaria/")
	if err != nil {
		return nil, err
	}

	var all []article.Raw
	doc.Find("div.story-item").Each(func(i int, s *goquery.Selection) {
		link, _ := s.Find("a").First().Attr("href")
		title := strings.TrimSpace(s.Find("h4, h3, h2").First().Text())
		if title == "" || link == "" {
			return
		}
		description := strings.TrimSpace(s.Find("p").First().Text())
		if !isMalariaRelated(title, description) {
			return
		}
		fullURL := absoluteURL("https://allafrica.com", link)
		all = append(all, article.Raw{
			Title:        title,
			Description:  description,
			URL:          fullURL,
			PublishedRaw: strings.TrimSpace(s.Find(".date, .story-date, .pub-date").First().Text()),
			Source:       "African Media",
			SourceName:   "AllAfrica Malaria Scrape",
			Language:     "en",
			UniqueID:     link,
		})
	})
	return all, nil
}

func fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	body, err := httpGet(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

func absoluteURL(base, link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	return base + link
}

// contentSelectors is ordered from most to least specific. The first
// selector yielding three paragraphs wins.
var contentSelectors = []string{
	"article p",
	".article-content p",
	".post-content p",
	".entry-content p",
	".content p",
	"main p",
	"p",
}

const (
	enrichLimit     = 5
	enrichMinLen    = 100
	enrichMaxLen    = 1800
	enrichPauseStep = 500 * time.Millisecond
)

// EnrichContent fills FullContent for the first few articles lacking it by
// scraping their pages. Best effort, capped so a run never hammers sites.
func EnrichContent(ctx context.Context, articles []article.Raw) {
	enriched := 0
	for i := range articles {
		if enriched >= enrichLimit {
			break
		}
		if articles[i].FullContent != "" || articles[i].URL == "" {
			continue
		}

		content, err := extractPageContent(ctx, articles[i].URL)
		if err != nil {
			logger.Debug("content enrichment failed", "url", articles[i].URL, "error", err)
			continue
		}
		if len(content) < enrichMinLen {
			continue
		}
		articles[i].FullContent = content
		enriched++

		select {
		case <-ctx.Done():
			return
		case <-time.After(enrichPauseStep):
		}
	}
	if enriched > 0 {
		logger.Info("enriched article content", "articles", enriched)
	}
}

func extractPageContent(ctx context.Context, url string) (string, error) {
	doc, err := fetchDocument(ctx, url)
	if err != nil {
		return "", err
	}

	var paragraphs []string
	for _, selector := range contentSelectors {
		doc.Find(selector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) >= 3 {
			break
		}
		paragraphs = paragraphs[:0]
	}

	content := strings.Join(paragraphs, "\n\n")
	if len(content) > enrichMaxLen {
		if cut := strings.LastIndex(content[:enrichMaxLen], "\n\n"); cut > 0 {
			content = content[:cut]
		} else {
			content = content[:enrichMaxLen]
		}
	}
	return content, nil
}
