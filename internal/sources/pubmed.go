package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/logger"
)

const (
	eutilsBase    = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"
	researchQuery = "(malaria OR plasmodium OR antimalarial OR artemisinin) AND (research OR study OR clinical OR trial)"
)

type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

func esearch(ctx context.Context, db string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/esearch.fcgi?db=%s&term=%s&retmax=100&retmode=json&sort=pub+date",
		eutilsBase, db, url.QueryEscape(researchQuery))
	var resp esearchResponse
	if err := getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	return resp.ESearchResult.IDList, nil
}

// PubMedCollector searches PubMed and hydrates abstracts via efetch.
type PubMedCollector struct{}

func (PubMedCollector) Name() string { return "PubMed" }

type pubmedArticleSet struct {
	Articles []struct {
		PMID    string `xml:"MedlineCitation>PMID"`
		Article struct {
			Title       string   `xml:"ArticleTitle"`
			Abstract    []string `xml:"Abstract>AbstractText"`
			ArticleDate struct {
				Year  string `xml:"Year"`
				Month string `xml:"Month"`
				Day   string `xml:"Day"`
			} `xml:"ArticleDate"`
			JournalPubDate struct {
				Year        string `xml:"Year"`
				Month       string `xml:"Month"`
				Day         string `xml:"Day"`
				MedlineDate string `xml:"MedlineDate"`
			} `xml:"Journal>JournalIssue>PubDate"`
		} `xml:"Article"`
	} `xml:"PubmedArticle"`
}

func (PubMedCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	ids, err := esearch(ctx, "pubmed")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	body, err := httpGet(ctx, fmt.Sprintf("%s/efetch.fcgi?db=pubmed&id=%s&retmode=xml", eutilsBase, strings.Join(ids, ",")))
	if err != nil {
		return nil, err
	}

	var set pubmedArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("pubmed efetch decode: %w", err)
	}

	var all []article.Raw
	for _, entry := range set.Articles {
		a := entry.Article
		published := assembleDate(a.ArticleDate.Year, a.ArticleDate.Month, a.ArticleDate.Day)
		if published == "" {
			month := a.JournalPubDate.Month
			if month == "" && a.JournalPubDate.MedlineDate != "" {
				if parts := strings.Fields(a.JournalPubDate.MedlineDate); len(parts) > 1 {
					month = parts[1]
				}
			}
			published = assembleDate(a.JournalPubDate.Year, month, a.JournalPubDate.Day)
		}
		if published == "" {
			logger.Debug("pubmed article without date", "title", a.Title)
		}

		all = append(all, article.Raw{
			Title:        strings.TrimSpace(a.Title),
			Description:  strings.TrimSpace(strings.Join(a.Abstract, " ")),
			PublishedRaw: published,
			URL:          fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", entry.PMID),
			Source:       "PubMed",
			Type:         "research",
			Language:     "en",
			UniqueID:     "pubmed-" + entry.PMID,
		})
	}
	return all, nil
}

// PMCCollector searches PubMed Central full-text records.
type PMCCollector struct{}

func (PMCCollector) Name() string { return "PMC" }

type pmcArticleSet struct {
	Articles []struct {
		Front struct {
			Title      string `xml:"article-meta>title-group>article-title"`
			Abstract   string `xml:"article-meta>abstract"`
			ArticleIDs []struct {
				Type  string `xml:"pub-id-type,attr"`
				Value string `xml:",chardata"`
			} `xml:"article-meta>article-id"`
			PubDates []struct {
				Type  string `xml:"pub-type,attr"`
				Year  string `xml:"year"`
				Month string `xml:"month"`
				Day   string `xml:"day"`
			} `xml:"article-meta>pub-date"`
		} `xml:"front"`
	} `xml:"article"`
}

func (PMCCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	ids, err := esearch(ctx, "pmc")
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	body, err := httpGet(ctx, fmt.Sprintf("%s/efetch.fcgi?db=pmc&id=%s&retmode=xml", eutilsBase, strings.Join(ids, ",")))
	if err != nil {
		return nil, err
	}

	var set pmcArticleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("pmc efetch decode: %w", err)
	}

	var all []article.Raw
	for _, entry := range set.Articles {
		var pmid, pmcid string
		for _, id := range entry.Front.ArticleIDs {
			switch id.Type {
			case "pmid":
				pmid = strings.TrimSpace(id.Value)
			case "pmc":
				pmcid = strings.TrimSpace(id.Value)
			}
		}

		uniqueID := "pmc-" + pmcid
		articleURL := fmt.Sprintf("https://www.ncbi.nlm.nih.gov/pmc/articles/PMC%s", pmcid)
		if pmid != "" {
			uniqueID = "pmid-" + pmid
			articleURL = fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", pmid)
		}

		var published string
		for _, d := range entry.Front.PubDates {
			if d.Type == "epub" || d.Type == "ppub" {
				published = assembleDate(d.Year, d.Month, d.Day)
				if published != "" {
					break
				}
			}
		}

		all = append(all, article.Raw{
			Title:        strings.TrimSpace(entry.Front.Title),
			Description:  strings.TrimSpace(entry.Front.Abstract),
			PublishedRaw: published,
			URL:          articleURL,
			Source:       "PMC",
			Type:         "research",
			Language:     "en",
			UniqueID:     uniqueID,
		})
	}
	return all, nil
}

// EuropePMCCollector queries the Europe PMC REST search.
type EuropePMCCollector struct{}

func (EuropePMCCollector) Name() string { return "Europe PMC" }

func (EuropePMCCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	endpoint := fmt.Sprintf(
		"https://www.ebi.ac.uk/europepmc/webservices/rest/search?query=%s&resultType=lite&format=json&pageSize=100",
		url.QueryEscape(researchQuery))

	var resp struct {
		ResultList struct {
			Result []struct {
				ID                   string `json:"id"`
				Title                string `json:"title"`
				AbstractText         string `json:"abstractText"`
				FirstPublicationDate string `json:"firstPublicationDate"`
				Language             string `json:"language"`
				FullTextURLList      struct {
					FullTextURL []struct {
						URL string `json:"url"`
					} `json:"fullTextUrl"`
				} `json:"fullTextUrlList"`
			} `json:"result"`
		} `json:"resultList"`
	}
	if err := getJSON(ctx, endpoint, &resp); err != nil {
		return nil, err
	}

	var all []article.Raw
	for _, p := range resp.ResultList.Result {
		var articleURL string
		if len(p.FullTextURLList.FullTextURL) > 0 {
			articleURL = p.FullTextURLList.FullTextURL[0].URL
		}
		all = append(all, article.Raw{
			Title:        p.Title,
			Description:  p.AbstractText,
			PublishedRaw: p.FirstPublicationDate,
			URL:          articleURL,
			Source:       "Europe PMC",
			Type:         "research",
			Language:     p.Language,
			UniqueID:     "europepmc-" + p.ID,
		})
	}
	return all, nil
}

// DOAJCollector searches the Directory of Open Access Journals per keyword.
type DOAJCollector struct {
	queries []string
}

func NewDOAJCollector() *DOAJCollector {
	return &DOAJCollector{queries: []string{
		"malaria", "plasmodium", "anopheles", "paludisme", "malária",
		"antimalarial", "artemisinin", "falciparum", "antiplasmodial",
	}}
}

func (c *DOAJCollector) Name() string { return "DOAJ" }

func (c *DOAJCollector) Fetch(ctx context.Context) ([]article.Raw, error) {
	var all []article.Raw
	for _, query := range c.queries {
		endpoint := fmt.Sprintf(
			"https://doaj.org/api/search/articles/%s?pageSize=100",
			url.QueryEscape(fmt.Sprintf("title:%s OR abstract:%s", query, query)))

		var resp struct {
			Results []struct {
				ID          string `json:"id"`
				CreatedDate string `json:"created_date"`
				Bibjson     struct {
					Title    string `json:"title"`
					Abstract string `json:"abstract"`
					Journal  struct {
						Language []string `json:"language"`
					} `json:"journal"`
					Link []struct {
						Type string `json:"type"`
						URL  string `json:"url"`
					} `json:"link"`
				} `json:"bibjson"`
			} `json:"results"`
		}
		if err := getJSON(ctx, endpoint, &resp); err != nil {
			logger.Warn("doaj query failed", "query", query, "error", err)
			continue
		}

		for _, item := range resp.Results {
			var articleURL string
			for _, link := range item.Bibjson.Link {
				if link.Type == "fulltext" {
					articleURL = link.URL
					break
				}
			}
			lang := "en"
			if len(item.Bibjson.Journal.Language) > 0 {
				lang = strings.ToLower(item.Bibjson.Journal.Language[0])
			}
			all = append(all, article.Raw{
				Title:        item.Bibjson.Title,
				Description:  item.Bibjson.Abstract,
				PublishedRaw: item.CreatedDate,
				URL:          articleURL,
				Source:       "DOAJ",
				Type:         "research",
				Language:     lang,
				UniqueID:     "doaj-" + item.ID,
			})
		}
	}
	return all, nil
}

// assembleDate builds YYYY-MM-DD from loose year/month/day parts. Month may
// be a name; a missing day defaults to the first of the month.
func assembleDate(year, month, day string) string {
	if year == "" || month == "" {
		return ""
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		if t, perr := time.Parse("Jan", month[:min(3, len(month))]); perr == nil {
			m = int(t.Month())
		} else {
			return ""
		}
	}
	if m < 1 || m > 12 {
		return ""
	}
	d, err := strconv.Atoi(day)
	if err != nil || d < 1 || d > 31 {
		d = 1
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
