// Package geo attributes a best-effort country or region to article text
// using a whole-word term dictionary.
package geo

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Detection is one attribution candidate with its confidence.
type Detection struct {
	Country     string
	Continent   string
	Risk        string
	Term        string
	Type        string // "country", "demonym" or "city"
	Probability float64
}

// Term specificity: a country name beats a demonym or a city, which beat a
// bare region mention.
const (
	probCountry = 1.0
	probDemonym = 0.85
	probCity    = 0.85
	probRegion  = 0.6
)

type term struct {
	country string
	kind    string
	text    string
	prob    float64
	re      *regexp.Regexp
}

var (
	termsOnce sync.Once
	terms     []term
)

func wordRe(t string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(t)) + `\b`)
}

// buildTerms walks countries in sorted order so an equal-probability tie
// always resolves to the same country.
func buildTerms() {
	names := make([]string, 0, len(Countries))
	for name := range Countries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := Countries[name]
		terms = append(terms, term{country: name, kind: "country", text: name, prob: probCountry, re: wordRe(name)})
		for _, d := range c.Demonyms {
			terms = append(terms, term{country: name, kind: "demonym", text: d, prob: probDemonym, re: wordRe(d)})
		}
		for _, city := range c.Cities {
			terms = append(terms, term{country: name, kind: "city", text: city, prob: probCity, re: wordRe(city)})
		}
	}
}

// DetectCountry scans text for country names, demonyms and city names and
// returns the highest-confidence hit, or nil when nothing matches.
func DetectCountry(text string) *Detection {
	if text == "" {
		return nil
	}
	termsOnce.Do(buildTerms)
	lower := strings.ToLower(text)

	var best *Detection
	for _, t := range terms {
		if best != nil && t.prob <= best.Probability && t.country == best.Country {
			continue
		}
		if !t.re.MatchString(lower) {
			continue
		}
		c := Countries[t.country]
		d := &Detection{
			Country:     t.country,
			Continent:   c.Continent,
			Risk:        c.Risk,
			Term:        t.text,
			Type:        t.kind,
			Probability: t.prob,
		}
		if best == nil || d.Probability > best.Probability {
			best = d
		}
	}
	return best
}

// DetectRegion falls back to a broad continent/region term match when no
// country could be attributed.
func DetectRegion(text string) *Detection {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	for _, region := range regionOrder {
		for _, t := range Regions[region] {
			if wordRe(t).MatchString(lower) {
				return &Detection{
					Country:     region,
					Continent:   region,
					Term:        t,
					Type:        "region",
					Probability: probRegion,
				}
			}
		}
	}
	return nil
}
