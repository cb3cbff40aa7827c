// Package score rates how relevant an article is to the malaria topic and
// pins a geography label on it. It doubles as the retention filter: anything
// scoring under the threshold is dropped, not persisted with a low score.
package score

import (
	"regexp"
	"strings"

	"github.com/deusflow/malariawatch/internal/article"
	"github.com/deusflow/malariawatch/internal/geo"
)

// KeepThreshold is the minimum relevance score an article needs to stay in
// the corpus.
const KeepThreshold = 20

// Core-topic gate: none of these present means score 0, no exceptions.
var coreKeywords = []string{
	"malaria", "plasmodium", "anopheles", "paludisme", "malária",
	"antimalarial", "artemisinin", "falciparum", "mosquito", "moustique",
}

var highValueTerms = []string{
	"outbreak", "epidemic", "deaths", "cases", "resistance", "vaccine",
	"nets", "spraying", "elimination",
}

var mediumValueTerms = []string{
	"treatment", "prevention", "diagnosis", "control", "research", "surveillance",
}

// Financial-market vocabulary drags articles about pharma stock moves below
// the keep threshold.
var penaltyTerms = []string{
	"stock market", "stock price", "stock exchange", "shares", "dividends",
	"merger", "acquisition",
}

// Politically sensitive topics are dropped outright before scoring.
var excludeKeywords = []string{
	"bioweapon", "biological weapon", "conspiracy", "depopulation",
	"gain-of-function",
}

var whoRe = regexp.MustCompile(`\bwho\b`)

// Result is the scoring and geography outcome for one article.
type Result struct {
	Score     int
	Country   string
	Continent string
	Keep      bool
}

// Evaluate scores an article from keyword signals and attributes a
// country/continent. Country and Continent are always concrete: a detected
// country, a region name, "WHO", or "Global" — never empty.
func Evaluate(a article.Article) Result {
	content := strings.ToLower(a.Text())

	for _, kw := range excludeKeywords {
		if strings.Contains(content, kw) {
			return Result{Country: "Global", Continent: "Global"}
		}
	}

	if !containsAny(content, coreKeywords) {
		return Result{Country: "Global", Continent: "Global"}
	}

	res := Result{}
	res.Country, res.Continent = attribute(content)

	score := 25
	for _, term := range highValueTerms {
		if strings.Contains(content, term) {
			score += 15
		}
	}
	for _, term := range mediumValueTerms {
		if strings.Contains(content, term) {
			score += 10
		}
	}
	if res.Country != "Global" && res.Country != "Unidentified" {
		score += 10
	}
	for _, term := range penaltyTerms {
		if strings.Contains(content, term) {
			score -= 30
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	res.Score = score
	res.Keep = score >= KeepThreshold
	return res
}

// attribute resolves the geography chain: WHO mention > country dictionary >
// region terms > Global. The bare "WHO" whole-word match is a known acronym
// collision (a Lusaka radio station shares the name); kept as-is.
func attribute(content string) (country, continent string) {
	if strings.Contains(content, "world health organization") || whoRe.MatchString(content) {
		return "WHO", "Global"
	}
	if d := geo.DetectCountry(content); d != nil {
		return d.Country, d.Continent
	}
	if d := geo.DetectRegion(content); d != nil {
		return d.Country, d.Continent
	}
	return "Global", "Global"
}

func containsAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}
