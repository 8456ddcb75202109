package stremio

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/webtor-io/recent-catalog/models"
	"github.com/webtor-io/recent-catalog/services/tmdb"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const streamingHeader = "Streaming on:"

var regionNames = map[string]string{
	"US": "United States",
	"GB": "United Kingdom",
	"CA": "Canada",
	"AU": "Australia",
	"NZ": "New Zealand",
	"IE": "Ireland",
	"DE": "Germany",
	"FR": "France",
	"ES": "Spain",
	"IT": "Italy",
	"NL": "Netherlands",
	"SE": "Sweden",
	"NO": "Norway",
	"DK": "Denmark",
	"FI": "Finland",
	"BR": "Brazil",
	"MX": "Mexico",
	"IN": "India",
	"JP": "Japan",
	"KR": "South Korea",
}

var regionNamer = display.Regions(language.English)

// RegionName returns a human readable name for an ISO 3166 region code.
func RegionName(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if name, ok := regionNames[code]; ok {
		return name
	}
	r, err := language.ParseRegion(code)
	if err != nil || regionNamer == nil {
		return code
	}
	if name := regionNamer.Name(r); name != "" {
		return name
	}
	return code
}

type Formatter struct{}

func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format projects a discovered item and its enrichment onto a catalog entry.
// It reports false for items that lack an id or a title.
func (s *Formatter) Format(item *models.CandidateItem, res *models.EnrichmentResult, ct models.ContentType) (*MetaItem, bool) {
	if item == nil || item.ID <= 0 || strings.TrimSpace(item.Title) == "" {
		return nil, false
	}
	if res == nil {
		res = &models.EnrichmentResult{}
	}
	m := &MetaItem{
		ID:          fmt.Sprintf("%v%d", idPrefix, item.ID),
		Type:        ct.String(),
		Name:        item.Title,
		Genres:      tmdb.GenreNames(item.GenreIDs),
		Poster:      tmdb.ImageURL(tmdb.PosterSize, item.PosterPath),
		PosterShape: "poster",
		Background:  tmdb.ImageURL(tmdb.BackdropSize, item.BackdropPath),
		Description: s.makeDescription(item.Overview, res),
		ImdbRating:  res.Rating,
	}
	if rt := item.GetReleaseTime(); rt != nil {
		m.Released = rt.Format(time.RFC3339)
		m.ReleaseInfo = strconv.Itoa(rt.Year())
	}
	if ct == models.ContentTypeSeries {
		m.ImdbID = res.ImdbID
	}
	return m, true
}

func (s *Formatter) makeDescription(overview string, res *models.EnrichmentResult) string {
	var sections []string
	if o := strings.TrimSpace(overview); o != "" {
		sections = append(sections, o)
	}
	if res.HasStreaming() {
		lines := []string{streamingHeader}
		for _, st := range res.Streaming {
			lines = append(lines, fmt.Sprintf("%v: %v", RegionName(st.Region), strings.Join(st.Providers, ", ")))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}
	if res.Rating != nil {
		sections = append(sections, fmt.Sprintf("IMDb rating: %v/10", strconv.FormatFloat(*res.Rating, 'f', 1, 64)))
	}
	return strings.Join(sections, "\n\n")
}
