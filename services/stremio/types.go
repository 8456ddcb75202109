package stremio

type MetaItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Genres      []string `json:"genres,omitempty"`
	Poster      string   `json:"poster"`
	PosterShape string   `json:"posterShape,omitempty"`
	Background  string   `json:"background,omitempty"`
	Description string   `json:"description,omitempty"`
	ReleaseInfo string   `json:"releaseInfo,omitempty"`
	Released    string   `json:"released,omitempty"`
	ImdbRating  *float64 `json:"imdbRating,omitempty"`
	ImdbID      string   `json:"imdb_id,omitempty"`
}

type MetasResponse struct {
	Metas []MetaItem `json:"metas"`
	// set when the deadline cut the page short
	partial bool
}

// IsPartial reports whether the page was cut short by the request deadline.
func (s *MetasResponse) IsPartial() bool {
	return s != nil && s.partial
}

type ExtraItem struct {
	Name       string   `json:"name"`
	IsRequired bool     `json:"isRequired,omitempty"`
	Options    []string `json:"options,omitempty"`
}

type CatalogItem struct {
	Type           string      `json:"type"`
	Id             string      `json:"id"`
	Name           string      `json:"name"`
	Extra          []ExtraItem `json:"extra,omitempty"`
	ExtraSupported []string    `json:"extraSupported,omitempty"`
}

type ManifestResponse struct {
	Id            string         `json:"id"`
	Version       string         `json:"version"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Types         []string       `json:"types"`
	Catalogs      []CatalogItem  `json:"catalogs"`
	Resources     []string       `json:"resources"`
	IdPrefixes    []string       `json:"idPrefixes,omitempty"`
	Logo          string         `json:"logo,omitempty"`
	Background    string         `json:"background,omitempty"`
	ContactEmail  string         `json:"contactEmail,omitempty"`
	BehaviorHints *BehaviorHints `json:"behaviorHints,omitempty"`
}

type BehaviorHints struct {
	Configurable          bool `json:"configurable,omitempty"`
	ConfigurationRequired bool `json:"configurationRequired,omitempty"`
	Adult                 bool `json:"adult,omitempty"`
}

// CatalogRequest carries the path and extra arguments of a catalog call.
type CatalogRequest struct {
	Type  string
	ID    string
	Skip  int
	Genre string
}
