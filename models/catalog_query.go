package models

// PageSize is the number of items the discovery provider returns per page.
const PageSize = 20

type CatalogQuery struct {
	ContentType ContentType
	Page        int
	Genre       *Genre
}

// NewCatalogQuery maps a client skip offset and optional genre name onto a provider page.
// Unknown genre names leave the query unfiltered.
func NewCatalogQuery(ct ContentType, skip int, genre string) *CatalogQuery {
	if skip < 0 {
		skip = 0
	}
	q := &CatalogQuery{
		ContentType: ct,
		Page:        skip/PageSize + 1,
	}
	if g, ok := ParseGenre(genre); ok {
		q.Genre = &g
	}
	return q
}
