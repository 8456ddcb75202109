package stremio

import (
	"context"

	"github.com/webtor-io/recent-catalog/models"
	"github.com/webtor-io/recent-catalog/services/common"
)

const (
	manifestID      = "io.webtor.recent"
	idPrefix        = "tmdb:"
	movieCatalogID  = "recent-movies"
	seriesCatalogID = "recent-series"
)

var catalogIDs = map[models.ContentType]string{
	models.ContentTypeMovie:  movieCatalogID,
	models.ContentTypeSeries: seriesCatalogID,
}

type Manifest struct{}

func NewManifest() *Manifest {
	return &Manifest{}
}

func (s *Manifest) GetManifest(_ context.Context) (*ManifestResponse, error) {
	return &ManifestResponse{
		Id:          manifestID,
		Version:     common.Version,
		Name:        "Recently Released",
		Description: "Movies and series released over the last few months, with streaming availability and IMDb rating for each title.",
		Types:       []string{models.ContentTypeMovie.String(), models.ContentTypeSeries.String()},
		Catalogs: []CatalogItem{
			makeCatalogItem(models.ContentTypeMovie, "Recently Released Movies"),
			makeCatalogItem(models.ContentTypeSeries, "Recently Released Series"),
		},
		Resources:  []string{"catalog"},
		IdPrefixes: []string{idPrefix},
	}, nil
}

func makeCatalogItem(ct models.ContentType, name string) CatalogItem {
	genres := make([]string, len(models.Genres))
	for i, g := range models.Genres {
		genres[i] = g.String()
	}
	return CatalogItem{
		Type: ct.String(),
		Id:   catalogIDs[ct],
		Name: name,
		Extra: []ExtraItem{
			{Name: "skip"},
			{Name: "genre", Options: genres},
		},
		ExtraSupported: []string{"skip", "genre"},
	}
}

var _ ManifestService = (*Manifest)(nil)
