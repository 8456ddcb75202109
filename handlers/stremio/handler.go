package stremio

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/webtor-io/recent-catalog/services/stremio"
)

type Handler struct {
	b *stremio.Builder
}

func RegisterHandler(r *gin.Engine, b *stremio.Builder) {
	h := &Handler{
		b: b,
	}

	gr := r.Group("")
	gr.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET"},
	}))
	gr.GET("/manifest.json", h.manifest)
	gr.GET("/catalog/:type/*id", h.catalog)
}

func (s *Handler) manifest(c *gin.Context) {
	mas, err := s.b.BuildManifestService()
	if err != nil {
		log.WithError(err).Error("failed to build manifest service")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	resp, err := mas.GetManifest(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to get manifest response")
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Handler) catalog(c *gin.Context) {
	req := ParseCatalogPath(c.Param("type"), c.Param("id"), c.Request.URL.Query())
	cas, err := s.b.BuildCatalogService()
	if err != nil {
		log.WithError(err).Error("failed to build catalog service")
		c.JSON(http.StatusOK, &stremio.MetasResponse{Metas: []stremio.MetaItem{}})
		return
	}
	resp, err := cas.GetCatalog(c.Request.Context(), req)
	if err != nil || resp == nil {
		log.WithError(err).
			WithField("type", req.Type).
			WithField("id", req.ID).
			Error("failed to get catalog response")
		resp = &stremio.MetasResponse{Metas: []stremio.MetaItem{}}
	}
	c.JSON(http.StatusOK, resp)
}

// ParseCatalogPath reads a catalog request from the addon path, either
// "<id>.json" or "<id>/<extra>.json" where extra is url encoded
// (e.g. "skip=20&genre=Horror"). Values missing from the path are taken
// from the query string.
func ParseCatalogPath(ct string, rawID string, query url.Values) *stremio.CatalogRequest {
	p := strings.TrimPrefix(rawID, "/")
	p = strings.TrimSuffix(p, ".json")
	id, extra, _ := strings.Cut(p, "/")

	args, err := url.ParseQuery(extra)
	if err != nil {
		log.WithError(err).WithField("extra", extra).Debug("failed to parse catalog extra")
	}
	for _, k := range []string{"skip", "genre"} {
		if args.Get(k) == "" && query.Get(k) != "" {
			args.Set(k, query.Get(k))
		}
	}

	skip, err := strconv.Atoi(args.Get("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}
	return &stremio.CatalogRequest{
		Type:  ct,
		ID:    id,
		Skip:  skip,
		Genre: args.Get("genre"),
	}
}
