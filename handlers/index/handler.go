package index

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli"
	"github.com/webtor-io/recent-catalog/services/common"
)

type Data struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	ManifestURL string `json:"manifest_url"`
	HealthURL   string `json:"health_url"`
}

type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Started string `json:"started"`
	Uptime  string `json:"uptime"`
}

type Handler struct {
	domain  string
	started time.Time
}

func RegisterHandler(c *cli.Context, r *gin.Engine) {
	h := &Handler{
		domain:  strings.TrimSuffix(c.String(common.DomainFlag), "/"),
		started: time.Now(),
	}
	r.GET("/", h.index)
	r.GET("/health", h.health)
}

func (s *Handler) index(c *gin.Context) {
	c.JSON(http.StatusOK, &Data{
		Name:        "Recently Released",
		Version:     common.Version,
		ManifestURL: s.domain + "/manifest.json",
		HealthURL:   s.domain + "/health",
	})
}

func (s *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, &Health{
		Status:  "ok",
		Version: common.Version,
		Started: humanize.Time(s.started),
		Uptime:  time.Since(s.started).Round(time.Second).String(),
	})
}
