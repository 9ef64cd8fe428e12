package api

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ytmeta/metrics"
	"ytmeta/model"
	"ytmeta/table"
	"ytmeta/youtube"
)

type Handler struct {
	fetcher *youtube.Fetcher
}

func NewHandler(fetcher *youtube.Fetcher) *Handler {
	return &Handler{fetcher: fetcher}
}

// GetVideos serves GET /api/videos?ids=...&columns=...&format=json|markdown|grid.
// Same pipeline as the CLI: one request is all-or-nothing against the
// upstream API, missing IDs are reported but do not fail the request.
func (h *Handler) GetVideos(c *gin.Context) {
	ids := youtube.NormalizeIDs([]string{c.Query("ids")})
	if len(ids) == 0 {
		log.Printf("[WARN] GetVideos called without ids")
		c.JSON(http.StatusBadRequest, gin.H{"error": "ids is required"})
		return
	}

	items, err := h.fetcher.FetchVideos(c.Request.Context(), ids)
	if err != nil {
		log.Printf("[ERROR] FetchVideos failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	notFound := youtube.MissingIDs(ids, items)
	if len(notFound) > 0 {
		log.Printf("[WARN] %d of %d requested videos not found: %v", len(notFound), len(ids), notFound)
		metrics.VideosNotFoundTotal.Add(float64(len(notFound)))
	}

	cols := table.SelectColumns(youtube.NormalizeIDs([]string{c.Query("columns")}))

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		rows := table.BuildRowMaps(items, cols)
		c.JSON(http.StatusOK, model.VideosResponse{
			Videos:   rows,
			NotFound: notFound,
			Count:    len(rows),
		})
	case "markdown", "grid":
		rows := table.BuildRows(items, cols)
		rendered := ""
		if format == "grid" {
			rendered = table.RenderGrid(table.Labels(cols), rows)
		} else {
			rendered = table.RenderMarkdown(table.Labels(cols), rows)
		}
		if len(notFound) > 0 {
			c.Header("X-Not-Found", strings.Join(notFound, ","))
		}
		c.String(http.StatusOK, rendered)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid format, must be json, markdown or grid"})
	}
}
