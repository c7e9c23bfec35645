package search

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bartrender/pkg/models"
)

type Handler struct {
	Resolver *Resolver
}

func NewHandler(r *Resolver) *Handler {
	return &Handler{Resolver: r}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.search) // GET /search?q=...
}

func (h *Handler) search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query"})
		return
	}
	mode := models.Mode{
		NonAlcoholic: c.Query("virgin") == "1" || c.Query("virgin") == "true",
		Shots:        c.Query("shots") == "1" || c.Query("shots") == "true",
	}

	items := h.Resolver.Search(c.Request.Context(), q, mode, nil)
	c.JSON(http.StatusOK, gin.H{
		"query": q,
		"items": items,
	})
}
