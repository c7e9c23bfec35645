package seasonal

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bartrender/pkg/models"
)

type Handler struct {
	Feed *Feed
}

func NewHandler(feed *Feed) *Handler {
	return &Handler{Feed: feed}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.page) // GET /seasonal?offset=0&virgin=1&shots=1
}

func (h *Handler) page(c *gin.Context) {
	offset := parseInt(c.Query("offset"), 0)
	if offset < 0 {
		offset = 0
	}
	mode := models.Mode{
		NonAlcoholic: c.Query("virgin") == "1" || c.Query("virgin") == "true",
		Shots:        c.Query("shots") == "1" || c.Query("shots") == "true",
	}

	items, err := h.Feed.Page(c.Request.Context(), mode, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "feed failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"label":  h.Feed.PeriodLabel(offset),
		"offset": offset,
		"items":  items,
	})
}

func parseInt(s string, def int) int {
	if strings.TrimSpace(s) == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
