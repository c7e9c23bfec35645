package favorites

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bartrender/pkg/models"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.list)            // GET /favorites
	rg.POST("/toggle", h.toggle)  // POST /favorites/toggle
}

// deviceID comes from the X-Device-ID header, with a query fallback for
// simple clients.
func deviceID(c *gin.Context) string {
	if id := c.GetHeader("X-Device-ID"); id != "" {
		return id
	}
	return c.Query("device")
}

func (h *Handler) list(c *gin.Context) {
	id := deviceID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing device id"})
		return
	}

	items, err := h.Service.List(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) toggle(c *gin.Context) {
	id := deviceID(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing device id"})
		return
	}

	var summary models.CocktailSummary
	if err := c.ShouldBindJSON(&summary); err != nil || summary.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid summary"})
		return
	}

	liked, err := h.Service.Toggle(c.Request.Context(), id, summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "toggle failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}
