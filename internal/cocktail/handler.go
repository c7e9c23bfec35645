package cocktail

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bartrender/internal/gen"
	"bartrender/pkg/models"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/curated", h.curated)      // GET /cocktails/curated
	rg.GET("/ai-mixes", h.aiMixes)     // GET /cocktails/ai-mixes
	rg.GET("/:name/details", h.details) // GET /cocktails/:name/details
	rg.PUT("/:name/details", h.save)    // PUT /cocktails/:name/details
	rg.GET("/:name/image", h.image)     // GET /cocktails/:name/image
}

// modeFromQuery reads ?virgin=1 / ?shots=1. Virgin wins when both are
// set, matching the variant-suffix precedence.
func modeFromQuery(c *gin.Context) models.Mode {
	return models.Mode{
		NonAlcoholic: c.Query("virgin") == "1" || c.Query("virgin") == "true",
		Shots:        c.Query("shots") == "1" || c.Query("shots") == "true",
	}
}

func (h *Handler) curated(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Service.Curated(modeFromQuery(c))})
}

func (h *Handler) aiMixes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.Service.AIMixes(modeFromQuery(c))})
}

func (h *Handler) details(c *gin.Context) {
	name := c.Param("name")

	var freshTags []string
	if s := c.Query("tags"); s != "" {
		for _, t := range strings.Split(s, ",") {
			if t = strings.TrimSpace(t); t != "" {
				freshTags = append(freshTags, t)
			}
		}
	}

	d, err := h.Service.Details(c.Request.Context(), name, modeFromQuery(c), freshTags)
	if err != nil {
		writeGenError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) save(c *gin.Context) {
	name := c.Param("name")

	var d models.CocktailDetails
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe body"})
		return
	}

	if err := h.Service.Save(c.Request.Context(), name, modeFromQuery(c), &d); err != nil {
		if errors.Is(err, gen.ErrMalformed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		writeGenError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *Handler) image(c *gin.Context) {
	name := c.Param("name")
	prompt := c.Query("prompt")
	if prompt == "" {
		prompt = "A cocktail named " + name
	}
	force := c.Query("force") == "1" || c.Query("force") == "true"

	img, err := h.Service.ResolveImage(c.Request.Context(), "cocktails/"+name, prompt, nil, force)
	if err != nil {
		writeGenError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", img)
}

// writeGenError maps the generation taxonomy onto HTTP statuses.
func writeGenError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gen.ErrThrottled):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "generation throttled"})
	case errors.Is(err, gen.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backend unavailable"})
	case errors.Is(err, gen.ErrMalformed), errors.Is(err, gen.ErrEmpty):
		c.JSON(http.StatusBadGateway, gin.H{"error": "generation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
