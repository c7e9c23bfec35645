package promo

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repo   *Repo
	Tokens TokenService
}

func NewHandler(repo *Repo, tokens TokenService) *Handler {
	return &Handler{Repo: repo, Tokens: tokens}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/redeem", h.redeem)                        // POST /promo/redeem
	rg.GET("/status", Entitled(h.Tokens), h.status)     // GET /promo/status
}

func (h *Handler) status(c *gin.Context) {
	claims := MustGetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"device_id":  claims.DeviceID,
		"label":      claims.Label,
		"expires_at": claims.ExpiresAt.Time.UTC(),
	})
}

type redeemRequest struct {
	Code     string `json:"code" binding:"required"`
	DeviceID string `json:"device_id" binding:"required"`
}

func (h *Handler) redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and device_id required"})
		return
	}

	pc, err := h.Repo.Redeem(c.Request.Context(), req.Code, req.DeviceID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCode):
			c.JSON(http.StatusNotFound, gin.H{"error": "invalid code"})
		case errors.Is(err, ErrExpired):
			c.JSON(http.StatusGone, gin.H{"error": "code expired"})
		case errors.Is(err, ErrExhausted):
			c.JSON(http.StatusConflict, gin.H{"error": "code fully used"})
		case errors.Is(err, ErrAlreadyClaimed):
			c.JSON(http.StatusConflict, gin.H{"error": "already claimed on this device"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redeem failed"})
		}
		return
	}

	token, exp, err := h.Tokens.Sign(req.DeviceID, pc.Label, pc.DurationDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"label":      pc.Label,
		"token":      token,
		"expires_at": exp.UTC(),
	})
}
