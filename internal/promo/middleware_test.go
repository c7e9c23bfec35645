package promo

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newStatusRouter(ts TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/promo/status", Entitled(ts), func(c *gin.Context) {
		claims := MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{"device_id": claims.DeviceID, "label": claims.Label})
	})
	return r
}

func TestEntitledAcceptsValidToken(t *testing.T) {
	ts := TokenService{Secret: []byte("test-secret"), Issuer: "bartrender", Duration: time.Hour}
	token, _, err := ts.Sign("device-1", "Launch", 0)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/promo/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newStatusRouter(ts).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
}

func TestEntitledRejectsMissingAndBadTokens(t *testing.T) {
	ts := TokenService{Secret: []byte("test-secret"), Issuer: "bartrender", Duration: time.Hour}
	router := newStatusRouter(ts)

	req := httptest.NewRequest(http.MethodGet, "/promo/status", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status = %d, want 401", w.Code)
	}

	other := TokenService{Secret: []byte("other-secret"), Issuer: "bartrender", Duration: time.Hour}
	token, _, err := other.Sign("device-1", "Launch", 0)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/promo/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong secret: status = %d, want 401", w.Code)
	}
}
