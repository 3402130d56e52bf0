package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newGatedRouter(sessions *utils.SessionSet) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuthMiddleware(sessions))
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func TestSessionAuthRejectsMissingHeader(t *testing.T) {
	r := newGatedRouter(utils.NewSessionSet())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthRejectsUnknownToken(t *testing.T) {
	r := newGatedRouter(utils.NewSessionSet())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer not-a-session")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAuthAcceptsMintedToken(t *testing.T) {
	sessions := utils.NewSessionSet()
	sessions.Add("minted-token")
	r := newGatedRouter(sessions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer minted-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
