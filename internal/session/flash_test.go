package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request queues two notices
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/menu", nil)

	Flash(c, "Menu has been cleared")
	Flash(c, "Random recipes added")

	cookies := w.Result().Cookies()
	var flashCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == flashCookieName {
			flashCookie = cookie
		}
	}
	require.NotNil(t, flashCookie)

	// Next request consumes them
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest("GET", "/menu", nil)
	c2.Request.AddCookie(flashCookie)

	messages := Flashes(c2)
	assert.Equal(t, []string{"Menu has been cleared", "Random recipes added"}, messages)

	// Consuming clears the cookie
	var cleared *http.Cookie
	for _, cookie := range w2.Result().Cookies() {
		if cookie.Name == flashCookieName {
			cleared = cookie
		}
	}
	require.NotNil(t, cleared)
	assert.Equal(t, -1, cleared.MaxAge)
}

func TestFlashesEmptyWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/view", nil)

	assert.Empty(t, Flashes(c))
}
