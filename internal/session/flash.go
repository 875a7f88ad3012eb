package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// flashCookieName carries notices across the POST-redirect-GET cycle
const flashCookieName = "menubook_flash"

// pendingKey accumulates notices added during the current request, so
// multiple Flash calls end up in a single cookie.
const pendingKey = "flash_pending"

// Flash queues a notice to be shown on the next rendered page
func Flash(c *gin.Context, message string) {
	var pending []string
	if v, ok := c.Get(pendingKey); ok {
		pending = v.([]string)
	}
	pending = append(pending, message)
	c.Set(pendingKey, pending)

	encoded, err := json.Marshal(pending)
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.URLEncoding.EncodeToString(encoded),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flashes returns the queued notices from the previous request and
// clears them.
func Flashes(c *gin.Context) []string {
	cookie, err := c.Request.Cookie(flashCookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	decoded, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(decoded, &messages); err != nil {
		return nil
	}
	return messages
}
