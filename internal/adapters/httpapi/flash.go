package httpapi

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "blog_flash"

// setFlash stores a one-shot notice to show on the next rendered page.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

// takeFlash returns the pending notice, if any, and clears it.
func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}
