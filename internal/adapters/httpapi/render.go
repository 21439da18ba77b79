package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Bishopxxx/Bishop-blog/internal/adapters/httpapi/middleware"
)

// render executes a page template with the fields every view expects: the
// page title, the current user for the navbar, and any pending flash notice.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if _, ok := data["User"]; !ok {
		data["User"] = middleware.CurrentUser(c)
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = takeFlash(c)
	}
	c.HTML(status, name, data)
}
