package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the fixed informational pages.
type PageController struct{}

func NewPageController() *PageController { return &PageController{} }

func (ctl *PageController) About(c *gin.Context) {
	render(c, http.StatusOK, "about.html", "About", nil)
}

func (ctl *PageController) Contact(c *gin.Context) {
	render(c, http.StatusOK, "contact.html", "Contact", nil)
}

func (ctl *PageController) Terms(c *gin.Context) {
	render(c, http.StatusOK, "terms.html", "Terms and Privacy", nil)
}

// NotFound is the boundary for unmatched routes.
func (ctl *PageController) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", "Not found", nil)
}
