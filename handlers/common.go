package handlers

import (
	"net/http"
	"server/auth"

	"github.com/gin-gonic/gin"
)

// render adds the current user to the template context so the navigation
// can show login state on every page.
func render(c *gin.Context, code int, template string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["title"]; !ok {
		data["title"] = "Blogicum"
	}
	session := auth.LoadSession(c)
	data["user"] = session.User()
	c.HTML(code, template, data)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.tmpl", nil)
}

func renderDBError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "DB Error")
}
