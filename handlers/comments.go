package handlers

import (
	"net/http"
	"server/db"
	"server/models"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// AddComment attaches a comment to a post. Empty text re-renders the
// detail page with a field error and persists nothing.
func AddComment(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	text := strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		renderPostDetail(c, post, "Text is required")
		return
	}
	comment := models.Comment{
		UserID: user.ID,
		PostID: post.ID,
		Text:   text,
	}
	if db.Instance.Create(&comment).Error != nil {
		renderDBError(c)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
}
