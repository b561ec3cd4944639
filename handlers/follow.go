package handlers

import (
	"errors"
	"net/http"
	"server/models"
	"server/utils"

	"github.com/gin-gonic/gin"
)

// FollowIndex lists posts by every author the user follows.
func FollowIndex(c *gin.Context, user *models.User) {
	query := postsQuery().
		Joins("join follows on follows.author_id = posts.user_id").
		Where("follows.user_id = ?", user.ID)
	page, err := utils.Paginate[models.Post](query, c.Query("page"))
	if err != nil {
		renderDBError(c)
		return
	}
	render(c, http.StatusOK, "follow.tmpl", gin.H{"page": page})
}

// ProfileFollow adds a follow edge. Following yourself or someone you
// already follow changes nothing - either way you end up back on the
// profile page.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		renderNotFound(c)
		return
	}
	if err = models.FollowCreate(user.ID, author.ID); err != nil && !errors.Is(err, models.ErrSelfFollow) {
		renderDBError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// ProfileUnfollow removes the follow edge if present.
func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		renderNotFound(c)
		return
	}
	if models.FollowDelete(user.ID, author.ID) != nil {
		renderDBError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
