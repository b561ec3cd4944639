package handlers

import (
	"bytes"
	"log"
	"net/http"
	"path/filepath"
	"server/auth"
	"server/db"
	"server/models"
	"server/storage"
	"server/utils"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const thumbSize = 1280

func postsQuery() *gorm.DB {
	return db.Instance.Model(&models.Post{}).
		Preload("User").
		Preload("Group").
		Order("posts.created_at DESC, posts.id DESC")
}

// PostIndex is the global feed - every post, newest first.
func PostIndex(c *gin.Context) {
	page, err := utils.Paginate[models.Post](postsQuery(), c.Query("page"))
	if err != nil {
		renderDBError(c)
		return
	}
	render(c, http.StatusOK, "index.tmpl", gin.H{"page": page})
}

// GroupPosts lists the posts of a single group.
func GroupPosts(c *gin.Context) {
	group, err := models.GroupBySlug(c.Param("slug"))
	if err != nil {
		renderNotFound(c)
		return
	}
	page, err := utils.Paginate[models.Post](postsQuery().Where("posts.group_id = ?", group.ID), c.Query("page"))
	if err != nil {
		renderDBError(c)
		return
	}
	render(c, http.StatusOK, "group_list.tmpl", gin.H{"page": page, "group": group})
}

// Profile lists one author's posts and whether the requester follows them.
func Profile(c *gin.Context) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		renderNotFound(c)
		return
	}
	page, err := utils.Paginate[models.Post](postsQuery().Where("posts.user_id = ?", author.ID), c.Query("page"))
	if err != nil {
		renderDBError(c)
		return
	}
	session := auth.LoadSession(c)
	following := models.IsFollowing(session.UserID(), author.ID)
	render(c, http.StatusOK, "profile.tmpl", gin.H{
		"page":      page,
		"author":    author,
		"following": following,
	})
}

func loadPost(c *gin.Context) (post models.Post, ok bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		renderNotFound(c)
		return post, false
	}
	err = db.Instance.Preload("User").Preload("Group").First(&post, id).Error
	if err != nil {
		renderNotFound(c)
		return post, false
	}
	return post, true
}

func renderPostDetail(c *gin.Context, post models.Post, commentError string) {
	var comments []models.Comment
	if db.Instance.Preload("User").
		Where("post_id = ?", post.ID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error != nil {
		renderDBError(c)
		return
	}
	render(c, http.StatusOK, "post_detail.tmpl", gin.H{
		"post":         post,
		"comments":     comments,
		"commentError": commentError,
	})
}

// PostDetail shows one post with its comments and the comment form.
func PostDetail(c *gin.Context) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	renderPostDetail(c, post, "")
}

func allGroups() (groups []models.Group) {
	db.Instance.Order("title ASC").Find(&groups)
	return
}

func renderPostForm(c *gin.Context, isEdit bool, post *models.Post, formError string) {
	data := gin.H{
		"is_edit": isEdit,
		"groups":  allGroups(),
		"error":   formError,
	}
	if post != nil {
		data["post"] = post
	}
	render(c, http.StatusOK, "create_post.tmpl", data)
}

// parsePostForm validates the shared create/edit form fields.
func parsePostForm(c *gin.Context) (text string, groupID *uint64, formError string) {
	text = strings.TrimSpace(c.PostForm("text"))
	if text == "" {
		return "", nil, "Text is required"
	}
	groupParam := c.PostForm("group")
	if groupParam == "" {
		return text, nil, ""
	}
	id, err := strconv.ParseUint(groupParam, 10, 64)
	if err != nil {
		return "", nil, "Unknown group"
	}
	var group models.Group
	if db.Instance.First(&group, id).Error != nil {
		return "", nil, "Unknown group"
	}
	return text, &group.ID, ""
}

// savePostImage stores an uploaded image (if any) in the default bucket
// under a random name and generates the JPEG thumbnail the list pages show.
// Returns empty strings when the form carried no image; thumb stays empty
// when thumbnail creation fails.
func savePostImage(c *gin.Context) (image, thumb string, err error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", "", nil
	}
	reader, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer reader.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	path := "media/" + name
	st := storage.GetDefaultStorage()
	if _, err = st.Save(path, reader); err != nil {
		return "", "", err
	}
	if err = st.UpdateFile(path, file.Header.Get("Content-Type")); err != nil {
		return "", "", err
	}
	// Thumbnail failures are logged but don't fail the upload
	var buf, thumbBuf bytes.Buffer
	if _, err := st.Load(path, &buf); err == nil {
		if _, err = utils.CreateThumb(thumbSize, &buf, &thumbBuf); err == nil {
			thumbPath := "media/thumb_" + name
			if _, err = st.Save(thumbPath, &thumbBuf); err == nil {
				if st.UpdateFile(thumbPath, "image/jpeg") == nil {
					thumb = thumbPath
				}
			}
		} else {
			log.Printf("Cannot create thumbnail for %s: %v", path, err)
		}
	}
	return path, thumb, nil
}

// PostCreateView renders the empty post form.
func PostCreateView(c *gin.Context, user *models.User) {
	renderPostForm(c, false, nil, "")
}

// PostCreateSubmit creates a post for the logged-in user and sends them
// to their own profile.
func PostCreateSubmit(c *gin.Context, user *models.User) {
	text, groupID, formError := parsePostForm(c)
	if formError != "" {
		renderPostForm(c, false, nil, formError)
		return
	}
	image, thumb, err := savePostImage(c)
	if err != nil {
		renderPostForm(c, false, nil, "Cannot save image")
		return
	}
	post := models.Post{
		UserID:  user.ID,
		GroupID: groupID,
		Text:    text,
		Image:   image,
		Thumb:   thumb,
	}
	if db.Instance.Create(&post).Error != nil {
		renderDBError(c)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

// PostEditView renders the edit form. Non-authors never see it - they are
// sent back to the post instead.
func PostEditView(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(post.ID, 10)+"/")
		return
	}
	renderPostForm(c, true, &post, "")
}

// PostEditSubmit updates text/group/image in place, keeping id, author and
// creation time. Non-authors are silently redirected to the post.
func PostEditSubmit(c *gin.Context, user *models.User) {
	post, ok := loadPost(c)
	if !ok {
		return
	}
	detailURL := "/posts/" + strconv.FormatUint(post.ID, 10) + "/"
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, detailURL)
		return
	}
	text, groupID, formError := parsePostForm(c)
	if formError != "" {
		renderPostForm(c, true, &post, formError)
		return
	}
	image, thumb, err := savePostImage(c)
	if err != nil {
		renderPostForm(c, true, &post, "Cannot save image")
		return
	}
	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
		post.Thumb = thumb
	}
	if db.Instance.Model(&post).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
		"thumb":    post.Thumb,
	}).Error != nil {
		renderDBError(c)
		return
	}
	c.Redirect(http.StatusFound, detailURL)
}
