package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"server/config"
	"server/db"
	"server/models"
	"server/storage"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.MYSQL_DSN = ""
	config.SQLITE_FILE = "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	config.TEMPLATES_DIR = "../templates"
	config.UPLOADS_DIR = t.TempDir()
	db.Init()
	models.Init()
	storage.Init()
	return CreateRouter()
}

// client plays the role of one browser: it keeps its session cookie
// between requests.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (cl *client) request(method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range cl.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		replaced := false
		for i, old := range cl.cookies {
			if old.Name == c.Name {
				cl.cookies[i] = c
				replaced = true
			}
		}
		if !replaced {
			cl.cookies = append(cl.cookies, c)
		}
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.request(http.MethodGet, path, "", nil)
}

func (cl *client) post(path string, form url.Values) *httptest.ResponseRecorder {
	return cl.request(http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
}

// signup creates an account and leaves the client logged in.
func (cl *client) signup(name, username string) {
	w := cl.post("/auth/signup/", url.Values{
		"name":     {name},
		"username": {username},
		"password": {"secret"},
	})
	require.Equal(cl.t, http.StatusFound, w.Code, "signup should redirect")
}

func (cl *client) createPost(text string, form url.Values) {
	if form == nil {
		form = url.Values{}
	}
	form.Set("text", text)
	w := cl.post("/create/", form)
	require.Equal(cl.t, http.StatusFound, w.Code, "post creation should redirect")
}

func postCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Post{}).Count(&count).Error)
	return count
}

func followCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Follow{}).Count(&count).Error)
	return count
}

func commentCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.Instance.Model(&models.Comment{}).Count(&count).Error)
	return count
}

func createGroup(t *testing.T, slug, title string) models.Group {
	group := models.Group{Slug: slug, Title: title, Description: title + " description"}
	require.NoError(t, db.Instance.Create(&group).Error)
	return group
}
