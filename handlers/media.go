package handlers

import (
	"server/storage"
	"strings"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves uploaded post images through the storage layer so that
// S3-backed buckets work the same as disk ones.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("path"), "/")
	if path == "" || strings.Contains(path, "..") {
		renderNotFound(c)
		return
	}
	st := storage.GetDefaultStorage()
	if st.EnsureLocalFile("media/"+path) != nil {
		renderNotFound(c)
		return
	}
	st.Serve("media/"+path, c.Request, c.Writer)
}
