package utils

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	cmap "github.com/orcaman/concurrent-map/v2"
)

const CacheNoCache = 0

type cachedPage struct {
	body        []byte
	contentType string
	status      int
	expiresAt   int64
}

// PageCache stores fully rendered responses for CacheTime seconds, keyed by
// request path + query + the VaryCookie value. Pages embed the visitor's
// session state (login chrome), so each session gets its own copy - one
// visitor's page must never be served to another. Entries expire only by
// TTL - a write to the underlying tables does not invalidate them.
type PageCache struct {
	CacheTime  int    // seconds, CacheNoCache disables storing and only sets the no-cache header
	VaryCookie string // session cookie name that splits the cache per visitor
	pages      cmap.ConcurrentMap[string, cachedPage]
}

func NewPageCache(cacheTime int, varyCookie string) *PageCache {
	return &PageCache{
		CacheTime:  cacheTime,
		VaryCookie: varyCookie,
		pages:      cmap.New[cachedPage](),
	}
}

type pageCacheWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *pageCacheWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *pageCacheWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (pc *PageCache) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if pc.CacheTime == CacheNoCache || c.Request.Method != http.MethodGet {
			c.Header("cache-control", "no-cache")
			c.Next()
			return
		}
		key := c.Request.URL.Path + "?" + c.Request.URL.RawQuery
		if pc.VaryCookie != "" {
			if cookie, err := c.Cookie(pc.VaryCookie); err == nil {
				key += "|" + cookie
			}
		}
		if page, ok := pc.pages.Get(key); ok {
			if page.expiresAt > time.Now().Unix() {
				c.Header("cache-control", "private, max-age="+strconv.Itoa(pc.CacheTime))
				c.Data(page.status, page.contentType, page.body)
				c.Abort()
				return
			}
			pc.pages.Remove(key)
		}
		writer := &pageCacheWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = writer
		c.Header("cache-control", "private, max-age="+strconv.Itoa(pc.CacheTime))
		c.Next()
		c.Writer = writer.ResponseWriter
		if writer.Status() < 400 {
			pc.pages.Set(key, cachedPage{
				body:        writer.buf.Bytes(),
				contentType: writer.Header().Get("Content-Type"),
				status:      writer.Status(),
				expiresAt:   time.Now().Unix() + int64(pc.CacheTime),
			})
		}
	}
}

// Clear drops all cached pages (used between tests)
func (pc *PageCache) Clear() {
	pc.pages.Clear()
}
