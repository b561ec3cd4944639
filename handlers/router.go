package handlers

import (
	"path/filepath"
	"server/auth"
	"server/config"
	"server/db"
	"server/utils"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 365 * 86400 // 1 year
)

// IndexCache holds the rendered global feed for PAGE_CACHE_SECONDS.
// Exposed so tests can Clear() it between cases.
var IndexCache *utils.PageCache

// CreateRouter wires middleware, templates, sessions and all routes.
func CreateRouter() *gin.Engine {
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	// HTML templates
	router.LoadHTMLGlob(filepath.Join(config.TEMPLATES_DIR, "*.tmpl"))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{Path: "/", MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/media/"})))
	}

	// Public pages
	IndexCache = utils.NewPageCache(config.PAGE_CACHE_SECONDS, sessionCookieName)
	router.GET("/", IndexCache.Handler(), PostIndex)
	router.GET("/group/:slug/", GroupPosts)
	router.GET("/profile/:username/", Profile)
	router.GET("/posts/:id/", PostDetail)
	router.GET("/media/*path", MediaFetch)

	// Account pages
	router.GET("/auth/signup/", SignupView)
	router.POST("/auth/signup/", SignupSubmit)
	router.GET(auth.LoginURL, LoginView)
	router.POST(auth.LoginURL, LoginSubmit)
	router.GET("/auth/logout/", Logout)

	// Pages that require a logged-in user
	authRouter := &auth.Router{Base: router}
	authRouter.GET("/create/", PostCreateView)
	authRouter.POST("/create/", PostCreateSubmit)
	authRouter.GET("/posts/:id/edit/", PostEditView)
	authRouter.POST("/posts/:id/edit/", PostEditSubmit)
	authRouter.POST("/posts/:id/comment/", AddComment)
	authRouter.GET("/follow/", FollowIndex)
	authRouter.GET("/profile/:username/follow/", ProfileFollow)
	authRouter.GET("/profile/:username/unfollow/", ProfileUnfollow)

	router.NoRoute(renderNotFound)
	return router
}
