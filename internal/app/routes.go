package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rohitgunthal18/pixico-core/internal/middleware"
	"github.com/rohitgunthal18/pixico-core/internal/modules/aggregate"
	"github.com/rohitgunthal18/pixico-core/internal/modules/auth"
	"github.com/rohitgunthal18/pixico-core/internal/modules/contact"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/blog"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/category"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/prompt"
	"github.com/rohitgunthal18/pixico-core/internal/modules/content/sitepage"
	"github.com/rohitgunthal18/pixico-core/internal/modules/profile"
	"github.com/rohitgunthal18/pixico-core/internal/modules/storage/upload"
	"github.com/rohitgunthal18/pixico-core/internal/modules/support"
	"github.com/rohitgunthal18/pixico-core/internal/modules/syndication/manifest"
	"github.com/rohitgunthal18/pixico-core/internal/modules/syndication/sitemap"
	"github.com/rohitgunthal18/pixico-core/internal/modules/system/health"
	pkgredis "github.com/rohitgunthal18/pixico-core/internal/pkg/redis"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/response"
)

const apiPrefix = "/api/v2"

type appInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Homepage string `json:"homepage"`
}

var info = appInfo{
	Name:     "pixico-core",
	Version:  "1.0.0",
	Homepage: "https://github.com/rohitgunthal18/pixico-core",
}

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	gw := a.gw
	adminMW := middleware.AdminAuth(gw)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.Use(middleware.RateLimit(rc.Raw()))

	// Shared services
	categorySvc := category.NewService(gw)
	promptSvc := prompt.NewService(gw, rc)
	blogSvc := blog.NewService(gw)
	sitepageSvc := sitepage.NewService(gw)
	contactSvc := contact.NewService(gw)
	profileSvc := profile.NewService(gw)
	authSvc := auth.NewService(gw)
	supportSvc := support.NewService(a.cfg.Support, a.logger)
	aggregateSvc := aggregate.NewService(gw, categorySvc, a.logger)
	sitemapSvc := sitemap.NewService(gw, a.cfg.WebURL)
	uploadSvc := upload.NewService(a.cfg.Storage)

	// Root-level documents
	root := r.Group("")
	sitemap.NewHandler(sitemapSvc).RegisterRoutes(root)
	manifest.NewHandler().RegisterRoutes(root)

	// Versioned API
	api := r.Group(apiPrefix)
	api.Use(middleware.OptionalAuth(gw))
	api.Use(middleware.HTTPCache(rc.Raw(), middleware.HTTPCacheOptions{
		TTL:     15 * time.Second,
		Disable: a.cfg.IsDev(),
		SkipPaths: []string{
			apiPrefix + "/support/chat",
			apiPrefix + "/admin*",
			apiPrefix + "/auth*",
			apiPrefix + "/health*",
		},
	}))

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, info) })
	api.GET("/info", func(c *gin.Context) { c.PureJSON(http.StatusOK, info) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })

	health.NewHandler(gw, rc, a.sched).RegisterRoutes(api, adminMW)

	category.NewHandler(categorySvc).RegisterRoutes(api, adminMW)
	prompt.NewHandler(promptSvc).RegisterRoutes(api, adminMW)
	blog.NewHandler(blogSvc).RegisterRoutes(api, adminMW)
	sitepage.NewHandler(sitepageSvc).RegisterRoutes(api, adminMW)
	contact.NewHandler(contactSvc).RegisterRoutes(api, adminMW)
	profile.NewHandler(profileSvc).RegisterRoutes(api, adminMW)
	auth.NewHandler(authSvc).RegisterRoutes(api, adminMW)
	support.NewHandler(supportSvc).RegisterRoutes(api)
	aggregate.NewHandler(aggregateSvc).RegisterRoutes(api)
	upload.NewHandler(uploadSvc).RegisterRoutes(api, adminMW)

	// Purging the shared response cache after content mutations.
	adminCache := api.Group("/admin/cache", adminMW)
	adminCache.DELETE("", func(c *gin.Context) {
		deleted, err := middleware.PurgeHTTPCache(c.Request.Context(), rc.Raw())
		if err != nil {
			response.InternalError(c, err)
			return
		}
		response.OK(c, gin.H{"deleted": deleted})
	})
}
