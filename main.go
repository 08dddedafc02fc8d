package main

import (
	"log"
	"strings"
	"time"

	"flipbook/access"
	"flipbook/config"
	"flipbook/db"
	"flipbook/email"
	"flipbook/handlers"
	"flipbook/models"
	"flipbook/payments"
	"flipbook/uploads"
	"flipbook/utils"
	"flipbook/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	db.Init()
	models.Init()
	payments.Init()
	email.Init()
	uploads.Init()

	if !config.DEBUG_MODE {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}
	router.Use((&utils.CacheRouter{CacheTime: utils.CacheNoCache}).Handler()) // No cache by default

	// Checkout
	router.POST("/checkout/session", handlers.CheckoutCreate)
	router.POST("/checkout/notification", handlers.CheckoutNotification)

	// Public flipbook viewer
	router.GET("/flipbook/:slug", web.AlbumView)

	// Token-gated album API
	accessRouter := &access.Router{Base: router}
	accessRouter.GET("/album/:slug/admin", handlers.AlbumDashboard, access.Admin)
	accessRouter.PATCH("/album/:slug/settings", handlers.AlbumSettingsSave, access.Admin)
	accessRouter.GET("/album/:slug/upload-config", handlers.UploadConfig, access.Guest)
	accessRouter.GET("/album/:slug/upload-url", handlers.UploadNewURL, access.Guest)
	accessRouter.POST("/album/:slug/photos", handlers.PhotoUpload, access.Guest)
	accessRouter.DELETE("/album/:slug/photos/:id", handlers.PhotoDelete, access.Guest)
	accessRouter.POST("/album/:slug/photos/reorder", handlers.PhotoReorder, access.Admin)
	accessRouter.POST("/album/:slug/invites", handlers.InviteCreate, access.Admin)
	accessRouter.GET("/album/:slug/invites", handlers.InviteList, access.Admin)
	accessRouter.POST("/album/:slug/invites/:id", handlers.InviteUpdate, access.Admin)
	accessRouter.POST("/album/:slug/invites/:id/revoke", handlers.InviteRevoke, access.Admin)

	// Misc
	router.GET("/robots.txt", web.DisallowRobots)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
