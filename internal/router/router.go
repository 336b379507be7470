// Package router 路由注册与中间件装配
package router

import (
	"net/http"

	"github.com/sdkthunder/site-api/internal/http/handlers/admin"
	"github.com/sdkthunder/site-api/internal/http/handlers/public"
	"github.com/sdkthunder/site-api/internal/logger"
	"github.com/sdkthunder/site-api/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// New 构建 HTTP 引擎并注册全部路由
func New(container *provider.Container) *gin.Engine {
	if container.Cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.Z()))
	r.Use(CORSMiddleware(container.Cfg.CORS))
	r.Use(GateMiddleware(container.Auth))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	adminHandler := admin.New(container)
	publicHandler := public.New(container)

	var redisClient *redis.Client
	if container.Cache != nil {
		redisClient = container.Cache.Client()
	}

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			loginLimit := RateLimitMiddleware(redisClient, RateLimitRule{
				Prefix:        "ratelimit:login",
				WindowSeconds: container.Cfg.Security.LoginRateLimit.WindowSeconds,
				MaxRequests:   container.Cfg.Security.LoginRateLimit.MaxAttempts,
			}, KeyByIPAndJSONField("email"))

			auth.POST("/login", loginLimit, adminHandler.Login)
			auth.GET("/session", adminHandler.Session)
			auth.POST("/session", adminHandler.Session)
			auth.GET("/captcha", adminHandler.CaptchaChallenge)
		}

		api.GET("/news", publicHandler.ListNews)
		api.GET("/news/:id", publicHandler.GetNews)
		api.POST("/news/:id/view", publicHandler.IncrementNewsViews)
		api.GET("/partners", publicHandler.ListPartners)
		api.GET("/gallery", publicHandler.ListGallery)
		api.GET("/calendar", publicHandler.ListCalendar)
		api.GET("/about/stats", publicHandler.ListAboutStats)
		api.GET("/about/values", publicHandler.ListAboutValues)

		adminAPI := api.Group("/admin", JWTAuthMiddleware(container.Auth))
		{
			adminAPI.GET("/news", adminHandler.ListNews)
			adminAPI.POST("/news", adminHandler.CreateNews)
			adminAPI.GET("/news/:id", adminHandler.GetNews)
			adminAPI.PATCH("/news/:id", adminHandler.UpdateNews)
			adminAPI.DELETE("/news/:id", adminHandler.DeleteNews)

			adminAPI.GET("/partners", adminHandler.ListPartners)
			adminAPI.POST("/partners", adminHandler.CreatePartner)
			adminAPI.GET("/partners/:id", adminHandler.GetPartner)
			adminAPI.PATCH("/partners/:id", adminHandler.UpdatePartner)
			adminAPI.DELETE("/partners/:id", adminHandler.DeletePartner)

			adminAPI.GET("/gallery", adminHandler.ListGallery)
			adminAPI.POST("/gallery", adminHandler.CreateGalleryItem)
			adminAPI.GET("/gallery/:id", adminHandler.GetGalleryItem)
			adminAPI.PATCH("/gallery/:id", adminHandler.UpdateGalleryItem)
			adminAPI.DELETE("/gallery/:id", adminHandler.DeleteGalleryItem)

			adminAPI.GET("/calendar", adminHandler.ListCalendar)
			adminAPI.POST("/calendar", adminHandler.CreateCalendarEvent)
			adminAPI.GET("/calendar/:id", adminHandler.GetCalendarEvent)
			adminAPI.PUT("/calendar/:id", adminHandler.ReplaceCalendarEvent)
			adminAPI.DELETE("/calendar/:id", adminHandler.DeleteCalendarEvent)

			adminAPI.GET("/about/stats", adminHandler.ListAboutStats)
			adminAPI.POST("/about/stats", adminHandler.CreateAboutStat)
			adminAPI.GET("/about/stats/:id", adminHandler.GetAboutStat)
			adminAPI.PATCH("/about/stats/:id", adminHandler.UpdateAboutStat)
			adminAPI.DELETE("/about/stats/:id", adminHandler.DeleteAboutStat)

			adminAPI.GET("/about/values", adminHandler.ListAboutValues)
			adminAPI.POST("/about/values", adminHandler.CreateAboutValue)
			adminAPI.GET("/about/values/:id", adminHandler.GetAboutValue)
			adminAPI.PATCH("/about/values/:id", adminHandler.UpdateAboutValue)
			adminAPI.DELETE("/about/values/:id", adminHandler.DeleteAboutValue)
		}
	}

	return r
}
