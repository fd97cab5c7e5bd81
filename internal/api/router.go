package api

import (
	"github.com/RealCheck/RealCheck-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()

	// add cors middleware
	r.Use(middleware.CORSMiddleware())

	// health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "RealCheck backend is running",
		})
	})

	// initialize handler
	userHandler := NewUserHandler()
	newsHandler := NewNewsHandler()
	commentHandler := NewCommentHandler()
	adminHandler := NewAdminHandler()
	uploadHandler := NewUploadHandler()

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", userHandler.Register)
			auth.POST("/login", userHandler.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), userHandler.Logout)
			auth.GET("/check-username", userHandler.CheckUsername)
			auth.GET("/check-email", userHandler.CheckEmail)
		}

		// user routes
		user := v1.Group("/user")
		user.Use(middleware.AuthMiddleware())
		{
			user.GET("/profile", userHandler.GetProfile)
		}

		// news routes
		news := v1.Group("/news")
		{
			// 公开路由：带合法 token 的管理员能看到 removed 的内容，
			// 匿名和普通用户看不到
			news.GET("", middleware.OptionalAuthMiddleware(), newsHandler.GetNews)
			news.GET("/removed", middleware.AuthMiddleware(), middleware.RequireAdmin(), newsHandler.GetRemovedNews)
			news.GET("/:id", middleware.OptionalAuthMiddleware(), newsHandler.GetNewsByID)
			news.GET("/:id/comments", middleware.OptionalAuthMiddleware(), commentHandler.GetComments)
			news.GET("/:id/comments/summary", middleware.OptionalAuthMiddleware(), commentHandler.GetSummary)

			// 需要身份验证的路由
			authNews := news.Group("")
			authNews.Use(middleware.AuthMiddleware())
			{
				authNews.POST("", middleware.RequireMemberOrAdmin(), newsHandler.CreateNews)
				authNews.POST("/:id/comments", middleware.RequireAnyRole(), commentHandler.AddComment)
				authNews.DELETE("/:id", middleware.RequireAdmin(), newsHandler.DeleteNews)
				authNews.DELETE("/:id/comments/:commentId", middleware.RequireAdmin(), commentHandler.DeleteComment)
			}
		}

		// upload routes
		upload := v1.Group("/upload")
		upload.Use(middleware.AuthMiddleware())
		{
			upload.POST("/image", uploadHandler.UploadImage)
		}

		// admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.GetUsers)
			admin.PUT("/users/:id/promote", adminHandler.PromoteUser)
			admin.PUT("/users/:id/demote", adminHandler.DemoteUser)
			admin.GET("/stats", adminHandler.GetStats)
		}
	}

	return r
}
