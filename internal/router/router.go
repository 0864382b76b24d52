package router

import (
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/handlers"
	"github.com/kathir-sudo/CodeAlpha-Social-Media-Platform/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full API surface under /api.
func RegisterRoutes(r *gin.Engine) {
	authHandler := handlers.NewAuthHandler()
	userHandler := handlers.NewUserHandler()
	postHandler := handlers.NewPostHandler()
	messageHandler := handlers.NewMessageHandler()
	notificationHandler := handlers.NewNotificationHandler()
	searchHandler := handlers.NewSearchHandler()
	trendingHandler := handlers.NewTrendingHandler()
	adminHandler := handlers.NewAdminHandler()

	followLimiter := middleware.FollowLimiter().Middleware()

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/reset", authHandler.ResetPassword)
	}

	// Protected routes
	users := api.Group("/users")
	users.Use(middleware.AuthRequired())
	{
		users.GET("/search", userHandler.Search)
		users.GET("/profile", userHandler.Profile)
		users.PUT("/profile", userHandler.UpdateProfile)

		users.GET("/requests", userHandler.Requests)
		users.PUT("/requests/:requesterId/approve", userHandler.ApproveRequest)
		users.PUT("/requests/:requesterId/deny", userHandler.DenyRequest)

		users.GET("/:id", userHandler.GetByID)
		users.PUT("/:id/follow", followLimiter, userHandler.Follow)
		users.PUT("/:id/unfollow", followLimiter, userHandler.Unfollow)
		users.PUT("/:id/cancelrequest", followLimiter, userHandler.CancelRequest)
		users.PUT("/:id/mute", userHandler.ToggleMute)
		users.PUT("/:id/notifications", userHandler.ToggleNotifications)
	}

	posts := api.Group("/posts")
	posts.Use(middleware.AuthRequired())
	{
		posts.POST("", postHandler.Create)
		posts.GET("/feed", postHandler.Feed)
		posts.GET("/user/:userId", postHandler.UserPosts)
		posts.PUT("/:id", postHandler.Update)
		posts.DELETE("/:id", postHandler.Delete)
		posts.PUT("/:id/like", postHandler.ToggleLike)
		posts.POST("/:id/comments", postHandler.AddComment)
		posts.GET("/:id/comments", postHandler.Comments)
		posts.PUT("/comment/:id", postHandler.UpdateComment)
		posts.DELETE("/comment/:id", postHandler.DeleteComment)
		posts.PUT("/comment/:id/like", postHandler.ToggleLikeComment)
	}

	messages := api.Group("/messages")
	messages.Use(middleware.AuthRequired())
	{
		messages.POST("", messageHandler.Send)
		messages.GET("/conversations", messageHandler.Conversations)
		messages.GET("/:userId", messageHandler.ChatMessages)
		messages.PUT("/:userId/read", messageHandler.MarkRead)
	}

	notifications := api.Group("/notifications")
	notifications.Use(middleware.AuthRequired())
	{
		notifications.GET("", notificationHandler.List)
		notifications.PUT("/read", notificationHandler.MarkAllRead)
	}

	search := api.Group("/search")
	search.Use(middleware.AuthRequired())
	{
		search.GET("", searchHandler.Search)
		search.GET("/users", searchHandler.AllUsers)
		search.GET("/posts", searchHandler.AllPosts)
	}

	api.GET("/trending", middleware.AuthRequired(), trendingHandler.Get)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/posts", adminHandler.ListPosts)
		admin.DELETE("/posts/:id", adminHandler.DeletePost)
		admin.DELETE("/users/:id", adminHandler.DeleteUser)
	}
}
