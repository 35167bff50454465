// Package routes wires controllers to URL paths
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sujeet/alumnisphere/internal/app/controllers"
	"github.com/sujeet/alumnisphere/internal/app/models"
	"github.com/sujeet/alumnisphere/internal/middleware"
)

// Controllers groups every controller the router needs
type Controllers struct {
	Auth     *controllers.AuthController
	College  *controllers.CollegeController
	User     *controllers.UserController
	Post     *controllers.PostController
	Event    *controllers.EventController
	Donation *controllers.DonationController
	Admin    *controllers.AdminController
}

// Register attaches all API routes under /api/v1. Three access tiers exist:
// public, authenticated, and admin; event reads use optional authentication
// so anonymous visitors can browse a college's events.
func Register(router *gin.Engine, c *Controllers, authMW *middleware.AuthMiddleware) {
	v1 := router.Group("/api/v1")

	// Public endpoints
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
		auth.POST("/logout", authMW.JWTAuth(), c.Auth.Logout)
		auth.GET("/me", authMW.JWTAuth(), c.Auth.Me)
	}

	colleges := v1.Group("/colleges")
	{
		colleges.POST("/register", c.College.Register)
		colleges.GET("", c.College.List)
		colleges.GET("/:id", c.College.Get)
		colleges.GET("/:id/donations", authMW.JWTAuth(), c.College.ListDonations)
	}

	// Event reads are public with optional identity for the isAttending flag
	events := v1.Group("/events")
	{
		events.GET("", authMW.OptionalJWTAuth(), c.Event.List)
		events.GET("/:id", authMW.OptionalJWTAuth(), c.Event.Get)

		events.POST("", authMW.JWTAuth(), c.Event.Create)
		events.PUT("/:id", authMW.JWTAuth(), c.Event.Update)
		events.DELETE("/:id", authMW.JWTAuth(), c.Event.Delete)
		events.POST("/:id/join", authMW.JWTAuth(), c.Event.Join)
		events.DELETE("/:id/join", authMW.JWTAuth(), c.Event.Leave)
		events.GET("/:id/attendees", authMW.JWTAuth(), c.Event.ListAttendees)
	}

	// Authenticated endpoints
	v1.GET("/search/users", authMW.JWTAuth(), c.User.Search)

	users := v1.Group("/users", authMW.JWTAuth())
	{
		users.GET("/:id", c.User.GetProfile)
		users.PUT("/me", c.User.UpdateProfile)
		users.PUT("/me/picture", c.User.UpdateProfilePicture)
		users.POST("/:id/follow", c.User.Follow)
		users.DELETE("/:id/follow", c.User.Unfollow)
		users.GET("/:id/followers", c.User.ListFollowers)
		users.GET("/:id/following", c.User.ListFollowing)
	}

	posts := v1.Group("/posts", authMW.JWTAuth())
	{
		posts.POST("", c.Post.Create)
		posts.GET("", c.Post.List)
		posts.GET("/:id", c.Post.Get)
		posts.PUT("/:id", c.Post.Update)
		posts.DELETE("/:id", c.Post.Delete)
		posts.POST("/:id/like", c.Post.Like)
		posts.DELETE("/:id/like", c.Post.Unlike)
		posts.POST("/:id/comments", c.Post.CreateComment)
		posts.GET("/:id/comments", c.Post.ListComments)
	}

	comments := v1.Group("/comments", authMW.JWTAuth())
	{
		comments.DELETE("/:id", c.Post.DeleteComment)
	}

	donations := v1.Group("/donations", authMW.JWTAuth())
	{
		donations.POST("", c.Donation.Create)
		donations.POST("/:id/confirm", c.Donation.Confirm)
		donations.GET("/me", c.Donation.ListMine)
	}

	// Admin endpoints
	admin := v1.Group("/admin", authMW.JWTAuth(), authMW.RolesRequired(models.RoleAdmin, models.RoleSuperAdmin))
	{
		admin.POST("/users", c.Admin.CreateUser)
		admin.GET("/users", c.Admin.ListUsers)
		admin.GET("/users/:id", c.Admin.GetUser)
		admin.PUT("/users/:id/status", c.Admin.UpdateUserStatus)
		admin.DELETE("/users/:id", c.Admin.RemoveUser)
		admin.DELETE("/events/:id", c.Admin.DeleteEvent)
	}
}
