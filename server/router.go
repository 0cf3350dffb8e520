package server

import (
	"github.com/gin-gonic/gin"
	"github.com/lumibond/corkboard/server/api"
)

// RegisterRoutes wires every API route onto the given engine. Status codes
// and payload shapes are the public contract; see the handler doc comments
// for the per-route auth requirements.
func RegisterRoutes(router *gin.Engine, a *api.API) {
	auth := router.Group("/auth")
	auth.POST("/signup", a.SignUp)
	auth.POST("/signin", a.SignIn)

	posts := router.Group("/posts")
	posts.GET("", a.ListPosts)
	posts.POST("", a.CreatePost)
	posts.GET("/:id", a.GetPost)
	posts.PATCH("/:id", a.UpdatePost)
	posts.DELETE("/:id", a.DeletePost)

	posts.GET("/:id/comments", a.ListComments)
	posts.POST("/:id/comments", a.CreateComment)
	posts.PATCH("/:id/comments/:commentId", a.UpdateComment)
	posts.DELETE("/:id/comments/:commentId", a.DeleteComment)

	posts.POST("/:id/likes", a.LikePost)
	posts.DELETE("/:id/likes", a.UnlikePost)
}
