package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/mobidrive/carapi/internal/pkg/token"
)

// RegisterRoutes mounts sign-in (public) and /me (requires a
// principal, enforced by the global auth middleware).
func RegisterRoutes(router *gin.Engine, userService UserService, codec *token.Codec) {
	handler := NewHandler(userService, codec)

	router.POST("/signin", handler.SignIn)
	router.GET("/me", handler.Me)
}
