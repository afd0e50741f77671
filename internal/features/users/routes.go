// ================== internal/features/users/routes.go ==================
package users

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the user endpoints. All of them sit on the
// auth middleware's public allow-list, including the mutating ones:
// that mirrors the original access policy, questionable as it looks.
func RegisterRoutes(router *gin.Engine, service *Service) {
	handler := NewHandler(service)

	users := router.Group("/users")
	{
		users.GET("", handler.List)
		users.POST("", handler.Register)
		users.GET("/:id", handler.Get)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}
