// ================== internal/features/cars/routes.go ==================
package cars

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the car endpoints. None of them is on the
// public allow-list, so the global auth middleware guarantees a
// principal before any handler here runs.
func RegisterRoutes(router *gin.Engine, service *Service) {
	handler := NewHandler(service)

	carGroup := router.Group("/cars")
	{
		carGroup.POST("", handler.Register)
		carGroup.GET("", handler.List)
		carGroup.GET("/:id", handler.Get)
		carGroup.PUT("/:id", handler.Update)
		carGroup.DELETE("/:id", handler.Delete)
	}
}
