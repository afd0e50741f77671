// ================== internal/features/cars/handler.go ==================
package cars

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mobidrive/carapi/internal/middleware"
	"github.com/mobidrive/carapi/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new car
// @Description Create a car owned by the authenticated user
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CarRequest true "Car registration data"
// @Success 201 {object} Car
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /cars [post]
func (h *Handler) Register(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserID)

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	car, err := h.service.Register(c.Request.Context(), &req, ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, car)
}

// List godoc
// @Summary List the authenticated user's cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Car
// @Failure 401 {object} response.ErrorBody
// @Router /cars [get]
func (h *Handler) List(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserID)

	result, err := h.service.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary Get one of the authenticated user's cars
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} Car
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /cars/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserID)

	car, err := h.service.GetOwned(c.Request.Context(), c.Param("id"), ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// Update godoc
// @Summary Update one of the authenticated user's cars
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body CarRequest true "Car update data"
// @Success 200 {object} Car
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /cars/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserID)

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	car, err := h.service.Update(c.Request.Context(), c.Param("id"), &req, ownerID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, car)
}

// Delete godoc
// @Summary Delete one of the authenticated user's cars
// @Tags cars
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204
// @Failure 404 {object} response.ErrorBody
// @Router /cars/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	ownerID := c.GetString(middleware.CtxUserID)

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), ownerID); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
