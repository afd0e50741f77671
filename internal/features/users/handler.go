// ================== internal/features/users/handler.go ==================
package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mobidrive/carapi/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account after login/email uniqueness checks
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserRequest true "User registration data"
// @Success 201 {object} User
// @Failure 400 {object} response.ErrorBody
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} User
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, all)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} User
// @Failure 401 {object} response.ErrorBody
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	user, err := h.service.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Update godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body UserRequest true "User update data"
// @Success 200 {object} User
// @Failure 400 {object} response.ErrorBody
// @Router /users/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing fields")
		return
	}

	user, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user and all owned cars
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 401 {object} response.ErrorBody
// @Router /users/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
