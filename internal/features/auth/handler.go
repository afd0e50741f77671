// ================== internal/features/auth/handler.go ==================
package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/mobidrive/carapi/internal/features/users"
	"github.com/mobidrive/carapi/internal/middleware"
	"github.com/mobidrive/carapi/internal/pkg/response"
	"github.com/mobidrive/carapi/internal/pkg/token"
	apperrors "github.com/mobidrive/carapi/pkg/errors"
)

// UserService is what the sign-in flow needs from the users feature.
// *users.Service satisfies it; tests plug in a fake.
type UserService interface {
	FindByLogin(ctx context.Context, login string) (*users.User, error)
	FindByMe(ctx context.Context, login string) (*users.User, error)
	UpdateLastLogin(ctx context.Context, user *users.User) error
}

type Handler struct {
	users UserService
	codec *token.Codec
}

func NewHandler(userService UserService, codec *token.Codec) *Handler {
	return &Handler{users: userService, codec: codec}
}

// SignIn godoc
// @Summary Authenticate with login and password
// @Description Verifies credentials, refreshes the last-login
// @Description timestamp and returns the profile plus a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} SigninResponse
// @Failure 401 {object} response.ErrorBody
// @Router /signin [post]
func (h *Handler) SignIn(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Unauthorized(c, "Invalid login or password")
		return
	}

	user, err := h.users.FindByLogin(c.Request.Context(), req.Login)
	if err != nil {
		response.FromError(c, err)
		return
	}
	if user == nil {
		response.Unauthorized(c, "Invalid login or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		response.Unauthorized(c, "Invalid login or password")
		return
	}

	signed, err := h.codec.Issue(user.Login)
	if err != nil {
		response.FromError(c, apperrors.Internal("Failed to generate token", err))
		return
	}

	if err := h.users.UpdateLastLogin(c.Request.Context(), user); err != nil {
		response.FromError(c, err)
		return
	}

	profile, err := h.users.FindByMe(c.Request.Context(), user.Login)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, SigninResponse{User: profile, Token: signed})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.User
// @Failure 401 {object} response.ErrorBody
// @Router /me [get]
func (h *Handler) Me(c *gin.Context) {
	login := c.GetString(middleware.CtxLogin)

	profile, err := h.users.FindByMe(c.Request.Context(), login)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
