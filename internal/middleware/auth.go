// ================== internal/middleware/auth.go ==================
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mobidrive/carapi/internal/pkg/response"
	"github.com/mobidrive/carapi/internal/pkg/token"
)

// Context keys under which the authenticated principal is published
// for the lifetime of one request.
const (
	CtxUserID = "userID"
	CtxLogin  = "login"
)

// Principal is the resolved identity of the caller.
type Principal struct {
	UserID string
	Login  string
}

// UserDirectory resolves a token subject to a live user. A (nil, nil)
// return means the subject no longer exists.
type UserDirectory interface {
	FindByLogin(ctx context.Context, login string) (*Principal, error)
}

// publicRoute is a method+path pair that may be reached without a
// token. Presence on this list does not exempt a request from token
// validation: a request carrying an invalid token is rejected even on
// a public route.
type publicRoute struct {
	method string
	path   string
}

var publicRoutes = []publicRoute{
	{"POST", "/signin"},
	{"GET", "/users"},
	{"POST", "/users"},
	{"GET", "/users/:id"},
	{"PUT", "/users/:id"},
	{"DELETE", "/users/:id"},
}

func isPublic(method, path string) bool {
	for _, r := range publicRoutes {
		if r.method != method {
			continue
		}
		if matchPath(r.path, path) {
			return true
		}
	}
	return false
}

// matchPath compares a registered pattern against a concrete URL path.
// ":x" segments match exactly one non-empty segment.
func matchPath(pattern, path string) bool {
	p := strings.Split(strings.Trim(pattern, "/"), "/")
	u := strings.Split(strings.Trim(path, "/"), "/")
	if len(p) != len(u) {
		return false
	}
	for i := range p {
		if strings.HasPrefix(p[i], ":") {
			if u[i] == "" {
				return false
			}
			continue
		}
		if p[i] != u[i] {
			return false
		}
	}
	return true
}

// Auth authenticates every inbound request. Requests without a token
// pass through only on the public allow-list; any present token must
// verify and its subject must still resolve to a user. Rejections are
// terminal: the middleware writes the 401 body itself and aborts.
func Auth(codec *token.Codec, users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := token.ExtractFromRequest(c.Request)
		if raw == "" {
			if isPublic(c.Request.Method, c.Request.URL.Path) {
				c.Next()
				return
			}
			response.Unauthorized(c, "Unauthorized")
			return
		}

		login, err := codec.Verify(raw)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			return
		}

		principal, err := users.FindByLogin(c.Request.Context(), login)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			return
		}
		if principal == nil {
			response.Unauthorized(c, "Unauthorized - invalid session")
			return
		}

		c.Set(CtxUserID, principal.UserID)
		c.Set(CtxLogin, principal.Login)
		c.Next()
	}
}
