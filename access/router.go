package access

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Caller resolved to at least the required role for the album in the path
type HandlerFunc func(c *gin.Context, acc Access)

// Router is a wrapper class that adds the token resolution + role check
// before every album-scoped handler
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc, required Role) {
	acc, err := Resolve(c.Param("slug"), c.Query("token"))
	switch {
	case err == ErrNoToken:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token required"})
	case err == ErrAlbumNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
	case err != nil:
		// Bad token collapses with revoked token to avoid enumeration
		c.JSON(http.StatusForbidden, gin.H{"error": "this link no longer works"})
	case acc.Role < required:
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
	default:
		handler(c, acc)
	}
}

func (cr *Router) GET(path string, handler HandlerFunc, required Role) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc, required Role) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) PATCH(path string, handler HandlerFunc, required Role) {
	cr.Base.PATCH(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc, required Role) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler, required)
	})
}
