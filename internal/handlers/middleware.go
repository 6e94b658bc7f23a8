package handlers

import (
	"strings"
	"time"

	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID   = "userId"
	ctxUserRole = "userRole"
)

func (h *Handler) userIdentity(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		h.respondError(c, apperr.Unauthorized("missing Authorization header"))
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		h.respondError(c, apperr.Unauthorized("invalid Authorization header format"))
		return
	}

	ident, err := h.services.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		h.respondError(c, apperr.Wrap(apperr.CodeUnauthorized, "invalid or expired token", err))
		return
	}

	// store in Gin context
	c.Set(ctxUserID, ident.UserID)
	c.Set(ctxUserRole, ident.Role)
	c.Next()
}

// identity returns the caller stored by userIdentity.
func identity(c *gin.Context) (service.Identity, error) {
	id, ok := c.Get(ctxUserID)
	if !ok {
		return service.Identity{}, apperr.Wrap(apperr.CodeUnauthorized, "unauthenticated", errNoIdentity)
	}
	uid, ok := id.(int64)
	if !ok || uid <= 0 {
		return service.Identity{}, apperr.Wrap(apperr.CodeUnauthorized, "unauthenticated", errNoIdentity)
	}
	return service.Identity{UserID: uid, Role: c.GetString(ctxUserRole)}, nil
}

// requestLogger writes one structured line per request.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	fields := []interface{}{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	}
	if uid, ok := c.Get(ctxUserID); ok {
		fields = append(fields, "user_id", uid)
	}
	if c.Writer.Status() >= 500 {
		h.log.Warnw("http_request", fields...)
		return
	}
	h.log.Infow("http_request", fields...)
}
