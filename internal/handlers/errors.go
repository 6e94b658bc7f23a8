package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fitness_tracker"
	"fitness_tracker/internal/apperr"

	"github.com/gin-gonic/gin"
)

// respondError is the single place where errors become HTTP replies.
// 5xx are logged with their cause; the client only sees the public message.
func (h *Handler) respondError(c *gin.Context, err error) {
	code := apperr.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request_failed", "method", c.Request.Method, "path", c.FullPath(), "err", err)
	} else {
		h.log.Debugw("request_rejected", "method", c.Request.Method, "path", c.FullPath(), "code", code, "err", err)
	}
	c.AbortWithStatusJSON(status, fitness_tracker.ErrorResponse{
		Error: apperr.PublicMessage(err),
		Code:  string(code),
	})
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.respondError(c, apperr.Wrap(apperr.CodeValidation, "invalid body: "+err.Error(), err))
		return false
	}
	return true
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

// queryID parses an optional positive integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int64, error) {
	s := c.Query(name)
	if s == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.Validation("invalid %s %q", name, s)
	}
	return id, nil
}

var errNoIdentity = errors.New("identity missing from context")
