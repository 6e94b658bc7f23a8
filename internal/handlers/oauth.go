package handlers

import (
	"net/http"
	"time"

	"fitness_tracker"
	"fitness_tracker/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// @Summary      OAuth providers
// @Tags         auth
// @Produce      json
// @Success      200  {object}  fitness_tracker.ListResponse[string]
// @Router       /auth/oauth/providers [get]
func (h *Handler) oauthProviders(c *gin.Context) {
	c.JSON(http.StatusOK, fitness_tracker.NewList(h.services.Providers()))
}

// @Summary      Start OAuth login
// @Description  Redirects to the provider consent page. A random state is kept in an HttpOnly cookie.
// @Tags         auth
// @Param        provider  path  string  true  "Provider name"  example(google)
// @Success      302
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /auth/oauth/{provider}/login [get]
func (h *Handler) oauthLogin(c *gin.Context) {
	state := uuid.NewString()
	target, err := h.services.LoginURL(c.Param("provider"), state)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, int(oauthStateTTL.Seconds()), "/auth/oauth", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, target)
}

// @Summary      OAuth callback
// @Description  Completes the authorization-code flow and returns a JWT. First login creates the account.
// @Tags         auth
// @Produce      json
// @Param        provider  path   string  true  "Provider name"
// @Param        code      query  string  true  "Authorization code"
// @Param        state     query  string  true  "State echoed by the provider"
// @Success      200  {object}  fitness_tracker.TokenResponse
// @Failure      400  {object}  fitness_tracker.ErrorResponse
// @Failure      401  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /auth/oauth/{provider}/callback [get]
func (h *Handler) oauthCallback(c *gin.Context) {
	if e := c.Query("error"); e != "" {
		h.respondError(c, apperr.Unauthorized("oauth provider returned %s", e))
		return
	}

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		h.respondError(c, apperr.Unauthorized("oauth state mismatch"))
		return
	}
	// single use
	c.SetCookie(oauthStateCookie, "", -1, "/auth/oauth", "", c.Request.TLS != nil, true)

	token, err := h.services.Callback(c.Request.Context(), c.Param("provider"), c.Query("code"))
	if err != nil {
		h.log.Infow("oauth_callback_failed", "provider", c.Param("provider"), "err", err)
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.TokenResponse{Token: token})
}
