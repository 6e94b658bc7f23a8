package handlers

import (
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Nickname string `json:"nickname" binding:"required" example:"alice"`
	Password string `json:"password" binding:"required" example:"s3cr3tpass"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"s3cr3tpass"`
}

// @Summary      Sign up
// @Description  Create a local account (email + password).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Account"
// @Success      200   {object}  fitness_tracker.IDResponse
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /auth/sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var input signUpRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Email:    input.Email,
		Nickname: input.Nickname,
		Password: input.Password,
	})
	if err != nil {
		h.log.Infow("auth_sign_up_failed", "email", input.Email, "err", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fitness_tracker.IDResponse{ID: id})
}

// @Summary      Sign in
// @Description  Exchange email and password for a JWT.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  fitness_tracker.TokenResponse
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      401   {object}  fitness_tracker.ErrorResponse
// @Router       /auth/sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var input signInRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.log.Infow("auth_sign_in_failed", "email", input.Email, "err", err)
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, fitness_tracker.TokenResponse{Token: token})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  fitness_tracker.StatusResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, fitness_tracker.StatusResponse{Status: "ok"})
}
