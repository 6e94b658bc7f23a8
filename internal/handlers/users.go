package handlers

import (
	"net/http"

	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type updateMeRequest struct {
	Nickname string `json:"nickname" binding:"required" example:"runner"`
}

type userInfoRequest struct {
	HeightCm  float64 `json:"height_cm" example:"180"`
	WeightKg  float64 `json:"weight_kg" example:"78.5"`
	BirthDate string  `json:"birth_date" example:"1990-02-01"`
	Gender    string  `json:"gender" example:"FEMALE"`
	Goal      string  `json:"goal" example:"run a marathon"`
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/users/me [get]
// @Security     BearerAuth
func (h *Handler) getMe(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	u, err := h.services.GetMe(c.Request.Context(), me.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Change nickname
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateMeRequest  true  "New nickname"
// @Success      200   {object}  models.User
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/users/me [patch]
// @Security     BearerAuth
func (h *Handler) updateMe(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input updateMeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	u, err := h.services.UpdateNickname(c.Request.Context(), me.UserID, input.Nickname)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// @Summary      Delete account
// @Description  Removes the account with its logs, character and leaderboard entry.
// @Tags         users
// @Success      204
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/users/me [delete]
// @Security     BearerAuth
func (h *Handler) deleteMe(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.DeleteMe(c.Request.Context(), me.UserID); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Body info
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.UserInfo
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/users/me/info [get]
// @Security     BearerAuth
func (h *Handler) getMyInfo(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	info, err := h.services.GetInfo(c.Request.Context(), me.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// @Summary      Save body info
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userInfoRequest  true  "Body info"
// @Success      200   {object}  models.UserInfo
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/users/me/info [put]
// @Security     BearerAuth
func (h *Handler) saveMyInfo(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input userInfoRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	info, err := h.services.SaveInfo(c.Request.Context(), me.UserID, service.UserInfoInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
