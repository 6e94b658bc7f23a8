package handlers

import (
	"net/http"
	"strconv"

	"fitness_tracker"
	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Leaderboard
// @Tags         ranking
// @Produce      json
// @Param        limit  query     int  false  "1..100, default from config"
// @Success      200    {object}  fitness_tracker.ListResponse[models.RankEntry]
// @Failure      400    {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/ranking [get]
// @Security     BearerAuth
func (h *Handler) getTopRanking(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	top, err := h.services.Top(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(top))
}

// @Summary      My rank
// @Tags         ranking
// @Produce      json
// @Success      200  {object}  models.RankEntry
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/ranking/me [get]
// @Security     BearerAuth
func (h *Handler) getMyRank(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.writeRank(c, me.UserID)
}

// @Summary      User rank
// @Tags         ranking
// @Produce      json
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  models.RankEntry
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/ranking/users/{id} [get]
// @Security     BearerAuth
func (h *Handler) getUserRank(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.writeRank(c, id)
}

func (h *Handler) writeRank(c *gin.Context, userID int64) {
	e, err := h.services.RankOf(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// queryLimit parses ?limit. Absent or 0 means the configured default.
func queryLimit(c *gin.Context) (int, error) {
	s := c.Query("limit")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > service.MaxRankingLimit {
		return 0, apperr.Validation("limit must be between 1 and %d", service.MaxRankingLimit)
	}
	return v, nil
}
