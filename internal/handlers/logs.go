package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"fitness_tracker"
	"fitness_tracker/internal/apperr"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid   = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"

	maxImportBytes = 1 << 20
)

type logRequest struct {
	ExerciseID  int64   `json:"exercise_id" binding:"required" example:"3"`
	Date        string  `json:"date" example:"2025-08-01"`
	Sets        int     `json:"sets" example:"3"`
	Reps        int     `json:"reps" example:"10"`
	WeightKg    float64 `json:"weight_kg" example:"60"`
	DurationSec int     `json:"duration_sec" example:"0"`
	Memo        string  `json:"memo"`
}

type importRequest struct {
	Text string `json:"text" binding:"required"`
}

// @Summary      List exercise logs
// @Description  Filter the caller's logs by day range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD', both ends inclusive) and exercise.
// @Tags         logs
// @Produce      json
// @Param        from         query     string  false  "Start of range"  example(2025-08-01)
// @Param        to           query     string  false  "End of range"    example(2025-08-31)
// @Param        exercise_id  query     int     false  "Only this exercise"
// @Success      200          {object}  fitness_tracker.ListResponse[models.ExerciseLog]
// @Failure      400          {object}  fitness_tracker.ErrorResponse
// @Failure      401          {object}  fitness_tracker.ErrorResponse
// @Failure      500          {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs [get]
// @Security     BearerAuth
func (h *Handler) getLogs(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var f service.LogFilter
	// Parse 'from' (optional)
	if qs := c.Query("from"); qs != "" {
		if f.From, err = parseQueryTime(qs); err != nil {
			h.respondError(c, apperr.Validation(errFromInvalid))
			return
		}
	}
	// Parse 'to' (optional)
	if qs := c.Query("to"); qs != "" {
		if f.To, err = parseQueryTime(qs); err != nil {
			h.respondError(c, apperr.Validation(errToInvalid))
			return
		}
	}
	if f.ExerciseID, err = queryID(c, "exercise_id"); err != nil {
		h.respondError(c, err)
		return
	}

	logs, err := h.services.ExerciseLogs.List(c.Request.Context(), me.UserID, f)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(logs))
}

// @Summary      Daily summary
// @Tags         logs
// @Produce      json
// @Param        date  query     string  false  "Day (YYYY-MM-DD), default today UTC"  example(2025-08-01)
// @Success      200   {object}  models.DailySummary
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs/daily [get]
// @Security     BearerAuth
func (h *Handler) getDailyLogs(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	sum, err := h.services.Daily(c.Request.Context(), me.UserID, c.Query("date"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// @Summary      Record exercise
// @Description  Awards leaderboard points (exercise points per set) and character experience.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      logRequest  true  "Log"
// @Success      201   {object}  models.ExerciseLog
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs [post]
// @Security     BearerAuth
func (h *Handler) createLog(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input logRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	l, err := h.services.ExerciseLogs.Create(c.Request.Context(), me.UserID, service.LogInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// @Summary      Edit exercise log
// @Description  Only the author may edit. The score moves by the difference in points.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Log ID"
// @Param        body  body      logRequest  true  "Log"
// @Success      200   {object}  models.ExerciseLog
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateLog(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input logRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	l, err := h.services.ExerciseLogs.Update(c.Request.Context(), me.UserID, id, service.LogInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// @Summary      Delete exercise log
// @Tags         logs
// @Param        id   path  int  true  "Log ID"
// @Success      204
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteLog(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	if err := h.services.ExerciseLogs.Delete(c.Request.Context(), me.UserID, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      Import journal
// @Description  Plain text (or JSON {"text": ...}), one "YYYY-MM-DD <exercise> <sets>x<reps> [<w>kg] [<m>min]" per line. '#' starts a comment line. Rejected lines are returned with their line number.
// @Tags         logs
// @Accept       plain
// @Accept       json
// @Produce      json
// @Success      200  {object}  service.ImportResult
// @Failure      400  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/logs/import [post]
// @Security     BearerAuth
func (h *Handler) importLogs(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxImportBytes)
	var text string
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var input importRequest
		if ok := h.bindJSONOrBadRequest(c, &input); !ok {
			return
		}
		text = input.Text
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			h.respondError(c, apperr.Wrap(apperr.CodeValidation, "journal body could not be read", err))
			return
		}
		text = string(body)
	}

	res, err := h.services.Import(c.Request.Context(), me.UserID, text)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
