package handlers

import (
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type categoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Legs"`
	Description string `json:"description" example:"lower body"`
}

type exerciseRequest struct {
	CategoryID  int64  `json:"category_id" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"Squat"`
	Description string `json:"description"`
	Points      int    `json:"points" example:"5"`
}

// @Summary      List exercise categories
// @Tags         exercises
// @Produce      json
// @Success      200  {object}  fitness_tracker.ListResponse[models.ExerciseCategory]
// @Router       /api/v1/exercise-categories [get]
// @Security     BearerAuth
func (h *Handler) listCategories(c *gin.Context) {
	list, err := h.services.ListCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(list))
}

// @Summary      Get exercise category
// @Tags         exercises
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  models.ExerciseCategory
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercise-categories/{id} [get]
// @Security     BearerAuth
func (h *Handler) getCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	cat, err := h.services.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Create exercise category
// @Description  ADMIN only.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category"
// @Success      201   {object}  models.ExerciseCategory
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercise-categories [post]
// @Security     BearerAuth
func (h *Handler) createCategory(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.CreateCategory(c.Request.Context(), me, service.CategoryInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      Update exercise category
// @Description  ADMIN only.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Category ID"
// @Param        body  body      categoryRequest  true  "Category"
// @Success      200   {object}  models.ExerciseCategory
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercise-categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateCategory(c *gin.Context) {
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
	var input categoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.UpdateCategory(c.Request.Context(), me, id, service.CategoryInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete exercise category
// @Description  ADMIN only. Categories still holding exercises cannot be deleted.
// @Tags         exercises
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Failure      409  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercise-categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteCategory(c *gin.Context) {
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
	if err := h.services.DeleteCategory(c.Request.Context(), me, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      List exercises
// @Tags         exercises
// @Produce      json
// @Param        category_id  query     int  false  "Only this category"
// @Success      200          {object}  fitness_tracker.ListResponse[models.Exercise]
// @Failure      400          {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercises [get]
// @Security     BearerAuth
func (h *Handler) listExercises(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	list, err := h.services.ListExercises(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(list))
}

// @Summary      Get exercise
// @Tags         exercises
// @Produce      json
// @Param        id   path      int  true  "Exercise ID"
// @Success      200  {object}  models.Exercise
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercises/{id} [get]
// @Security     BearerAuth
func (h *Handler) getExercise(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	ex, err := h.services.GetExercise(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// @Summary      Create exercise
// @Description  ADMIN only.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        body  body      exerciseRequest  true  "Exercise"
// @Success      201   {object}  models.Exercise
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercises [post]
// @Security     BearerAuth
func (h *Handler) createExercise(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input exerciseRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	ex, err := h.services.CreateExercise(c.Request.Context(), me, service.ExerciseInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ex)
}

// @Summary      Update exercise
// @Description  ADMIN only.
// @Tags         exercises
// @Accept       json
// @Produce      json
// @Param        id    path      int              true  "Exercise ID"
// @Param        body  body      exerciseRequest  true  "Exercise"
// @Success      200   {object}  models.Exercise
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercises/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateExercise(c *gin.Context) {
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
	var input exerciseRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	ex, err := h.services.UpdateExercise(c.Request.Context(), me, id, service.ExerciseInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// @Summary      Delete exercise
// @Description  ADMIN only.
// @Tags         exercises
// @Param        id   path  int  true  "Exercise ID"
// @Success      204
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/exercises/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteExercise(c *gin.Context) {
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
	if err := h.services.DeleteExercise(c.Request.Context(), me, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
