package handlers

import (
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type itemCategoryRequest struct {
	Name string `json:"name" binding:"required" example:"Hat"`
}

type itemRequest struct {
	CategoryID  int64  `json:"category_id" binding:"required" example:"1"`
	Name        string `json:"name" binding:"required" example:"Red Cap"`
	Description string `json:"description"`
	Price       int    `json:"price" example:"100"`
	ImageURL    string `json:"image_url" example:"https://cdn.example.com/cap.png"`
}

// @Summary      List item categories
// @Tags         items
// @Produce      json
// @Success      200  {object}  fitness_tracker.ListResponse[models.ItemCategory]
// @Router       /api/v1/item-categories [get]
// @Security     BearerAuth
func (h *Handler) listItemCategories(c *gin.Context) {
	list, err := h.services.ListItemCategories(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(list))
}

// @Summary      Get item category
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  models.ItemCategory
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/item-categories/{id} [get]
// @Security     BearerAuth
func (h *Handler) getItemCategory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	cat, err := h.services.GetItemCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Create item category
// @Description  ADMIN only. Each category is one equipment slot.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      itemCategoryRequest  true  "Category"
// @Success      201   {object}  models.ItemCategory
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/item-categories [post]
// @Security     BearerAuth
func (h *Handler) createItemCategory(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input itemCategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.CreateItemCategory(c.Request.Context(), me, service.ItemCategoryInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// @Summary      Update item category
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Category ID"
// @Param        body  body      itemCategoryRequest  true  "Category"
// @Success      200   {object}  models.ItemCategory
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/item-categories/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateItemCategory(c *gin.Context) {
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
	var input itemCategoryRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	cat, err := h.services.UpdateItemCategory(c.Request.Context(), me, id, service.ItemCategoryInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// @Summary      Delete item category
// @Tags         items
// @Param        id   path  int  true  "Category ID"
// @Success      204
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      409  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/item-categories/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteItemCategory(c *gin.Context) {
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
	if err := h.services.DeleteItemCategory(c.Request.Context(), me, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary      List items
// @Tags         items
// @Produce      json
// @Param        category_id  query     int  false  "Only this category"
// @Success      200          {object}  fitness_tracker.ListResponse[models.Item]
// @Router       /api/v1/items [get]
// @Security     BearerAuth
func (h *Handler) listItems(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	list, err := h.services.ListItems(c.Request.Context(), categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(list))
}

// @Summary      Get item
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  models.Item
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/items/{id} [get]
// @Security     BearerAuth
func (h *Handler) getItem(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	it, err := h.services.GetItem(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// @Summary      Create item
// @Description  ADMIN only.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      itemRequest  true  "Item"
// @Success      201   {object}  models.Item
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/items [post]
// @Security     BearerAuth
func (h *Handler) createItem(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input itemRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	it, err := h.services.CreateItem(c.Request.Context(), me, service.ItemInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, it)
}

// @Summary      Update item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Item ID"
// @Param        body  body      itemRequest  true  "Item"
// @Success      200   {object}  models.Item
// @Failure      403   {object}  fitness_tracker.ErrorResponse
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/items/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateItem(c *gin.Context) {
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
	var input itemRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	it, err := h.services.UpdateItem(c.Request.Context(), me, id, service.ItemInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, it)
}

// @Summary      Delete item
// @Tags         items
// @Param        id   path  int  true  "Item ID"
// @Success      204
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/items/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteItem(c *gin.Context) {
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
	if err := h.services.DeleteItem(c.Request.Context(), me, id); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
