package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type characterRequest struct {
	Name string `json:"name" binding:"required" example:"Hero"`
}

// @Summary      My character
// @Description  Includes the equipped items, one per item category.
// @Tags         characters
// @Produce      json
// @Success      200  {object}  models.Character
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/characters/me [get]
// @Security     BearerAuth
func (h *Handler) getCharacter(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	ch, err := h.services.GetCharacter(c.Request.Context(), me.UserID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// @Summary      Create my character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        body  body      characterRequest  true  "Character"
// @Success      201   {object}  models.Character
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/characters/me [post]
// @Security     BearerAuth
func (h *Handler) createCharacter(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input characterRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	ch, err := h.services.CreateCharacter(c.Request.Context(), me.UserID, input.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// @Summary      Rename my character
// @Tags         characters
// @Accept       json
// @Produce      json
// @Param        body  body      characterRequest  true  "New name"
// @Success      200   {object}  models.Character
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/characters/me [patch]
// @Security     BearerAuth
func (h *Handler) renameCharacter(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input characterRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	ch, err := h.services.RenameCharacter(c.Request.Context(), me.UserID, input.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// @Summary      Equip item
// @Description  Replaces whatever was equipped in the item's category.
// @Tags         characters
// @Produce      json
// @Param        item_id  path      int  true  "Item ID"
// @Success      200      {object}  models.Character
// @Failure      404      {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/characters/me/items/{item_id} [put]
// @Security     BearerAuth
func (h *Handler) equipItem(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	itemID, err := pathID(c, "item_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	ch, err := h.services.Equip(c.Request.Context(), me.UserID, itemID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// @Summary      Unequip slot
// @Tags         characters
// @Produce      json
// @Param        category_id  path      int  true  "Item category ID"
// @Success      200          {object}  models.Character
// @Failure      404          {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/characters/me/items/categories/{category_id} [delete]
// @Security     BearerAuth
func (h *Handler) unequipItem(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	categoryID, err := pathID(c, "category_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	ch, err := h.services.Unequip(c.Request.Context(), me.UserID, categoryID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}
