package handlers

import (
	"net/http"

	"fitness_tracker"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

type roomRequest struct {
	Name       string `json:"name" binding:"required" example:"Morning crew"`
	MaxMembers int    `json:"max_members" example:"4"`
}

// roomAction is a room operation taking the caller and the room id.
type roomAction func(h *Handler, c *gin.Context, userID, roomID int64) (any, error)

// withRoom resolves the caller and :id, then runs fn and writes its result.
func (h *Handler) withRoom(fn roomAction) gin.HandlerFunc {
	return func(c *gin.Context) {
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
		out, err := fn(h, c, me.UserID, id)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Param        status  query     string  false  "Status filter"  Enums(WAITING,ACTIVE,CLOSED)
// @Success      200     {object}  fitness_tracker.ListResponse[models.Room]
// @Failure      400     {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms [get]
// @Security     BearerAuth
func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.services.ListRooms(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fitness_tracker.NewList(rooms))
}

// @Summary      Create room
// @Description  The caller becomes owner and first member. The room starts in WAITING.
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      roomRequest  true  "Room"
// @Success      201   {object}  models.Room
// @Failure      400   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms [post]
// @Security     BearerAuth
func (h *Handler) createRoom(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	var input roomRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	room, err := h.services.CreateRoom(c.Request.Context(), me.UserID, service.RoomInput(input))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, room)
}

// @Summary      Find room by code
// @Tags         rooms
// @Produce      json
// @Param        code  path      string  true  "Invite code"
// @Success      200   {object}  models.Room
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/code/{code} [get]
// @Security     BearerAuth
func (h *Handler) getRoomByCode(c *gin.Context) {
	room, err := h.services.GetRoomByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Join room by code
// @Tags         rooms
// @Produce      json
// @Param        code  path      string  true  "Invite code"
// @Success      200   {object}  models.Room
// @Failure      404   {object}  fitness_tracker.ErrorResponse
// @Failure      409   {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/join/{code} [post]
// @Security     BearerAuth
func (h *Handler) joinRoom(c *gin.Context) {
	me, err := identity(c)
	if err != nil {
		h.respondError(c, err)
		return
	}
	room, err := h.services.JoinRoom(c.Request.Context(), me.UserID, c.Param("code"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

// @Summary      Get room
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  models.Room
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/{id} [get]
// @Security     BearerAuth
func (h *Handler) getRoom(c *gin.Context) {
	h.withRoom(func(h *Handler, c *gin.Context, _, id int64) (any, error) {
		return h.services.GetRoom(c.Request.Context(), id)
	})(c)
}

// @Summary      Leave room
// @Description  The owner leaving closes the room.
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  models.Room
// @Failure      404  {object}  fitness_tracker.ErrorResponse
// @Failure      409  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/{id}/leave [post]
// @Security     BearerAuth
func (h *Handler) leaveRoom(c *gin.Context) {
	h.withRoom(func(h *Handler, c *gin.Context, userID, id int64) (any, error) {
		return h.services.LeaveRoom(c.Request.Context(), userID, id)
	})(c)
}

// @Summary      Start room
// @Description  Owner only. WAITING -> ACTIVE.
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  models.Room
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      409  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/{id}/start [post]
// @Security     BearerAuth
func (h *Handler) startRoom(c *gin.Context) {
	h.withRoom(func(h *Handler, c *gin.Context, userID, id int64) (any, error) {
		return h.services.StartRoom(c.Request.Context(), userID, id)
	})(c)
}

// @Summary      Close room
// @Description  Owner only.
// @Tags         rooms
// @Produce      json
// @Param        id   path      int  true  "Room ID"
// @Success      200  {object}  models.Room
// @Failure      403  {object}  fitness_tracker.ErrorResponse
// @Failure      409  {object}  fitness_tracker.ErrorResponse
// @Router       /api/v1/rooms/{id}/close [post]
// @Security     BearerAuth
func (h *Handler) closeRoom(c *gin.Context) {
	h.withRoom(func(h *Handler, c *gin.Context, userID, id int64) (any, error) {
		return h.services.CloseRoom(c.Request.Context(), userID, id)
	})(c)
}
