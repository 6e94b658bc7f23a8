package handlers

import (
	"fitness_tracker/internal/logger"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Live leaderboard; browsers cannot set headers on upgrade, so it stays public
	router.GET("/ws/ranking", h.wsRanking)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
		auth.GET("/oauth/providers", h.oauthProviders)
		auth.GET("/oauth/:provider/login", h.oauthLogin)
		auth.GET("/oauth/:provider/callback", h.oauthCallback)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdentity)
	{
		h.registerUserRoutes(api)
		h.registerCatalogRoutes(api)
		h.registerLogRoutes(api)
		h.registerItemRoutes(api)
		h.registerCharacterRoutes(api)
		h.registerRoomRoutes(api)
		h.registerRankingRoutes(api)
	}
}

func (h *Handler) registerUserRoutes(api *gin.RouterGroup) {
	me := api.Group("/users/me")
	{
		me.GET("", h.getMe)
		me.PATCH("", h.updateMe)
		me.DELETE("", h.deleteMe)
		me.GET("/info", h.getMyInfo)
		me.PUT("/info", h.saveMyInfo)
	}
}

func (h *Handler) registerCatalogRoutes(api *gin.RouterGroup) {
	categories := api.Group("/exercise-categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:id", h.getCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
	exercises := api.Group("/exercises")
	{
		// ?category_id= narrows the list
		exercises.GET("", h.listExercises)
		exercises.POST("", h.createExercise)
		exercises.GET("/:id", h.getExercise)
		exercises.PUT("/:id", h.updateExercise)
		exercises.DELETE("/:id", h.deleteExercise)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.POST("", h.createLog)
		logs.GET("/daily", h.getDailyLogs)
		// Body: plain text, one "YYYY-MM-DD <exercise> <sets>x<reps> [<w>kg] [<m>min]" per line
		logs.POST("/import", h.importLogs)
		logs.PUT("/:id", h.updateLog)
		logs.DELETE("/:id", h.deleteLog)
	}
}

func (h *Handler) registerItemRoutes(api *gin.RouterGroup) {
	categories := api.Group("/item-categories")
	{
		categories.GET("", h.listItemCategories)
		categories.POST("", h.createItemCategory)
		categories.GET("/:id", h.getItemCategory)
		categories.PUT("/:id", h.updateItemCategory)
		categories.DELETE("/:id", h.deleteItemCategory)
	}
	items := api.Group("/items")
	{
		items.GET("", h.listItems)
		items.POST("", h.createItem)
		items.GET("/:id", h.getItem)
		items.PUT("/:id", h.updateItem)
		items.DELETE("/:id", h.deleteItem)
	}
}

func (h *Handler) registerCharacterRoutes(api *gin.RouterGroup) {
	me := api.Group("/characters/me")
	{
		me.GET("", h.getCharacter)
		me.POST("", h.createCharacter)
		me.PATCH("", h.renameCharacter)
		me.PUT("/items/:item_id", h.equipItem)
		me.DELETE("/items/categories/:category_id", h.unequipItem)
	}
}

func (h *Handler) registerRoomRoutes(api *gin.RouterGroup) {
	rooms := api.Group("/rooms")
	{
		// ?status=WAITING|ACTIVE|CLOSED
		rooms.GET("", h.listRooms)
		rooms.POST("", h.createRoom)
		rooms.GET("/code/:code", h.getRoomByCode)
		rooms.POST("/join/:code", h.joinRoom)
		rooms.GET("/:id", h.getRoom)
		rooms.POST("/:id/leave", h.leaveRoom)
		rooms.POST("/:id/start", h.startRoom)
		rooms.POST("/:id/close", h.closeRoom)
	}
}

func (h *Handler) registerRankingRoutes(api *gin.RouterGroup) {
	ranking := api.Group("/ranking")
	{
		ranking.GET("", h.getTopRanking)
		ranking.GET("/me", h.getMyRank)
		ranking.GET("/users/:id", h.getUserRank)
	}
}
