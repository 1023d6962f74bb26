package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/middleware"
	"github.com/ojonugwa/igala-names/backend/internal/service"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

// ActionHandler exposes the per-user like/favorite state for catalog names
// and the dashboard listings built from it.
type ActionHandler struct {
	actionService service.INameActionService
	authService   service.IAuthService
}

func NewActionHandler(actionService service.INameActionService, authService service.IAuthService) *ActionHandler {
	return &ActionHandler{
		actionService: actionService,
		authService:   authService,
	}
}

func (h *ActionHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := middleware.AuthMiddleware(h.authService)

	names := router.Group("/names", auth)
	{
		names.GET("/:id/actions", h.GetStatus)
		names.POST("/:id/like", h.ToggleLike)
		names.POST("/:id/favorite", h.ToggleFavorite)
	}

	me := router.Group("/me", auth)
	{
		me.GET("/likes", h.ListLikes)
		me.GET("/favorites", h.ListFavorites)
		me.DELETE("/likes/:id", h.RemoveLike)
		me.DELETE("/favorites/:id", h.RemoveFavorite)
	}
}

func (h *ActionHandler) nameID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if catalog.ByID(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "name not found"})
		return "", false
	}
	return id, true
}

func (h *ActionHandler) GetStatus(c *gin.Context) {
	nameID, ok := h.nameID(c)
	if !ok {
		return
	}

	status, err := h.actionService.Status(c.Request.Context(), middleware.UserID(c), nameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *ActionHandler) ToggleLike(c *gin.Context) {
	nameID, ok := h.nameID(c)
	if !ok {
		return
	}

	active, err := h.actionService.ToggleLike(c.Request.Context(), middleware.UserID(c), nameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ToggleResponse{Active: active})
}

func (h *ActionHandler) ToggleFavorite(c *gin.Context) {
	nameID, ok := h.nameID(c)
	if !ok {
		return
	}

	active, err := h.actionService.ToggleFavorite(c.Request.Context(), middleware.UserID(c), nameID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.ToggleResponse{Active: active})
}

func (h *ActionHandler) ListLikes(c *gin.Context) {
	ids, err := h.actionService.LikedNameIDs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name_ids": ids})
}

func (h *ActionHandler) ListFavorites(c *gin.Context) {
	ids, err := h.actionService.FavoriteNameIDs(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name_ids": ids})
}

func (h *ActionHandler) RemoveLike(c *gin.Context) {
	if err := h.actionService.Unlike(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from likes"})
}

func (h *ActionHandler) RemoveFavorite(c *gin.Context) {
	if err := h.actionService.Unfavorite(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "removed from favorites"})
}
