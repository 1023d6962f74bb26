package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/service"
)

// NameHandler serves the static catalog: browsing, filtering, and
// autocomplete suggestions. All routes are public.
type NameHandler struct {
	data         *catalog.Data
	mediaService *service.MediaService
}

func NewNameHandler(data *catalog.Data, mediaService *service.MediaService) *NameHandler {
	return &NameHandler{
		data:         data,
		mediaService: mediaService,
	}
}

func (h *NameHandler) RegisterRoutes(router *gin.RouterGroup) {
	names := router.Group("/names")
	{
		names.GET("", h.ListNames)
		names.GET("/suggest", h.SuggestNames)
		names.GET("/:id", h.GetName)
	}
	router.GET("/categories", h.ListCategories)
}

func (h *NameHandler) ListNames(c *gin.Context) {
	filtered := catalog.Filter(h.data.Names, c.Query("q"), c.Query("category"), c.Query("gender"))
	c.JSON(http.StatusOK, gin.H{
		"names": filtered,
		"total": len(filtered),
	})
}

func (h *NameHandler) SuggestNames(c *gin.Context) {
	suggestions := catalog.Suggest(h.data.Names, c.Query("q"))
	if suggestions == nil {
		suggestions = []catalog.NameEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

func (h *NameHandler) GetName(c *gin.Context) {
	entry := catalog.ByID(c.Param("id"))
	if entry == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "name not found"})
		return
	}

	response := gin.H{"name": entry}
	if h.mediaService != nil {
		if media, err := h.mediaService.ImageFor(c.Request.Context(), entry.ID); err == nil {
			response["image_url"] = media.ImageURL
		}
	}
	c.JSON(http.StatusOK, response)
}

func (h *NameHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.data.Categories})
}
