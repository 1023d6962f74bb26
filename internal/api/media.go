package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ojonugwa/igala-names/backend/internal/middleware"
	"github.com/ojonugwa/igala-names/backend/internal/service"
)

// maxImageBytes caps illustration uploads at 5MB.
const maxImageBytes = 5 << 20

// MediaHandler lets admins attach an illustration to a catalog name.
type MediaHandler struct {
	mediaService *service.MediaService
	authService  service.IAuthService
	roleService  service.IRoleService
}

func NewMediaHandler(mediaService *service.MediaService, authService service.IAuthService, roleService service.IRoleService) *MediaHandler {
	return &MediaHandler{
		mediaService: mediaService,
		authService:  authService,
		roleService:  roleService,
	}
}

func (h *MediaHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin",
		middleware.AuthMiddleware(h.authService),
		middleware.RequireAdmin(h.roleService),
	)
	admin.POST("/names/:id/image", h.UploadImage)
}

func (h *MediaHandler) UploadImage(c *gin.Context) {
	nameID := c.Param("id")

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	defer file.Close()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 5MB limit"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	media, err := h.mediaService.UploadNameImage(
		c.Request.Context(),
		middleware.UserID(c),
		nameID,
		header.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}
