package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ojonugwa/igala-names/backend/internal/middleware"
	"github.com/ojonugwa/igala-names/backend/internal/service"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

// SubmissionHandler is the contributor-facing side of the contribution
// queue: create, list own, and edit/withdraw while pending.
type SubmissionHandler struct {
	submissionService service.ISubmissionService
	authService       service.IAuthService
	rateLimiter       *middleware.RateLimiter
}

func NewSubmissionHandler(submissionService service.ISubmissionService, authService service.IAuthService, rateLimiter *middleware.RateLimiter) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		authService:       authService,
		rateLimiter:       rateLimiter,
	}
}

func (h *SubmissionHandler) RegisterRoutes(router *gin.RouterGroup) {
	submissions := router.Group("/submissions", middleware.AuthMiddleware(h.authService))
	{
		create := submissions.Group("")
		if h.rateLimiter != nil {
			create.Use(h.rateLimiter.RateLimitMiddleware())
		}
		create.POST("", h.Create)

		submissions.GET("", h.ListOwn)
		submissions.PUT("/:id", h.Update)
		submissions.DELETE("/:id", h.Delete)
	}
}

func (h *SubmissionHandler) Create(c *gin.Context) {
	var req types.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Create(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

func (h *SubmissionHandler) ListOwn(c *gin.Context) {
	submissions, err := h.submissionService.ListByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *SubmissionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	var req types.UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Update(c.Request.Context(), middleware.UserID(c), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}

func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	if err := h.submissionService.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "submission deleted"})
}
