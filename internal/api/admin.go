package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/middleware"
	"github.com/ojonugwa/igala-names/backend/internal/models"
	"github.com/ojonugwa/igala-names/backend/internal/service"
	"github.com/ojonugwa/igala-names/backend/internal/types"
)

const statsCacheKey = "admin:stats"
const statsCacheTTL = time.Minute

// AdminHandler backs the moderation console and user management pages.
// Review routes admit reviewers and admins; everything else is admin-only.
type AdminHandler struct {
	db                *gorm.DB
	submissionService service.ISubmissionService
	authService       service.IAuthService
	roleService       service.IRoleService
	redis             *redis.Client
	data              *catalog.Data
}

func NewAdminHandler(db *gorm.DB, submissionService service.ISubmissionService, authService service.IAuthService, roleService service.IRoleService, redisClient *redis.Client, data *catalog.Data) *AdminHandler {
	return &AdminHandler{
		db:                db,
		submissionService: submissionService,
		authService:       authService,
		roleService:       roleService,
		redis:             redisClient,
		data:              data,
	}
}

func (h *AdminHandler) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin", middleware.AuthMiddleware(h.authService))

	review := admin.Group("", middleware.RequireReviewer(h.roleService))
	{
		review.GET("/submissions", h.ListSubmissions)
		review.POST("/submissions/:id/review", h.ReviewSubmission)
	}

	full := admin.Group("", middleware.RequireAdmin(h.roleService))
	{
		full.DELETE("/submissions/:id", h.DeleteSubmission)
		full.GET("/stats", h.GetStats)
		full.GET("/users", h.ListUsers)
		full.POST("/users", h.CreateUser)
		full.PUT("/users/:id/role", h.AssignRole)
	}
}

func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	filters := &models.SubmissionFilters{
		Status: c.Query("status"),
		UserID: c.Query("user_id"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset >= 0 {
		filters.Offset = offset
	}

	submissions, err := h.submissionService.ListAll(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

func (h *AdminHandler) ReviewSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	var req types.ReviewSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Review(c.Request.Context(), middleware.UserID(c), id, req.Decision, req.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.invalidateStats(c.Request.Context())
	c.JSON(http.StatusOK, submission)
}

func (h *AdminHandler) DeleteSubmission(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid submission id"})
		return
	}

	if err := h.submissionService.AdminDelete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	h.invalidateStats(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "submission deleted"})
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var stats types.AdminStats
			if json.Unmarshal(cached, &stats) == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	counts, err := h.submissionService.Stats(ctx)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	var totalUsers int64
	if err := h.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&totalUsers).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	stats := types.AdminStats{
		TotalNames:          len(h.data.Names),
		TotalUsers:          totalUsers,
		PendingSubmissions:  counts[models.StatusPending],
		AcceptedSubmissions: counts[models.StatusAccepted],
		RejectedSubmissions: counts[models.StatusRejected],
	}

	if h.redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := h.redis.Set(ctx, statsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				log.Printf("failed to cache admin stats: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) invalidateStats(ctx context.Context) {
	if h.redis == nil {
		return
	}
	if err := h.redis.Del(ctx, statsCacheKey).Err(); err != nil {
		log.Printf("failed to invalidate stats cache: %v", err)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Model(&models.UserProfile{}).Order("created_at DESC")

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var profiles []models.UserProfile
	if err := query.Find(&profiles).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	users := make([]types.UserWithRole, 0, len(profiles))
	for _, p := range profiles {
		role, err := h.roleService.RoleOf(c.Request.Context(), p.UserID)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		users = append(users, types.UserWithRole{
			UserID:    p.UserID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Role:      role,
			CreatedAt: p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req types.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	user := models.User{Email: email, PasswordHash: string(hashed)}

	err = h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:    user.ID,
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     email,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	if req.Role != "" && req.Role != models.RoleUser {
		if err := h.roleService.Assign(c.Request.Context(), user.ID, req.Role); err != nil {
			respondServiceError(c, err)
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": user.ID})
}

func (h *AdminHandler) AssignRole(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req types.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.roleService.Assign(c.Request.Context(), userID, req.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "role updated"})
}
