package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/internal/api"
	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/service"
	"github.com/ojonugwa/igala-names/backend/internal/testhelpers"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	data := catalog.MustLoad()

	authService := service.NewAuthService(db, "test-secret")
	roleService := service.NewRoleService(db)
	actionService := service.NewNameActionService(db)
	submissionService := service.NewSubmissionService(db, nil)

	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewNameHandler(data, nil).RegisterRoutes(v1)
	api.NewActionHandler(actionService, authService).RegisterRoutes(v1)
	api.NewSubmissionHandler(submissionService, authService, nil).RegisterRoutes(v1)
	api.NewAdminHandler(db, submissionService, authService, roleService, nil, data).RegisterRoutes(v1)

	return &testEnv{router: router, db: db, auth: authService}
}

// tokenFor creates a user with the given role and returns a session token.
func (e *testEnv) tokenFor(t *testing.T, email, role string) (uuid.UUID, string) {
	t.Helper()

	userID := testhelpers.CreateTestUser(t, e.db, email)
	if role != "" && role != "user" {
		testhelpers.AssignTestRole(t, e.db, userID, role)
	}
	token, err := e.auth.GenerateToken(userID, email)
	require.NoError(t, err)
	return userID, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), "body: %s", w.Body.String())
}
