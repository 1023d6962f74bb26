package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojonugwa/igala-names/backend/internal/server"
	"github.com/ojonugwa/igala-names/backend/internal/testdb"
)

// TestEndToEndFlow drives the full contributor journey against a real
// postgres instance: register, browse, like, submit, review.
func TestEndToEndFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	gin.SetMode(gin.TestMode)
	td := testdb.SetupTestDB(t)

	srv := server.New(td.Config, td.DB, nil, nil)
	router := srv.Router()

	do := func(method, path, token string, body interface{}) *httptest.ResponseRecorder {
		var payload []byte
		if body != nil {
			var err error
			payload, err = json.Marshal(body)
			require.NoError(t, err)
		}
		req := httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// register a contributor
	w := do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":      "ene@example.com",
		"password":   "password123",
		"first_name": "Ene",
		"last_name":  "Ocheja",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var auth struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))

	// browse and like a catalog name
	w = do(http.MethodGet, "/api/v1/names?q=god", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(http.MethodPost, "/api/v1/names/omojo/like", auth.Token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// contribute a name
	w = do(http.MethodPost, "/api/v1/submissions", auth.Token, map[string]string{
		"name":    "Abutu",
		"meaning": "firstborn son",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// the contributor cannot reach the moderation console
	w = do(http.MethodPost, "/api/v1/admin/submissions/"+created.ID+"/review", auth.Token, map[string]string{
		"decision": "accepted",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// promote a second account to reviewer directly in the store
	w = do(http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":      "reviewer@example.com",
		"password":   "password123",
		"first_name": "Attah",
		"last_name":  "Idoko",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var reviewer struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviewer))

	err := td.DB.Exec(
		`INSERT INTO user_roles (id, user_id, role, created_at, updated_at)
		 SELECT gen_random_uuid(), id, 'reviewer', now(), now() FROM users WHERE email = ?`,
		"reviewer@example.com",
	).Error
	require.NoError(t, err)

	// the reviewer settles the submission
	w = do(http.MethodPost, "/api/v1/admin/submissions/"+created.ID+"/review", reviewer.Token, map[string]string{
		"decision": "accepted",
		"notes":    "well sourced",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// and a second decision conflicts
	w = do(http.MethodPost, "/api/v1/admin/submissions/"+created.ID+"/review", reviewer.Token, map[string]string{
		"decision": "rejected",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}
