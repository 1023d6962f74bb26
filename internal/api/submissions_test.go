package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionPayload() map[string]string {
	return map[string]string{
		"name":     "Abutu",
		"meaning":  "firstborn son",
		"gender":   "male",
		"category": "family",
	}
}

func TestCreateAndListSubmissions(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.tokenFor(t, "ene@example.com", "user")

	w := env.request(t, http.MethodPost, "/api/v1/submissions", token, submissionPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeBody(t, w, &created)
	assert.Equal(t, "pending", created.Status)
	require.NotEmpty(t, created.ID)

	var list struct {
		Submissions []struct {
			ID string `json:"id"`
		} `json:"submissions"`
	}
	w = env.request(t, http.MethodGet, "/api/v1/submissions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	require.Len(t, list.Submissions, 1)
	assert.Equal(t, created.ID, list.Submissions[0].ID)

	// another user sees an empty queue
	_, other := env.tokenFor(t, "other@example.com", "user")
	w = env.request(t, http.MethodGet, "/api/v1/submissions", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	assert.Empty(t, list.Submissions)
}

func TestCreateSubmissionRejectsMissingFields(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.tokenFor(t, "ene@example.com", "user")

	w := env.request(t, http.MethodPost, "/api/v1/submissions", token, map[string]string{
		"name": "Abutu",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSubmissionEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.tokenFor(t, "ene@example.com", "user")

	w := env.request(t, http.MethodPost, "/api/v1/submissions", token, submissionPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = env.request(t, http.MethodPut, "/api/v1/submissions/"+created.ID, token, map[string]string{
		"meaning": "firstborn son of the family",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Meaning string `json:"meaning"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "firstborn son of the family", updated.Meaning)

	// a non-owner cannot edit
	_, other := env.tokenFor(t, "other@example.com", "user")
	w = env.request(t, http.MethodPut, "/api/v1/submissions/"+created.ID, other, map[string]string{
		"meaning": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.request(t, http.MethodPut, "/api/v1/submissions/not-a-uuid", token, map[string]string{
		"meaning": "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteSubmissionEndpoint(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.tokenFor(t, "ene@example.com", "user")

	w := env.request(t, http.MethodPost, "/api/v1/submissions", token, submissionPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, w, &created)

	w = env.request(t, http.MethodDelete, "/api/v1/submissions/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Submissions []struct{} `json:"submissions"`
	}
	w = env.request(t, http.MethodGet, "/api/v1/submissions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &list)
	assert.Empty(t, list.Submissions)
}
