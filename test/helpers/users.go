package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"agenthub_backend/internal/models"
)

type authUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RegisterAndLogin registers a fresh account through the API and
// returns its token and user id.
func RegisterAndLogin(t *testing.T, ts *TestServer, name string, role models.UserRole) (string, string) {
	t.Helper()

	email := fmt.Sprintf("%s_%d@test.local", role, time.Now().UnixNano())
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "register failed: %s", body)

	var resp struct {
		Token string   `json:"token"`
		User  authUser `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User.ID
}

// CreateJob posts a listing as the given employer and returns its id.
func CreateJob(t *testing.T, ts *TestServer, employerToken, title string) string {
	t.Helper()

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, map[string]interface{}{
		"title":  title,
		"type":   "Contract",
		"budget": "$5000",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, "job creation failed: %s", body)

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))
	require.NotEmpty(t, job.ID)
	return job.ID
}
