package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenthub_backend/internal/models"
	"agenthub_backend/test/helpers"
)

func TestJobBoard(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterAndLogin(t, ts, "Eli Employer", models.UserRoleEmployer)
	agentToken, _ := helpers.RegisterAndLogin(t, ts, "Ava Agent", models.UserRoleAgent)

	// Company defaults when omitted
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, map[string]interface{}{
		"title": "Go Backend Engineer",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.Contains(t, body, "Tech Company")

	var job struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &job))

	// Agents cannot post jobs
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", agentToken, map[string]interface{}{
		"title": "Nope",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Board is public
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Go Backend Engineer")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "Go Backend Engineer")

	// Malformed and missing ids are both 404
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	// Owner's listings
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/my", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, job.ID)
}

func TestJobValidation(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterAndLogin(t, ts, "Eli Employer", models.UserRoleEmployer)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs", employerToken, map[string]interface{}{
		"company": "No Title Inc",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
