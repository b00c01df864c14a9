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

func TestNotificationFlow(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterAndLogin(t, ts, "Eli Employer", models.UserRoleEmployer)
	agentToken, _ := helpers.RegisterAndLogin(t, ts, "Ava Agent", models.UserRoleAgent)
	jobID := helpers.CreateJob(t, ts, employerToken, "Go Backend Engineer")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+jobID+"/apply", agentToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	// The employer got the application notification
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var notifications []struct {
		ID     string `json:"id"`
		Type   string `json:"type"`
		IsRead bool   `json:"is_read"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &notifications))
	require.Len(t, notifications, 1)
	assert.Equal(t, "application_received", notifications[0].Type)
	assert.False(t, notifications[0].IsRead)

	// The agent cannot touch the employer's notification
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+notifications[0].ID+"/read", agentToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// The recipient can
	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/"+notifications[0].ID+"/read", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"count":0`)
}

func TestMarkAllRead(t *testing.T) {
	ts := GetTestServer(t)
	ts.ClearTables(t)

	employerToken, _ := helpers.RegisterAndLogin(t, ts, "Eli Employer", models.UserRoleEmployer)

	for _, title := range []string{"Job A", "Job B"} {
		jobID := helpers.CreateJob(t, ts, employerToken, title)
		agentToken, _ := helpers.RegisterAndLogin(t, ts, "Agent for "+title, models.UserRoleAgent)
		res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/applications/"+jobID+"/apply", agentToken, nil)
		require.Equal(t, http.StatusCreated, res.StatusCode)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"count":2`)

	res, _ = ts.SendRequest(t, http.MethodPut, "/api/v1/notifications/mark-all-read", employerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications/unread-count", employerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, `"count":0`)
}
