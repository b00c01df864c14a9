package dto

import (
	"time"

	"agenthub_backend/internal/models"
)

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// ApplicationResponse is an application joined with its job (agent
// view) or with the applicant identity (employer view).
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	AgentID     string                   `json:"agent_id"`
	CoverLetter string                   `json:"cover_letter"`
	Status      models.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	Job         *models.Job              `json:"job,omitempty"`
	Agent       *UserDTO                 `json:"agent,omitempty"`
}

func ApplicationFromModel(a *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		AgentID:     a.AgentID,
		CoverLetter: a.CoverLetter,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
		Job:         a.Job,
	}
	if a.Agent != nil {
		resp.Agent = &UserDTO{
			ID:    a.Agent.ID,
			Name:  a.Agent.Name,
			Email: a.Agent.Email,
			Role:  a.Agent.Role,
		}
	}
	return resp
}
