package services

import (
	"errors"

	"agenthub_backend/internal/events"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	userRepo        repositories.UserRepository
	bus             *events.Bus
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	bus *events.Bus,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		userRepo:        userRepo,
		bus:             bus,
	}
}

// Apply submits an application for the calling agent. Only one
// application per (job, agent) pair can exist; the storage constraint
// is the authoritative duplicate check, the lookup before the insert
// only gives a cleaner fast path.
func (s *ApplicationService) Apply(agentID string, role models.UserRole, jobID string, req *dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	if role != models.UserRoleAgent {
		return nil, apperrors.NewForbiddenError("Only agents can apply to jobs")
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if _, err := s.applicationRepo.FindByJobAndAgent(jobID, agentID); err == nil {
		return nil, apperrors.ErrConflict(repositories.ErrDuplicateApplication, "application", "You have already applied to this job")
	} else if !errors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       jobID,
		AgentID:     agentID,
		CoverLetter: req.CoverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		if errors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrConflict(err, "application", "You have already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	agentName := ""
	if agent, err := s.userRepo.FindByID(agentID); err == nil {
		agentName = agent.Name
	}

	s.bus.Publish(events.ApplicationReceived{
		Application: application,
		Job:         job,
		AgentName:   agentName,
	})

	application.Job = job
	return dto.ApplicationFromModel(application), nil
}

// GetMyApplications lists the calling agent's applications with their
// jobs, newest first.
func (s *ApplicationService) GetMyApplications(agentID string) ([]dto.ApplicationResponse, error) {
	applications, err := s.applicationRepo.FindByAgent(agentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toResponses(applications), nil
}

// GetJobApplications lists applications for a job the caller owns.
func (s *ApplicationService) GetJobApplications(employerID, jobID string) ([]dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("You can only view applications for your own jobs")
	}

	applications, err := s.applicationRepo.FindByJob(jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toResponses(applications), nil
}

// UpdateStatus moves an application along the workflow. Only the
// owning employer may act, the target status must be a legal
// transition from the current one, and every persisted transition
// emits exactly one status event.
func (s *ApplicationService) UpdateStatus(employerID, applicationID string, newStatus models.ApplicationStatus) (*dto.ApplicationResponse, error) {
	return s.transition(employerID, applicationID, newStatus, false)
}

// ConfirmHire marks an application hired after a verified payment.
// Confirming an already hired application is a no-op so gateway
// callback retries cannot double-fire notifications.
func (s *ApplicationService) ConfirmHire(employerID, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.findForEmployer(employerID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status == models.ApplicationStatusHired {
		return dto.ApplicationFromModel(application), nil
	}
	return s.transition(employerID, applicationID, models.ApplicationStatusHired, true)
}

func (s *ApplicationService) transition(employerID, applicationID string, newStatus models.ApplicationStatus, viaPayment bool) (*dto.ApplicationResponse, error) {
	if !models.IsValidApplicationStatus(newStatus) {
		return nil, apperrors.ErrInvalidTransition("application", "unknown", string(newStatus))
	}

	application, err := s.findForEmployer(employerID, applicationID)
	if err != nil {
		return nil, err
	}

	oldStatus := application.Status
	if !models.CanTransition(oldStatus, newStatus) {
		return nil, apperrors.ErrInvalidTransition("application", string(oldStatus), string(newStatus))
	}

	if err := s.applicationRepo.UpdateStatus(applicationID, newStatus); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}
	application.Status = newStatus

	s.bus.Publish(events.ApplicationStatusChanged{
		Application: application,
		Job:         application.Job,
		OldStatus:   oldStatus,
		NewStatus:   newStatus,
		ViaPayment:  viaPayment,
	})

	return dto.ApplicationFromModel(application), nil
}

// findForEmployer loads an application and checks the caller owns the
// job it belongs to. Ownership is checked before anything else so a
// foreign employer gets 403, not a state error.
func (s *ApplicationService) findForEmployer(employerID, applicationID string) (*models.Application, error) {
	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Job == nil || application.Job.EmployerID != employerID {
		return nil, apperrors.NewForbiddenError("You can only manage applications for your own jobs")
	}

	return application, nil
}

func toResponses(applications []models.Application) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, *dto.ApplicationFromModel(&applications[i]))
	}
	return responses
}
