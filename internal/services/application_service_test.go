package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenthub_backend/internal/events"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

type workflowFixture struct {
	userRepo         *fakeUserRepo
	jobRepo          *fakeJobRepo
	applicationRepo  *fakeApplicationRepo
	notificationRepo *fakeNotificationRepo
	pusher           *fakePusher
	service          *ApplicationService

	agent    *models.User
	employer *models.User
	rival    *models.User
	job      *models.Job
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	userRepo := newFakeUserRepo()
	jobRepo := newFakeJobRepo()
	applicationRepo := newFakeApplicationRepo(jobRepo)
	notificationRepo := newFakeNotificationRepo()
	pusher := &fakePusher{}

	bus := events.NewBus()
	NewNotificationDispatcher(notificationRepo, pusher).Register(bus)

	f := &workflowFixture{
		userRepo:         userRepo,
		jobRepo:          jobRepo,
		applicationRepo:  applicationRepo,
		notificationRepo: notificationRepo,
		pusher:           pusher,
		service:          NewApplicationService(applicationRepo, jobRepo, userRepo, bus),
	}

	f.agent = &models.User{Email: "agent@example.com", Name: "Ava Agent", Role: models.UserRoleAgent}
	f.employer = &models.User{Email: "emp@example.com", Name: "Eli Employer", Role: models.UserRoleEmployer}
	f.rival = &models.User{Email: "rival@example.com", Name: "Riva Rival", Role: models.UserRoleEmployer}
	require.NoError(t, userRepo.Create(f.agent))
	require.NoError(t, userRepo.Create(f.employer))
	require.NoError(t, userRepo.Create(f.rival))

	f.job = &models.Job{EmployerID: f.employer.ID, Title: "Go Backend Engineer", Company: "Acme"}
	require.NoError(t, jobRepo.Create(f.job))

	return f
}

func (f *workflowFixture) apply(t *testing.T) *dto.ApplicationResponse {
	t.Helper()
	resp, err := f.service.Apply(f.agent.ID, models.UserRoleAgent, f.job.ID, &dto.ApplyRequest{CoverLetter: "Hi"})
	require.NoError(t, err)
	return resp
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	f := newWorkflowFixture(t)

	resp, err := f.service.Apply(f.agent.ID, models.UserRoleAgent, f.job.ID, &dto.ApplyRequest{CoverLetter: "I can do this"})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationStatusPending, resp.Status)
	assert.Equal(t, f.job.ID, resp.JobID)
	assert.Equal(t, f.agent.ID, resp.AgentID)
	assert.Equal(t, "I can do this", resp.CoverLetter)

	stored, err := f.applicationRepo.FindByJobAndAgent(f.job.ID, f.agent.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
	assert.Equal(t, "I can do this", stored.CoverLetter)
}

func TestApplyNotifiesEmployer(t *testing.T) {
	f := newWorkflowFixture(t)
	f.apply(t)

	notifications := f.notificationRepo.all()
	require.Len(t, notifications, 1)
	assert.Equal(t, f.employer.ID, notifications[0].UserID)
	assert.Equal(t, repositories.NotificationTypeApplicationReceived, notifications[0].Type)
	assert.Equal(t, "Ava Agent applied to Go Backend Engineer", notifications[0].Message)

	pushes := f.pusher.all()
	require.Len(t, pushes, 1)
	assert.Equal(t, f.employer.ID, pushes[0].UserID)
	assert.Equal(t, "notification", pushes[0].Event)
}

func TestApplyRejectsNonAgents(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.Apply(f.rival.ID, models.UserRoleEmployer, f.job.ID, &dto.ApplyRequest{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	_, err = f.applicationRepo.FindByJobAndAgent(f.job.ID, f.rival.ID)
	assert.ErrorIs(t, err, repositories.ErrApplicationNotFound)
}

func TestApplyUnknownJobIsNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.Apply(f.agent.ID, models.UserRoleAgent, "missing-job", &dto.ApplyRequest{})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestApplyTwiceIsConflict(t *testing.T) {
	f := newWorkflowFixture(t)
	f.apply(t)

	_, err := f.service.Apply(f.agent.ID, models.UserRoleAgent, f.job.ID, &dto.ApplyRequest{CoverLetter: "again"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)

	apps, err := f.applicationRepo.FindByJob(f.job.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestGetJobApplicationsRequiresOwnership(t *testing.T) {
	f := newWorkflowFixture(t)
	f.apply(t)

	_, err := f.service.GetJobApplications(f.rival.ID, f.job.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	apps, err := f.service.GetJobApplications(f.employer.ID, f.job.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)
}

func TestUpdateStatusByForeignEmployerIsForbidden(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	_, err := f.service.UpdateStatus(f.rival.ID, resp.ID, models.ApplicationStatusRejected)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	stored, err := f.applicationRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, stored.Status)
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	updated, err := f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusReviewing)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusReviewing, updated.Status)

	updated, err = f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusHired)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, updated.Status)

	// hired is terminal
	_, err = f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusRejected)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)

	stored, err := f.applicationRepo.FindByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, stored.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	_, err := f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatus("archived"))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 422, appErr.HTTPCode)
}

func TestHiredAndRejectedNotifyTheAgentOnce(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	_, err := f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusReviewing)
	require.NoError(t, err)

	// The apply notification went to the employer; reviewing adds none.
	require.Len(t, f.notificationRepo.all(), 1)

	_, err = f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusHired)
	require.NoError(t, err)

	// A direct hire is a plain status change; hire_success is reserved
	// for hires settled through the payment gateway.
	notifications := f.notificationRepo.all()
	require.Len(t, notifications, 2)
	hire := notifications[1]
	assert.Equal(t, f.agent.ID, hire.UserID)
	assert.Equal(t, repositories.NotificationTypeStatusChange, hire.Type)
	assert.Equal(t, "Congratulations! You have been hired for Go Backend Engineer", hire.Message)
	assert.Equal(t, "/dashboard", hire.Link)
}

func TestRejectionNotificationMessage(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	_, err := f.service.UpdateStatus(f.employer.ID, resp.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)

	notifications := f.notificationRepo.all()
	require.Len(t, notifications, 2)
	rejection := notifications[1]
	assert.Equal(t, f.agent.ID, rejection.UserID)
	assert.Equal(t, repositories.NotificationTypeStatusChange, rejection.Type)
	assert.Equal(t, "Your application for Go Backend Engineer was rejected", rejection.Message)
}

func TestConfirmHireIsIdempotent(t *testing.T) {
	f := newWorkflowFixture(t)
	resp := f.apply(t)

	first, err := f.service.ConfirmHire(f.employer.ID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, first.Status)

	second, err := f.service.ConfirmHire(f.employer.ID, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusHired, second.Status)

	// apply + hire, nothing from the repeat
	notifications := f.notificationRepo.all()
	require.Len(t, notifications, 2)
	assert.Equal(t, repositories.NotificationTypeHireSuccess, notifications[1].Type)
}

func TestGetMyApplicationsIncludesJob(t *testing.T) {
	f := newWorkflowFixture(t)
	f.apply(t)

	apps, err := f.service.GetMyApplications(f.agent.ID)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.NotNil(t, apps[0].Job)
	assert.Equal(t, "Go Backend Engineer", apps[0].Job.Title)
}
