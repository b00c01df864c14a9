package repositories

import (
	"errors"

	"agenthub_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and agent")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndAgent(jobID, agentID string) (*models.Application, error)
	FindByAgent(agentID string) ([]models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	UpdateStatus(id string, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The (job_id, agent_id) unique index
// is the authority on duplicates; two racing applies cannot both pass
// the service pre-check, but only one insert survives.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrApplicationNotFound
	}

	var application models.Application
	err := r.db.Preload("Job").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndAgent(jobID, agentID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "job_id = ? AND agent_id = ?", jobID, agentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

// FindByAgent returns the agent's applications joined with their jobs,
// newest-applied first.
func (r *ApplicationRepositoryImpl) FindByAgent(agentID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("agent_id = ?", agentID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

// FindByJob returns a job's applications joined with the applicant's
// public identity.
func (r *ApplicationRepositoryImpl) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Agent").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id string, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
