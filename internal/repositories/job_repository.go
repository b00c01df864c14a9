package repositories

import (
	"errors"

	"agenthub_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	FindAll() ([]models.Job, error)
	FindByEmployer(employerID string) ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	// A malformed id is indistinguishable from a missing job to callers.
	if uuid.Validate(id) != nil {
		return nil, ErrJobNotFound
	}

	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
