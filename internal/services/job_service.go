package services

import (
	"errors"

	"github.com/lib/pq"

	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

// defaultCompany backfills listings posted before the employer filled
// in a company name.
const defaultCompany = "Tech Company"

type JobService struct {
	jobRepo repositories.JobRepository
}

func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// CreateJob posts a new listing owned by the calling employer.
func (s *JobService) CreateJob(employerID string, req *dto.CreateJobRequest) (*models.Job, error) {
	company := req.Company
	if company == "" {
		company = defaultCompany
	}

	job := &models.Job{
		EmployerID:  employerID,
		Title:       req.Title,
		Company:     company,
		Type:        req.Type,
		Budget:      req.Budget,
		Description: req.Description,
		Skills:      pq.StringArray(req.Skills),
		Location:    req.Location,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

// ListJobs returns the public board, newest first.
func (s *JobService) ListJobs() ([]models.Job, error) {
	jobs, err := s.jobRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// ListMyJobs returns the caller's own listings, newest first.
func (s *JobService) ListMyJobs(employerID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.FindByEmployer(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

// GetJob fetches a single listing.
func (s *JobService) GetJob(id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err, "job", "Job not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}
