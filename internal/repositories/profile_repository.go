package repositories

import (
	"errors"

	"agenthub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindAgentByUserID(userID string) (*models.AgentProfile, error)
	FindAgentByID(id string) (*models.AgentProfile, error)
	ListAgents() ([]models.AgentProfile, error)
	UpsertAgent(userID string, fields map[string]interface{}) (*models.AgentProfile, error)

	FindEmployerByUserID(userID string) (*models.EmployerProfile, error)
	UpsertEmployer(userID string, fields map[string]interface{}) (*models.EmployerProfile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) FindAgentByUserID(userID string) (*models.AgentProfile, error) {
	var profile models.AgentProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindAgentByID(id string) (*models.AgentProfile, error) {
	var profile models.AgentProfile
	err := r.db.Preload("User").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) ListAgents() ([]models.AgentProfile, error) {
	var profiles []models.AgentProfile
	err := r.db.Preload("User").Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}

// UpsertAgent creates the profile on first update, then applies the
// free-form field set.
func (r *ProfileRepositoryImpl) UpsertAgent(userID string, fields map[string]interface{}) (*models.AgentProfile, error) {
	var profile models.AgentProfile
	err := r.db.Where(models.AgentProfile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.db.Model(&profile).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.FindAgentByUserID(userID)
}

func (r *ProfileRepositoryImpl) FindEmployerByUserID(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.Preload("User").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpsertEmployer(userID string, fields map[string]interface{}) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	err := r.db.Where(models.EmployerProfile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.db.Model(&profile).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.FindEmployerByUserID(userID)
}
