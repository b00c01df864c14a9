package services

import (
	"encoding/json"
	"errors"

	"github.com/lib/pq"

	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

type ProfileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// GetMyProfile returns the account plus the role-matched profile.
// Profile is null until the first update creates it; that is not an
// error.
func (s *ProfileService) GetMyProfile(userID string) (*dto.MyProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MyProfileResponse{User: userToDTO(user)}

	switch user.Role {
	case models.UserRoleAgent:
		profile, err := s.profileRepo.FindAgentByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return resp, nil
			}
			return nil, apperrors.InternalError(err)
		}
		resp.Profile = profile
	case models.UserRoleEmployer:
		profile, err := s.profileRepo.FindEmployerByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrProfileNotFound) {
				return resp, nil
			}
			return nil, apperrors.InternalError(err)
		}
		resp.Profile = profile
	}

	return resp, nil
}

// UpdateProfile upserts the caller's role-matched profile from the
// provided fields. Absent fields keep their stored values. A name
// change is written through to the account so tokens and listings
// agree.
func (s *ProfileService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.MyProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Name != nil && *req.Name != "" && *req.Name != user.Name {
		if err := s.userRepo.UpdateName(userID, *req.Name); err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.Name = *req.Name
	}

	switch user.Role {
	case models.UserRoleAgent:
		fields, err := agentFields(user, req)
		if err != nil {
			return nil, err
		}
		if _, err := s.profileRepo.UpsertAgent(userID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.UserRoleEmployer:
		if _, err := s.profileRepo.UpsertEmployer(userID, employerFields(req)); err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.ErrInvalidUserRole
	}

	return s.GetMyProfile(userID)
}

// ListAgents returns the public agent directory. Agent accounts that
// never filled a profile still appear, as placeholder entries built
// from the account alone.
func (s *ProfileService) ListAgents() ([]dto.AgentListEntry, error) {
	profiles, err := s.profileRepo.ListAgents()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	entries := make([]dto.AgentListEntry, 0, len(profiles))
	seen := make(map[string]struct{}, len(profiles))
	for i := range profiles {
		entries = append(entries, *dto.AgentEntryFromProfile(&profiles[i]))
		seen[profiles[i].UserID] = struct{}{}
	}

	agents, err := s.userRepo.FindByRole(models.UserRoleAgent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range agents {
		if _, ok := seen[agents[i].ID]; ok {
			continue
		}
		entries = append(entries, placeholderEntry(&agents[i]))
	}

	return entries, nil
}

// GetAgent resolves a directory entry by profile id, falling back to
// user id so placeholder entries stay addressable.
func (s *ProfileService) GetAgent(id string) (*dto.AgentListEntry, error) {
	profile, err := s.profileRepo.FindAgentByID(id)
	if err == nil {
		return dto.AgentEntryFromProfile(profile), nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile, err = s.profileRepo.FindAgentByUserID(id)
	if err == nil {
		return dto.AgentEntryFromProfile(profile), nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "profile", "Agent not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleAgent {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound, "profile", "Agent not found")
	}

	entry := placeholderEntry(user)
	return &entry, nil
}

func agentFields(user *models.User, req *dto.UpdateProfileRequest) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	} else {
		fields["name"] = user.Name
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Skills != nil {
		fields["skills"] = pq.StringArray(req.Skills)
	}
	if req.HourlyRate != nil {
		fields["hourly_rate"] = *req.HourlyRate
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.CV != nil {
		fields["cv"] = *req.CV
	}
	if req.Experience != nil {
		raw, err := json.Marshal(req.Experience)
		if err != nil {
			return nil, apperrors.ValidationError("experience must be serializable")
		}
		fields["experience"] = raw
	}
	return fields, nil
}

func employerFields(req *dto.UpdateProfileRequest) map[string]interface{} {
	fields := map[string]interface{}{}
	if req.CompanyName != nil {
		fields["company_name"] = *req.CompanyName
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Logo != nil {
		fields["logo"] = *req.Logo
	}
	if req.Website != nil {
		fields["website"] = *req.Website
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	return fields
}

func placeholderEntry(user *models.User) dto.AgentListEntry {
	return dto.AgentListEntry{
		ID:   user.ID,
		Name: user.Name,
		User: dto.UserDTO{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
		Skills:        []string{},
		IsPlaceholder: true,
	}
}
