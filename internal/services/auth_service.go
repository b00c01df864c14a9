package services

import (
	"errors"

	"agenthub_backend/internal/auth"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/services/dto"
	"agenthub_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register creates an account and returns a signed token for it. The
// email is the account key; a taken email is a conflict regardless of
// role. Role defaults to employer when omitted.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.UserRoleEmployer
	}
	if role != models.UserRoleAgent && role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "auth", "An account with this email already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueAuth(user)
}

// Login verifies credentials. Unknown email and wrong password produce
// the same error so the response does not leak account existence.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueAuth(user)
}

// GetMe resolves the token subject back into the current account.
func (s *AuthService) GetMe(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err, "auth", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}

	u := userToDTO(user)
	return &u, nil
}

func (s *AuthService) issueAuth(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user.ID, string(user.Role), user.Name)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  userToDTO(user),
	}, nil
}

func userToDTO(user *models.User) dto.UserDTO {
	return dto.UserDTO{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
