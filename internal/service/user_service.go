package service

import (
	"github.com/google/uuid"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// UserService provides user-related services.
type UserService struct {
	userRepo IUserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo IUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user account.
func (s *UserService) Register(username, email, password string) (*domain.User, error) {
	// Check if the email already exists
	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, domain.ErrEmailTaken
	}

	// Create new user domain object (handles password hashing)
	newUser, err := domain.NewUser(username, email, password)
	if err != nil {
		return nil, err
	}

	// Persist user
	if err := s.userRepo.CreateUser(newUser); err != nil {
		return nil, err
	}

	return newUser, nil
}

// Login authenticates a user by email and password.
func (s *UserService) Login(email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (s *UserService) GetUserByID(id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetUserByID(id)
}

// ListOthers retrieves every user except the given one.
func (s *UserService) ListOthers(id uuid.UUID) ([]*domain.User, error) {
	return s.userRepo.ListUsersExcept(id)
}
