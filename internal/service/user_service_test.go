package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// stubUserRepo is an in-memory IUserRepository.
type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (s *stubUserRepo) CreateUser(user *domain.User) error {
	s.users[user.Email] = user
	return nil
}

func (s *stubUserRepo) GetUserByEmail(email string) (*domain.User, error) {
	return s.users[email], nil
}

func (s *stubUserRepo) GetUserByID(id uuid.UUID) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) ListUsersExcept(id uuid.UUID) ([]*domain.User, error) {
	var users []*domain.User
	for _, user := range s.users {
		if user.ID != id {
			users = append(users, user)
		}
	}
	return users, nil
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	user, err := svc.Register("alice", "alice@example.com", "s3cret-pw")
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cret-pw", user.PasswordHash)
	assert.True(t, user.CheckPassword("s3cret-pw"))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, err := svc.Register("alice", "alice@example.com", "s3cret-pw")
	require.NoError(t, err)

	_, err = svc.Register("alice2", "alice@example.com", "other-pw")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := NewUserService(newStubUserRepo())
	_, err := svc.Register("alice", "alice@example.com", "s3cret-pw")
	require.NoError(t, err)

	user, err := svc.Login("alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Login("alice@example.com", "wrong-pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "s3cret-pw")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestListOthersExcludesCaller(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	alice, err := svc.Register("alice", "alice@example.com", "s3cret-pw")
	require.NoError(t, err)
	_, err = svc.Register("bob", "bob@example.com", "s3cret-pw")
	require.NoError(t, err)

	others, err := svc.ListOthers(alice.ID)
	require.NoError(t, err)
	require.Len(t, others, 1)
	assert.Equal(t, "bob", others[0].Username)
}
