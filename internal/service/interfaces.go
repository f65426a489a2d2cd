package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// --- Service Interfaces ---

// IUserService defines the interface for user-related business logic.
type IUserService interface {
	Register(username, email, password string) (*domain.User, error)
	Login(email, password string) (*domain.User, error)
	GetUserByID(id uuid.UUID) (*domain.User, error)
	ListOthers(id uuid.UUID) ([]*domain.User, error)
}

// IChatService defines the interface for message routing and history.
type IChatService interface {
	SendMessage(ctx context.Context, senderID, receiverID, text string) (domain.DiscussionEntry, error)
	History(ctx context.Context, userA, userB string) ([]domain.DiscussionEntry, error)
}

// --- Repository Interfaces ---

// IUserRepository defines the interface for user persistence.
type IUserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id uuid.UUID) (*domain.User, error)
	ListUsersExcept(id uuid.UUID) ([]*domain.User, error)
}

// IConversationRepository defines the interface for conversation persistence.
type IConversationRepository interface {
	Append(ctx context.Context, userA, userB string, entry domain.DiscussionEntry) (*domain.Conversation, error)
	Find(ctx context.Context, userA, userB string) (*domain.Conversation, error)
	ListEntries(ctx context.Context, userA, userB string) ([]domain.DiscussionEntry, error)
}
