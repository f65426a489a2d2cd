package service

import (
	"context"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// ChatService routes candidate messages into the conversation store and
// serves the read-side history. Persistence always happens before the
// gateway broadcasts anything.
type ChatService struct {
	conversationRepo IConversationRepository
}

// NewChatService creates a new ChatService.
func NewChatService(conversationRepo IConversationRepository) *ChatService {
	return &ChatService{conversationRepo: conversationRepo}
}

// SendMessage validates and persists a message, returning the stored
// entry. Validation and persistence failures are surfaced to the caller
// so the gateway can notify the sender only.
func (s *ChatService) SendMessage(ctx context.Context, senderID, receiverID, text string) (domain.DiscussionEntry, error) {
	if text == "" || receiverID == "" {
		return domain.DiscussionEntry{}, domain.ErrInvalidMessage
	}

	entry := domain.NewDiscussionEntry(senderID, text)
	if _, err := s.conversationRepo.Append(ctx, senderID, receiverID, entry); err != nil {
		return domain.DiscussionEntry{}, err
	}
	return entry, nil
}

// History returns the ordered message log between two users; empty if
// they have never talked.
func (s *ChatService) History(ctx context.Context, userA, userB string) ([]domain.DiscussionEntry, error) {
	return s.conversationRepo.ListEntries(ctx, userA, userB)
}
