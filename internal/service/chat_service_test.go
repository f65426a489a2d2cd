package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// stubConversationRepo is an in-memory IConversationRepository keyed by
// the normalized pair.
type stubConversationRepo struct {
	conversations map[[2]string]*domain.Conversation
	failWith      error
}

func newStubConversationRepo() *stubConversationRepo {
	return &stubConversationRepo{conversations: make(map[[2]string]*domain.Conversation)}
}

func pairKey(userA, userB string) [2]string {
	if userA < userB {
		return [2]string{userA, userB}
	}
	return [2]string{userB, userA}
}

func (s *stubConversationRepo) Append(ctx context.Context, userA, userB string, entry domain.DiscussionEntry) (*domain.Conversation, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	key := pairKey(userA, userB)
	conversation, ok := s.conversations[key]
	if !ok {
		conversation = &domain.Conversation{ParticipantLow: key[0], ParticipantHigh: key[1]}
		s.conversations[key] = conversation
	}
	conversation.Discussions = append(conversation.Discussions, entry)
	return conversation, nil
}

func (s *stubConversationRepo) Find(ctx context.Context, userA, userB string) (*domain.Conversation, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.conversations[pairKey(userA, userB)], nil
}

func (s *stubConversationRepo) ListEntries(ctx context.Context, userA, userB string) ([]domain.DiscussionEntry, error) {
	conversation, err := s.Find(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return []domain.DiscussionEntry{}, nil
	}
	return conversation.Discussions, nil
}

func TestSendMessagePersistsEntry(t *testing.T) {
	repo := newStubConversationRepo()
	svc := NewChatService(repo)

	entry, err := svc.SendMessage(context.Background(), "alice", "bob", "hi")
	require.NoError(t, err)
	assert.Equal(t, "alice", entry.SenderID)
	assert.Equal(t, "hi", entry.Text)
	assert.False(t, entry.Read)
	assert.Nil(t, entry.ReadAt)
	assert.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.History(context.Background(), "bob", "alice")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hi", entries[0].Text)
}

func TestSendMessageRejectsEmptyText(t *testing.T) {
	repo := newStubConversationRepo()
	svc := NewChatService(repo)

	_, err := svc.SendMessage(context.Background(), "alice", "bob", "")
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
	assert.Empty(t, repo.conversations, "nothing may be appended on validation failure")
}

func TestSendMessageRejectsMissingReceiver(t *testing.T) {
	repo := newStubConversationRepo()
	svc := NewChatService(repo)

	_, err := svc.SendMessage(context.Background(), "alice", "", "hi")
	assert.ErrorIs(t, err, domain.ErrInvalidMessage)
	assert.Empty(t, repo.conversations)
}

func TestSendMessagePropagatesStoreFailure(t *testing.T) {
	repo := newStubConversationRepo()
	repo.failWith = domain.ErrStoreUnavailable
	svc := NewChatService(repo)

	_, err := svc.SendMessage(context.Background(), "alice", "bob", "hi")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestHistoryPreservesAppendOrder(t *testing.T) {
	repo := newStubConversationRepo()
	svc := NewChatService(repo)

	texts := []string{"one", "two", "three"}
	for _, text := range texts {
		_, err := svc.SendMessage(context.Background(), "alice", "bob", text)
		require.NoError(t, err)
	}

	entries, err := svc.History(context.Background(), "alice", "bob")
	require.NoError(t, err)
	require.Len(t, entries, len(texts))
	for i, text := range texts {
		assert.Equal(t, text, entries[i].Text)
	}
	assert.Equal(t, "three", entries[len(entries)-1].Text, "new entry must be the last element")
}

func TestHistoryIsEmptyWithoutConversation(t *testing.T) {
	svc := NewChatService(newStubConversationRepo())

	entries, err := svc.History(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
