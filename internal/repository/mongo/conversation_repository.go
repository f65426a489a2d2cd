package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

const conversationCollection = "conversations"

// ConversationRepository handles database operations for conversations.
// Each unordered user pair maps to exactly one document; the pair is
// normalized (lexicographically smaller id first) and guarded by a unique
// compound index, so the invariant holds even under concurrent
// first-message races.
type ConversationRepository struct {
	DB *mongo.Database
}

// NewConversationRepository creates a new ConversationRepository.
func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

// EnsureIndexes creates the unique index over the normalized pair.
func (r *ConversationRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.DB.Collection(conversationCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "participant_low", Value: 1},
			{Key: "participant_high", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create conversation index: %w", err)
	}
	return nil
}

// normalizePair orders two user ids so the smaller one comes first.
func normalizePair(userA, userB string) (low, high string) {
	if userA < userB {
		return userA, userB
	}
	return userB, userA
}

// Append atomically appends an entry to the pair's conversation, creating
// the conversation if it does not exist yet. A single upsert-and-push
// avoids the lookup-then-create race.
func (r *ConversationRepository) Append(ctx context.Context, userA, userB string, entry domain.DiscussionEntry) (*domain.Conversation, error) {
	low, high := normalizePair(userA, userB)
	now := time.Now().UTC()

	filter := bson.M{"participant_low": low, "participant_high": high}
	update := bson.M{
		"$push":        bson.M{"discussions": entry},
		"$set":         bson.M{"updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var conversation domain.Conversation
	err := r.DB.Collection(conversationCollection).
		FindOneAndUpdate(ctx, filter, update, opts).
		Decode(&conversation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &conversation, nil
}

// Find retrieves the conversation for a pair regardless of argument order.
// Returns nil without error when no conversation exists.
func (r *ConversationRepository) Find(ctx context.Context, userA, userB string) (*domain.Conversation, error) {
	low, high := normalizePair(userA, userB)

	var conversation domain.Conversation
	err := r.DB.Collection(conversationCollection).
		FindOne(ctx, bson.M{"participant_low": low, "participant_high": high}).
		Decode(&conversation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	return &conversation, nil
}

// ListEntries returns the ordered message log for a pair; an empty slice
// if no conversation exists.
func (r *ConversationRepository) ListEntries(ctx context.Context, userA, userB string) ([]domain.DiscussionEntry, error) {
	conversation, err := r.Find(ctx, userA, userB)
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return []domain.DiscussionEntry{}, nil
	}
	return conversation.Discussions, nil
}
