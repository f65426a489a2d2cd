package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is the durable message log for one unordered user pair,
// stored in MongoDB as a single document. The pair is normalized so that
// ParticipantLow < ParticipantHigh lexicographically; a unique compound
// index over the two fields guarantees at most one conversation per pair.
type Conversation struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ParticipantLow  string             `bson:"participant_low"`
	ParticipantHigh string             `bson:"participant_high"`
	Discussions     []DiscussionEntry  `bson:"discussions"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// DiscussionEntry is a single message inside a conversation. Entries are
// append-only; the read/readAt fields are reserved for a future
// read-acknowledgement path and default to unread.
type DiscussionEntry struct {
	SenderID  string     `bson:"sender_id" json:"senderId"`
	Text      string     `bson:"text" json:"text"`
	Read      bool       `bson:"read" json:"read"`
	ReadAt    *time.Time `bson:"read_at,omitempty" json:"readAt,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}

// NewDiscussionEntry builds an unread entry stamped with the current time.
func NewDiscussionEntry(senderID, text string) DiscussionEntry {
	return DiscussionEntry{
		SenderID:  senderID,
		Text:      text,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
}
