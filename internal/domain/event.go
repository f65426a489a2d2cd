package domain

import (
	"encoding/json"
	"time"
)

// Event is the standard envelope for every websocket frame, inbound and
// outbound. Payload shapes form a closed set; unrecognized types are
// dropped at the gateway.
type Event struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound event types.
const (
	EventJoinChatroom = "joinChatroom"
	EventSendMessage  = "sendMessage"
	EventTyping       = "typing"
)

// Outbound event types.
const (
	EventUserStatus   = "userStatus"
	EventTypingStatus = "typingStatus"
	EventMessage      = "message"
	EventMessageError = "messageError"
)

// User status values carried by userStatus events.
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

// SendMessagePayload is the body of an inbound 'sendMessage' event.
type SendMessagePayload struct {
	Text       string `json:"text"`
	ReceiverID string `json:"receiverId"`
}

// TypingPayload is the body of an inbound 'typing' event. IsTyping is a
// pointer so a missing or non-boolean field is distinguishable from false.
type TypingPayload struct {
	ReceiverID string `json:"receiverId"`
	IsTyping   *bool  `json:"isTyping"`
}

// UserStatusPayload is the body of an outbound 'userStatus' event.
type UserStatusPayload struct {
	UserID string `json:"userId"`
	Status string `json:"status"`
}

// TypingStatusPayload is the body of an outbound 'typingStatus' event.
type TypingStatusPayload struct {
	UserID   string `json:"userId"`
	IsTyping bool   `json:"isTyping"`
}

// MessagePayload is the body of an outbound 'message' event.
type MessagePayload struct {
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MessageErrorPayload is the body of an outbound 'messageError' event,
// delivered to the sender only.
type MessageErrorPayload struct {
	Error string `json:"error"`
}

// NewEvent marshals payload into an envelope of the given type.
func NewEvent(eventType string, payload any) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{Type: eventType, Payload: raw}, nil
}
