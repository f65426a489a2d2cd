package hub

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/gorilla/websocket"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
	"github.com/dhananjayyadav0/chat-app-backend/internal/presence"
	"github.com/dhananjayyadav0/chat-app-backend/internal/service"
)

// clientEvent bundles a client with one inbound event.
type clientEvent struct {
	client *Client
	event  domain.Event
}

// Hub is the realtime gateway. A single goroutine (Run) owns the
// connection set and room subscriptions and performs every presence
// mutation, so per-connection events are handled in receipt order and no
// handler races another for shared state.
type Hub struct {
	connections map[*Client]bool
	rooms       map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	inbound    chan *clientEvent

	presence    *presence.Registry
	chatService service.IChatService
}

// NewHub creates a new Hub.
func NewHub(registry *presence.Registry, chatService service.IChatService) *Hub {
	return &Hub{
		connections: make(map[*Client]bool),
		rooms:       make(map[string]map[*Client]bool),
		register:    make(chan *Client),
		unregister:  make(chan *Client),
		inbound:     make(chan *clientEvent),
		presence:    registry,
		chatService: chatService,
	}
}

// Run starts the hub's processing loop. It must be run in its own
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handleRegister(client)
		case client := <-h.unregister:
			h.handleUnregister(client)
		case evt := <-h.inbound:
			h.handleEvent(evt)
		}
	}
}

// ServeWs attaches an authenticated connection to the hub. Identity must
// already be verified; unauthenticated connections never get here.
func (h *Hub) ServeWs(conn *websocket.Conn, userID, username string) {
	client := &Client{
		UserID:   userID,
		Username: username,
		Hub:      h,
		Conn:     conn,
		Send:     make(chan []byte, 256),
	}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

func (h *Hub) handleRegister(client *Client) {
	h.connections[client] = true

	if prev, existed := h.presence.MarkOnline(client.UserID, client); existed {
		// Reconnect takeover: drop the stale connection. Its own
		// unregister becomes a no-op for presence since the handle has
		// already moved on.
		if stale, ok := prev.(*Client); ok && stale != client {
			slog.Info("stale connection replaced", "user_id", client.UserID)
			h.dropClient(stale)
		}
	}

	slog.Info("user connected", "user_id", client.UserID, "username", client.Username, "total_connections", len(h.connections))
	h.broadcastAll(domain.EventUserStatus, domain.UserStatusPayload{
		UserID: client.UserID,
		Status: domain.StatusOnline,
	})
}

func (h *Hub) handleUnregister(client *Client) {
	if _, ok := h.connections[client]; ok {
		delete(h.connections, client)
		h.leaveAllRooms(client)
		close(client.Send)
	}

	// Presence cleanup runs only while this client is still the registered
	// handle, so a fast reconnect never flaps the user offline.
	if handle, ok := h.presence.Online(client.UserID); ok && handle == client {
		h.presence.MarkOffline(client.UserID)
		h.presence.ClearTypingFrom(client.UserID)

		slog.Info("user disconnected", "user_id", client.UserID, "total_connections", len(h.connections))
		h.broadcastAll(domain.EventUserStatus, domain.UserStatusPayload{
			UserID: client.UserID,
			Status: domain.StatusOffline,
		})
	}
}

func (h *Hub) handleEvent(evt *clientEvent) {
	switch evt.event.Type {
	case domain.EventJoinChatroom:
		h.handleJoinChatroom(evt)
	case domain.EventSendMessage:
		h.handleSendMessage(evt)
	case domain.EventTyping:
		h.handleTyping(evt)
	default:
		slog.Warn("unknown event type", "type", evt.event.Type, "user_id", evt.client.UserID)
	}
}

// handleJoinChatroom subscribes the connection to a room and replies, to
// the joining client only, with the current status of the other
// participant in that room.
func (h *Hub) handleJoinChatroom(evt *clientEvent) {
	var roomToken string
	if err := json.Unmarshal(evt.event.Payload, &roomToken); err != nil || roomToken == "" {
		slog.Warn("invalid joinChatroom payload", "user_id", evt.client.UserID, "error", err)
		return
	}

	h.joinRoom(evt.client, roomToken)
	slog.Debug("user joined chatroom", "user_id", evt.client.UserID, "room", roomToken)

	userA, userB, ok := SplitRoomID(roomToken)
	if !ok {
		slog.Warn("room token is not a user pair", "room", roomToken)
		return
	}
	other := userA
	if evt.client.UserID == userA {
		other = userB
	}

	status := domain.StatusOffline
	if h.presence.IsOnline(other) {
		status = domain.StatusOnline
	}
	h.send(evt.client, domain.EventUserStatus, domain.UserStatusPayload{
		UserID: other,
		Status: status,
	})
}

// handleSendMessage routes one candidate message: validate, persist,
// then broadcast. The message event goes out only after the store
// confirmed the append; failures reach the sender alone.
func (h *Hub) handleSendMessage(evt *clientEvent) {
	sender := evt.client

	var payload domain.SendMessagePayload
	if err := json.Unmarshal(evt.event.Payload, &payload); err != nil {
		h.send(sender, domain.EventMessageError, domain.MessageErrorPayload{Error: "Invalid message data"})
		return
	}

	entry, err := h.chatService.SendMessage(context.Background(), sender.UserID, payload.ReceiverID, payload.Text)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMessage) {
			slog.Warn("invalid message data", "user_id", sender.UserID)
			h.send(sender, domain.EventMessageError, domain.MessageErrorPayload{Error: "Invalid message data"})
			return
		}
		slog.Error("failed to persist message", "user_id", sender.UserID, "error", err)
		h.send(sender, domain.EventMessageError, domain.MessageErrorPayload{Error: "Failed to send message"})
		return
	}

	roomID := RoomID(sender.UserID, payload.ReceiverID)
	h.broadcastRoom(roomID, domain.EventMessage, domain.MessagePayload{
		SenderID:   sender.UserID,
		ReceiverID: payload.ReceiverID,
		Text:       payload.Text,
		CreatedAt:  entry.CreatedAt,
	})

	// Sending implies the sender stopped typing.
	h.setTyping(sender, payload.ReceiverID, false)
}

// handleTyping validates a typing event and fans the status out to the
// shared room, sender included. Malformed events are logged and dropped.
func (h *Hub) handleTyping(evt *clientEvent) {
	var payload domain.TypingPayload
	if err := json.Unmarshal(evt.event.Payload, &payload); err != nil || payload.ReceiverID == "" || payload.IsTyping == nil {
		slog.Warn("invalid typing data", "user_id", evt.client.UserID)
		return
	}

	h.setTyping(evt.client, payload.ReceiverID, *payload.IsTyping)
}

func (h *Hub) setTyping(sender *Client, receiverID string, isTyping bool) {
	h.presence.SetTyping(sender.UserID, receiverID, isTyping)
	h.broadcastRoom(RoomID(sender.UserID, receiverID), domain.EventTypingStatus, domain.TypingStatusPayload{
		UserID:   sender.UserID,
		IsTyping: isTyping,
	})
}

// --- room membership ---

func (h *Hub) joinRoom(client *Client, roomID string) {
	room, ok := h.rooms[roomID]
	if !ok {
		room = make(map[*Client]bool)
		h.rooms[roomID] = room
	}
	room[client] = true
}

func (h *Hub) leaveAllRooms(client *Client) {
	for roomID, room := range h.rooms {
		delete(room, client)
		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

// --- delivery ---

// send marshals an event and queues it for a single client.
func (h *Hub) send(client *Client, eventType string, payload any) {
	data, ok := h.marshal(eventType, payload)
	if ok {
		h.deliver(client, data)
	}
}

// broadcastAll queues an event for every connected client.
func (h *Hub) broadcastAll(eventType string, payload any) {
	data, ok := h.marshal(eventType, payload)
	if !ok {
		return
	}
	for client := range h.connections {
		h.deliver(client, data)
	}
}

// broadcastRoom queues an event for every client subscribed to the room.
func (h *Hub) broadcastRoom(roomID string, eventType string, payload any) {
	data, ok := h.marshal(eventType, payload)
	if !ok {
		return
	}
	for client := range h.rooms[roomID] {
		h.deliver(client, data)
	}
}

func (h *Hub) marshal(eventType string, payload any) ([]byte, bool) {
	event, err := domain.NewEvent(eventType, payload)
	if err != nil {
		slog.Error("failed to marshal event payload", "type", eventType, "error", err)
		return nil, false
	}
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "type", eventType, "error", err)
		return nil, false
	}
	return data, true
}

// deliver queues a frame without blocking the loop. A full buffer means
// the client is lagging or dead; it gets dropped and its readPump's
// unregister finishes the presence cleanup.
//
// A client that already left the connection set has a closed Send
// channel, and an event of theirs may still be in flight on inbound;
// their frames are discarded. All sends and closes happen on the hub
// goroutine, so the membership check cannot race the close.
func (h *Hub) deliver(client *Client, data []byte) {
	if _, ok := h.connections[client]; !ok {
		return
	}
	select {
	case client.Send <- data:
	default:
		slog.Warn("dropping slow client", "user_id", client.UserID)
		h.dropClient(client)
	}
}

// dropClient detaches a connection from the hub maps and closes it. It
// does not touch presence; handleUnregister decides whether the user is
// actually gone.
func (h *Hub) dropClient(client *Client) {
	if _, ok := h.connections[client]; !ok {
		return
	}
	delete(h.connections, client)
	h.leaveAllRooms(client)
	close(client.Send)
	client.Conn.Close()
}
