package presence

import "sync"

// typingKey identifies a directional typing flag: "A is typing to B" is
// independent of "B is typing to A".
type typingKey struct {
	senderID   string
	receiverID string
}

// Registry tracks which users are currently connected and which
// (sender, receiver) pairs have an active typing flag. State is entirely
// in-memory and scoped to the process lifetime; presence is ephemeral by
// nature and lost on restart.
//
// The connection handle is opaque to the registry; the gateway stores
// whatever it uses to address a connection.
type Registry struct {
	mu     sync.RWMutex
	online map[string]any
	typing map[typingKey]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		online: make(map[string]any),
		typing: make(map[typingKey]struct{}),
	}
}

// MarkOnline records a user's connection handle, overwriting any previous
// one (last writer wins, no multi-device support). The previous handle is
// returned so callers can detect a stale-connection takeover.
func (r *Registry) MarkOnline(userID string, handle any) (prev any, existed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, existed = r.online[userID]
	r.online[userID] = handle
	return prev, existed
}

// MarkOffline removes the user's presence record. No-op if absent.
func (r *Registry) MarkOffline(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.online, userID)
}

// IsOnline reports whether the user currently has a connection handle.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.online[userID]
	return ok
}

// Online returns the user's current connection handle, if any.
func (r *Registry) Online(userID string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handle, ok := r.online[userID]
	return handle, ok
}

// SetTyping inserts or removes the directional typing flag. Both
// directions are idempotent.
func (r *Registry) SetTyping(senderID, receiverID string, isTyping bool) {
	key := typingKey{senderID: senderID, receiverID: receiverID}
	r.mu.Lock()
	defer r.mu.Unlock()
	if isTyping {
		r.typing[key] = struct{}{}
	} else {
		delete(r.typing, key)
	}
}

// IsTyping reports whether the sender currently has a typing flag toward
// the receiver.
func (r *Registry) IsTyping(senderID, receiverID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.typing[typingKey{senderID: senderID, receiverID: receiverID}]
	return ok
}

// ClearTypingFrom removes every typing flag whose sender matches,
// regardless of receiver. Called on disconnect and on every message send.
func (r *Registry) ClearTypingFrom(senderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.typing {
		if key.senderID == senderID {
			delete(r.typing, key)
		}
	}
}
