package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dhananjayyadav0/chat-app-backend/internal/domain"
)

// HandleAllUsers lists every user except the caller
// (GET /api/chat/all-users).
func (h *Handler) HandleAllUsers(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		sendResponse(w, http.StatusUnauthorized, false, "Authentication required", nil)
		return
	}

	callerID, err := uuid.Parse(identity.UserID)
	if err != nil {
		sendResponse(w, http.StatusUnauthorized, false, "Invalid user identity", nil)
		return
	}

	users, err := h.userService.ListOthers(callerID)
	if err != nil {
		slog.Error("failed to list users", "error", err)
		sendResponse(w, http.StatusInternalServerError, false, "Internal server error", nil)
		return
	}

	sendResponse(w, http.StatusOK, true, "Users retrieved successfully", users)
}

// HandleConversation returns the message log between the caller and
// another user (GET /api/chat/conversation?receiverId=).
func (h *Handler) HandleConversation(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		sendResponse(w, http.StatusUnauthorized, false, "Authentication required", nil)
		return
	}

	receiverID := r.URL.Query().Get("receiverId")
	if receiverID == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Receiver ID is required"})
		return
	}

	receiverUUID, err := uuid.Parse(receiverID)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid receiver ID"})
		return
	}
	receiver, err := h.userService.GetUserByID(receiverUUID)
	if err != nil {
		slog.Error("failed to look up receiver", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}
	if receiver == nil {
		respondJSON(w, http.StatusNotFound, map[string]string{"message": "User not found"})
		return
	}

	discussions, err := h.chatService.History(r.Context(), identity.UserID, receiverID)
	if err != nil {
		slog.Error("failed to fetch conversation", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]string{"message": "Server error"})
		return
	}
	if discussions == nil {
		// The wire contract promises an array even when the pair has
		// never talked.
		discussions = []domain.DiscussionEntry{}
	}

	respondJSON(w, http.StatusOK, map[string]any{"discussions": discussions})
}
