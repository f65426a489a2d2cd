package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/dhananjayyadav0/chat-app-backend/internal/auth"
	"github.com/dhananjayyadav0/chat-app-backend/internal/hub"
	"github.com/dhananjayyadav0/chat-app-backend/internal/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (development)
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler wires the HTTP surface: the websocket upgrade and the thin REST
// routes for auth, user listing and conversation history.
type Handler struct {
	hub         *hub.Hub
	userService service.IUserService
	chatService service.IChatService
	tokens      *auth.TokenManager
	validate    *validator.Validate
}

// New creates a new Handler.
func New(h *hub.Hub, userService service.IUserService, chatService service.IChatService, tokens *auth.TokenManager) *Handler {
	return &Handler{
		hub:         h,
		userService: userService,
		chatService: chatService,
		tokens:      tokens,
		validate:    validator.New(),
	}
}

// RegisterRoutes mounts all routes on the router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.HandleStatus).Methods(http.MethodGet)
	r.HandleFunc("/ws", h.HandleWebSocket).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/register", h.HandleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.HandleLogin).Methods(http.MethodPost)

	chat := api.PathPrefix("/chat").Subrouter()
	chat.Use(h.Authenticate)
	chat.HandleFunc("/all-users", h.HandleAllUsers).Methods(http.MethodGet)
	chat.HandleFunc("/conversation", h.HandleConversation).Methods(http.MethodGet)
}

// HandleWebSocket upgrades an authenticated connection and hands it to the
// hub. The token travels in connection-establishment metadata (query
// parameter or Authorization header), never in the event stream; a
// connection without a valid token is rejected before the upgrade.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		token = bearerToken(r)
	}
	if token == "" {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	claims, err := h.tokens.Verify(token)
	if err != nil {
		slog.Warn("websocket authentication failed", "error", err)
		http.Error(w, "Authentication error", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	h.hub.ServeWs(conn, claims.UserID, claims.Username)
}

// HandleStatus reports that the server is up (GET /).
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Server is up and running!",
		"status":  "OK",
	})
}
