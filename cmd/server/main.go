package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/dhananjayyadav0/chat-app-backend/internal/logging"
)

func main() {
	app, cleanup, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	logging.Setup(app.Config.LogFormat)

	// Run the gateway's main loop in its own goroutine.
	go app.Hub.Run()

	r := mux.NewRouter()
	app.Handler.RegisterRoutes(r)

	slog.Info("server starting", "addr", app.Config.ServerAddr)
	if err := http.ListenAndServe(app.Config.ServerAddr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
