package main

import (
	"context"
	"database/sql"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/dhananjayyadav0/chat-app-backend/internal/auth"
	"github.com/dhananjayyadav0/chat-app-backend/internal/config"
	"github.com/dhananjayyadav0/chat-app-backend/internal/handler"
	"github.com/dhananjayyadav0/chat-app-backend/internal/hub"
	"github.com/dhananjayyadav0/chat-app-backend/internal/repository/mongo"
	"github.com/dhananjayyadav0/chat-app-backend/internal/repository/postgres"
)

// App is the main application container.
type App struct {
	Config  *config.Config
	Hub     *hub.Hub
	Handler *handler.Handler
}

func provideContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	return ctx, func() { cancel() }
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	if err := postgres.RunMigrations(cfg.PostgresURL); err != nil {
		return nil, nil, err
	}
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideMongoDB(ctx context.Context, cfg *config.Config) (*mongodriver.Database, func(), error) {
	db, err := mongo.NewDB(ctx, cfg.MongoURL, cfg.MongoDatabase)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { db.Client().Disconnect(ctx) }
	return db, cleanup, nil
}

func provideConversationRepository(ctx context.Context, db *mongodriver.Database) (*mongo.ConversationRepository, error) {
	repo := mongo.NewConversationRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func provideTokenManager(cfg *config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
}
