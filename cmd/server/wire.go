//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/dhananjayyadav0/chat-app-backend/internal/config"
	"github.com/dhananjayyadav0/chat-app-backend/internal/handler"
	"github.com/dhananjayyadav0/chat-app-backend/internal/hub"
	"github.com/dhananjayyadav0/chat-app-backend/internal/presence"
	"github.com/dhananjayyadav0/chat-app-backend/internal/repository/mongo"
	"github.com/dhananjayyadav0/chat-app-backend/internal/repository/postgres"
	"github.com/dhananjayyadav0/chat-app-backend/internal/service"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		// Infrastructure providers
		wire.NewSet(
			provideContext,
			providePostgresDB,
			provideMongoDB,
			provideTokenManager,
		),
		// Repository providers
		wire.NewSet(
			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			provideConversationRepository,
			wire.Bind(new(service.IConversationRepository), new(*mongo.ConversationRepository)),
		),
		// Service providers
		wire.NewSet(
			service.NewUserService,
			wire.Bind(new(service.IUserService), new(*service.UserService)),

			service.NewChatService,
			wire.Bind(new(service.IChatService), new(*service.ChatService)),
		),
		// Gateway providers
		presence.NewRegistry,
		hub.NewHub,
		handler.New,
		// App Provider
		wire.NewSet(
			wire.Struct(new(App), "*"),
		),
	)
	return nil, nil, nil
}
