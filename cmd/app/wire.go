//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/thetensy/tensy-api/internal/bootstrap"
	"github.com/thetensy/tensy-api/internal/domain/auth"
	"github.com/thetensy/tensy-api/internal/domain/member"
	"github.com/thetensy/tensy-api/internal/infra/config"
	httpiface "github.com/thetensy/tensy-api/internal/interface/http"
	"github.com/thetensy/tensy-api/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideLineClient,
		provideMemberConfig,
		provideMemberRepository,
		provideMemberStore,
		auth.NewService,
		member.NewService,
		wire.Bind(new(auth.Provider), new(*auth.LineClient)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
