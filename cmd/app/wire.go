//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/career-radar/internal/bootstrap"
	"github.com/yanqian/career-radar/internal/domain/assistant"
	"github.com/yanqian/career-radar/internal/domain/auth"
	"github.com/yanqian/career-radar/internal/domain/insight"
	"github.com/yanqian/career-radar/internal/infra/config"
	httpiface "github.com/yanqian/career-radar/internal/interface/http"
	"github.com/yanqian/career-radar/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideInsightConfig,
		provideAssistantConfig,
		provideStores,
		provideUserRepository,
		provideHistoryRepository,
		provideSnapshotStore,
		provideArchive,
		auth.NewService,
		insight.NewService,
		assistant.NewService,
		wire.Bind(new(assistant.InsightReader), new(insight.Service)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
