package di

import (
	"go.uber.org/fx"

	"github.com/usersnack/usersnack/internal/app"
	"github.com/usersnack/usersnack/internal/config"
	"github.com/usersnack/usersnack/internal/logger"
	"github.com/usersnack/usersnack/internal/pkg/auth"
	"github.com/usersnack/usersnack/internal/server/http/handlers"
	"github.com/usersnack/usersnack/internal/server/http/router"
	"github.com/usersnack/usersnack/internal/storage/postgres"
	"github.com/usersnack/usersnack/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.SnackFacade) handlers.SnackFacade { return f }),
		fx.Provide(func(s *postgres.Storage) handlers.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
