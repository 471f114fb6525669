// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/bankadmin/internal/app/resources"
	"github.com/dalemusser/bankadmin/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the collection is
// built, but before the HTTP handler is built. It loads shared templates,
// applies the site name, and starts the idle console sweeper.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	if deps.Cleanup != nil {
		deps.Cleanup.Start()
		logger.Info("console cleanup worker started",
			zap.Duration("interval", appCfg.ConsoleSweepInterval),
			zap.Duration("idle_timeout", appCfg.ConsoleIdleTimeout))
	}
	return nil
}
