// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops background workers. The collection is in memory and is
// discarded with the process.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Cleanup != nil {
		logger.Info("stopping console cleanup worker")
		deps.Cleanup.Stop()
	}
	return nil
}
