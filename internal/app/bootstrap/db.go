// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/app/system/workers"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the in-memory user collection, seeding it when
// configured, and the console registry that commits to it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	users := userstore.New(nil)
	if appCfg.SeedUsers {
		for _, u := range models.SeedUsers() {
			users.Insert(u)
		}
	}
	logger.Info("user collection ready", zap.Int("users", users.Len()), zap.Bool("seeded", appCfg.SeedUsers))

	reg := console.NewRegistry(users, logger)
	cleanup := workers.NewConsoleCleanup(reg, logger, appCfg.ConsoleSweepInterval, appCfg.ConsoleIdleTimeout)

	return DBDeps{
		Users:    users,
		Consoles: reg,
		Cleanup:  cleanup,
	}, nil
}

// EnsureSchema has nothing to do for an in-memory collection beyond
// confirming ids are unique. A duplicate aborts startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	seen := make(map[int]struct{}, deps.Users.Len())
	for _, u := range deps.Users.List() {
		if _, dup := seen[u.ID]; dup {
			logger.Error("duplicate user id in collection", zap.Int("user_id", u.ID))
			return fmt.Errorf("duplicate user id %d", u.ID)
		}
		seen[u.ID] = struct{}{}
	}
	return nil
}
