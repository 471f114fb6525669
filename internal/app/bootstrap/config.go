// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

const (
	defaultIdleTimeout   = 30 * time.Minute
	defaultSweepInterval = 5 * time.Minute
)

// appConfigKeys defines the configuration keys for bankadmin.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: session_key, seed_users, etc.
//   - Environment variables: BANKADMIN_SESSION_KEY, BANKADMIN_SEED_USERS, etc.
//   - Command-line flags: --session_key, --seed_users, etc.
var appConfigKeys = []config.AppKey{
	{Name: "session_key", Default: "", Desc: "Session signing key (required in production; random per process in dev when blank)"},
	{Name: "session_name", Default: console.DefaultSessionName, Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "seed_users", Default: true, Desc: "Load the demo user records at startup"},

	{Name: "console_idle_timeout", Default: "30m", Desc: "Discard a browser session's dialog state after this much inactivity (e.g., 30m, 1h)"},
	{Name: "console_sweep_interval", Default: "5m", Desc: "How often idle dialog state is swept"},

	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the header"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, BANKADMIN_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BANKADMIN", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SeedUsers: appValues.Bool("seed_users"),

		ConsoleIdleTimeout:   appValues.Duration("console_idle_timeout", defaultIdleTimeout),
		ConsoleSweepInterval: appValues.Duration("console_sweep_interval", defaultSweepInterval),

		SiteName: appValues.String("site_name"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == "" {
		return fmt.Errorf("session_key is required in prod")
	}
	if appCfg.ConsoleIdleTimeout <= 0 {
		return fmt.Errorf("console_idle_timeout must be positive, got %s", appCfg.ConsoleIdleTimeout)
	}
	if appCfg.ConsoleSweepInterval <= 0 {
		return fmt.Errorf("console_sweep_interval must be positive, got %s", appCfg.ConsoleSweepInterval)
	}
	if appCfg.ConsoleSweepInterval > appCfg.ConsoleIdleTimeout {
		logger.Warn("console sweep interval exceeds idle timeout; idle consoles will linger",
			zap.Duration("sweep_interval", appCfg.ConsoleSweepInterval),
			zap.Duration("idle_timeout", appCfg.ConsoleIdleTimeout))
	}
	return nil
}
