// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	dashboardfeature "github.com/dalemusser/bankadmin/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/bankadmin/internal/app/features/errors"
	healthfeature "github.com/dalemusser/bankadmin/internal/app/features/health"
	usersfeature "github.com/dalemusser/bankadmin/internal/app/features/users"
	"github.com/dalemusser/bankadmin/internal/app/resources"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the user collection, and the
// Startup hook have completed. bankadmin initializes the template engine,
// attaches each browser's console via the session middleware, and mounts
// the dashboard, users, and health features.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	consoleMgr, err := console.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, deps.Consoles, logger)
	if err != nil {
		logger.Error("console session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(deps, consoleMgr, logger), nil
}

// newRouter mounts every feature. Split from BuildHandler so the routing
// table can be exercised without booting templates.
func newRouter(deps DBDeps, consoleMgr *console.Manager, logger *zap.Logger) chi.Router {
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators.
	// Mounted ahead of the console middleware so health checks never open sessions.
	healthHandler := healthfeature.NewHandler(deps.Users, deps.Consoles, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle(resources.StaticPrefix+"/*", fileserver.Handler(resources.StaticPrefix, resources.StaticDir))

	r.Group(func(pr chi.Router) {
		// Every page gets the caller's console (dialog state) in context.
		pr.Use(consoleMgr.Load)
		pr.NotFound(func(w http.ResponseWriter, r *http.Request) {
			errorsfeature.RenderNotFound(w, r, "Page not found.", "/")
		})

		dashboardHandler := dashboardfeature.NewHandler(deps.Users, logger)
		pr.Mount("/", dashboardfeature.Routes(dashboardHandler))

		usersHandler := usersfeature.NewHandler(deps.Users, errLog, logger)
		pr.Mount("/users", usersfeature.Routes(usersHandler))
	})

	return r
}
