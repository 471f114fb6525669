// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig covers what is specific to the user admin console.
type AppConfig struct {
	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: bankadmin-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Collection
	SeedUsers bool // Load the four demo records at startup

	// Console lifecycle
	ConsoleIdleTimeout   time.Duration // Drop dialog state after this much inactivity
	ConsoleSweepInterval time.Duration // How often idle consoles are swept

	// Presentation
	SiteName string // Shown in the page header and title
}
