package console

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "bankadmin-session"

	consoleIDKey = "console_id"
)

type ctxKey string

const consoleKey ctxKey = "console"

// FromRequest returns the console attached by Manager.Load.
func FromRequest(r *http.Request) (*Console, bool) {
	c, ok := r.Context().Value(consoleKey).(*Console)
	return c, ok
}

// WithConsole attaches c to the request context. Handler tests use it to
// bypass the cookie round trip.
func WithConsole(r *http.Request, c *Console) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), consoleKey, c))
}

// Manager binds browser sessions to consoles through a signed cookie.
type Manager struct {
	store    *sessions.CookieStore
	name     string
	registry *Registry
	log      *zap.Logger
}

// NewManager builds the cookie store for console sessions.
//
// In production (secure=true) cookies are Secure + SameSite=None and a
// session key is mandatory. In local dev an empty key is replaced with a
// random one, which means sessions do not survive a restart.
func NewManager(sessionKey, name, domain string, secure bool, reg *Registry, logger *zap.Logger) (*Manager, error) {
	key := []byte(sessionKey)
	if len(key) == 0 {
		if secure {
			return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
		}
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("could not generate a session key")
		}
		logger.Warn("session key not set; using a random key for this process")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}
	if name == "" {
		name = DefaultSessionName
	}

	store := sessions.NewCookieStore(key)
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("console session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.String("name", name))

	return &Manager{
		store:    store,
		name:     name,
		registry: reg,
		log:      logger,
	}, nil
}

// Registry returns the console registry behind the manager.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// Load attaches the caller's console to the request context, opening a new
// console (and setting the cookie) when the session has none or its console
// has been swept.
func (m *Manager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := m.store.Get(r, m.name)
		if err != nil {
			if scErr, ok := err.(securecookie.Error); ok && scErr.IsDecode() {
				m.log.Warn("session cookie invalid, using fresh session", zap.Error(err))
			} else {
				m.log.Error("session store error, using fresh session", zap.Error(err))
			}
		}

		id, _ := sess.Values[consoleIDKey].(string)
		c, ok := m.registry.Get(id)
		if !ok {
			c = m.registry.Open()
			sess.Values[consoleIDKey] = c.ID
			if err := sess.Save(r, w); err != nil {
				m.log.Error("session save failed", zap.Error(err))
			}
		}

		next.ServeHTTP(w, WithConsole(r, c))
	})
}
