package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context with a short timeout for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// Fixtures bundles a user store and console registry for handler tests.
type Fixtures struct {
	t        *testing.T
	Users    *userstore.Store
	Registry *console.Registry
}

// NewFixtures returns fixtures backed by a store holding the standard seed
// records (ids 1-4).
func NewFixtures(t *testing.T) *Fixtures {
	t.Helper()
	users := userstore.New(models.SeedUsers())
	return &Fixtures{
		t:        t,
		Users:    users,
		Registry: console.NewRegistry(users, zap.NewNop()),
	}
}

// Console opens a fresh console in the registry.
func (f *Fixtures) Console() *console.Console {
	return f.Registry.Open()
}

// CreateUser adds an active record with sensible defaults and returns it.
func (f *Fixtures) CreateUser(username string, role models.Role) models.User {
	f.t.Helper()
	return f.Users.Create(models.User{
		Username: username,
		Email:    username + "@test.com",
		Phone:    "+1555000" + username,
		Role:     role,
		Status:   models.StatusActive,
	})
}

// MustGet returns the record with id or fails the test.
func (f *Fixtures) MustGet(id int) models.User {
	f.t.Helper()
	u, err := f.Users.Get(id)
	if err != nil {
		f.t.Fatalf("get user %d: %v", id, err)
	}
	return u
}
