package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	userstore "github.com/dalemusser/bankadmin/internal/app/store/users"
	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"github.com/dalemusser/bankadmin/internal/domain/models"
	"github.com/dalemusser/bankadmin/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		SessionKey:           "test-session-key-0123456789abcdef",
		SessionName:          console.DefaultSessionName,
		SeedUsers:            true,
		ConsoleIdleTimeout:   30 * time.Minute,
		ConsoleSweepInterval: 5 * time.Minute,
		SiteName:             models.DefaultSiteName,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Config                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func TestValidateConfig(t *testing.T) {
	dev := &config.CoreConfig{Env: "dev"}
	prod := &config.CoreConfig{Env: "prod"}

	if err := ValidateConfig(dev, validAppConfig(), testLogger()); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	noKey := validAppConfig()
	noKey.SessionKey = ""
	if err := ValidateConfig(dev, noKey, testLogger()); err != nil {
		t.Errorf("empty key should be allowed in dev: %v", err)
	}
	if err := ValidateConfig(prod, noKey, testLogger()); err == nil {
		t.Error("empty key should be rejected in prod")
	}

	badIdle := validAppConfig()
	badIdle.ConsoleIdleTimeout = 0
	if err := ValidateConfig(dev, badIdle, testLogger()); err == nil {
		t.Error("zero idle timeout should be rejected")
	}

	badSweep := validAppConfig()
	badSweep.ConsoleSweepInterval = -time.Second
	if err := ValidateConfig(dev, badSweep, testLogger()); err == nil {
		t.Error("negative sweep interval should be rejected")
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Collection                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func TestConnectDB_Seeds(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps, err := ConnectDB(ctx, &config.CoreConfig{Env: "dev"}, validAppConfig(), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.Users.Len() != 4 {
		t.Errorf("expected 4 seeded users, got %d", deps.Users.Len())
	}
	if deps.Consoles == nil || deps.Cleanup == nil {
		t.Fatal("expected console registry and cleanup worker")
	}
	if err := EnsureSchema(ctx, nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Errorf("EnsureSchema failed: %v", err)
	}
}

func TestEnsureSchema_RejectsDuplicateIDs(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	users := userstore.New([]models.User{
		{ID: 1, Username: "admin"},
		{ID: 2, Username: "user1"},
		{ID: 1, Username: "copy"},
	})
	deps := DBDeps{Users: users}

	err := EnsureSchema(ctx, nil, validAppConfig(), deps, testLogger())
	if err == nil {
		t.Fatal("expected duplicate id to abort startup")
	}
	if !strings.Contains(err.Error(), "duplicate user id 1") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestConnectDB_SeedHasSerials(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps, err := ConnectDB(ctx, &config.CoreConfig{Env: "dev"}, validAppConfig(), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	seen := map[uint64]bool{}
	for _, u := range deps.Users.List() {
		if u.Serial == 0 || seen[u.Serial] {
			t.Errorf("user %d: bad serial %d", u.ID, u.Serial)
		}
		seen[u.Serial] = true
	}
}

func TestConnectDB_NoSeed(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validAppConfig()
	cfg.SeedUsers = false
	deps, err := ConnectDB(ctx, &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if deps.Users.Len() != 0 {
		t.Errorf("expected empty collection, got %d", deps.Users.Len())
	}
}

func TestStartupShutdown(t *testing.T) {
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validAppConfig()
	deps, err := ConnectDB(ctx, &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	if err := Startup(ctx, &config.CoreConfig{Env: "dev"}, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	if err := Shutdown(ctx, &config.CoreConfig{Env: "dev"}, cfg, deps, testLogger()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Router                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func newTestRouter(t *testing.T) (http.Handler, DBDeps) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cfg := validAppConfig()
	deps, err := ConnectDB(ctx, &config.CoreConfig{Env: "dev"}, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB failed: %v", err)
	}
	mgr, err := console.NewManager(cfg.SessionKey, cfg.SessionName, "", false, deps.Consoles, testLogger())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return newRouter(deps, mgr, testLogger()), deps
}

// browser replays the session cookie across requests.
type browser struct {
	t       *testing.T
	h       http.Handler
	cookies []*http.Cookie
}

func (b *browser) post(target string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	if set := rec.Result().Cookies(); len(set) > 0 {
		b.cookies = set
	}
	return rec
}

func TestRouter_Health(t *testing.T) {
	h, deps := newTestRouter(t)
	deps.Consoles.Open()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var body struct {
		Status   string `json:"status"`
		Users    int    `json:"users"`
		Consoles int    `json:"consoles"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body.Status != "ok" || body.Users != 4 || body.Consoles != 1 {
		t.Errorf("unexpected health body: %+v", body)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("health check should not open a session")
	}
}

func TestRouter_AddFlowOverSession(t *testing.T) {
	h, deps := newTestRouter(t)
	b := &browser{t: t, h: h}

	rec := b.post("/users/add/open", nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("open: expected 303, got %d", rec.Code)
	}
	if len(b.cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	rec = b.post("/users/add", url.Values{
		"username": {"teller"},
		"password": {"secret1"},
		"email":    {"teller@bank.com"},
		"phone":    {"+15550009"},
		"role":     {"User"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("submit: expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/users" {
		t.Errorf("Location: got %q, want /users", loc)
	}

	u, err := deps.Users.Get(5)
	if err != nil {
		t.Fatalf("new record missing: %v", err)
	}
	if u.Username != "teller" || u.Status != models.StatusActive {
		t.Errorf("unexpected record: %+v", u)
	}
	if deps.Consoles.Len() != 1 {
		t.Errorf("expected one console, got %d", deps.Consoles.Len())
	}
}

func TestRouter_ToggleAndDelete(t *testing.T) {
	h, deps := newTestRouter(t)
	b := &browser{t: t, h: h}

	if rec := b.post("/users/4/toggle", nil); rec.Code != http.StatusSeeOther {
		t.Fatalf("toggle: expected 303, got %d", rec.Code)
	}
	u, _ := deps.Users.Get(4)
	if u.Status != models.StatusActive {
		t.Errorf("expected user3 active, got %q", u.Status)
	}

	b.post("/users/1/delete/open", nil)
	if rec := b.post("/users/delete", nil); rec.Code != http.StatusSeeOther {
		t.Fatalf("delete: expected 303, got %d", rec.Code)
	}
	if _, err := deps.Users.Get(1); err == nil {
		t.Error("expected record 1 removed")
	}
	if deps.Users.NextID() != 5 {
		t.Errorf("NextID: got %d, want 5", deps.Users.NextID())
	}
}
