package console

import (
	"html/template"
	"sync"
	"time"

	"github.com/dalemusser/bankadmin/internal/app/system/interaction"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Console is one browser session's dialog state.
type Console struct {
	ID string

	mu       sync.Mutex
	ctl      *interaction.Controller
	lastSeen time.Time

	flashMu sync.Mutex
	flash   template.HTML
}

// SetFlash stores a message to show on the next page render.
func (c *Console) SetFlash(msg template.HTML) {
	c.flashMu.Lock()
	c.flash = msg
	c.flashMu.Unlock()
}

// TakeFlash returns the pending message and clears it.
func (c *Console) TakeFlash() template.HTML {
	c.flashMu.Lock()
	defer c.flashMu.Unlock()
	msg := c.flash
	c.flash = ""
	return msg
}

// With runs fn while holding the console lock, so intents from the same
// browser session are applied one at a time.
func (c *Console) With(fn func(ctl *interaction.Controller)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.ctl)
}

// Registry tracks live consoles by id. All consoles commit to the same
// user collection.
type Registry struct {
	users interaction.Collection
	log   *zap.Logger
	now   func() time.Time

	mu       sync.Mutex
	consoles map[string]*Console
}

// NewRegistry returns an empty registry whose consoles commit to users.
func NewRegistry(users interaction.Collection, logger *zap.Logger) *Registry {
	return &Registry{
		users:    users,
		log:      logger,
		now:      time.Now,
		consoles: make(map[string]*Console),
	}
}

// Open creates a console with a fresh id.
func (r *Registry) Open() *Console {
	c := &Console{
		ID:       uuid.NewString(),
		ctl:      interaction.New(r.users, r.log),
		lastSeen: r.now(),
	}
	r.mu.Lock()
	r.consoles[c.ID] = c
	r.mu.Unlock()
	r.log.Debug("console opened", zap.String("console_id", c.ID))
	return c
}

// Get returns the console with id and marks it as seen.
func (r *Registry) Get(id string) (*Console, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.consoles[id]
	if ok {
		c.lastSeen = r.now()
	}
	return c, ok
}

// Len returns the number of live consoles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.consoles)
}

// Sweep drops consoles not seen for longer than idle and returns how many
// were dropped. Their open dialogs and staged buffers are discarded.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, c := range r.consoles {
		if c.lastSeen.Before(cutoff) {
			delete(r.consoles, id)
			n++
		}
	}
	return n
}
