// internal/app/system/workers/consolecleanup.go
package workers

import (
	"sync"
	"time"

	"github.com/dalemusser/bankadmin/internal/app/system/console"
	"go.uber.org/zap"
)

// ConsoleCleanup is a background worker that drops idle consoles.
type ConsoleCleanup struct {
	registry          *console.Registry
	log               *zap.Logger
	interval          time.Duration
	inactiveThreshold time.Duration
	stopCh            chan struct{}
	stopOnce          sync.Once
	wg                sync.WaitGroup
}

// NewConsoleCleanup creates a new console cleanup worker.
//
// Parameters:
//   - reg: the console registry
//   - logger: zap logger for logging
//   - interval: how often to run cleanup (e.g., 1 minute)
//   - inactiveThreshold: how long a console must be idle before it is dropped (e.g., 30 minutes)
func NewConsoleCleanup(reg *console.Registry, logger *zap.Logger, interval, inactiveThreshold time.Duration) *ConsoleCleanup {
	return &ConsoleCleanup{
		registry:          reg,
		log:               logger,
		interval:          interval,
		inactiveThreshold: inactiveThreshold,
		stopCh:            make(chan struct{}),
	}
}

// Start begins the background cleanup loop.
func (w *ConsoleCleanup) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("console cleanup worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("inactive_threshold", w.inactiveThreshold))
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call more than once.
func (w *ConsoleCleanup) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		w.log.Info("console cleanup worker stopped")
	})
}

func (w *ConsoleCleanup) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.cleanup()
		}
	}
}

func (w *ConsoleCleanup) cleanup() {
	if n := w.registry.Sweep(w.inactiveThreshold); n > 0 {
		w.log.Info("dropped idle consoles", zap.Int("count", n))
	}
}
