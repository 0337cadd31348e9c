package sync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/cityguide/internal/api"
)

// ErrSyncInProgress is returned when a sync is requested while another
// pass is already running.
var ErrSyncInProgress = errors.New("sync already in progress")

// statusResetDelay is how long the terminal success/error status stays
// visible before the orchestrator drops back to idle.
const statusResetDelay = 3 * time.Second

//go:generate moq -out orchestrator_mock.go . CatalogSyncer

// CatalogSyncer is the engine surface the orchestrator drives.
type CatalogSyncer interface {
	Sync(ctx context.Context) *Result
	ForceFullSync(ctx context.Context) *Result
}

// OnlineWatcher reports connectivity and publishes transitions.
type OnlineWatcher interface {
	Online() bool
	Subscribe() <-chan bool
}

// Orchestrator serializes sync passes and exposes an observable state
// machine: idle -> syncing -> success|error -> idle. At most one pass runs
// at a time; overlapping requests are rejected, not queued.
type Orchestrator struct {
	engine  CatalogSyncer
	watcher OnlineWatcher
	logger  *slog.Logger

	broadcaster stateBroadcaster

	mu              sync.Mutex
	state           State
	resetTimer      *time.Timer
	initialSyncDone bool
}

// NewOrchestrator creates the sync orchestrator.
func NewOrchestrator(engine CatalogSyncer, watcher OnlineWatcher, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		engine:  engine,
		watcher: watcher,
		logger:  logger,
		state:   State{Status: StatusIdle},
	}
}

// State returns the current orchestrator state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Subscribe returns a channel receiving state transitions. The channel is
// buffered with the latest value; slow readers miss intermediate states.
func (o *Orchestrator) Subscribe() <-chan State {
	return o.broadcaster.subscribe()
}

// Sync runs one delta sync pass. Returns ErrSyncInProgress if a pass is
// already running and api.ErrOffline when the device has no connectivity.
func (o *Orchestrator) Sync(ctx context.Context) *Result {
	return o.run(ctx, o.engine.Sync)
}

// ForceFullSync runs one full re-download pass with the same guards.
func (o *Orchestrator) ForceFullSync(ctx context.Context) *Result {
	return o.run(ctx, o.engine.ForceFullSync)
}

// Run watches connectivity and triggers one automatic sync on the first
// transition to online (or immediately if already online). It blocks until
// ctx is cancelled.
func (o *Orchestrator) Run(ctx context.Context) {
	transitions := o.watcher.Subscribe()

	if o.watcher.Online() {
		o.initialSync(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case online := <-transitions:
			if !online {
				o.logger.Info("connectivity lost")
				continue
			}
			o.logger.Info("connectivity restored")
			o.initialSync(ctx)
		}
	}
}

// initialSync runs the once-per-process automatic sync. Later online
// transitions do not re-trigger it; callers sync explicitly.
func (o *Orchestrator) initialSync(ctx context.Context) {
	o.mu.Lock()
	done := o.initialSyncDone
	o.initialSyncDone = true
	o.mu.Unlock()
	if done {
		return
	}

	result := o.Sync(ctx)
	if result.Err != nil && !errors.Is(result.Err, ErrSyncInProgress) {
		o.logger.Warn("initial sync failed", "category", result.Category, "error", result.Err)
	}
}

func (o *Orchestrator) run(ctx context.Context, pass func(context.Context) *Result) *Result {
	if !o.watcher.Online() {
		return failureResult(api.ErrOffline)
	}

	if !o.beginSync() {
		return &Result{Err: ErrSyncInProgress, Category: FailureClient}
	}

	result := pass(ctx)
	o.finishSync(result)
	return result
}

// beginSync transitions idle/success/error -> syncing. Returns false when a
// pass is already running.
func (o *Orchestrator) beginSync() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state.Status == StatusSyncing {
		return false
	}
	if o.resetTimer != nil {
		o.resetTimer.Stop()
		o.resetTimer = nil
	}
	o.setStateLocked(State{Status: StatusSyncing, LastResult: o.state.LastResult})
	return true
}

// finishSync publishes the terminal status and arms the idle reset.
func (o *Orchestrator) finishSync(result *Result) {
	o.mu.Lock()
	defer o.mu.Unlock()

	status := StatusSuccess
	if !result.Success {
		status = StatusError
	}
	o.setStateLocked(State{Status: status, LastResult: result})

	o.resetTimer = time.AfterFunc(statusResetDelay, func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if o.state.Status == StatusSyncing {
			return
		}
		o.resetTimer = nil
		o.setStateLocked(State{Status: StatusIdle, LastResult: o.state.LastResult})
	})
}

func (o *Orchestrator) setStateLocked(state State) {
	o.state = state
	o.broadcaster.publish(state)
}
