package updater

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ytget/desktop-app/internal/model"
)

// result is the single terminal message a worker sends
type result struct {
	opID    string
	op      model.UpdateOp
	outcome Outcome
	err     error
}

// Controller drives the update dialog state. Every method except Progress
// must be called from the goroutine that owns the UI.
type Controller struct {
	updater Updater
	notify  func()

	state    model.UpdateState
	inflight string
	results  chan result

	done  atomic.Int64
	total atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewController creates a controller in the Idle phase. notify is called from
// worker goroutines after a result was sent, so the UI can schedule Poll.
func NewController(updater Updater, notify func()) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	if notify == nil {
		notify = func() {}
	}
	return &Controller{
		updater: updater,
		notify:  notify,
		state:   model.IdleState(),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// State returns the current update state
func (c *Controller) State() model.UpdateState {
	return c.state
}

// Busy reports whether a worker owns the current phase
func (c *Controller) Busy() bool {
	return c.state.Phase.IsBusy()
}

// Done is closed once Shutdown has been called
func (c *Controller) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Progress returns downloaded and total bytes of the running apply
func (c *Controller) Progress() (done, total int64) {
	return c.done.Load(), c.total.Load()
}

// StartCheck moves to Checking and runs a release check in the background
func (c *Controller) StartCheck() error {
	if c.Busy() {
		return ErrBusy
	}
	c.state = model.UpdateState{Phase: model.UpdatePhaseChecking}
	c.launch(model.UpdateOpCheck, func(ctx context.Context) (Outcome, error) {
		return c.updater.Check(ctx)
	})
	return nil
}

// StartApply moves to Downloading and applies the update in the background.
// It is allowed from Available and from an Error left by a failed apply.
func (c *Controller) StartApply() error {
	if c.Busy() {
		return ErrBusy
	}
	switch {
	case c.state.Phase == model.UpdatePhaseAvailable:
	case c.state.Phase == model.UpdatePhaseError && c.state.FailedOp == model.UpdateOpApply:
	default:
		return ErrInvalidTransition
	}

	version := c.state.Version
	c.done.Store(0)
	c.total.Store(0)
	c.state = model.UpdateState{Phase: model.UpdatePhaseDownloading, Version: version}
	c.launch(model.UpdateOpApply, func(ctx context.Context) (Outcome, error) {
		return c.updater.Apply(ctx, version, func(done, total int64) {
			c.done.Store(done)
			c.total.Store(total)
		})
	})
	return nil
}

// launch spawns one worker with its own one-shot channel
func (c *Controller) launch(op model.UpdateOp, run func(ctx context.Context) (Outcome, error)) {
	opID := uuid.NewString()
	ch := make(chan result, 1)
	c.inflight = opID
	c.results = ch

	log.Printf("Update %s started: op=%s", op, opID)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		outcome, err := run(c.ctx)
		ch <- result{opID: opID, op: op, outcome: outcome, err: err}
		c.notify()
	}()
}

// Poll applies a finished worker's result without blocking. It returns true
// when the state changed.
func (c *Controller) Poll() bool {
	if c.results == nil {
		return false
	}

	var r result
	select {
	case r = <-c.results:
	default:
		return false
	}
	c.results = nil

	if r.opID != c.inflight {
		log.Printf("Discarding stale update result: op=%s", r.opID)
		return false
	}
	c.inflight = ""

	log.Printf("Update %s finished: op=%s available=%v applied=%v err=%v",
		r.op, r.opID, r.outcome.Available, r.outcome.Applied, r.err)

	switch {
	case r.err != nil:
		c.state = model.UpdateState{
			Phase:    model.UpdatePhaseError,
			Version:  c.state.Version,
			Message:  r.err.Error(),
			FailedOp: r.op,
		}
	case r.op == model.UpdateOpCheck && r.outcome.Available:
		c.state = model.UpdateState{Phase: model.UpdatePhaseAvailable, Version: r.outcome.Version}
	case r.op == model.UpdateOpCheck:
		c.state = model.IdleState()
	case r.outcome.Applied:
		c.state = model.UpdateState{Phase: model.UpdatePhaseDownloaded, Version: r.outcome.Version}
	default:
		// nothing newer to apply any more
		c.state = model.IdleState()
	}
	return true
}

// Dismiss returns to Idle from Available, Downloaded or Error
func (c *Controller) Dismiss() error {
	if c.Busy() {
		return ErrBusy
	}
	c.state = model.IdleState()
	return nil
}

// Retry re-runs the operation that failed
func (c *Controller) Retry() error {
	switch c.state.RetryPhase() {
	case model.UpdatePhaseChecking:
		return c.StartCheck()
	case model.UpdatePhaseDownloading:
		return c.StartApply()
	default:
		return ErrInvalidTransition
	}
}

// Shutdown cancels the running worker and waits for it until ctx expires
func (c *Controller) Shutdown(ctx context.Context) error {
	c.cancel()

	finished := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
