// Package lifecycle owns the single outstanding upload/translate operation:
// submit, cancel, retry orchestration, and the elapsed-time reporter.
package lifecycle

import (
	"context"
	"sync"
	"time"

	"github.com/menulens/menulens-go/retry"
	"github.com/menulens/menulens-go/share"
	"github.com/menulens/menulens-go/tool"
	"github.com/menulens/menulens-go/types"
)

// Transport performs the actual network call. It must honor ctx and answer a
// cancellation with an error that wraps context.Canceled.
type Transport interface {
	Send(ctx context.Context, upload types.Upload, opts types.TranslateOptions) (*types.MenuTranslation, error)
}

// Settings supplies the three request settings with caller-side defaults.
type Settings interface {
	GetString(key, def string) string
	GetBool(key string, def bool) bool
}

// EventSink receives every observable state transition, including the
// periodic elapsed-time updates. Rendering is entirely the sink's job.
type EventSink interface {
	LifecycleEvent(types.LifecycleEvent)
}

// Config wires the controller's collaborators. Transport, Settings and Sink
// are required; the rest defaults.
type Config struct {
	Transport Transport
	Settings  Settings
	Sink      EventSink
	Results   *share.Results // optional translation cache
	Retry     retry.Config
	Tick      time.Duration    // elapsed reporter interval
	Now       func() time.Time // clock, replaced in tests
}

// Controller drives one cancellable, retryable translate operation at a
// time. Starting a new one invalidates the previous token; a settlement
// arriving under a stale token never mutates visible state.
type Controller struct {
	mu sync.Mutex
	// emitMu serializes event delivery: it is held across building an event
	// under mu and handing it to the sink, so the sink observes events in
	// state-change order and no stale in-flight tick can follow a terminal
	// event. Always acquired before mu.
	emitMu sync.Mutex

	status    types.UploadStatus
	attempt   int
	token     string
	cancel    context.CancelFunc
	startedAt time.Time

	transport Transport
	settings  Settings
	sink      EventSink
	results   *share.Results
	retryCfg  retry.Config
	tick      time.Duration
	now       func() time.Time

	// OnResult, when set, receives the translation of every successful
	// operation (current token only). Used to hand dish images to the gallery.
	OnResult func(*types.MenuTranslation)
}

func New(cfg Config) *Controller {
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = retry.Default
	}
	if cfg.Tick <= 0 {
		cfg.Tick = 100 * time.Millisecond
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller{
		status:    types.UploadIdle,
		transport: cfg.Transport,
		settings:  cfg.Settings,
		sink:      cfg.Sink,
		results:   cfg.Results,
		retryCfg:  cfg.Retry,
		tick:      cfg.Tick,
		now:       cfg.Now,
	}
}

// Submit starts a new translate operation, cancelling any live one first,
// and returns the fresh operation token.
func (c *Controller) Submit(upload types.Upload) string {
	c.emitMu.Lock()
	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	token := tool.GenerateToken()
	ctx, cancel := context.WithCancel(context.Background())
	c.token = token
	c.cancel = cancel
	c.status = types.UploadInFlight
	c.attempt = 0
	c.startedAt = c.now()
	ev := c.eventLocked()
	c.mu.Unlock()

	tool.DefaultLogger.Infof("[Lifecycle] Submit %s (%s, %d bytes)", token, upload.FileName, len(upload.Data))
	c.emit(ev)
	c.emitMu.Unlock()
	go c.runReporter(ctx, token)
	go c.run(ctx, token, upload)
	return token
}

// Cancel invalidates the current token. The in-flight call observes the
// context cancellation and its settlement is discarded; cancellation is a
// terminal state, not a user-facing failure.
func (c *Controller) Cancel() {
	c.emitMu.Lock()
	c.mu.Lock()
	if c.cancel == nil {
		c.mu.Unlock()
		c.emitMu.Unlock()
		return
	}
	c.cancel()
	c.cancel = nil
	c.token = ""
	c.status = types.UploadCancelled
	c.startedAt = time.Time{}
	ev := c.eventLocked()
	c.mu.Unlock()

	tool.DefaultLogger.Infof("[Lifecycle] Cancelled current operation")
	c.emit(ev)
	c.emitMu.Unlock()
}

// Snapshot returns the current visible state.
func (c *Controller) Snapshot() types.LifecycleEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eventLocked()
}

func (c *Controller) run(ctx context.Context, token string, upload types.Upload) {
	opts := types.TranslateOptions{
		Currency:      c.settings.GetString(tool.SettingCurrency, tool.DefaultCurrency),
		Model:         c.settings.GetString(tool.SettingModel, tool.DefaultModel),
		IncludeImages: c.settings.GetBool(tool.SettingIncludeImages, true),
	}

	cacheKey := tool.SHA256Hex(upload.Data)
	if c.results != nil {
		if cached, ok := c.results.Get(cacheKey); ok {
			tool.DefaultLogger.Infof("[Lifecycle] Answering %s from result cache", token)
			c.settle(token, cached, nil)
			return
		}
	}

	var result *types.MenuTranslation
	attempt := 0
	err := retry.Do(ctx, c.retryCfg, func() error {
		c.noteAttempt(token, attempt)
		translation, sendErr := c.transport.Send(ctx, upload, opts)
		if sendErr != nil {
			if !retry.IsCancelled(sendErr) && attempt < c.retryCfg.MaxAttempts-1 {
				c.noteRetrying(token, sendErr)
			}
			attempt++
			return sendErr
		}
		result = translation
		return nil
	})

	if err == nil && c.results != nil {
		c.results.Set(cacheKey, result)
	}
	c.settle(token, result, err)
}

// noteAttempt marks the start of attempt n while the token is still current.
func (c *Controller) noteAttempt(token string, attempt int) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return
	}
	c.attempt = attempt
	c.status = types.UploadInFlight
	ev := c.eventLocked()
	c.mu.Unlock()
	if attempt > 0 {
		c.emit(ev)
	}
}

// noteRetrying marks the window between a failed attempt and the next one.
func (c *Controller) noteRetrying(token string, cause error) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		return
	}
	c.status = types.UploadRetrying
	ev := c.eventLocked()
	c.mu.Unlock()

	tool.DefaultLogger.Warnf("[Lifecycle] Attempt %d failed, retrying: %v", ev.Attempt+1, cause)
	c.emit(ev)
}

// settle applies the operation's outcome, unless the token was invalidated
// in the meantime, in which case the outcome is discarded.
func (c *Controller) settle(token string, result *types.MenuTranslation, err error) {
	c.emitMu.Lock()
	c.mu.Lock()
	if c.token != token {
		c.mu.Unlock()
		c.emitMu.Unlock()
		tool.DefaultLogger.Debugf("[Lifecycle] Discarding stale settlement for %s", token)
		return
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	switch {
	case err == nil:
		c.status = types.UploadSucceeded
	case retry.IsCancelled(err):
		c.status = types.UploadCancelled
	default:
		c.status = types.UploadFailed
	}
	c.startedAt = time.Time{}
	ev := c.eventLocked()
	if c.status == types.UploadFailed {
		ev.Message = err.Error()
	}
	onResult := c.OnResult
	c.mu.Unlock()

	switch ev.Status {
	case types.UploadSucceeded:
		tool.DefaultLogger.Infof("[Lifecycle] Operation %s succeeded after %d attempt(s)", token, ev.Attempt+1)
	case types.UploadFailed:
		tool.DefaultLogger.Errorf("[Lifecycle] Operation %s failed: %v", token, err)
	default:
		tool.DefaultLogger.Infof("[Lifecycle] Operation %s cancelled", token)
	}
	c.emit(ev)
	c.emitMu.Unlock()
	if ev.Status == types.UploadSucceeded && onResult != nil {
		onResult(result)
	}
}

func (c *Controller) eventLocked() types.LifecycleEvent {
	ev := types.LifecycleEvent{
		Status:      c.status,
		Attempt:     c.attempt,
		Token:       c.token,
		VisualPhase: types.PhaseNormal,
	}
	if !c.startedAt.IsZero() {
		elapsed := elapsedSeconds(c.now(), c.startedAt)
		ev.DisplayText = FormatElapsed(elapsed)
		ev.VisualPhase = PhaseFor(elapsed)
	}
	return ev
}

func (c *Controller) emit(ev types.LifecycleEvent) {
	if c.sink != nil {
		c.sink.LifecycleEvent(ev)
	}
}
