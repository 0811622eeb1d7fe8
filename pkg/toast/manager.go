package toast

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/events"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/scheduler"
)

// ErrNilRenderer is returned when a Manager is constructed without a renderer.
var ErrNilRenderer = errors.New("renderer cannot be nil")

// Manager orchestrates the notification lifecycle: the pre-ready queue, the
// tag replacement protocol, the auto-hide slot limiter, and global
// pause/resume. All methods are safe for concurrent use; every state
// mutation happens as one atomic step under the Manager's lock, so the open
// count and slot assignment are never observed mid-update.
type Manager struct {
	mu sync.Mutex

	renderer Renderer
	sched    scheduler.Scheduler
	bus      *events.Bus[Event]
	log      *slog.Logger
	cfg      Config

	ready  bool
	closed bool

	// pending buffers notifications created before the surface is ready, FIFO.
	pending []*Notification

	// mounted holds notifications in display order, including closed ones
	// whose exit animation has not finished yet.
	mounted []*Notification

	byID      map[string]*Notification
	openCount int
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the logger for the Manager.
func WithLogger(log *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithScheduler replaces the default realtime scheduler; tests inject a fake.
func WithScheduler(s scheduler.Scheduler) ManagerOption {
	return func(m *Manager) {
		if s != nil {
			m.sched = s
		}
	}
}

// WithConfig overrides the engine tunables.
func WithConfig(cfg Config) ManagerOption {
	return func(m *Manager) {
		m.cfg = cfg.normalized()
	}
}

// New creates a notification manager rendering through the given Renderer.
func New(renderer Renderer, opts ...ManagerOption) (*Manager, error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}

	m := &Manager{
		renderer: renderer,
		sched:    scheduler.NewRealtime(),
		log:      slog.Default(),
		cfg:      DefaultConfig(),
		byID:     make(map[string]*Notification),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.bus = events.NewBus[Event](m.cfg.EventBuffer)
	return m, nil
}

// MustNew creates a notification manager and panics on construction failure.
func MustNew(renderer Renderer, opts ...ManagerOption) *Manager {
	m, err := New(renderer, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Notify creates a notification and either starts it immediately or, while
// the display surface is not ready yet, buffers it in call order. It never
// fails: malformed tag and category labels degrade to "absent".
func (m *Manager) Notify(content any, opts ...NotifyOption) *Handle {
	n := newNotification(content, opts...)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return &Handle{m: m, n: n}
	}

	if !m.ready {
		m.pending = append(m.pending, n)
		m.publish(EventQueued, n)
		m.log.Debug("notification queued",
			logger.NotificationID(n.id),
			logger.Tag(n.opts.Tag),
		)
		return &Handle{m: m, n: n}
	}

	m.start(n)
	return &Handle{m: m, n: n}
}

// SurfaceReady signals the one-time initialization of the display surface and
// flushes the pre-ready buffer in FIFO order. Subsequent calls are no-ops.
func (m *Manager) SurfaceReady() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ready || m.closed {
		return
	}
	m.ready = true

	buffered := m.pending
	m.pending = nil
	for _, n := range buffered {
		m.start(n)
	}
}

// Pause suspends the countdown of every open notification, e.g. while the
// pointer hovers over the display surface.
func (m *Manager) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.mounted {
		if n.open() {
			m.pause(n)
		}
	}
}

// Resume restarts countdowns for the first AutoHideLimit eligible
// notifications in display order; the rest stay paused.
func (m *Manager) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.promote()
}

// UserClose closes the notification with the given ID in response to user
// input forwarded by the renderer. Unknown IDs are ignored.
func (m *Manager) UserClose(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n, ok := m.byID[id]; ok {
		m.close(n)
	}
}

// PointerEnter is forwarded by the renderer when the pointer enters the
// display surface; it suspends all countdowns.
func (m *Manager) PointerEnter() {
	m.Pause()
}

// PointerLeave is forwarded by the renderer when the pointer leaves the
// display surface; it re-assigns countdown slots.
func (m *Manager) PointerLeave() {
	m.Resume()
}

// OpenCount reports how many notifications are currently open.
func (m *Manager) OpenCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.openCount
}

// RunningCountdowns reports how many notifications have a running auto-hide
// countdown. Never exceeds the configured AutoHideLimit.
func (m *Manager) RunningCountdowns() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, n := range m.mounted {
		if n.eligible() && !n.paused {
			count++
		}
	}
	return count
}

// Subscribe registers an observer of lifecycle events. The subscription is
// closed when ctx is cancelled.
func (m *Manager) Subscribe(ctx context.Context) *events.Subscription[Event] {
	return m.bus.Subscribe(ctx)
}

// SetAutoHideDuration changes the countdown length for future (re)starts.
// Non-positive values are ignored.
func (m *Manager) SetAutoHideDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.cfg.AutoHideDuration = d
	}
}

// SetAutoHideLimit changes how many countdowns may run at once and
// re-assigns slots immediately. Non-positive values are ignored.
func (m *Manager) SetAutoHideLimit(limit int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 {
		return
	}
	m.cfg.AutoHideLimit = limit
	m.promote()
}

// Close tears the manager down: cancels every timer and closes the event
// bus. Held handles stay valid to call but become no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	for _, n := range m.byID {
		if n.cancelHide != nil {
			n.cancelHide()
			n.cancelHide = nil
		}
		if n.cancelRemove != nil {
			n.cancelRemove()
			n.cancelRemove = nil
		}
	}
	m.mu.Unlock()

	m.bus.Close()
}

// start transitions a notification from queued to open: bumps the open
// count, resolves tag conflicts, mounts the node, and consults the limiter.
// No-op unless the notification is still queued. Callers hold m.mu.
func (m *Manager) start(n *Notification) {
	if n.sm.Current() != StateQueued {
		return
	}
	if err := n.sm.Fire(context.Background(), eventStart, nil); err != nil {
		return
	}

	m.openCount++
	m.byID[n.id] = n

	if m.openCount == 1 {
		m.renderer.ShowSurface()
	}

	replaced := m.replaceByTag(n)
	if replaced == "" {
		// Fresh mount at the end of the surface: two-phase reveal so the
		// enter transition is observable. The notification mounts invisible
		// and becomes visible two render opportunities later.
		m.mounted = append(m.mounted, n)
		m.renderer.Mount(n, MountOptions{})
		m.sched.AfterPaint(func() {
			m.sched.AfterPaint(func() {
				m.mu.Lock()
				defer m.mu.Unlock()
				if !m.closed && n.open() {
					m.renderer.SetVisible(n, true)
				}
			})
		})
	} else {
		m.renderer.Mount(n, MountOptions{InsertBeforeID: replaced})
		m.renderer.SetVisible(n, true)
	}

	m.publish(EventOpened, n)
	m.log.Debug("notification opened",
		logger.NotificationID(n.id),
		logger.Tag(n.opts.Tag),
	)
	m.promote()
}

// replaceByTag closes every open notification sharing n's tag, freezing each
// in place first, and inserts n at the position of the first match. Returns
// the ID the renderer should insert before, or "" when n simply appends.
func (m *Manager) replaceByTag(n *Notification) string {
	if n.opts.Tag == "" {
		return ""
	}

	var matches []*Notification
	for _, other := range m.mounted {
		if other != n && other.open() && other.opts.Tag == n.opts.Tag {
			matches = append(matches, other)
		}
	}
	if len(matches) == 0 {
		return ""
	}

	first := matches[0]
	at := slices.Index(m.mounted, first)

	for _, match := range matches {
		m.renderer.Freeze(match, m.renderer.MeasureBox(match))
		m.publish(EventReplaced, match)
		m.close(match)
	}

	m.mounted = slices.Insert(m.mounted, at, n)

	m.log.Info("notification replaced by tag",
		logger.Tag(n.opts.Tag),
		logger.NotificationID(n.id),
		slog.Int("replaced_count", len(matches)),
	)
	return first.id
}

// close transitions a notification from open to closed: cancels its
// countdown, drops it from the eligible set, re-assigns auto-hide slots, and
// schedules removal after the exit animation. No-op unless open. Callers
// hold m.mu.
func (m *Manager) close(n *Notification) {
	if !n.open() {
		return
	}
	if err := n.sm.Fire(context.Background(), eventClose, nil); err != nil {
		return
	}

	m.openCount--
	m.pause(n)

	// A closing notification must not hold a countdown slot while its exit
	// animation plays out.
	n.autoHide = false

	m.promote()

	m.renderer.SetVisible(n, false)
	m.publish(EventClosed, n)
	m.log.Debug("notification closed",
		logger.NotificationID(n.id),
		logger.Tag(n.opts.Tag),
		slog.Int("open_count", m.openCount),
	)

	n.cancelRemove = m.sched.AfterDelay(m.cfg.RemoveDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.remove(n)
	})
}

// remove detaches the notification once its exit animation has finished,
// hiding the surface first when nothing is open anymore. Callers hold m.mu.
func (m *Manager) remove(n *Notification) {
	if m.closed {
		return
	}
	n.cancelRemove = nil

	at := slices.Index(m.mounted, n)
	if at >= 0 {
		m.mounted = slices.Delete(m.mounted, at, at+1)
	}
	delete(m.byID, n.id)

	if m.openCount == 0 {
		m.renderer.HideSurface()
	}
	m.renderer.Unmount(n)
	m.publish(EventRemoved, n)
}

// pause suspends a notification's countdown. No-op when already paused.
// Callers hold m.mu.
func (m *Manager) pause(n *Notification) {
	if n.paused {
		return
	}
	if n.cancelHide != nil {
		n.cancelHide()
		n.cancelHide = nil
	}
	n.paused = true
	m.publish(EventPaused, n)
}

// resume (re)starts a notification's countdown from the full duration; it is
// never a continuation of elapsed time. No-op unless the notification is
// open, paused and auto-hiding. Callers hold m.mu.
func (m *Manager) resume(n *Notification) {
	if !n.paused || !n.autoHide || !n.open() {
		return
	}
	n.paused = false

	n.cancelHide = m.sched.AfterDelay(m.cfg.AutoHideDuration, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.closed || n.paused || !n.open() {
			return
		}
		n.cancelHide = nil
		m.close(n)
	})

	m.publish(EventResumed, n)
}

// promote enforces the slot rule: among notifications eligible for auto-hide
// in display order, the first AutoHideLimit run a countdown and the rest stay
// paused. The re-evaluation is deliberately global rather than limited to a
// freed slot, so out-of-order closes always promote the first-N set.
// Callers hold m.mu.
func (m *Manager) promote() {
	ordinal := 0
	for _, n := range m.mounted {
		if !n.eligible() {
			continue
		}
		ordinal++
		if ordinal <= m.cfg.AutoHideLimit {
			m.resume(n)
		} else {
			m.pause(n)
		}
	}
}

// publish emits a lifecycle event; delivery is non-blocking.
func (m *Manager) publish(t EventType, n *Notification) {
	m.bus.Publish(Event{Type: t, ID: n.id, Tag: n.opts.Tag})
}
