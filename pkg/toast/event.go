package toast

// EventType identifies a lifecycle transition observed on the event bus.
type EventType string

const (
	EventQueued   EventType = "queued"   // buffered before the surface was ready
	EventOpened   EventType = "opened"   // mounted on the display surface
	EventReplaced EventType = "replaced" // closed in favor of a newer notification with the same tag
	EventPaused   EventType = "paused"   // countdown suspended
	EventResumed  EventType = "resumed"  // countdown (re)started from full duration
	EventClosed   EventType = "closed"   // left the open state
	EventRemoved  EventType = "removed"  // visual node detached
)

// Event is one lifecycle transition of one notification.
type Event struct {
	Type EventType
	ID   string
	Tag  string
}
