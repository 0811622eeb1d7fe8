package toast

// Box is a notification's on-screen bounding box, captured before a
// tag-replacement close so layout does not jump.
type Box struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// MountOptions positions a notification within the display surface.
type MountOptions struct {
	// InsertBeforeID places the notification before an existing one instead
	// of appending it at the end. Empty means append.
	InsertBeforeID string
}

// Renderer is the engine's view of the display surface. It owns the visual
// node correlated by notification ID and must never mutate lifecycle state
// directly: user interactions are reported back through the Manager's
// UserClose, PointerEnter and PointerLeave methods.
//
// The Manager calls these methods while holding its internal lock, so
// implementations must not call back into the Manager from within them.
type Renderer interface {
	// Mount attaches the notification's visual representation, initially invisible.
	Mount(n *Notification, opts MountOptions)

	// Unmount detaches the notification's visual representation.
	Unmount(n *Notification)

	// SetVisible toggles the notification's visibility; used for the
	// two-phase enter reveal and the exit fade.
	SetVisible(n *Notification, visible bool)

	// MeasureBox reports the notification's current on-screen box.
	MeasureBox(n *Notification) Box

	// Freeze pins the notification at the given box while it closes during
	// tag replacement.
	Freeze(n *Notification, box Box)

	// ShowSurface makes the display surface visible.
	ShowSurface()

	// HideSurface hides the display surface once the last notification is gone.
	HideSurface()
}

// NoopRenderer discards every rendering call. Useful for headless operation
// and as an embeddable base for partial implementations.
type NoopRenderer struct{}

func (NoopRenderer) Mount(*Notification, MountOptions) {}
func (NoopRenderer) Unmount(*Notification)             {}
func (NoopRenderer) SetVisible(*Notification, bool)    {}
func (NoopRenderer) MeasureBox(*Notification) Box      { return Box{} }
func (NoopRenderer) Freeze(*Notification, Box)         {}
func (NoopRenderer) ShowSurface()                      {}
func (NoopRenderer) HideSurface()                      {}
