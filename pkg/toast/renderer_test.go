package toast_test

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// recordingRenderer captures every rendering call in order so tests can
// assert on sequencing (mount position, freeze-before-close, reveal phases).
type recordingRenderer struct {
	mu    sync.Mutex
	calls []string
	boxes map[string]toast.Box
}

func newRecordingRenderer() *recordingRenderer {
	return &recordingRenderer{boxes: make(map[string]toast.Box)}
}

func (r *recordingRenderer) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recordingRenderer) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func (r *recordingRenderer) Mount(n *toast.Notification, opts toast.MountOptions) {
	if opts.InsertBeforeID != "" {
		r.record("mount:%s:before:%s", n.ID(), opts.InsertBeforeID)
		return
	}
	r.record("mount:%s", n.ID())
}

func (r *recordingRenderer) Unmount(n *toast.Notification) {
	r.record("unmount:%s", n.ID())
}

func (r *recordingRenderer) SetVisible(n *toast.Notification, visible bool) {
	r.record("visible:%s:%t", n.ID(), visible)
}

func (r *recordingRenderer) MeasureBox(n *toast.Notification) toast.Box {
	r.record("measure:%s", n.ID())
	return r.boxes[n.ID()]
}

func (r *recordingRenderer) Freeze(n *toast.Notification, box toast.Box) {
	r.record("freeze:%s", n.ID())
}

func (r *recordingRenderer) ShowSurface() {
	r.record("show-surface")
}

func (r *recordingRenderer) HideSurface() {
	r.record("hide-surface")
}
