package hotkey

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/key"
	"github.com/dshills/hotkeys/internal/log"
)

// fakeLifecycle records hooks and fires them on demand.
type fakeLifecycle struct {
	suspend []func()
	resume  []func()
}

func (l *fakeLifecycle) OnSuspend(fn func()) { l.suspend = append(l.suspend, fn) }
func (l *fakeLifecycle) OnResume(fn func())  { l.resume = append(l.resume, fn) }

func (l *fakeLifecycle) fireSuspend() {
	for _, fn := range l.suspend {
		fn()
	}
}

func (l *fakeLifecycle) fireResume() {
	for _, fn := range l.resume {
		fn()
	}
}

// fakeWindow records focus hooks.
type fakeWindow struct {
	focus []func()
	blur  []func()
}

func (w *fakeWindow) OnFocus(fn func()) { w.focus = append(w.focus, fn) }
func (w *fakeWindow) OnBlur(fn func())  { w.blur = append(w.blur, fn) }

func (w *fakeWindow) fireBlur() {
	for _, fn := range w.blur {
		fn()
	}
}

func (w *fakeWindow) fireFocus() {
	for _, fn := range w.focus {
		fn()
	}
}

// fakeRecorder counts recorder calls.
type fakeRecorder struct {
	matched    map[string]int
	unobserved map[string]int
	delivered  map[string]int
	scopeMiss  map[string]int
	bindings   map[string]int
	panics     int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{
		matched:    make(map[string]int),
		unobserved: make(map[string]int),
		delivered:  make(map[string]int),
		scopeMiss:  make(map[string]int),
		bindings:   make(map[string]int),
	}
}

func (r *fakeRecorder) Matched(name string)         { r.matched[name]++ }
func (r *fakeRecorder) Unobserved(name string)      { r.unobserved[name]++ }
func (r *fakeRecorder) Delivered(name string)       { r.delivered[name]++ }
func (r *fakeRecorder) ScopeMiss(name string)       { r.scopeMiss[name]++ }
func (r *fakeRecorder) Bindings(name string, n int) { r.bindings[name] = n }
func (r *fakeRecorder) HandlerPanic()               { r.panics++ }

// fixture is a small document with two panes.
type fixture struct {
	doc    *element.Node
	left   *element.Node
	right  *element.Node
	input  *element.Node
	svc    *Service
	logBuf *bytes.Buffer
	rec    *fakeRecorder
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		doc:    element.NewDocument(),
		logBuf: &bytes.Buffer{},
		rec:    newFakeRecorder(),
	}
	f.left = f.doc.AppendNew("left")
	f.right = f.doc.AppendNew("right")
	f.input = f.left.AppendNew("input")

	base := []Option{
		WithRoot(f.doc),
		WithLogger(log.New(log.Config{Level: log.LevelDebug, Output: f.logBuf})),
		WithRecorder(f.rec),
	}
	f.svc = New(append(base, opts...)...)
	return f
}

// press sends key-downs for each name with the given target path.
func (f *fixture) press(target *element.Node, names ...string) (string, bool) {
	var name string
	var ok bool
	for _, n := range names {
		name, ok = f.svc.AddKeyEvent(key.NewDown(n, target.Path()))
	}
	return name, ok
}

func (f *fixture) release(target *element.Node, names ...string) {
	for _, n := range names {
		f.svc.AddKeyEvent(key.NewUp(n, target.Path()))
	}
}

func (f *fixture) logged(substr string) bool {
	return strings.Contains(f.logBuf.String(), substr)
}
