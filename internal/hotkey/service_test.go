package hotkey

import (
	"errors"
	"testing"

	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/input/key"
)

func TestService_RegisterNormalizes(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("kill", []string{"Ctrl+K"}, nil)
	f.svc.Register("kill2", []string{"k+ctrl"}, nil)

	a, _ := f.svc.Registry().Get("kill")
	b, _ := f.svc.Registry().Get("kill2")
	if !a.Combinations()[0].Equal(b.Combinations()[0]) {
		t.Errorf("combinations differ: %v vs %v", a.Combinations(), b.Combinations())
	}
}

func TestService_RegisterDuplicateKeepsOriginal(t *testing.T) {
	f := newFixture(t)

	if !f.svc.Register("save", []string{"ctrl+s"}, f.left) {
		t.Fatal("first Register() = false")
	}
	if f.svc.Register("save", []string{"ctrl+w"}, f.right) {
		t.Error("second Register() = true, want false")
	}

	sc, _ := f.svc.Registry().Get("save")
	if sc.Scope() != f.left {
		t.Error("duplicate registration changed the scope")
	}
	if !sc.Holds(key.Normalize("ctrl+s")) || sc.Holds(key.Normalize("ctrl+w")) {
		t.Errorf("duplicate registration changed combinations: %v", sc)
	}
	if !f.logged("hotkey already registered") {
		t.Error("expected debug log for duplicate registration")
	}
}

func TestService_RegisterDefaultScope(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)
	f.svc.Register("b", []string{"b"}, "no such element")

	for _, name := range []string{"a", "b"} {
		sc, _ := f.svc.Registry().Get(name)
		if sc.Scope() != f.doc {
			t.Errorf("%s: Scope() = %v, want document", name, sc.Scope())
		}
	}
}

func TestService_Match(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"combination", []string{"Control", "k"}, "kill"},
		{"reverse order", []string{"k", "Control"}, "kill"},
		{"synonym", []string{"m"}, "kill"},
		{"extra key", []string{"Control", "k", "Shift"}, ""},
		{"prefix", []string{"Control"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.svc.Register("kill", []string{"control+k", "m"}, nil)
			f.svc.On("kill", func(key.Event) {}, nil)

			f.press(f.input, tt.keys...)
			got, ok := f.svc.PressingHotkey()
			if tt.want == "" {
				if ok {
					t.Errorf("PressingHotkey() = %q, want none", got)
				}
				return
			}
			if !ok || got != tt.want {
				t.Errorf("PressingHotkey() = %q, %v; want %q", got, ok, tt.want)
			}
		})
	}
}

func TestService_AddKeyEventReturnsMatch(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("kill", []string{"control+k"}, nil)
	f.svc.On("kill", func(key.Event) {}, nil)

	if name, ok := f.press(f.input, "Control"); ok {
		t.Errorf("AddKeyEvent(control) = %q, want no match", name)
	}
	if name, ok := f.press(f.input, "k"); !ok || name != "kill" {
		t.Errorf("AddKeyEvent(k) = %q, %v; want kill", name, ok)
	}

	f.release(f.input, "k")
	if _, ok := f.svc.PressingHotkey(); ok {
		t.Error("match should clear after release")
	}
	f.release(f.input, "Control")
	if got := f.svc.Pressed(); !got.IsEmpty() {
		t.Errorf("Pressed() = %v, want empty", got)
	}
}

func TestService_KeyUpCanMatch(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("kill", []string{"control+k"}, nil)

	var calls int
	f.svc.On("kill", func(ev key.Event) {
		calls++
		if ev.Kind != key.KindUp {
			t.Errorf("triggering event kind = %v, want keyup", ev.Kind)
		}
	}, nil)

	f.press(f.input, "Control", "Shift", "k")
	f.release(f.input, "Shift")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestService_OtherEventKindsIgnored(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)
	f.svc.On("a", func(key.Event) { t.Error("unexpected delivery") }, nil)

	name, ok := f.svc.AddKeyEvent(key.Event{Kind: key.KindOther, Key: "a", Path: f.input.Path()})
	if ok || name != "" {
		t.Errorf("AddKeyEvent(other) = %q, %v", name, ok)
	}
	if !f.svc.Pressed().IsEmpty() {
		t.Error("other event kind changed the pressed set")
	}
}

func TestService_UnobservedMatch(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("kill", []string{"control+k"}, nil)

	name, ok := f.press(f.input, "Control", "k")
	if ok {
		t.Errorf("AddKeyEvent() = %q, want no match without listeners", name)
	}
	if got, ok := f.svc.PressingHotkey(); ok {
		t.Errorf("PressingHotkey() = %q, want none", got)
	}
	if !f.logged("nothing is listening") {
		t.Errorf("expected warning, log:\n%s", f.logBuf.String())
	}
	if f.rec.unobserved["kill"] != 1 {
		t.Errorf("unobserved = %d, want 1", f.rec.unobserved["kill"])
	}
}

func TestService_FirstRegisteredWins(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("save", []string{"control+s"}, nil)
	f.svc.Register("search", []string{"control+s"}, nil)

	var save, search int
	f.svc.On("save", func(key.Event) { save++ }, nil)
	f.svc.On("search", func(key.Event) { search++ }, nil)

	for i := 0; i < 3; i++ {
		name, _ := f.press(f.input, "Control", "s")
		if name != "save" {
			t.Fatalf("round %d: match = %q, want save", i, name)
		}
		f.release(f.input, "s", "Control")
	}
	if save != 3 || search != 0 {
		t.Errorf("save=%d search=%d, want 3/0", save, search)
	}
}

func TestService_FirstMatchWithoutListenersBlocks(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("save", []string{"control+s"}, nil)
	f.svc.Register("search", []string{"control+s"}, nil)
	f.svc.On("search", func(key.Event) { t.Error("shadowed shortcut received delivery") }, nil)

	if name, ok := f.press(f.input, "Control", "s"); ok {
		t.Errorf("match = %q, want none", name)
	}
}

func TestService_OnUnknown(t *testing.T) {
	f := newFixture(t)

	r, err := f.svc.On("nope", func(key.Event) {}, nil)
	if r != nil {
		t.Error("expected nil Resumable")
	}
	if !errors.Is(err, ErrUnknownHotkey) {
		t.Errorf("expected ErrUnknownHotkey, got %v", err)
	}
	if !f.logged("unknown hotkey") {
		t.Error("expected error log")
	}
}

func TestService_OnNilCallback(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	if _, err := f.svc.On("a", nil, nil); err != ErrNilCallback {
		t.Errorf("expected ErrNilCallback, got %v", err)
	}
}

func TestService_StopStart(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	var calls int
	r, err := f.svc.On("a", func(key.Event) { calls++ }, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Enabled() {
		t.Fatal("On() should start the listener")
	}

	tap := func() {
		f.press(f.input, "a")
		f.release(f.input, "a")
	}

	tap()
	r.Stop()
	r.Stop()
	if r.Enabled() {
		t.Error("Enabled() = true after Stop()")
	}
	tap()
	if calls != 1 {
		t.Errorf("calls after Stop() = %d, want 1", calls)
	}

	r.Start()
	r.Start()
	tap()
	if calls != 2 {
		t.Errorf("calls after Start() = %d, want 2", calls)
	}

	sc, _ := f.svc.Registry().Get("a")
	if sc.BindingCount() != 1 {
		t.Errorf("BindingCount() = %d, want 1 after repeated Start()", sc.BindingCount())
	}
	if f.rec.bindings["a"] != 1 {
		t.Errorf("recorded bindings = %d, want 1", f.rec.bindings["a"])
	}
}

func TestService_StopDuringDispatch(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	var second *Resumable
	var secondCalls int
	f.svc.On("a", func(key.Event) { second.Stop() }, nil)
	second, _ = f.svc.On("a", func(key.Event) { secondCalls++ }, nil)

	f.press(f.input, "a")
	if secondCalls != 0 {
		t.Error("listener stopped mid-dispatch was still called")
	}
}

func TestService_MultipleListeners(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	var order []string
	f.svc.On("a", func(key.Event) { order = append(order, "first") }, nil)
	f.svc.On("a", func(key.Event) { order = append(order, "second") }, nil)

	f.press(f.input, "a")
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v", order)
	}
}

func TestService_FocusClearsPressed(t *testing.T) {
	f := newFixture(t)
	w := &fakeWindow{}
	f.svc.AttachWindow(w)
	f.svc.Register("kill", []string{"control+k"}, nil)

	var calls int
	f.svc.On("kill", func(key.Event) { calls++ }, nil)

	f.press(f.input, "Control")
	w.fireBlur()
	if !f.svc.Pressed().IsEmpty() {
		t.Errorf("Pressed() = %v after blur, want empty", f.svc.Pressed())
	}
	w.fireFocus()

	if _, ok := f.press(f.input, "k"); ok {
		t.Error("k alone after focus loss should not match control+k")
	}
	if calls != 0 {
		t.Errorf("calls = %d, want 0", calls)
	}
}

func TestService_FocusChangeKeepsCurrentMatch(t *testing.T) {
	f := newFixture(t)
	w := &fakeWindow{}
	f.svc.AttachWindow(w)
	f.svc.Register("kill", []string{"control+k"}, nil)
	f.svc.On("kill", func(key.Event) {}, nil)

	if name, ok := f.press(f.input, "Control", "k"); !ok || name != "kill" {
		t.Fatalf("match = %q, %v; want kill", name, ok)
	}

	w.fireBlur()
	if !f.svc.Pressed().IsEmpty() {
		t.Errorf("Pressed() = %v after blur, want empty", f.svc.Pressed())
	}
	if got, ok := f.svc.PressingHotkey(); !ok || got != "kill" {
		t.Errorf("PressingHotkey() = %q, %v after blur; want kill, true", got, ok)
	}

	// The next transition recomputes from the cleared set.
	f.press(f.input, "x")
	if got, ok := f.svc.PressingHotkey(); ok {
		t.Errorf("PressingHotkey() = %q after next key, want none", got)
	}
}

func TestService_ScopeFiltering(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("save", []string{"control+s"}, nil)

	var leftCalls, rightCalls int
	f.svc.On("save", func(key.Event) { leftCalls++ }, f.left)
	f.svc.On("save", func(key.Event) { rightCalls++ }, f.right)

	name, ok := f.press(f.input, "Control", "s")
	if !ok || name != "save" {
		t.Fatalf("match = %q, %v; want save", name, ok)
	}
	if got, _ := f.svc.PressingHotkey(); got != "save" {
		t.Errorf("PressingHotkey() = %q, want save", got)
	}
	if leftCalls != 1 {
		t.Errorf("left listener calls = %d, want 1", leftCalls)
	}
	if rightCalls != 0 {
		t.Errorf("right listener calls = %d, want 0", rightCalls)
	}
	if f.rec.scopeMiss["save"] != 1 || f.rec.delivered["save"] != 1 {
		t.Errorf("scopeMiss=%d delivered=%d", f.rec.scopeMiss["save"], f.rec.delivered["save"])
	}
	if s := f.svc.Stats(); s.EventsFiltered != 1 || s.EventsDelivered != 1 {
		t.Errorf("Stats() = %+v, want 1 filtered and 1 delivered", s)
	}
}

func TestService_ShortcutScopeFallback(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("save", []string{"control+s"}, f.right)

	var calls int
	f.svc.On("save", func(key.Event) { calls++ }, nil)

	f.press(f.input, "Control", "s")
	f.release(f.input, "s", "Control")
	if calls != 0 {
		t.Error("listener without scope should use the shortcut scope")
	}

	f.press(f.right, "Control", "s")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestService_HandleResolvedAtDelivery(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("save", []string{"control+s"}, nil)

	h := element.NewHandle(nil)
	var calls int
	f.svc.On("save", func(key.Event) { calls++ }, h)

	// Unresolved handle falls back to the document.
	f.press(f.right, "Control", "s")
	f.release(f.right, "s", "Control")
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	h.Current = f.left
	f.press(f.right, "Control", "s")
	f.release(f.right, "s", "Control")
	if calls != 1 {
		t.Errorf("calls = %d after mounting handle on left, want 1", calls)
	}

	f.press(f.input, "Control", "s")
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}

func TestService_SuspendResume(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	lc := &fakeLifecycle{}
	enabled, err := f.svc.OnWithin(lc, "a", func(key.Event) {}, nil)
	if err != nil {
		t.Fatal(err)
	}
	stopped, _ := f.svc.OnWithin(lc, "a", func(key.Event) {}, nil)
	stopped.Stop()

	lc.fireSuspend()
	if enabled.Enabled() || stopped.Enabled() {
		t.Error("listeners should be stopped while suspended")
	}

	lc.fireResume()
	if !enabled.Enabled() {
		t.Error("enabled listener was not resumed")
	}
	if stopped.Enabled() {
		t.Error("stopped listener was started by resume")
	}
}

func TestResumable_SuspendTwice(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)
	r, _ := f.svc.On("a", func(key.Event) {}, nil)

	r.Suspend()
	r.Suspend()
	r.Resume()
	if !r.Enabled() {
		t.Error("second Suspend() overwrote the recorded state")
	}
}

func TestResumable_ResumeWithoutSuspend(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)
	r, _ := f.svc.On("a", func(key.Event) {}, nil)

	r.Stop()
	r.Resume()
	if r.Enabled() {
		t.Error("Resume() without Suspend() started the listener")
	}
}

func TestService_ListenerPanic(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)

	var after int
	f.svc.On("a", func(key.Event) { panic("boom") }, nil)
	f.svc.On("a", func(key.Event) { after++ }, nil)

	if _, ok := f.press(f.input, "a"); !ok {
		t.Error("expected match")
	}
	if after != 1 {
		t.Error("listener after a panicking one was not called")
	}
	if f.rec.panics != 1 {
		t.Errorf("panics = %d, want 1", f.rec.panics)
	}
	if !f.logged("hotkey listener panicked") {
		t.Error("expected panic to be logged")
	}
}

// countingSource counts Hotkeys calls.
type countingSource struct {
	hotkeys []config.Hotkey
	err     error
	calls   int
}

func (s *countingSource) Hotkeys() ([]config.Hotkey, error) {
	s.calls++
	return s.hotkeys, s.err
}

func TestService_ConfigLoadedOnce(t *testing.T) {
	src := &countingSource{hotkeys: []config.Hotkey{
		{Name: "save", Keys: []string{"ctrl+s"}},
		{Name: "find", Keys: []string{"ctrl+f"}, Scope: "right"},
	}}
	f := newFixture(t, WithConfig(src))

	if src.calls != 0 {
		t.Fatal("configuration read before first use")
	}

	f.svc.Register("quit", []string{"ctrl+q"}, nil)
	f.svc.On("save", func(key.Event) {}, nil)
	f.svc.AddKeyEvent(key.NewDown("a", nil))
	f.svc.Registry()

	if src.calls != 1 {
		t.Errorf("Hotkeys() called %d times, want 1", src.calls)
	}

	names := []string{"save", "find", "quit"}
	shortcuts := f.svc.Registry().Shortcuts()
	if len(shortcuts) != len(names) {
		t.Fatalf("registry has %d shortcuts, want %d", len(shortcuts), len(names))
	}
	for i, sc := range shortcuts {
		if sc.Name() != names[i] {
			t.Errorf("shortcut %d = %q, want %q", i, sc.Name(), names[i])
		}
	}
}

func TestService_ConfigScopeResolved(t *testing.T) {
	doc := element.NewDocument()
	right := doc.AppendNew("right")
	resolver := element.ResolverFunc(func(ref element.Ref) element.Element {
		if name, ok := ref.(string); ok {
			if n := doc.Find(name); n != nil {
				return n
			}
			return nil
		}
		return element.DefaultResolver.Resolve(ref)
	})

	svc := New(
		WithRoot(doc),
		WithResolver(resolver),
		WithConfig(config.Static{{Name: "find", Keys: []string{"ctrl+f"}, Scope: "right"}}),
	)

	sc, ok := svc.Registry().Get("find")
	if !ok {
		t.Fatal("configured shortcut missing")
	}
	if sc.Scope() != right {
		t.Errorf("Scope() = %v, want right", sc.Scope())
	}
}

func TestService_ConfigError(t *testing.T) {
	src := &countingSource{err: errors.New("disk on fire")}
	f := newFixture(t, WithConfig(src))

	if n := f.svc.Registry().Len(); n != 0 {
		t.Errorf("registry has %d shortcuts, want 0", n)
	}
	if !f.logged("disk on fire") {
		t.Error("expected configuration error to be logged")
	}

	// The service stays usable.
	if !f.svc.Register("a", []string{"a"}, nil) {
		t.Error("Register() failed after configuration error")
	}
	if src.calls != 1 {
		t.Errorf("Hotkeys() called %d times, want 1", src.calls)
	}
}

func TestService_Stats(t *testing.T) {
	f := newFixture(t)
	f.svc.Register("a", []string{"a"}, nil)
	f.svc.On("a", func(key.Event) {}, nil)

	f.press(f.input, "a")
	s := f.svc.Stats()
	if s.EventsPublished != 1 || s.EventsDelivered != 1 || s.ActiveSubscribers != 1 {
		t.Errorf("Stats() = %+v", s)
	}
}
