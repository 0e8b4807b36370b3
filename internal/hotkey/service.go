package hotkey

import (
	"fmt"
	"sync"

	"github.com/dshills/hotkeys/internal/config"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/event"
	"github.com/dshills/hotkeys/internal/input/key"
	"github.com/dshills/hotkeys/internal/input/keymap"
	"github.com/dshills/hotkeys/internal/log"
)

// Service is the hotkey engine.
type Service struct {
	registry *keymap.Registry
	bus      *event.Bus[*keymap.Shortcut, key.Event]
	pressed  *key.PressSet

	// current is the cached match for the held keys, nil when none.
	current *keymap.Shortcut

	source   config.Source
	loadOnce sync.Once

	resolver element.Resolver
	root     element.Element
	logger   *log.Logger
	recorder Recorder
}

// New creates a Service. The registry is filled from the configured source
// the first time the service is used.
func New(opts ...Option) *Service {
	s := &Service{
		registry: keymap.NewRegistry(),
		pressed:  key.NewPressSet(),
		resolver: element.DefaultResolver,
		logger:   log.Nop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.root == nil {
		s.root = element.NewDocument()
	}
	s.logger = s.logger.WithComponent("hotkey")
	s.bus = event.NewBus[*keymap.Shortcut, key.Event](event.WithPanicHandler(s.handlePanic))
	return s
}

// Register adds a named shortcut with one or more spellings. scopeRef is the
// default scope for its listeners; when it is nil or does not resolve, the
// root element is used. Registering an existing name does nothing and
// returns false.
func (s *Service) Register(name string, spellings []string, scopeRef element.Ref) bool {
	s.ensureLoaded()
	return s.register(name, spellings, scopeRef)
}

func (s *Service) register(name string, spellings []string, scopeRef element.Ref) bool {
	scope := s.resolve(scopeRef, s.root)
	if !s.registry.Register(name, spellings, scope) {
		s.logger.Debug("hotkey already registered", "hotkey", name)
		return false
	}
	s.logger.Debug("hotkey registered", "hotkey", name, "spellings", spellings)
	return true
}

// On attaches callback to the named shortcut and starts listening. The
// callback runs only for events whose path contains the listener's scope:
// scopeRef when it resolves, the shortcut's default scope otherwise.
// scopeRef is resolved at each delivery, so a Handle may be filled in later.
func (s *Service) On(name string, callback func(key.Event), scopeRef element.Ref) (*Resumable, error) {
	s.ensureLoaded()

	if callback == nil {
		return nil, ErrNilCallback
	}
	sc, ok := s.registry.Get(name)
	if !ok {
		s.logger.Error("cannot listen to unknown hotkey", "hotkey", name)
		return nil, fmt.Errorf("%w: %q", ErrUnknownHotkey, name)
	}

	r := &Resumable{
		svc:      s,
		shortcut: sc,
		ref:      scopeRef,
		callback: callback,
	}
	r.Start()
	return r, nil
}

// OnWithin is On with the returned Resumable bound to lc.
func (s *Service) OnWithin(lc Lifecycle, name string, callback func(key.Event), scopeRef element.Ref) (*Resumable, error) {
	r, err := s.On(name, callback, scopeRef)
	if err != nil {
		return nil, err
	}
	r.BindLifecycle(lc)
	return r, nil
}

// AddKeyEvent feeds one raw key event. Key-down adds the key to the held
// set and key-up removes it; any other kind is ignored. If the transition
// produces a match, the event is dispatched to the shortcut's listeners
// before AddKeyEvent returns the shortcut name.
func (s *Service) AddKeyEvent(ev key.Event) (string, bool) {
	s.ensureLoaded()

	if !s.pressed.Apply(ev) {
		return "", false
	}

	sc := s.recompute()
	if sc == nil {
		return "", false
	}
	s.dispatch(sc, ev)
	return sc.Name(), true
}

// recompute updates and returns the current match.
func (s *Service) recompute() *keymap.Shortcut {
	s.current = nil
	if s.pressed.IsEmpty() {
		return nil
	}

	combo := s.pressed.Combination()
	sc, ok := s.registry.Match(combo)
	if !ok {
		return nil
	}
	if sc.BindingCount() == 0 {
		s.logger.Warn("hotkey pressed but nothing is listening",
			"hotkey", sc.Name(), "combination", combo.String())
		s.recorder.Unobserved(sc.Name())
		return nil
	}

	s.current = sc
	s.recorder.Matched(sc.Name())
	return sc
}

func (s *Service) dispatch(sc *keymap.Shortcut, ev key.Event) {
	n := s.bus.Publish(sc, ev)
	s.logger.Debug("hotkey dispatched", "hotkey", sc.Name(), "listeners", n)
}

// PressingHotkey returns the shortcut matched by the keys currently held.
func (s *Service) PressingHotkey() (string, bool) {
	if s.current == nil {
		return "", false
	}
	return s.current.Name(), true
}

// FocusChanged forgets every held key. Key-up events are lost while the
// window is unfocused, so hosts call this on every focus transition. The
// current match is left until the next key event.
func (s *Service) FocusChanged() {
	s.pressed.Clear()
}

// AttachWindow installs FocusChanged on the window's focus and blur hooks.
func (s *Service) AttachWindow(w Window) {
	w.OnFocus(s.FocusChanged)
	w.OnBlur(s.FocusChanged)
}

// Pressed returns the keys currently held.
func (s *Service) Pressed() key.Combination {
	return s.pressed.Combination()
}

// Registry returns the shortcut registry.
func (s *Service) Registry() *keymap.Registry {
	s.ensureLoaded()
	return s.registry
}

// Root returns the default scope element.
func (s *Service) Root() element.Element {
	return s.root
}

// Stats returns dispatch statistics.
func (s *Service) Stats() event.Stats {
	return s.bus.Stats()
}

func (s *Service) ensureLoaded() {
	s.loadOnce.Do(s.load)
}

func (s *Service) load() {
	if s.source == nil {
		return
	}

	hotkeys, err := s.source.Hotkeys()
	if err != nil {
		s.logger.Error("failed to load hotkey configuration", "error", err)
		return
	}
	for _, h := range hotkeys {
		var ref element.Ref
		if h.Scope != "" {
			ref = h.Scope
		}
		s.register(h.Name, h.Keys, ref)
	}
	s.logger.Debug("hotkey configuration loaded", "count", len(hotkeys))
}

// resolve resolves ref, returning fallback when it is absent or unresolved.
func (s *Service) resolve(ref element.Ref, fallback element.Element) element.Element {
	if ref == nil {
		return fallback
	}
	if e := s.resolver.Resolve(ref); e != nil {
		return e
	}
	return fallback
}

func (s *Service) handlePanic(err *event.PanicError) {
	s.recorder.HandlerPanic()
	s.logger.Error("hotkey listener panicked",
		"subscription", err.SubscriptionID,
		"hotkey", err.Key,
		"panic", fmt.Sprint(err.Value),
		"stack", err.Stack)
}
