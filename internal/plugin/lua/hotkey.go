package lua

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/hotkey"
	"github.com/dshills/hotkeys/internal/input/key"
	"github.com/dshills/hotkeys/internal/log"
)

// handleTypeName is the metatable name for listener handles.
const handleTypeName = "hotkey.handle"

// Engine is the part of the hotkey service scripts can reach.
type Engine interface {
	Register(name string, spellings []string, scopeRef element.Ref) bool
	On(name string, callback func(key.Event), scopeRef element.Ref) (*hotkey.Resumable, error)
	PressingHotkey() (string, bool)
	Pressed() key.Combination
}

// HotkeyModule implements the Lua "hotkey" module.
type HotkeyModule struct {
	engine Engine
	logger *log.Logger
	state  *State

	// handles holds every listener created by scripts, for Cleanup.
	handles []*hotkey.Resumable
}

// NewHotkeyModule creates the module. A nil logger discards output.
func NewHotkeyModule(engine Engine, logger *log.Logger) *HotkeyModule {
	if logger == nil {
		logger = log.Nop()
	}
	return &HotkeyModule{
		engine: engine,
		logger: logger.WithComponent("lua"),
	}
}

// Name returns the module name.
func (m *HotkeyModule) Name() string {
	return "hotkey"
}

// Install registers the module as a global table in s. Callbacks run
// through s and share its execution timeout.
func (m *HotkeyModule) Install(s *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStateClosed
	}
	m.state = s
	L := s.L

	mt := L.NewTypeMetatable(handleTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"start":   m.handleStart,
		"stop":    m.handleStop,
		"suspend": m.handleSuspend,
		"resume":  m.handleResume,
		"enabled": m.handleEnabled,
		"name":    m.handleName,
	}))

	mod := L.NewTable()
	L.SetField(mod, "register", L.NewFunction(m.register))
	L.SetField(mod, "on", L.NewFunction(m.on))
	L.SetField(mod, "pressing", L.NewFunction(m.pressing))
	L.SetField(mod, "pressed", L.NewFunction(m.pressed))

	L.SetGlobal(m.Name(), mod)
	return nil
}

// Cleanup stops every listener created by scripts.
func (m *HotkeyModule) Cleanup() {
	for _, r := range m.handles {
		r.Stop()
	}
	m.handles = nil
}

// register(name, spellings, scope?) -> bool
// spellings is a string or an array of strings.
func (m *HotkeyModule) register(L *lua.LState) int {
	name := L.CheckString(1)
	if name == "" {
		L.ArgError(1, "name cannot be empty")
		return 0
	}

	var spellings []string
	switch v := L.CheckAny(2).(type) {
	case lua.LString:
		spellings = []string{string(v)}
	case *lua.LTable:
		v.ForEach(func(_, value lua.LValue) {
			spellings = append(spellings, value.String())
		})
	default:
		L.ArgError(2, "spellings must be a string or a table of strings")
		return 0
	}

	L.Push(lua.LBool(m.engine.Register(name, spellings, scopeArg(L, 3))))
	return 1
}

// on(name, fn, scope?) -> handle
// Raises an error for unknown names.
func (m *HotkeyModule) on(L *lua.LState) int {
	name := L.CheckString(1)
	fn := L.CheckFunction(2)

	r, err := m.engine.On(name, m.callback(name, fn), scopeArg(L, 3))
	if err != nil {
		L.RaiseError("on: %v", err)
		return 0
	}
	m.handles = append(m.handles, r)

	ud := L.NewUserData()
	ud.Value = r
	L.SetMetatable(ud, L.GetTypeMetatable(handleTypeName))
	L.Push(ud)
	return 1
}

// pressing() -> name or nil
func (m *HotkeyModule) pressing(L *lua.LState) int {
	name, ok := m.engine.PressingHotkey()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(name))
	return 1
}

// pressed() -> {key...}
func (m *HotkeyModule) pressed(L *lua.LState) int {
	tbl := L.NewTable()
	for _, id := range m.engine.Pressed() {
		tbl.Append(lua.LString(id))
	}
	L.Push(tbl)
	return 1
}

// callback wraps a Lua function as a listener. Script errors and
// timeouts are logged; nothing runs once the state is closed.
func (m *HotkeyModule) callback(name string, fn *lua.LFunction) func(key.Event) {
	return func(ev key.Event) {
		s := m.state
		if s == nil {
			return
		}
		err := s.do(func() error {
			s.L.Push(fn)
			s.L.Push(eventTable(s.L, ev))
			return s.L.PCall(1, 0, nil)
		})
		switch {
		case err == nil:
		case errors.Is(err, ErrStateClosed):
			m.logger.Debug("lua hotkey callback skipped, state closed", "hotkey", name)
		default:
			m.logger.Error("lua hotkey callback failed", "hotkey", name, "error", err)
		}
	}
}

func (m *HotkeyModule) checkHandle(L *lua.LState) *hotkey.Resumable {
	ud := L.CheckUserData(1)
	r, ok := ud.Value.(*hotkey.Resumable)
	if !ok {
		L.ArgError(1, "hotkey handle expected")
		return nil
	}
	return r
}

func (m *HotkeyModule) handleStart(L *lua.LState) int {
	m.checkHandle(L).Start()
	return 0
}

func (m *HotkeyModule) handleStop(L *lua.LState) int {
	m.checkHandle(L).Stop()
	return 0
}

func (m *HotkeyModule) handleSuspend(L *lua.LState) int {
	m.checkHandle(L).Suspend()
	return 0
}

func (m *HotkeyModule) handleResume(L *lua.LState) int {
	m.checkHandle(L).Resume()
	return 0
}

func (m *HotkeyModule) handleEnabled(L *lua.LState) int {
	L.Push(lua.LBool(m.checkHandle(L).Enabled()))
	return 1
}

func (m *HotkeyModule) handleName(L *lua.LState) int {
	L.Push(lua.LString(m.checkHandle(L).Name()))
	return 1
}

// scopeArg returns the optional scope name at position n, or nil.
func scopeArg(L *lua.LState, n int) element.Ref {
	scope := L.OptString(n, "")
	if scope == "" {
		return nil
	}
	return scope
}

// eventTable converts a key event to {key, kind, target, path}.
func eventTable(L *lua.LState, ev key.Event) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "key", lua.LString(ev.Key))
	L.SetField(tbl, "kind", lua.LString(ev.Kind.String()))
	if target := ev.Target(); target != nil {
		L.SetField(tbl, "target", lua.LString(target.Name()))
	}
	path := L.NewTable()
	for _, e := range ev.Path {
		if e != nil {
			path.Append(lua.LString(e.Name()))
		}
	}
	L.SetField(tbl, "path", path)
	return tbl
}
