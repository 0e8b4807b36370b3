package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/hotkey"
	"github.com/dshills/hotkeys/internal/input/key"
)

func joinIDs(ids []key.Identifier) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ",")
}

func TestKeyNames(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), "k"},
		{"upper rune", tcell.NewEventKey(tcell.KeyRune, 'K', tcell.ModNone), "shift,k"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt,x"},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone), "control,s"},
		{"ctrl letter with mod", tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl), "control,q"},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), "control,space"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "escape"},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "enter"},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab"},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "shift,tab"},
		{"ctrl up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl), "control,arrowup"},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), "shift,arrowright"},
		{"all mods", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModCtrl|tcell.ModAlt|tcell.ModShift|tcell.ModMeta), "control,alt,shift,meta,arrowdown"},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "pagedown"},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := joinIDs(KeyNames(tt.ev)); got != tt.want {
				t.Errorf("KeyNames() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyNames_Unknown(t *testing.T) {
	if got := KeyNames(tcell.NewEventKey(tcell.KeyF64, 0, tcell.ModNone)); got != nil {
		t.Errorf("KeyNames(F64) = %v, want nil", got)
	}
}

// recordingEngine records every event.
type recordingEngine struct {
	events []key.Event
}

func (e *recordingEngine) AddKeyEvent(ev key.Event) (string, bool) {
	e.events = append(e.events, ev)
	return "", false
}

func TestHost_DownsThenUps(t *testing.T) {
	doc := element.NewDocument()
	pane := doc.AppendNew("pane")
	eng := &recordingEngine{}
	h := NewHost(eng, pane)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl))

	want := []struct {
		kind key.Kind
		name string
	}{
		{key.KindDown, "control"},
		{key.KindDown, "s"},
		{key.KindUp, "s"},
		{key.KindUp, "control"},
	}
	if len(eng.events) != len(want) {
		t.Fatalf("got %d events, want %d", len(eng.events), len(want))
	}
	for i, w := range want {
		ev := eng.events[i]
		if ev.Kind != w.kind || ev.Key != w.name {
			t.Errorf("event %d = %#v, want %v %s", i, ev, w.kind, w.name)
		}
		if ev.Target() != pane {
			t.Errorf("event %d target = %v, want pane", i, ev.Target())
		}
	}
}

func TestHost_IgnoresOtherEvents(t *testing.T) {
	eng := &recordingEngine{}
	h := NewHost(eng, nil)

	h.HandleEvent(tcell.NewEventResize(80, 24))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyF64, 0, tcell.ModNone))
	if len(eng.events) != 0 {
		t.Errorf("got %d events, want 0", len(eng.events))
	}
}

func TestHost_WithService(t *testing.T) {
	doc := element.NewDocument()
	left := doc.AppendNew("left")
	right := doc.AppendNew("right")

	svc := hotkey.New(hotkey.WithRoot(doc))
	svc.Register("save", []string{"ctrl+s"}, nil)
	svc.Register("quit", []string{"ctrl+q"}, nil)

	var saves []string
	svc.On("save", func(ev key.Event) { saves = append(saves, ev.Target().Name()) }, left)
	svc.On("quit", func(key.Event) {}, nil)

	h := NewHost(svc, left)
	svc.AttachWindow(h.Window())

	if got := h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)); len(got) != 1 || got[0] != "save" {
		t.Errorf("HandleEvent(ctrl+s) = %v, want [save]", got)
	}

	h.Focus(right)
	if h.Focused() != right {
		t.Fatal("Focus() did not move focus")
	}
	if got := h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl)); len(got) != 1 {
		t.Errorf("HandleEvent(ctrl+s) = %v, want one match", got)
	}
	if len(saves) != 1 || saves[0] != "left" {
		t.Errorf("saves = %v, want [left]", saves)
	}

	if got := h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)); len(got) != 1 || got[0] != "quit" {
		t.Errorf("HandleEvent(ctrl+q) = %v, want [quit]", got)
	}
	if !svc.Pressed().IsEmpty() {
		t.Errorf("Pressed() = %v after full press, want empty", svc.Pressed())
	}
}

func TestHost_FocusEvents(t *testing.T) {
	svc := hotkey.New()
	h := NewHost(svc, nil)
	svc.AttachWindow(h.Window())

	svc.AddKeyEvent(key.NewDown("Control", nil))
	h.HandleEvent(tcell.NewEventFocus(false))
	if h.Window().Focused() {
		t.Error("window should be unfocused")
	}
	if !svc.Pressed().IsEmpty() {
		t.Errorf("Pressed() = %v after blur, want empty", svc.Pressed())
	}

	h.HandleEvent(tcell.NewEventFocus(true))
	if !h.Window().Focused() {
		t.Error("window should be focused")
	}
}

func TestHost_RepeatedBlurClearsAgain(t *testing.T) {
	svc := hotkey.New()
	h := NewHost(svc, nil)
	svc.AttachWindow(h.Window())

	h.HandleEvent(tcell.NewEventFocus(false))

	// The terminal never reported regaining focus before this press.
	svc.AddKeyEvent(key.NewDown("Shift", nil))
	h.HandleEvent(tcell.NewEventFocus(false))
	if !svc.Pressed().IsEmpty() {
		t.Errorf("Pressed() = %v after second blur, want empty", svc.Pressed())
	}
}

func TestHost_SimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer screen.Fini()

	doc := element.NewDocument()
	svc := hotkey.New(hotkey.WithRoot(doc))
	svc.Register("quit", []string{"ctrl+q"}, nil)
	var quits int
	svc.On("quit", func(key.Event) { quits++ }, nil)

	h := NewHost(svc, doc)
	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	for {
		ev := screen.PollEvent()
		if _, ok := ev.(*tcell.EventKey); !ok {
			continue
		}
		h.HandleEvent(ev)
		break
	}
	if quits != 1 {
		t.Errorf("quits = %d, want 1", quits)
	}
}
