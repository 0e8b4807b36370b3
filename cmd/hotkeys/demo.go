package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/hotkeys/internal/component"
	"github.com/dshills/hotkeys/internal/element"
	"github.com/dshills/hotkeys/internal/host/terminal"
	"github.com/dshills/hotkeys/internal/hotkey"
	"github.com/dshills/hotkeys/internal/input/key"
)

// Shortcuts the demo registers after the configuration.
const (
	hotkeyNextPane = "demo.next-pane"
	hotkeyExit     = "demo.exit"
	hotkeyMark     = "demo.mark"
	hotkeyToggle   = "demo.toggle"
)

// maxLines is the number of activity lines kept.
const maxLines = 200

var (
	styleTitle   = tcell.StyleDefault.Bold(true)
	styleFocused = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleIdle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus  = tcell.StyleDefault.Reverse(true)
)

// pane is one focusable region of the demo.
type pane struct {
	node      *element.Node
	component *component.Component
	marks     int
}

// action runs when the held keys equal combo, whichever shortcut won.
type action struct {
	combo key.Combination
	run   func()
}

// demo is the interactive screen behind "hotkeys run".
type demo struct {
	screen  tcell.Screen
	svc     *hotkey.Service
	host    *terminal.Host
	panes   []*pane
	focus   int
	actions []action
	lines   []string
	quit    bool
}

// newDemo builds the panes under doc and attaches listeners to every
// shortcut known to svc.
func newDemo(screen tcell.Screen, svc *hotkey.Service, doc *element.Node) (*demo, error) {
	d := &demo{screen: screen, svc: svc}

	for _, name := range []string{"left", "right"} {
		n := doc.Find(name)
		if n == nil {
			n = doc.AppendNew(name)
		}
		d.panes = append(d.panes, &pane{node: n, component: component.New(name, n)})
	}
	d.host = terminal.NewHost(svc, d.panes[0].node)
	svc.AttachWindow(d.host.Window())

	svc.Register(hotkeyNextPane, []string{"tab"}, nil)
	svc.Register(hotkeyExit, []string{"esc", "ctrl+q"}, nil)
	svc.Register(hotkeyMark, []string{"m"}, nil)
	svc.Register(hotkeyToggle, []string{"ctrl+t"}, nil)

	// Actions are keyed by combination so they still work when a configured
	// shortcut claims the same keys first.
	d.actions = []action{
		{key.Normalize("tab"), d.nextPane},
		{key.Normalize("esc"), d.stop},
		{key.Normalize("ctrl+q"), d.stop},
		{key.Normalize("ctrl+t"), d.toggleFocused},
	}

	for _, sc := range svc.Registry().Shortcuts() {
		name := sc.Name()
		if _, err := svc.On(name, func(ev key.Event) { d.onHotkey(name, ev) }, nil); err != nil {
			return nil, err
		}
	}

	for _, p := range d.panes {
		_, err := svc.OnWithin(p.component, hotkeyMark, func(key.Event) {
			p.marks++
			d.logf("%s pane marked (%d)", p.node.Name(), p.marks)
		}, p.node)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *demo) onHotkey(name string, ev key.Event) {
	d.logf("%s on %s at %s", name, ev.Kind, ev.Target().Name())

	pressed := d.svc.Pressed()
	for _, a := range d.actions {
		if pressed.Equal(a.combo) {
			a.run()
		}
	}
}

func (d *demo) nextPane() {
	d.focus = (d.focus + 1) % len(d.panes)
	d.host.Focus(d.panes[d.focus].node)
}

func (d *demo) toggleFocused() {
	c := d.panes[d.focus].component
	c.Toggle()
	d.logf("%s pane %s", c.Name(), c.State())
}

func (d *demo) stop() {
	d.quit = true
}

func (d *demo) logf(format string, args ...any) {
	d.lines = append(d.lines, fmt.Sprintf(format, args...))
	if len(d.lines) > maxLines {
		d.lines = d.lines[len(d.lines)-maxLines:]
	}
}

// run processes terminal events until a quit combination is pressed or the
// screen is finalized.
func (d *demo) run() {
	for !d.quit {
		d.draw()
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			d.screen.Sync()
			continue
		}
		d.host.HandleEvent(ev)
	}
}

func (d *demo) draw() {
	s := d.screen
	s.Clear()
	w, h := s.Size()

	d.text(0, 0, w, styleTitle, "hotkeys  tab: next pane  m: mark  ctrl+t: suspend pane  esc, ctrl+q: quit")

	half := w / len(d.panes)
	for i, p := range d.panes {
		style := styleIdle
		if i == d.focus {
			style = styleFocused
		}
		x := i * half
		d.text(x, 2, half, style, fmt.Sprintf("[%s] %s", p.node.Name(), p.component.State()))
		d.text(x, 3, half, style, fmt.Sprintf("marks: %d", p.marks))
	}

	d.text(0, 5, w, styleStatus, fmt.Sprintf(" held: %-30s", d.svc.Pressed()))

	rows := h - 7
	if rows > 0 {
		start := max(len(d.lines)-rows, 0)
		for i, line := range d.lines[start:] {
			d.text(0, 7+i, w, tcell.StyleDefault, line)
		}
	}
	s.Show()
}

// text draws s at (x, y), clipped to width cells.
func (d *demo) text(x, y, width int, style tcell.Style, s string) {
	col := 0
	for _, r := range s {
		if col >= width {
			return
		}
		d.screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
