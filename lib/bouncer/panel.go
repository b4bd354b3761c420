package bouncer

import (
	"fmt"
	"strings"
)

const (
	PanelTitle = "Bouncing Cats - E=spawn Q=clear Esc=quit"
	PanelInfo  = "Bouncing Cats\nE -> spawn cat   |   Q -> clear cats   |   Esc -> quit"

	KeySpawn  = "e"
	KeyClear  = "q"
	KeyEscape = "escape"
)

// ControlPanel shows the instructions and the spawn counter, and owns the
// key bindings of the whole application.
type ControlPanel struct {
	Title string
	Info  string

	counter  string
	visible  bool
	bindings map[string]func()
}

func NewControlPanel() *ControlPanel {
	return &ControlPanel{
		Title:    PanelTitle,
		Info:     PanelInfo,
		counter:  "Cats spawned: 0",
		bindings: map[string]func(){},
	}
}

// Bind attaches action to a key name. Names are case-insensitive.
func (p *ControlPanel) Bind(key string, action func()) {
	p.bindings[strings.ToLower(key)] = action
}

// Press runs the action bound to key and reports whether there was one.
func (p *ControlPanel) Press(key string) bool {
	action, ok := p.bindings[strings.ToLower(key)]
	if !ok {
		return false
	}
	action()
	return true
}

func (p *ControlPanel) SetCount(spawned, limit int) {
	p.counter = fmt.Sprintf("Cats spawned: %v / %v", spawned, limit)
}

func (p *ControlPanel) Counter() string { return p.counter }

func (p *ControlPanel) Show()           { p.visible = true }
func (p *ControlPanel) Hide()           { p.visible = false }
func (p *ControlPanel) IsVisible() bool { return p.visible }
