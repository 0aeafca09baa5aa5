package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/freefall/engine"
	"github.com/lixenwraith/freefall/render"
)

// Translator maps terminal events to game events
// Holds mouse button state so a held button starts only one race
type Translator struct {
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator with no buttons held
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate returns the game event for ev, false when ev carries nothing for the game
func (t *Translator) Translate(ev tcell.Event) (engine.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		prev := t.buttons & tcell.Button1
		t.buttons = ev.Buttons()
		if pressed != 0 && prev == 0 {
			return engine.Event{Type: engine.EventStart}, true
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		w, h := render.Viewport(cols, rows)
		return engine.Event{Type: engine.EventResize, Width: w, Height: h}, true
	}
	return engine.Event{}, false
}

func translateKey(ev *tcell.EventKey) (engine.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return engine.Event{Type: engine.EventQuit}, true
	case tcell.KeyEnter:
		return engine.Event{Type: engine.EventStart}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return engine.Event{Type: engine.EventQuit}, true
		case ' ':
			return engine.Event{Type: engine.EventStart}, true
		}
	}
	return engine.Event{}, false
}
