package input

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/freefall/engine"
)

// EventSource is the part of tcell.Screen the poller reads from
type EventSource interface {
	PollEvent() tcell.Event
	Fini()
}

// Poll reads terminal events until the screen is finalized and forwards translated ones to out
// Closes out on return so the game loop exits with it
func Poll(src EventSource, out chan<- engine.Event) {
	defer close(out)
	defer func() {
		if r := recover(); r != nil {
			src.Fini()
			// Use \r\n for raw mode compatibility
			fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	t := NewTranslator()
	for {
		ev := src.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		if gev, ok := t.Translate(ev); ok {
			out <- gev
		}
	}
}
