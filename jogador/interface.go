// interface.go - Terminal drawing and keyboard input with termbox
package main

import (
	"context"
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/sereneful/3980Project/game"
	"github.com/sereneful/3980Project/shared"
)

const (
	gridCell   = '.'
	playerCell = 'X'
)

func interfaceStart() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.HideCursor()
	return nil
}

func interfaceFinish() {
	termbox.Close()
}

// roleColor: host red, client blue
func roleColor(r shared.Role) termbox.Attribute {
	if r == shared.Host {
		return termbox.ColorRed
	}
	return termbox.ColorBlue
}

// termboxRenderer draws frames for the event loop
type termboxRenderer struct{}

func (termboxRenderer) Render(f game.Frame) {
	interfaceDraw(f)
}

func interfaceDraw(f game.Frame) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)

	for y := 0; y < shared.GridSize; y++ {
		for x := 0; x < shared.GridSize; x++ {
			termbox.SetCell(x, y, gridCell, termbox.ColorDefault, termbox.ColorDefault)
		}
	}
	for _, m := range f.Markers {
		interfaceDrawDot(m)
	}

	interfaceDrawText(0, shared.GridSize+1, statusLine(f))
	interfaceDrawText(0, shared.GridSize+2, "arrows/wasd move, q or Esc quits")
	termbox.Flush()
}

func interfaceDrawDot(m game.Marker) {
	// remote positions are not range checked
	x, y := m.X%shared.GridSize, m.Y%shared.GridSize
	fg := roleColor(m.Role)
	if m.Local {
		fg |= termbox.AttrBold
	}
	termbox.SetCell(x, y, playerCell, fg, termbox.ColorDefault)
}

// interfaceDrawText writes s from (x, y), cut to the terminal width
func interfaceDrawText(x, y int, s string) {
	w, _ := termbox.Size()
	if w-x <= 0 {
		return
	}
	s = runewidth.Truncate(s, w-x, "~")
	for _, r := range s {
		termbox.SetCell(x, y, r, termbox.ColorDefault, termbox.ColorDefault)
		x += runewidth.RuneWidth(r)
	}
}

func statusLine(f game.Frame) string {
	id := f.SessionID
	if len(id) > 8 {
		id = id[:8]
	}
	peer := "waiting for a peer"
	if f.Peer.IsValid() {
		peer = "peer " + f.Peer.String()
	}
	return fmt.Sprintf("%s %s | %s", f.Role, id, peer)
}

// keyFromEvent maps arrows, w/a/s/d and the quit keys. Anything else is
// KeyNone, which still resends and redraws.
func keyFromEvent(ev termbox.Event) game.Key {
	switch ev.Key {
	case termbox.KeyArrowUp:
		return game.KeyUp
	case termbox.KeyArrowDown:
		return game.KeyDown
	case termbox.KeyArrowLeft:
		return game.KeyLeft
	case termbox.KeyArrowRight:
		return game.KeyRight
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return game.KeyQuit
	}
	if ev.Ch != 0 {
		return game.KeyForRune(ev.Ch)
	}
	return game.KeyNone
}

// interfaceReadKeys feeds keyboard events to the loop. PollEvent cannot be
// cancelled once termbox is closed, so this goroutine is left to end with
// the process.
func interfaceReadKeys(ctx context.Context, keys chan<- game.Key) {
	defer close(keys)
	for {
		ev := termbox.PollEvent()
		var k game.Key
		switch ev.Type {
		case termbox.EventKey:
			k = keyFromEvent(ev)
		case termbox.EventResize:
			k = game.KeyNone
		case termbox.EventError, termbox.EventInterrupt:
			return
		default:
			continue
		}
		select {
		case keys <- k:
		case <-ctx.Done():
			return
		}
	}
}
