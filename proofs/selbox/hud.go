package main

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/views"
)

type hudT struct {
	views.Panel

	title  *views.TextBar
	keybar *keybar
	status *views.SimpleStyledTextBar
	view   *boxView
}

type keybar struct {
	*views.SimpleStyledText
	actions map[rune]keybarAction
}

type keybarAction struct {
	l string
	f func()
}

func newKeybar() *keybar {
	kb := &keybar{}
	kb.SimpleStyledText = views.NewSimpleStyledText()
	kb.actions = make(map[rune]keybarAction)
	return kb
}

func (kb *keybar) addAction(k rune, label string, f func()) {
	if _, def := kb.actions[k]; def {
		panic(fmt.Sprintf("duplicate action %q", k))
	}
	kb.actions[k] = keybarAction{label, f}
	kb.refresh()
}

// addLabel lists a key handled elsewhere, e.g. by the box view.
func (kb *keybar) addLabel(k rune, label string) {
	kb.addAction(k, label, nil)
}

func (kb *keybar) refresh() {
	parts := make([]string, 0, len(kb.actions))
	for k, a := range kb.actions {
		parts = append(parts, fmt.Sprintf("%%S[%s]%%A%s%%N", string(k), a.l))
	}
	sort.Strings(parts)
	kb.SetMarkup(strings.Join(parts, "  "))
}

func (kb *keybar) HandleEvent(ev tcell.Event) bool {
	ek, ok := ev.(*tcell.EventKey)
	if !ok || ek.Key() != tcell.KeyRune {
		return false
	}
	k := ek.Rune()
	a, def := kb.actions[k]
	if !def {
		if unicode.IsLower(k) {
			k = unicode.ToUpper(k)
		} else {
			k = unicode.ToLower(k)
		}
		a, def = kb.actions[k]
	}
	if !def || a.f == nil {
		return false
	}
	a.f()
	return true
}

func (hud *hudT) init(view *boxView) {
	hud.title = views.NewTextBar()
	hud.title.SetCenter("selbox", tcell.StyleDefault)

	hud.keybar = newKeybar()
	hud.keybar.RegisterStyle('N', tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	hud.keybar.RegisterStyle('A', tcell.StyleDefault.
		Background(tcell.ColorDarkBlue).
		Foreground(tcell.ColorSlateBlue))
	hud.keybar.RegisterStyle('S', tcell.StyleDefault.
		Background(tcell.ColorSlateBlue).
		Foreground(tcell.ColorDarkBlue))
	hud.keybar.addLabel('m', "Max Pos")
	hud.keybar.addLabel('M', "Max Size")

	hud.status = views.NewSimpleStyledTextBar()

	hud.view = view
	hud.view.status = hud.status.SetLeft

	hud.SetMenu(hud.status)
	hud.SetTitle(hud.title)
	hud.SetStatus(hud.keybar)
	hud.SetContent(hud.view)
}

func (hud *hudT) HandleEvent(ev tcell.Event) bool {
	if ek, ok := ev.(*tcell.EventKey); ok {
		switch ek.Key() {
		case tcell.KeyCtrlL:
			app.Refresh()
			return true
		case tcell.KeyCtrlC:
			app.Quit()
			return true
		}
	}
	return hud.Panel.HandleEvent(ev)
}
