// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	bkey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"monoui.org/app"
	"monoui.org/config"
	"monoui.org/key"
	"monoui.org/raster"
	"monoui.org/text"
)

type frameMsg time.Time

// binding maps terminal keys to a key code.
type binding struct {
	bkey.Binding
	code key.Code
}

// keyMap implements help.KeyMap.
type keyMap struct {
	bindings []binding
	quit     bkey.Binding
}

func newKeyMap(k config.KeysConfig) keyMap {
	desc := map[key.Code]string{
		key.Up:      "up",
		key.Down:    "down",
		key.Left:    "left",
		key.Right:   "right",
		key.Enter:   "select",
		key.Back:    "back",
		key.Dismiss: "close",
	}
	var km keyMap
	b := k.Bindings()
	for _, code := range []key.Code{key.Up, key.Down, key.Left, key.Right, key.Enter, key.Back, key.Dismiss} {
		keys := b[code]
		if len(keys) == 0 {
			continue
		}
		km.bindings = append(km.bindings, binding{
			Binding: bkey.NewBinding(bkey.WithKeys(keys...), bkey.WithHelp(keys[0], desc[code])),
			code:    code,
		})
	}
	km.quit = bkey.NewBinding(bkey.WithKeys("ctrl+c", "q"), bkey.WithHelp("q", "quit"))
	return km
}

// lookup returns the code bound to msg.
func (km keyMap) lookup(msg tea.KeyMsg) key.Code {
	for _, b := range km.bindings {
		if bkey.Matches(msg, b.Binding) {
			return b.code
		}
	}
	return key.None
}

func (km keyMap) ShortHelp() []bkey.Binding {
	var bs []bkey.Binding
	for _, b := range km.bindings {
		if b.code == key.Enter || b.code == key.Back || b.code == key.Dismiss {
			bs = append(bs, b.Binding)
		}
	}
	return append(bs, km.quit)
}

func (km keyMap) FullHelp() [][]bkey.Binding {
	var bs []bkey.Binding
	for _, b := range km.bindings {
		bs = append(bs, b.Binding)
	}
	return [][]bkey.Binding{bs, {km.quit}}
}

// simulator renders a Runtime in the terminal, one character cell per
// two pixel rows.
type simulator struct {
	rt       *app.Runtime
	bitmap   *raster.Bitmap
	canvas   *raster.Canvas
	keys     keyMap
	help     help.Model
	frame    lipgloss.Style
	interval time.Duration
	scale    int
	pending  []key.Code
}

func newSimulator(rt *app.Runtime, cfg *config.Config, face text.Face) *simulator {
	bm := raster.NewBitmap(cfg.Display.Width, cfg.Display.Height)
	return &simulator{
		rt:       rt,
		bitmap:   bm,
		canvas:   raster.NewCanvas(bm, face),
		keys:     newKeyMap(cfg.Keys),
		help:     help.New(),
		frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")),
		interval: time.Second / time.Duration(cfg.Display.FPS),
		scale:    cfg.Display.Scale,
	}
}

func (s *simulator) tick() tea.Cmd {
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (s *simulator) Init() tea.Cmd {
	return s.tick()
}

func (s *simulator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if bkey.Matches(msg, s.keys.quit) {
			return s, tea.Quit
		}
		if code := s.keys.lookup(msg); code != key.None {
			s.pending = append(s.pending, code)
		}
		if msg.String() == "?" {
			s.help.ShowAll = !s.help.ShowAll
		}
	case frameMsg:
		s.step()
		return s, s.tick()
	}
	return s, nil
}

// step runs one frame, delivering at most one pending key.
func (s *simulator) step() {
	k := key.None
	if len(s.pending) > 0 {
		k = s.pending[0]
		s.pending = s.pending[1:]
	}
	s.rt.Step(s.canvas, k)
}

func (s *simulator) View() string {
	screen := s.bitmap.HalfBlocks()
	if s.scale > 1 {
		var sb strings.Builder
		for _, r := range screen {
			if r == '\n' {
				sb.WriteRune(r)
				continue
			}
			for range s.scale {
				sb.WriteRune(r)
			}
		}
		screen = sb.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, s.frame.Render(screen), s.help.View(s.keys))
}
