package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"

	"github.com/go-aria/aria/pkg/composite"
	ariaerrors "github.com/go-aria/aria/pkg/errors"
	"github.com/go-aria/aria/pkg/store"
)

// Keymap binds terminal keys to composite navigation.
type Keymap struct {
	Next     key.Binding
	Previous key.Binding
	Down     key.Binding
	Up       key.Binding
	First    key.Binding
	Last     key.Binding
	Select   key.Binding
	Toggle   key.Binding
}

// DefaultKeymap returns the conventional bindings: arrows plus vi keys
// for movement, home/end for the ends, enter/space for activation.
func DefaultKeymap() Keymap {
	return Keymap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
	}
}

// Handle routes a key message to the composite store, committing the
// resulting candidate through Move. It reports whether the message was
// consumed. Axis keys are gated by the store's orientation, per the UI
// layer contract: a vertical composite ignores left/right, a horizontal
// one ignores up/down.
func (k Keymap) Handle(msg tea.KeyMsg, s *composite.Store) bool {
	orientation := store.Get[composite.Orientation](s.GetState(), composite.KeyOrientation)
	horizontal := orientation != composite.OrientationVertical
	vertical := orientation != composite.OrientationHorizontal

	switch {
	case horizontal && key.Matches(msg, k.Next):
		s.Move(s.Next())
	case horizontal && key.Matches(msg, k.Previous):
		s.Move(s.Previous())
	case vertical && key.Matches(msg, k.Down):
		s.Move(s.Down())
	case vertical && key.Matches(msg, k.Up):
		s.Move(s.Up())
	case key.Matches(msg, k.First):
		s.Move(s.First())
	case key.Matches(msg, k.Last):
		s.Move(s.Last())
	default:
		return false
	}
	return true
}

// keymapConfig is the YAML shape of a keymap file. Every field is
// optional; omitted actions keep their default keys.
type keymapConfig struct {
	Next     []string `yaml:"next,omitempty"`
	Previous []string `yaml:"previous,omitempty"`
	Down     []string `yaml:"down,omitempty"`
	Up       []string `yaml:"up,omitempty"`
	First    []string `yaml:"first,omitempty"`
	Last     []string `yaml:"last,omitempty"`
	Select   []string `yaml:"select,omitempty"`
	Toggle   []string `yaml:"toggle,omitempty"`
}

// LoadKeymapOptional reads a YAML keymap file if present. A missing file
// yields the default keymap.
func LoadKeymapOptional(path string) (Keymap, error) {
	km := DefaultKeymap()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return km, nil
		}
		return km, &ariaerrors.StoreError{Op: "tui.LoadKeymap", Kind: ariaerrors.KindConfig,
			Err: fmt.Errorf("read keymap file: %w", err)}
	}
	var cfg keymapConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return km, &ariaerrors.StoreError{Op: "tui.LoadKeymap", Kind: ariaerrors.KindConfig,
			Err: fmt.Errorf("parse keymap file: %w", err)}
	}
	rebind(&km.Next, cfg.Next)
	rebind(&km.Previous, cfg.Previous)
	rebind(&km.Down, cfg.Down)
	rebind(&km.Up, cfg.Up)
	rebind(&km.First, cfg.First)
	rebind(&km.Last, cfg.Last)
	rebind(&km.Select, cfg.Select)
	rebind(&km.Toggle, cfg.Toggle)
	return km, nil
}

func rebind(b *key.Binding, keys []string) {
	if len(keys) == 0 {
		return
	}
	b.SetKeys(keys...)
}
