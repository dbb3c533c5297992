// Package keybind matches tcell key events against configurable key names
// such as "ctrl+f", "pgdn" or "G", and renders their help text.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of equivalent keys plus the help shown for them.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the key label and description shown in help lines.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the key names the keybind matches. Names are normalized, so
// "Ctrl-F" and "ctrl+f" are the same key.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

// WithDisabled creates a keybind that neither matches nor shows up in help.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = Normalize(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	k.keys = normalized
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind is active and has keys.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event is one of the keys of an enabled keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventKey(event)
	for _, keybind := range keybinds {
		if keybind.Enabled() && slices.Contains(keybind.keys, key) {
			return true
		}
	}
	return false
}

// ShortHelp joins the help of the enabled keybinds into one line, for example
// "↑/k up • ↓/j down".
func ShortHelp(separator string, keybinds ...Keybind) string {
	parts := make([]string, 0, len(keybinds))
	for _, keybind := range keybinds {
		if !keybind.Enabled() {
			continue
		}
		if part := strings.TrimSpace(keybind.help.Key + " " + keybind.help.Desc); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, separator)
}

// Modifiers in the order they appear in normalized names.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"shift":   "shift",
	"meta":    "meta",
}

var keyAliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"del":      "delete",
}

// Normalize returns the canonical form of a key name: lower case named keys,
// modifiers joined with "+" in a fixed order, and single characters kept as
// typed unless a modifier is present. It returns "" for a name without a key.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "Rune[") && strings.HasSuffix(name, "]") && len(name) > len("Rune[]") {
		return name[len("Rune[") : len(name)-1]
	}
	if lower := strings.ToLower(name); strings.HasPrefix(lower, "ctrl-") && len(name) > len("ctrl-") {
		name = "ctrl+" + name[len("ctrl-"):]
	}

	mods := make(map[string]bool, len(modifierOrder))
	primary := ""
	for _, part := range strings.Split(name, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if mod, ok := modifierAliases[strings.ToLower(part)]; ok {
			mods[mod] = true
			continue
		}
		primary = part
	}
	if primary == "" {
		return ""
	}

	if len([]rune(primary)) > 1 {
		primary = strings.ToLower(primary)
		if alias, ok := keyAliases[primary]; ok {
			primary = alias
		}
	} else if len(mods) > 0 {
		primary = strings.ToLower(primary)
	}
	if primary == "backtab" {
		primary, mods["shift"] = "tab", true
	}

	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "shift+tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
}

// eventKey returns the normalized name of the key pressed in event.
func eventKey(event *tcell.EventKey) string {
	key := event.Key()
	primary, ok := keyNames[key]
	if !ok && key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}
	if !ok && key == tcell.KeyRune {
		primary, ok = event.Str(), event.Str() != ""
	}
	if !ok {
		return Normalize(event.Name())
	}
	if key == tcell.KeyBacktab {
		return primary
	}

	var b strings.Builder
	for _, mod := range []struct {
		mask tcell.ModMask
		name string
	}{
		{tcell.ModCtrl, "ctrl"},
		{tcell.ModAlt, "alt"},
		{tcell.ModShift, "shift"},
		{tcell.ModMeta, "meta"},
	} {
		if event.Modifiers()&mod.mask != 0 {
			b.WriteString(mod.name + "+")
		}
	}
	if key == tcell.KeyRune && b.Len() > 0 {
		primary = strings.ToLower(primary)
	}
	b.WriteString(primary)
	return b.String()
}
