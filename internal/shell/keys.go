package shell

import "strings"

// Shortcut is a key combination in canonical form: modifiers in the order
// Ctrl, Alt, Shift, Meta, then the key, joined with "+". Single-character
// keys are upper case and never carry Shift, since the character already
// reflects it. Examples: "Ctrl+H", "Alt+Left", "F11", "Ctrl++".
type Shortcut string

const keyEscape Shortcut = "Escape"

var modifierOrder = []string{"Ctrl", "Alt", "Shift", "Meta"}

var modifierNames = map[string]string{
	"ctrl":    "Ctrl",
	"control": "Ctrl",
	"alt":     "Alt",
	"option":  "Alt",
	"shift":   "Shift",
	"meta":    "Meta",
	"cmd":     "Meta",
	"command": "Meta",
	"super":   "Meta",
}

var keyNames = map[string]string{
	"esc":        "Escape",
	"escape":     "Escape",
	"left":       "Left",
	"arrowleft":  "Left",
	"right":      "Right",
	"arrowright": "Right",
	"up":         "Up",
	"arrowup":    "Up",
	"down":       "Down",
	"arrowdown":  "Down",
	"plus":       "+",
	"minus":      "-",
	"space":      " ",
}

// ParseShortcut converts a loosely written combination ("ctrl+h",
// "Cmd+Shift+[") to canonical form. Unknown modifiers yield "".
func ParseShortcut(s string) Shortcut {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var rest, key string
	switch {
	case s == "+":
		key = "+"
	case strings.HasSuffix(s, "++"):
		key, rest = "+", strings.TrimSuffix(s, "++")
	default:
		i := strings.LastIndex(s, "+")
		key, rest = s[i+1:], s[:max(i, 0)]
	}
	if key == "" {
		return ""
	}

	if name, ok := keyNames[strings.ToLower(key)]; ok {
		key = name
	} else if len(key) == 1 {
		key = strings.ToUpper(key)
	} else if key[0] == 'f' || key[0] == 'F' {
		key = "F" + key[1:]
	}

	mods := make(map[string]bool)
	if rest != "" {
		for _, m := range strings.Split(rest, "+") {
			name, ok := modifierNames[strings.ToLower(strings.TrimSpace(m))]
			if !ok {
				return ""
			}
			mods[name] = true
		}
	}
	if len(key) == 1 {
		delete(mods, "Shift")
	}

	parts := make([]string, 0, len(mods)+1)
	for _, m := range modifierOrder {
		if mods[m] {
			parts = append(parts, m)
		}
	}
	return Shortcut(strings.Join(append(parts, key), "+"))
}

// standardShortcuts returns the platform bindings for each command. macOS
// uses Meta (Command) where other platforms use Ctrl.
func standardShortcuts(goos string) map[CommandID][]Shortcut {
	primary := "Ctrl"
	if goos == "darwin" {
		primary = "Meta"
	}
	keys := map[CommandID][]string{
		CmdBack:       {"Alt+Left"},
		CmdForward:    {"Alt+Right"},
		CmdReload:     {"Ctrl+R", "F5"},
		CmdHome:       {primary + "+H"},
		CmdStop:       {"Escape"},
		CmdFullScreen: {"F11"},
		CmdQuit:       {"Ctrl+Q"},
		CmdZoomIn:     {primary + "++", primary + "+="},
		CmdZoomOut:    {primary + "+-"},
		CmdResetZoom:  {primary + "+0"},
	}
	if goos == "darwin" {
		keys[CmdBack] = []string{"Meta+[", "Meta+Left"}
		keys[CmdForward] = []string{"Meta+]", "Meta+Right"}
		keys[CmdReload] = []string{"Meta+R"}
		keys[CmdFullScreen] = []string{"Ctrl+Meta+F"}
		keys[CmdQuit] = []string{"Meta+Q"}
	}

	out := make(map[CommandID][]Shortcut, len(keys))
	for id, list := range keys {
		for _, k := range list {
			out[id] = append(out[id], ParseShortcut(k))
		}
	}
	return out
}

// keymap indexes commands by shortcut. The first command registered for a
// shortcut wins.
func keymap(cmds *Commands) map[Shortcut]CommandID {
	m := make(map[Shortcut]CommandID)
	for _, c := range cmds.All() {
		for _, k := range c.Shortcuts {
			if _, taken := m[k]; !taken {
				m[k] = c.ID
			}
		}
	}
	return m
}
