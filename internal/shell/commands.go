package shell

import "strings"

// CommandID names a user-facing action.
type CommandID string

const (
	CmdBack       CommandID = "back"
	CmdForward    CommandID = "forward"
	CmdReload     CommandID = "reload"
	CmdHome       CommandID = "home"
	CmdStop       CommandID = "stop"
	CmdFullScreen CommandID = "fullscreen"
	CmdQuit       CommandID = "quit"
	CmdZoomIn     CommandID = "zoom-in"
	CmdZoomOut    CommandID = "zoom-out"
	CmdResetZoom  CommandID = "reset-zoom"
)

// Command is one action shared by every surface that exposes it: the
// toolbar button, the menu item and the key bindings all trigger the same
// handler and show the same text.
type Command struct {
	ID CommandID

	// Text is the toolbar label.
	Text string

	// MenuText is the menu label with an & mnemonic. Empty means Text.
	MenuText string

	StatusTip string
	Shortcuts []Shortcut

	run func()
}

// Label returns the text shown in menus, without the mnemonic marker.
func (c *Command) Label() string {
	if c.MenuText == "" {
		return c.Text
	}
	return stripMnemonic(c.MenuText)
}

// Trigger runs the command handler.
func (c *Command) Trigger() {
	if c.run != nil {
		c.run()
	}
}

// Commands is an ordered command table.
type Commands struct {
	order []*Command
	byID  map[CommandID]*Command
}

func newCommands(cmds ...*Command) *Commands {
	c := &Commands{byID: make(map[CommandID]*Command, len(cmds))}
	for _, cmd := range cmds {
		c.order = append(c.order, cmd)
		c.byID[cmd.ID] = cmd
	}
	return c
}

// Lookup returns the command with the given id, or nil.
func (c *Commands) Lookup(id CommandID) *Command {
	return c.byID[id]
}

// All returns the commands in registration order.
func (c *Commands) All() []*Command {
	return c.order
}

// Layout describes which commands appear where.
type Layout struct {
	ToolBar []Item
	Menus   []Menu

	// Bindings lists every key combination the chrome should forward.
	Bindings []Shortcut
}

// Menu is one top-level menu bar entry.
type Menu struct {
	Title string
	Items []Item
}

// Item is a menu or toolbar entry. A nil Command is a separator.
type Item struct {
	Command *Command
}

// Separator reports whether the item is a separator.
func (i Item) Separator() bool { return i.Command == nil }

var separator = Item{}

// stripMnemonic removes the & marker, keeping "&&" as a literal ampersand.
func stripMnemonic(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '&' {
			if i+1 < len(s) && s[i+1] == '&' {
				b.WriteByte('&')
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
