package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/orangetv/viewer/internal/shell"
	"github.com/orangetv/viewer/internal/webview"
)

var (
	//go:embed assets/chrome.js
	chromeScript string

	//go:embed assets/chrome.css
	chromeStyle string

	//go:embed assets/chrome.tmpl
	chromeMarkup string
)

var chromeTemplates = template.Must(template.New("").Parse(chromeMarkup))

// Chrome implements shell.Chrome as an overlay drawn by the page script.
type Chrome struct {
	e       *Engine
	toolBar *toolBar

	onCommand func(shell.CommandID)
	onKey     func(shell.Shortcut)
}

var _ shell.Chrome = (*Chrome)(nil)

type chromeView struct {
	Menus   []menuView
	ToolBar []itemView
}

type menuView struct {
	Title string
	Items []itemView
}

type itemView struct {
	Separator bool
	ID        string
	Text      string
	Label     string
	StatusTip string
	Keys      string
}

func newItemView(it shell.Item) itemView {
	if it.Separator() {
		return itemView{Separator: true}
	}
	c := it.Command
	v := itemView{ID: string(c.ID), Text: c.Text, Label: c.Label(), StatusTip: c.StatusTip}
	if len(c.Shortcuts) > 0 {
		v.Keys = string(c.Shortcuts[0])
	}
	return v
}

// Build renders the layout and registers the page script that draws it on
// every page loaded afterwards.
func (c *Chrome) Build(layout shell.Layout) error {
	var view chromeView
	for _, m := range layout.Menus {
		mv := menuView{Title: strings.ReplaceAll(m.Title, "&", "")}
		for _, it := range m.Items {
			mv.Items = append(mv.Items, newItemView(it))
		}
		view.Menus = append(view.Menus, mv)
	}
	for _, it := range layout.ToolBar {
		view.ToolBar = append(view.ToolBar, newItemView(it))
	}

	markup, err := webview.RenderHTML(chromeTemplates, "chrome", view)
	if err != nil {
		return err
	}
	script, err := pageScript(markup, layout.Bindings)
	if err != nil {
		return err
	}

	for _, v := range append(view.ToolBar, flatten(view.Menus)...) {
		if !v.Separator {
			c.e.labels[v.ID] = label{Text: v.Text, Menu: v.Label}
		}
	}
	c.toolBar = nil
	if len(view.ToolBar) > 0 {
		c.toolBar = &toolBar{e: c.e}
	}

	c.e.wv.Init(script)
	return nil
}

func flatten(menus []menuView) []itemView {
	var out []itemView
	for _, m := range menus {
		out = append(out, m.Items...)
	}
	return out
}

// pageScript fills the placeholders of the embedded script with JSON
// literals.
func pageScript(markup string, bindings []shell.Shortcut) (string, error) {
	values := []struct {
		placeholder string
		value       any
	}{
		{`"@@MARKUP@@"`, markup},
		{`"@@STYLE@@"`, chromeStyle},
		{`["@@BINDINGS@@"]`, bindings},
	}
	script := chromeScript
	for _, v := range values {
		data, err := json.Marshal(v.value)
		if err != nil {
			return "", fmt.Errorf("engine: encode %s: %w", v.placeholder, err)
		}
		script = strings.Replace(script, v.placeholder, string(data), 1)
	}
	return script, nil
}

// SetMenuBarVisible shows or hides the menu bar.
func (c *Chrome) SetMenuBarVisible(visible bool) {
	c.e.menuBar = visible
	c.e.push()
}

// ToolBar returns nil until a layout with toolbar items is built.
func (c *Chrome) ToolBar() shell.ToolBar {
	if c.toolBar == nil {
		return nil
	}
	return c.toolBar
}

// SetCommandText updates the toolbar and menu labels of cmd.
func (c *Chrome) SetCommandText(cmd *shell.Command) {
	c.e.labels[string(cmd.ID)] = label{Text: cmd.Text, Menu: cmd.Label()}
	c.e.push()
}

// OnCommand registers the handler for toolbar and menu activations.
func (c *Chrome) OnCommand(fn func(shell.CommandID)) { c.onCommand = fn }

// OnKey registers the handler for bound key presses.
func (c *Chrome) OnKey(fn func(shell.Shortcut)) { c.onKey = fn }

type toolBar struct {
	e *Engine
}

func (t *toolBar) SetVisible(visible bool) {
	t.e.toolBar = visible
	t.e.push()
}
