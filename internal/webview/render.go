package webview

import (
	"bytes"
	"fmt"
	"html/template"
)

// RenderHTML executes a named template to a string. The result is suitable
// for injecting into a page with Eval or Init.
func RenderHTML(tpl *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
