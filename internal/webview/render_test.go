package webview

import (
	"html/template"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	tpl := template.Must(template.New("").Parse(
		`{{define "button"}}<button data-command="{{.ID}}">{{.Text}}</button>{{end}}`,
	))

	got, err := RenderHTML(tpl, "button", struct{ ID, Text string }{"home", "<Home>"})
	if err != nil {
		t.Fatal(err)
	}
	want := `<button data-command="home">&lt;Home&gt;</button>`
	if got != want {
		t.Errorf("RenderHTML = %q, want %q", got, want)
	}
}

func TestRenderHTMLMissingTemplate(t *testing.T) {
	tpl := template.Must(template.New("test").Parse(`{{define "a"}}ok{{end}}`))

	if _, err := RenderHTML(tpl, "missing", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}
