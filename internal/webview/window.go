package webview

import "fmt"

// Options configures a window opened with Open.
type Options struct {
	// Title is the initial window title.
	Title string

	// Width and Height set the initial window dimensions.
	Width  int
	Height int

	// Hint controls window resize behaviour (HintNone, HintMin, HintMax, HintFixed).
	Hint Hint

	// Debug enables the browser developer tools.
	Debug bool
}

const (
	defaultWidth  = 1024
	defaultHeight = 768
	defaultTitle  = "App"
)

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Title == "" {
		o.Title = defaultTitle
	}
	return o
}

// Open creates a native window with an embedded browser view, sized and
// titled from opts. The caller owns the returned WebView: Run it, then
// Destroy it.
func Open(opts Options) (WebView, error) {
	opts = opts.withDefaults()

	w, err := New(opts.Debug)
	if err != nil {
		return nil, fmt.Errorf("webview: open window: %w", err)
	}
	w.SetTitle(opts.Title)
	w.SetSize(opts.Width, opts.Height, opts.Hint)
	return w, nil
}
