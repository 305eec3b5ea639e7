package webview

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// init locks the OS thread so that every native UI call happens on the main
// thread. Cocoa (macOS) and GTK (Linux) refuse GUI work from other threads.
func init() {
	runtime.LockOSThread()
}

// Hint configures window sizing and resizing.
type Hint int

const (
	// Width and height are default size.
	HintNone Hint = iota

	// Width and height are minimum bounds.
	HintMin

	// Width and height are maximum bounds.
	HintMax

	// Window size can not be changed by a user.
	HintFixed
)

// NativeHandleKind selects which native object NativeHandle returns.
type NativeHandleKind int

const (
	// NativeHandleWindow is the top-level window (GtkWindow, NSWindow, HWND).
	NativeHandleWindow NativeHandleKind = iota

	// NativeHandleWidget is the widget hosting the browser view.
	NativeHandleWidget

	// NativeHandleBrowser is the browser controller (WebKitWebView,
	// WKWebView, ICoreWebView2Controller).
	NativeHandleBrowser
)

// ErrNoNativeHandle is returned when the loaded library does not export
// webview_get_native_handle or returns no handle for the requested kind.
var ErrNoNativeHandle = errors.New("webview: native handle not available")

type WebView interface {
	// Run runs the main loop until it's terminated. After this function exits -
	// you must destroy the webview.
	Run()

	// Terminate stops the main loop. It is safe to call this function from
	// a background thread.
	Terminate()

	// Dispatch posts a function to be executed on the main thread.
	Dispatch(f func())

	// Destroy destroys a webview and closes the native window.
	Destroy()

	// Window returns the native window handle: GtkWindow, NSWindow or HWND.
	Window() unsafe.Pointer

	// NativeHandle returns the native object of the given kind.
	NativeHandle(kind NativeHandleKind) (unsafe.Pointer, error)

	// SetTitle updates the title of the native window. Must be called from the UI
	// thread.
	SetTitle(title string)

	// SetSize updates native window size. See Hint constants.
	SetSize(w, h int, hint Hint)

	// SetPosition moves the top-left corner of the native window to x, y in
	// screen coordinates. Must be called from the UI thread.
	SetPosition(x, y int) error

	// SetFullScreen switches the native window in or out of fullscreen
	// presentation. Must be called from the UI thread.
	SetFullScreen(on bool) error

	// FullScreen reports whether the native window is currently fullscreen.
	FullScreen() bool

	// Navigate navigates webview to the given URL.
	Navigate(url string)

	// Init injects JavaScript code that runs on every new page before
	// window.onload.
	Init(js string)

	// Eval evaluates JavaScript asynchronously. The result is ignored.
	Eval(js string)

	// Bind exposes f as a global JavaScript function. f must return nothing,
	// a value, an error, or a value and an error. Bound functions are invoked
	// on a background goroutine; use Dispatch to touch the UI.
	Bind(name string, f any) error
}

// New creates a new window and webview instance. If debug is true the
// developer tools are enabled where the platform supports them.
func New(debug bool) (WebView, error) { return NewWindow(debug, nil) }

// NewWindow creates a new webview instance. If window is non-nil the view is
// embedded into that native parent window instead of a new one.
func NewWindow(debug bool, window unsafe.Pointer) (WebView, error) {
	if err := loadNative(); err != nil {
		return nil, err
	}
	r1, _, _ := purego.SyscallN(native.create, boolToInt(debug), uintptr(window))
	if r1 == 0 {
		return nil, errors.New("webview: failed to create window")
	}
	return &webview{handle: r1}, nil
}

// library holds the resolved entry points of the native webview library.
type library struct {
	create          uintptr
	destroy         uintptr
	run             uintptr
	terminate       uintptr
	dispatch        uintptr
	getWindow       uintptr
	getNativeHandle uintptr
	setTitle        uintptr
	setSize         uintptr
	navigate        uintptr
	init            uintptr
	eval            uintptr
	bind            uintptr
	ret             uintptr

	dispatchCallback uintptr
	bindingCallback  uintptr
}

var (
	loadOnce    sync.Once
	loadInitErr error
	native      library
)

func loadNative() error {
	loadOnce.Do(func() {
		libHandle, err := loadLibrary(libraryPath())
		if err != nil {
			loadInitErr = fmt.Errorf("webview: failed to load native library: %w", err)
			return
		}
		if libHandle == 0 {
			loadInitErr = errors.New("webview: native library handle is nil")
			return
		}
		required := []struct {
			ptr  *uintptr
			name string
		}{
			{&native.create, "webview_create"},
			{&native.destroy, "webview_destroy"},
			{&native.run, "webview_run"},
			{&native.terminate, "webview_terminate"},
			{&native.dispatch, "webview_dispatch"},
			{&native.getWindow, "webview_get_window"},
			{&native.setTitle, "webview_set_title"},
			{&native.setSize, "webview_set_size"},
			{&native.navigate, "webview_navigate"},
			{&native.init, "webview_init"},
			{&native.eval, "webview_eval"},
			{&native.bind, "webview_bind"},
			{&native.ret, "webview_return"},
		}
		for _, s := range required {
			ptr, err := loadSymbol(libHandle, s.name)
			if err != nil {
				loadInitErr = err
				return
			}
			*s.ptr = ptr
		}
		// Added in webview 0.11; older builds simply lack it.
		if ptr, err := loadSymbol(libHandle, "webview_get_native_handle"); err == nil {
			native.getNativeHandle = ptr
		}
		native.dispatchCallback = purego.NewCallback(dispatchCallbackFn)
		native.bindingCallback = purego.NewCallback(bindingCallbackFn)
	})
	if loadInitErr != nil {
		return loadInitErr
	}
	if native.create == 0 {
		return errors.New("webview: native symbols are not initialized")
	}
	return nil
}

// webview is the WebView implementation backed by the native library.
type webview struct {
	handle uintptr
	fs     fullScreenState
}

// Dispatched functions and bound callbacks, keyed by the context value
// handed to the native side.
var (
	dispatchMu      sync.Mutex
	dispatchMap     = make(map[uintptr]func())
	dispatchCounter uintptr

	bindMu         sync.Mutex
	bindingMap     = make(map[uintptr]bindingEntry)
	boundNames     = make(map[string]uintptr)
	bindingCounter uintptr
)

type bindingEntry struct {
	fn *boundFunc
	w  uintptr
}

func (w *webview) Run() {
	purego.SyscallN(native.run, w.handle)
}

func (w *webview) Terminate() {
	// Win32 requires terminate to run on the UI thread.
	if runtime.GOOS == "windows" {
		w.Dispatch(func() { purego.SyscallN(native.terminate, w.handle) })
		return
	}
	purego.SyscallN(native.terminate, w.handle)
}

func (w *webview) Dispatch(f func()) {
	dispatchMu.Lock()
	idx := dispatchCounter
	dispatchCounter++
	dispatchMap[idx] = f
	dispatchMu.Unlock()
	purego.SyscallN(native.dispatch, w.handle, native.dispatchCallback, idx)
}

func (w *webview) Destroy() {
	purego.SyscallN(native.destroy, w.handle)
}

func (w *webview) Window() unsafe.Pointer {
	r1, _, _ := purego.SyscallN(native.getWindow, w.handle)
	return uintptrToPointer(r1)
}

func (w *webview) NativeHandle(kind NativeHandleKind) (unsafe.Pointer, error) {
	if native.getNativeHandle == 0 {
		return nil, ErrNoNativeHandle
	}
	r1, _, _ := purego.SyscallN(native.getNativeHandle, w.handle, uintptr(kind))
	if r1 == 0 {
		return nil, ErrNoNativeHandle
	}
	return uintptrToPointer(r1), nil
}

func (w *webview) SetTitle(title string) {
	cs, ptr := cString(title)
	purego.SyscallN(native.setTitle, w.handle, uintptr(ptr))
	runtime.KeepAlive(cs)
}

func (w *webview) SetSize(width, height int, hint Hint) {
	purego.SyscallN(native.setSize, w.handle, uintptr(width), uintptr(height), uintptr(hint))
}

func (w *webview) SetPosition(x, y int) error {
	win := w.Window()
	if win == nil {
		return errors.New("webview: no native window")
	}
	if err := setPosition(win, x, y); err != nil {
		return fmt.Errorf("webview: move to %d,%d: %w", x, y, err)
	}
	return nil
}

func (w *webview) SetFullScreen(on bool) error {
	win := w.Window()
	if win == nil {
		return errors.New("webview: no native window")
	}
	if err := setFullScreen(win, &w.fs, on); err != nil {
		return fmt.Errorf("webview: fullscreen %t: %w", on, err)
	}
	return nil
}

func (w *webview) FullScreen() bool {
	win := w.Window()
	if win == nil {
		return false
	}
	return isFullScreen(win, &w.fs)
}

func (w *webview) Navigate(url string) {
	cs, ptr := cString(url)
	purego.SyscallN(native.navigate, w.handle, uintptr(ptr))
	runtime.KeepAlive(cs)
}

func (w *webview) Init(js string) {
	cs, ptr := cString(js)
	purego.SyscallN(native.init, w.handle, uintptr(ptr))
	runtime.KeepAlive(cs)
}

func (w *webview) Eval(js string) {
	cs, ptr := cString(js)
	purego.SyscallN(native.eval, w.handle, uintptr(ptr))
	runtime.KeepAlive(cs)
}

func (w *webview) Bind(name string, f any) error {
	fn, err := newBoundFunc(f)
	if err != nil {
		return err
	}

	bindMu.Lock()
	if _, exists := boundNames[name]; exists {
		bindMu.Unlock()
		return fmt.Errorf("webview: %q already bound", name)
	}
	contextKey := bindingCounter
	bindingCounter++
	bindingMap[contextKey] = bindingEntry{w: w.handle, fn: fn}
	boundNames[name] = contextKey
	bindMu.Unlock()

	nameBytes, namePtr := cString(name)
	purego.SyscallN(native.bind, w.handle, uintptr(namePtr), native.bindingCallback, contextKey)
	runtime.KeepAlive(nameBytes)
	return nil
}

// dispatchCallbackFn executes a function posted with Dispatch on the main thread.
func dispatchCallbackFn(_, arg uintptr) uintptr {
	dispatchMu.Lock()
	fn := dispatchMap[arg]
	delete(dispatchMap, arg)
	dispatchMu.Unlock()
	if fn != nil {
		fn()
	}
	return 0
}

// bindingCallbackFn is invoked by the native webview when a bound JS function is called.
func bindingCallbackFn(idPtr, reqPtr, arg uintptr) uintptr {
	bindMu.Lock()
	entry, ok := bindingMap[arg]
	bindMu.Unlock()
	if !ok {
		return 0
	}

	id := goString(idPtr)
	req := goString(reqPtr)

	go func() {
		status, resultJSON := reply(entry.fn.call(req))

		// The native id/req pointers are gone by now, so copy into new C strings.
		idBytes, newIDPtr := cString(id)
		resBytes, newResPtr := cString(resultJSON)
		purego.SyscallN(native.ret, entry.w, uintptr(newIDPtr), uintptr(status), uintptr(newResPtr))
		runtime.KeepAlive(idBytes)
		runtime.KeepAlive(resBytes)
	}()

	return 0
}

func boolToInt(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

func cString(s string) ([]byte, unsafe.Pointer) {
	b := append([]byte(s), 0)
	return b, unsafe.Pointer(&b[0])
}

// uintptrToPointer goes through the address of p so go vet does not flag a
// direct uintptr conversion.
func uintptrToPointer(p uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&p))
}

func goString(c uintptr) string {
	ptr := uintptrToPointer(c)
	if ptr == nil {
		return ""
	}
	var length int
	for *(*byte)(unsafe.Add(ptr, uintptr(length))) != 0 {
		length++
	}
	return string(unsafe.Slice((*byte)(ptr), length))
}
