package webview

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"unicode"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// BindMethods binds every exported method of obj as a JavaScript function
// named {prefix}_{snake_case_method}. Methods follow the Bind signature rules.
// It returns the bound names in method order.
func BindMethods(w WebView, prefix string, obj any) ([]string, error) {
	if w == nil {
		return nil, errors.New("webview: nil WebView")
	}
	v := reflect.ValueOf(obj)
	if !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil, errors.New("webview: nil object")
	}
	t := v.Type()

	var bound []string
	for i := 0; i < t.NumMethod(); i++ {
		method := t.Method(i)
		if !method.IsExported() {
			continue
		}

		name := prefix + "_" + camelToSnake(method.Name)
		if err := w.Bind(name, v.Method(i).Interface()); err != nil {
			return bound, fmt.Errorf("binding %s: %w", name, err)
		}
		bound = append(bound, name)
	}
	return bound, nil
}

// camelToSnake maps a Go method name to its JavaScript name: FullScreen
// becomes full_screen, GetUserByID becomes get_user_by_id.
func camelToSnake(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes)+4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && wordStart(runes, i) {
			out = append(out, '_')
		}
		out = append(out, unicode.ToLower(r))
	}
	return string(out)
}

// wordStart reports whether the upper-case rune at i begins a word: it follows
// a lower-case rune, or it ends an acronym that a lower-case rune continues.
func wordStart(runes []rune, i int) bool {
	if unicode.IsLower(runes[i-1]) {
		return true
	}
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// boundFunc is a Go function called from JavaScript with a JSON array of
// arguments.
type boundFunc struct {
	fn     reflect.Value
	params []reflect.Type

	// hasValue is set when the first result is a value; hasErr when the last
	// result is an error.
	hasValue bool
	hasErr   bool
}

func newBoundFunc(f any) (*boundFunc, error) {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("webview: cannot bind %T, want a function", f)
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, errors.New("webview: variadic functions cannot be bound")
	}

	b := &boundFunc{fn: v, params: make([]reflect.Type, t.NumIn())}
	for i := range b.params {
		b.params[i] = t.In(i)
	}
	switch t.NumOut() {
	case 0:
	case 1:
		b.hasErr = t.Out(0).Implements(errorType)
		b.hasValue = !b.hasErr
	case 2:
		if !t.Out(1).Implements(errorType) {
			return nil, errors.New("webview: second result must be an error")
		}
		b.hasValue, b.hasErr = true, true
	default:
		return nil, errors.New("webview: bound functions return at most a value and an error")
	}
	return b, nil
}

// call decodes req and calls the function.
func (b *boundFunc) call(req string) (any, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(req), &raw); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}
	if len(raw) != len(b.params) {
		return nil, fmt.Errorf("got %d arguments, want %d", len(raw), len(b.params))
	}

	args := make([]reflect.Value, len(raw))
	for i, p := range b.params {
		arg := reflect.New(p)
		if err := json.Unmarshal(raw[i], arg.Interface()); err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		args[i] = arg.Elem()
	}
	out := b.fn.Call(args)

	var value any
	if b.hasValue {
		value = out[0].Interface()
	}
	if b.hasErr {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, err
		}
	}
	return value, nil
}

// reply encodes the outcome of a call for webview_return: status 0 with the
// JSON value, or -1 with the error message as a JSON string.
func reply(value any, err error) (int, string) {
	if err == nil {
		data, merr := json.Marshal(value)
		if merr == nil {
			return 0, string(data)
		}
		err = merr
	}
	msg, _ := json.Marshal(err.Error())
	return -1, string(msg)
}
