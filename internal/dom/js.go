//go:build js && wasm

package dom

import (
	"fmt"
	"strings"
	"syscall/js"
)

type jsDocument struct {
	win js.Value
	doc js.Value
}

// Global wraps window.document.
func Global() Document {
	win := js.Global()
	return &jsDocument{win: win, doc: win.Get("document")}
}

// OnReady runs fn once the DOM is parsed, immediately if it already is.
func OnReady(fn func()) {
	doc := js.Global().Get("document")
	if doc.Get("readyState").String() != "loading" {
		fn()
		return
	}
	var cb js.Func
	cb = js.FuncOf(func(js.Value, []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	doc.Call("addEventListener", "DOMContentLoaded", cb)
}

// wrap returns nil for null/undefined so callers can compare against nil.
func wrap(v js.Value) Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &jsElement{v: v}
}

// safeQuery turns a SyntaxError from a malformed selector into a miss.
func safeQuery(root js.Value, method, selector string) (res js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("query %q: %v", selector, r)
		}
	}()
	return root.Call(method, selector), nil
}

func listen(target js.Value, event string, h Handler) {
	target.Call("addEventListener", event, js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		h(&jsEvent{v: ev})
		return nil
	}))
}

func (d *jsDocument) ByID(id string) Element {
	return wrap(d.doc.Call("getElementById", id))
}

func (d *jsDocument) Query(selector string) Element {
	v, err := safeQuery(d.doc, "querySelector", selector)
	if err != nil {
		return nil
	}
	return wrap(v)
}

func (d *jsDocument) QueryAll(selector string) []Element {
	list, err := safeQuery(d.doc, "querySelectorAll", selector)
	if err != nil {
		return nil
	}
	n := list.Length()
	out := make([]Element, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &jsElement{v: list.Index(i)})
	}
	return out
}

func (d *jsDocument) Body() Element { return wrap(d.doc.Get("body")) }

func (d *jsDocument) On(event string, h Handler) { listen(d.doc, event, h) }

func (d *jsDocument) OnWindow(event string, h Handler) { listen(d.win, event, h) }

func (d *jsDocument) ScrollY() float64 {
	if y := d.win.Get("pageYOffset"); !y.IsUndefined() {
		return y.Float()
	}
	return d.win.Get("scrollY").Float()
}

func (d *jsDocument) NewObserver(opts VisibilityOptions, fn func(Element)) (Observer, error) {
	ctor := d.win.Get("IntersectionObserver")
	if ctor.IsUndefined() {
		return nil, ErrUnsupported
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			e := entries.Index(i)
			if visibleEnough(e.Get("isIntersecting").Bool(), e.Get("intersectionRatio").Float(), opts.Threshold) {
				fn(&jsElement{v: e.Get("target")})
			}
		}
		return nil
	})
	obs := ctor.New(cb, map[string]any{
		"threshold":  opts.Threshold,
		"rootMargin": opts.RootMargin,
	})
	return &jsObserver{v: obs}, nil
}

type jsObserver struct{ v js.Value }

func (o *jsObserver) Observe(el Element) {
	if e, ok := el.(*jsElement); ok {
		o.v.Call("observe", e.v)
	}
}

func (o *jsObserver) Unobserve(el Element) {
	if e, ok := el.(*jsElement); ok {
		o.v.Call("unobserve", e.v)
	}
}

type jsElement struct{ v js.Value }

func (e *jsElement) Tag() string { return strings.ToUpper(e.v.Get("tagName").String()) }

func (e *jsElement) Attr(name string) string {
	a := e.v.Call("getAttribute", name)
	if a.IsNull() {
		return ""
	}
	return a.String()
}

func (e *jsElement) Matches(selector string) bool {
	if e.v.Get("matches").IsUndefined() {
		return false // text nodes, document
	}
	v, err := safeQuery(e.v, "matches", selector)
	return err == nil && v.Bool()
}

func (e *jsElement) Query(selector string) Element {
	v, err := safeQuery(e.v, "querySelector", selector)
	if err != nil {
		return nil
	}
	return wrap(v)
}

func (e *jsElement) SetStyle(prop, value string) {
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *jsElement) Style(prop string) string {
	return e.v.Get("style").Call("getPropertyValue", prop).String()
}

func (e *jsElement) AddClass(name string) { e.v.Get("classList").Call("add", name) }

func (e *jsElement) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *jsElement) SetHTML(html string) { e.v.Set("innerHTML", html) }

func (e *jsElement) SetText(text string) { e.v.Set("textContent", text) }

func (e *jsElement) Rect() Rect {
	r := e.v.Call("getBoundingClientRect")
	return Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func (e *jsElement) ScrollIntoView() {
	e.v.Call("scrollIntoView", map[string]any{"behavior": "smooth", "block": "start"})
}

func (e *jsElement) On(event string, h Handler) { listen(e.v, event, h) }

type jsEvent struct{ v js.Value }

func (e *jsEvent) num(name string) float64 {
	if e.v.IsUndefined() {
		return 0
	}
	x := e.v.Get(name)
	if x.Type() != js.TypeNumber {
		return 0
	}
	return x.Float()
}

func (e *jsEvent) str(name string) string {
	if e.v.IsUndefined() {
		return ""
	}
	x := e.v.Get(name)
	if x.Type() != js.TypeString {
		return ""
	}
	return x.String()
}

func (e *jsEvent) ClientX() float64 { return e.num("clientX") }

func (e *jsEvent) Code() string { return e.str("code") }

func (e *jsEvent) Target() Element {
	if e.v.IsUndefined() {
		return nil
	}
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() || t.Get("tagName").IsUndefined() {
		return nil
	}
	return &jsElement{v: t}
}

func (e *jsEvent) PreventDefault() {
	if !e.v.IsUndefined() {
		e.v.Call("preventDefault")
	}
}
