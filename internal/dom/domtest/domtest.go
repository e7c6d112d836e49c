// Package domtest is an in-memory dom.Document for tests. It parses real
// markup with golang.org/x/net/html, resolves selectors with cascadia, and
// lets the test play the browser: scroll, click, press keys, hover and
// report intersections.
package domtest

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ingyamilmolinar/reverbfx/internal/dom"
)

type Page struct {
	root    *html.Node
	styles  map[*html.Node]map[string]string
	rects   map[*html.Node]dom.Rect
	on      map[*html.Node]map[string][]dom.Handler
	docOn   map[string][]dom.Handler
	winOn   map[string][]dom.Handler
	added   map[*html.Node]map[string]int
	scrollY float64

	observers []*observer
	// NoObserver makes NewObserver report dom.ErrUnsupported.
	NoObserver bool
	// Scrolled records every element scrolled into view, in order.
	Scrolled []dom.Element
}

// Parse builds a Page from an HTML document.
func Parse(r io.Reader) (*Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Page{
		root:   root,
		styles: map[*html.Node]map[string]string{},
		rects:  map[*html.Node]dom.Rect{},
		on:     map[*html.Node]map[string][]dom.Handler{},
		docOn:  map[string][]dom.Handler{},
		winOn:  map[string][]dom.Handler{},
		added:  map[*html.Node]map[string]int{},
	}, nil
}

// MustParse is Parse for literal markup.
func MustParse(markup string) *Page {
	p, err := Parse(strings.NewReader(markup))
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Page) wrap(n *html.Node) dom.Element {
	if n == nil {
		return nil
	}
	return &Element{page: p, n: n}
}

func compile(selector string) cascadia.Matcher {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil
	}
	return sel
}

func (p *Page) ByID(id string) dom.Element {
	return p.Query("#" + id)
}

func (p *Page) Query(selector string) dom.Element {
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	return p.wrap(cascadia.Query(p.root, sel))
}

func (p *Page) QueryAll(selector string) []dom.Element {
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	nodes := cascadia.QueryAll(p.root, sel)
	out := make([]dom.Element, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, p.wrap(n))
	}
	return out
}

func (p *Page) Body() dom.Element { return p.Query("body") }

func (p *Page) On(event string, h dom.Handler) {
	p.docOn[event] = append(p.docOn[event], h)
}

func (p *Page) OnWindow(event string, h dom.Handler) {
	p.winOn[event] = append(p.winOn[event], h)
}

func (p *Page) ScrollY() float64 { return p.scrollY }

func (p *Page) NewObserver(opts dom.VisibilityOptions, fn func(dom.Element)) (dom.Observer, error) {
	if p.NoObserver {
		return nil, dom.ErrUnsupported
	}
	o := &observer{opts: opts, fn: fn, watched: map[*html.Node]bool{}}
	p.observers = append(p.observers, o)
	return o, nil
}

type observer struct {
	opts    dom.VisibilityOptions
	fn      func(dom.Element)
	watched map[*html.Node]bool
}

func (o *observer) Observe(el dom.Element) {
	if e, ok := el.(*Element); ok {
		o.watched[e.n] = true
	}
}

func (o *observer) Unobserve(el dom.Element) {
	if e, ok := el.(*Element); ok {
		delete(o.watched, e.n)
	}
}

// Observed reports whether any observer is watching el.
func (p *Page) Observed(el dom.Element) bool {
	n := node(el)
	for _, o := range p.observers {
		if o.watched[n] {
			return true
		}
	}
	return false
}

// Intersect reports el as visible at ratio (0..1). Observers fire when the
// ratio reaches their threshold, like IntersectionObserver's isIntersecting.
func (p *Page) Intersect(el dom.Element, ratio float64) {
	n := node(el)
	for _, o := range p.observers {
		if o.watched[n] && dom.VisibleEnough(ratio, o.opts.Threshold) {
			o.fn(p.wrap(n))
		}
	}
}

// Scroll sets the vertical offset and fires window scroll listeners.
func (p *Page) Scroll(y float64) {
	p.scrollY = y
	ev := &Event{}
	for _, h := range p.winOn["scroll"] {
		h(ev)
	}
}

// SetRect fixes the bounding rectangle reported for el.
func (p *Page) SetRect(el dom.Element, r dom.Rect) { p.rects[node(el)] = r }

// Click dispatches a bubbling click at clientX on el.
func (p *Page) Click(el dom.Element, clientX float64) *Event {
	ev := &Event{clientX: clientX, target: el}
	p.bubble(node(el), "click", ev)
	return ev
}

// KeyDown dispatches a bubbling keydown with code on el, or on the body when
// el is nil.
func (p *Page) KeyDown(el dom.Element, code string) *Event {
	if el == nil {
		el = p.Body()
	}
	ev := &Event{code: code, target: el}
	p.bubble(node(el), "keydown", ev)
	return ev
}

// Hover fires mouseenter; Leave fires mouseleave. Neither bubbles.
func (p *Page) Hover(el dom.Element) { p.fire(node(el), "mouseenter", &Event{target: el}) }

func (p *Page) Leave(el dom.Element) { p.fire(node(el), "mouseleave", &Event{target: el}) }

// ClassAdds counts AddClass calls for class on el, including repeats.
func (p *Page) ClassAdds(el dom.Element, class string) int {
	return p.added[node(el)][class]
}

func (p *Page) fire(n *html.Node, event string, ev *Event) {
	for _, h := range p.on[n][event] {
		h(ev)
	}
}

func (p *Page) bubble(n *html.Node, event string, ev *Event) {
	for cur := n; cur != nil; cur = cur.Parent {
		p.fire(cur, event, ev)
	}
	for _, h := range p.docOn[event] {
		h(ev)
	}
}

func node(el dom.Element) *html.Node {
	if e, ok := el.(*Element); ok && e != nil {
		return e.n
	}
	return nil
}

// Event is the synthetic event handed to listeners.
type Event struct {
	clientX   float64
	code      string
	target    dom.Element
	prevented bool
}

func (e *Event) ClientX() float64       { return e.clientX }
func (e *Event) Code() string           { return e.code }
func (e *Event) Target() dom.Element    { return e.target }
func (e *Event) PreventDefault()        { e.prevented = true }
func (e *Event) DefaultPrevented() bool { return e.prevented }

type Element struct {
	page *Page
	n    *html.Node
}

func (e *Element) Tag() string { return strings.ToUpper(e.n.Data) }

func (e *Element) Attr(name string) string {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func (e *Element) setAttr(name, val string) {
	for i, a := range e.n.Attr {
		if a.Key == name {
			e.n.Attr[i].Val = val
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: val})
}

func (e *Element) Matches(selector string) bool {
	sel := compile(selector)
	return sel != nil && sel.Match(e.n)
}

func (e *Element) Query(selector string) dom.Element {
	sel := compile(selector)
	if sel == nil {
		return nil
	}
	return e.page.wrap(cascadia.Query(e.n, sel))
}

func (e *Element) SetStyle(prop, value string) {
	st := e.page.styles[e.n]
	if st == nil {
		st = map[string]string{}
		e.page.styles[e.n] = st
	}
	if value == "" {
		delete(st, prop)
		return
	}
	st[prop] = value
}

func (e *Element) Style(prop string) string { return e.page.styles[e.n][prop] }

func (e *Element) AddClass(name string) {
	counts := e.page.added[e.n]
	if counts == nil {
		counts = map[string]int{}
		e.page.added[e.n] = counts
	}
	counts[name]++
	if e.HasClass(name) {
		return
	}
	cls := strings.TrimSpace(e.Attr("class") + " " + name)
	e.setAttr("class", cls)
}

func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.Attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

func (e *Element) SetHTML(markup string) {
	e.clear()
	ctx := &html.Node{Type: html.ElementNode, Data: e.n.Data, DataAtom: atom.Lookup([]byte(e.n.Data))}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
}

func (e *Element) SetText(text string) {
	e.clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// HTML renders the element's children.
func (e *Element) HTML() string {
	var b strings.Builder
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// Text concatenates the element's text nodes.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

func (e *Element) Rect() dom.Rect { return e.page.rects[e.n] }

func (e *Element) ScrollIntoView() { e.page.Scrolled = append(e.page.Scrolled, e) }

func (e *Element) On(event string, h dom.Handler) {
	m := e.page.on[e.n]
	if m == nil {
		m = map[string][]dom.Handler{}
		e.page.on[e.n] = m
	}
	m[event] = append(m[event], h)
}

// Same reports whether a and b wrap the same node.
func Same(a, b dom.Element) bool {
	na, nb := node(a), node(b)
	return na != nil && na == nb
}
