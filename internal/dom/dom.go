// Package dom is the slice of the browser page the controller needs. The js
// build talks to the real document through syscall/js; tests use domtest.
package dom

import "errors"

// ErrUnsupported is returned when an optional page capability is missing.
var ErrUnsupported = errors.New("dom: capability unsupported")

type Rect struct {
	Left, Top, Width, Height float64
}

type Event interface {
	// ClientX is the pointer's horizontal viewport position.
	ClientX() float64
	// Code is the physical key code, e.g. "Space".
	Code() string
	// Target is nil when the event has no element target.
	Target() Element
	PreventDefault()
}

type Handler func(Event)

// Element is a node in the page. CSS properties use their hyphenated names.
type Element interface {
	// Tag returns the upper-case tag name.
	Tag() string
	Attr(name string) string
	Matches(selector string) bool
	// Query returns the first matching descendant or nil.
	Query(selector string) Element

	SetStyle(prop, value string)
	Style(prop string) string
	AddClass(name string)
	HasClass(name string) bool
	SetHTML(html string)
	SetText(text string)

	Rect() Rect
	// ScrollIntoView smooth-scrolls so the element's top meets the viewport's.
	ScrollIntoView()
	On(event string, h Handler)
}

// VisibilityOptions mirror IntersectionObserver's init dictionary.
type VisibilityOptions struct {
	Threshold  float64
	RootMargin string
}

// visibleEnough is the reveal rule shared by every Observer: the element
// intersects and at least threshold of it is visible.
func visibleEnough(intersecting bool, ratio, threshold float64) bool {
	return intersecting && ratio > 0 && ratio >= threshold
}

// VisibleEnough exposes the reveal rule to in-memory documents.
func VisibleEnough(ratio, threshold float64) bool {
	return visibleEnough(ratio > 0, ratio, threshold)
}

// Observer watches elements for viewport intersection.
type Observer interface {
	Observe(el Element)
	Unobserve(el Element)
}

type Document interface {
	// ByID, Query return nil when nothing matches.
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	Body() Element

	// On listens on the document; events bubble up to it.
	On(event string, h Handler)
	// OnWindow listens on the window (scroll, resize).
	OnWindow(event string, h Handler)
	ScrollY() float64

	// NewObserver calls fn for each observed element that intersects the
	// viewport past the threshold. ErrUnsupported when the page can't observe.
	NewObserver(opts VisibilityOptions, fn func(Element)) (Observer, error)
}
