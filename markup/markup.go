// Package markup escapes the characters &, <, >, " and ' in text so it
// can be embedded in HTML or XML output, and marks the result as already
// safe so it is never escaped twice.
package markup

// Markup is text that is already safe to embed in HTML or XML output.
// Escaping a Markup value is a no-op: it passes through unchanged.
type Markup string

// HTMLer is the opt-in capability for values that render their own safe
// HTML. Escape returns the result of HTML() as-is, with no further
// escaping; the implementer is trusted to have produced safe output.
type HTMLer interface {
	HTML() Markup
}

// HTML returns m itself. Markup is already safe.
func (m Markup) HTML() Markup { return m }

func (m Markup) String() string { return string(m) }
