// Package component models the style components the layout collaborator
// delivers keyed by string identifier, and the product-level views built
// from them.
package component

// Component is the closed set of style component variants. Consumers match
// variants exhaustively; there is no open extension point.
type Component interface {
	isComponent()
}

// Text is a styled text template. Value may contain placeholder tags that the
// templating layer substitutes at render time.
type Text struct {
	Value string `json:"value"`
}

// Button is a tappable action component.
type Button struct {
	Label  string `json:"label"`
	Action string `json:"action"`
}

// Shape is a decorative background form.
type Shape struct {
	Form string `json:"form"`
}

func (Text) isComponent()   {}
func (Button) isComponent() {}
func (Shape) isComponent()  {}

// Store holds components keyed by identifier. Lookups are typed: a missing
// key and a component of a different type both report ok=false, so malformed
// layout data degrades to absent fields instead of failing.
type Store map[string]Component

// Text returns the text component at key, if one exists.
func (s Store) Text(key string) (Text, bool) {
	c, ok := s[key].(Text)
	return c, ok
}

// Button returns the button component at key, if one exists.
func (s Store) Button(key string) (Button, bool) {
	c, ok := s[key].(Button)
	return c, ok
}

// Shape returns the shape component at key, if one exists.
func (s Store) Shape(key string) (Shape, bool) {
	c, ok := s[key].(Shape)
	return c, ok
}

func (s Store) textPtr(key string) *Text {
	if t, ok := s.Text(key); ok {
		return &t
	}
	return nil
}
