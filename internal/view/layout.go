package view

// Layout wraps page content in the shared site chrome.
type Layout interface {
	Render(loc *Location, children ...*Node) (*Node, error)
}

// LayoutFunc adapts a function to the Layout interface.
type LayoutFunc func(loc *Location, children ...*Node) (*Node, error)

// Render calls f(loc, children...).
func (f LayoutFunc) Render(loc *Location, children ...*Node) (*Node, error) {
	return f(loc, children...)
}
