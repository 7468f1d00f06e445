package view

// NotFoundHeading is the fixed heading shown for unmatched routes.
const NotFoundHeading = "Page Not Found"

// NotFound renders the page for unmatched routes: the layout, given loc as-is,
// wrapping a single h1. Layout errors are returned unchanged.
func NotFound(layout Layout, loc *Location) (*Node, error) {
	return layout.Render(loc, El("h1", nil, Text(NotFoundHeading)))
}
