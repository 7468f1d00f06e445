package view

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Render writes n as HTML. Escaping is done by the html package.
func (n *Node) Render(w io.Writer) error {
	if err := html.Render(w, n.toHTML()); err != nil {
		return fmt.Errorf("render <%s>: %w", n.Tag, err)
	}
	return nil
}

// RenderDocument writes n as a full HTML document with a doctype.
func RenderDocument(w io.Writer, n *Node) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(n.toHTML())
	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	return nil
}

// String renders n and returns the markup, or the render error text.
func (n *Node) String() string {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err.Error()
	}
	return buf.String()
}

func (n *Node) toHTML() *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		hn.Attr = append(hn.Attr, html.Attribute{Key: a.Key, Val: a.Value})
	}
	for _, c := range n.Children {
		if c == nil {
			continue
		}
		hn.AppendChild(c.toHTML())
	}
	return hn
}
