package seo

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNoHead = errors.New("document has no head element")

// Document is a parsed HTML page whose head the synchronizer mutates.
type Document struct {
	root *html.Node
	head *html.Node
}

// NewDocument returns an empty html/head/body document.
func NewDocument() *Document {
	doc, _ := ParseDocument(strings.NewReader("<!DOCTYPE html><html><head></head><body></body></html>"))
	return doc
}

func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	head := findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Head
	})
	if head == nil {
		return nil, ErrNoHead
	}
	return &Document{root: root, head: head}, nil
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Render(&sb)
	return sb.String()
}

// Title returns the text of the head <title>.
func (d *Document) Title() string {
	t := d.find(Selector{Tag: "title"})
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for c := t.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

// SetTitle replaces the <title> text, creating the element if needed.
func (d *Document) SetTitle(title string) {
	t := d.find(Selector{Tag: "title"})
	if t == nil {
		t = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		d.head.AppendChild(t)
	}
	for c := t.FirstChild; c != nil; {
		next := c.NextSibling
		t.RemoveChild(c)
		c = next
	}
	t.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}

// Get returns the value of an owned element, if present.
func (d *Document) Get(id ElementID) (string, bool) {
	sel := id.Selector()
	n := d.find(sel)
	if n == nil {
		return "", false
	}
	return attr(n, sel.ValueAttr)
}

// Set writes value into the element, appending it to the head on first use.
func (d *Document) Set(id ElementID, value string) {
	sel := id.Selector()
	n := d.find(sel)
	if n == nil {
		n = &html.Node{
			Type:     html.ElementNode,
			Data:     sel.Tag,
			DataAtom: atom.Lookup([]byte(sel.Tag)),
			Attr:     []html.Attribute{{Key: sel.Attr, Val: sel.Key}},
		}
		d.head.AppendChild(n)
	}
	setAttr(n, sel.ValueAttr, value)
}

// Count reports how many elements match id. Reconciliation keeps it at most one.
func (d *Document) Count(id ElementID) int {
	sel := id.Selector()
	count := 0
	walk(d.head, func(n *html.Node) {
		if matches(n, sel) {
			count++
		}
	})
	return count
}

func (d *Document) find(sel Selector) *html.Node {
	return findFirst(d.head, func(n *html.Node) bool { return matches(n, sel) })
}

func matches(n *html.Node, sel Selector) bool {
	if n.Type != html.ElementNode || n.Data != sel.Tag {
		return false
	}
	if sel.Attr == "" {
		return true
	}
	v, ok := attr(n, sel.Attr)
	return ok && v == sel.Key
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

func walk(n *html.Node, fn func(*html.Node)) {
	fn(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, fn)
	}
}

func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}
