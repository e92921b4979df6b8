// Package dom exposes the handful of tree operations the extractors need,
// so they don't depend on a concrete HTML library.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is an element of a parsed document.
type Node interface {
	// FindAll returns the descendants with the given tag name in document order.
	FindAll(tag string) []Node
	// FindByClass returns the descendants with the given tag name carrying the class.
	FindByClass(tag, class string) []Node
	Attr(name string) (string, bool)
	// Text returns the text content of the node and its descendants, trimmed.
	Text() string
	// Remove detaches every descendant with the given tag name.
	Remove(tag string)
}

// Element is a Node backed by a goquery selection of exactly one node.
type Element struct {
	selection *goquery.Selection
}

var _ Node = (*Element)(nil)

// Parse parses an HTML document and returns its root.
func Parse(body []byte) (*Element, error) {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("html.Parse > %w", err)
	}
	return &Element{
		selection: goquery.NewDocumentFromNode(root).Selection,
	}, nil
}

func (e *Element) FindAll(tag string) []Node {
	return wrap(e.selection.Find(tag))
}

func (e *Element) FindByClass(tag, class string) []Node {
	return wrap(e.selection.Find(tag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.HasClass(class)
	}))
}

func (e *Element) Attr(name string) (string, bool) {
	return e.selection.Attr(name)
}

func (e *Element) Text() string {
	return strings.TrimSpace(e.selection.Text())
}

func (e *Element) Remove(tag string) {
	e.selection.Find(tag).Remove()
}

func wrap(selection *goquery.Selection) []Node {
	nodes := make([]Node, 0, selection.Length())
	selection.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Element{selection: s})
	})
	return nodes
}
