// Package xmltree reads XML documents into a mutable tree of Go structs.
//
// The tree keeps tag and attribute names exactly as they appear in the
// source document, so that a document parsed and written back out is
// equivalent to its input. Namespace prefixes in scope at any element
// can be resolved against the element's Scope.
package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

const recursionLimit = 3000

var errDeepXML = errors.New("xmltree: xml document too deeply nested")

// The xml package resolves well-known prefixes to their canonical
// namespace before we see them.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// An Attr is a single attribute of an Element. Name holds the
// attribute name as written in the document, prefix included.
type Attr struct {
	Name  string
	Local string
	Value string
}

// An Element is a single element in an XML document. Elements may have
// zero or more children. Name holds the tag as written in the source
// document, prefix included; Local is the tag's local part, which is
// what the navigation methods match on. Text is the character data
// directly contained by the element.
type Element struct {
	Name     string
	Local    string
	Attrs    []Attr
	Text     string
	Children []*Element
	// A list of defined XML namespace prefixes, from least specific
	// to most specific. The Space field is the canonical xml
	// namespace, and the Local field is the prefix.
	Scope []xml.Name

	parent *Element
}

// New creates a detached Element. The name is stored as given; a
// "prefix:local" name keeps its prefix and matches on the local part.
func New(name string) *Element {
	return &Element{Name: name, Local: localPart(name)}
}

func localPart(name string) string {
	if i := strings.IndexByte(name, ':'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// Parent returns the element containing el, or nil for the root of a
// parsed document and for detached elements.
func (el *Element) Parent() *Element { return el.parent }

// Attr returns the value of the first attribute whose local name is
// local, or the empty string if there is no such attribute.
func (el *Element) Attr(local string) string {
	for _, a := range el.Attrs {
		if a.Local == local {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether el carries an attribute with the given
// local name, distinguishing an absent attribute from an empty one.
func (el *Element) HasAttr(local string) bool {
	for _, a := range el.Attrs {
		if a.Local == local {
			return true
		}
	}
	return false
}

// SetAttr sets an attribute on el, replacing the value of an existing
// attribute with the same local name. The name may carry a prefix,
// such as "xml:lang"; it is written out as given.
func (el *Element) SetAttr(name, value string) {
	local := localPart(name)
	for i, a := range el.Attrs {
		if a.Local == local {
			el.Attrs[i].Value = value
			return
		}
	}
	el.Attrs = append(el.Attrs, Attr{Name: name, Local: local, Value: value})
}

// RemoveAttr removes the first attribute with the given local name.
// It reports whether an attribute was removed.
func (el *Element) RemoveAttr(local string) bool {
	for i, a := range el.Attrs {
		if a.Local == local {
			el.Attrs = append(el.Attrs[:i], el.Attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Child returns the first direct child whose local name is local, or
// nil if there is none.
func (el *Element) Child(local string) *Element {
	for _, c := range el.Children {
		if c.Local == local {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all direct children with the given local
// name, in document order.
func (el *Element) ChildrenNamed(local string) []*Element {
	var out []*Element
	for _, c := range el.Children {
		if c.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Append adds child as the last child of el and makes el its parent.
// The child inherits el's namespace scope unless it declares its own.
func (el *Element) Append(child *Element) {
	child.parent = el
	if child.Scope == nil {
		child.Scope = el.Scope
	}
	el.Children = append(el.Children, child)
}

// Insert adds child at position i among el's children. An i at or
// past the end appends.
func (el *Element) Insert(i int, child *Element) {
	if i < 0 || i >= len(el.Children) {
		el.Append(child)
		return
	}
	child.parent = el
	if child.Scope == nil {
		child.Scope = el.Scope
	}
	el.Children = append(el.Children[:i], append([]*Element{child}, el.Children[i:]...)...)
}

// RemoveChildrenNamed removes every direct child with the given local
// name and returns the index the first one occupied, or -1 if none
// were removed.
func (el *Element) RemoveChildrenNamed(local string) int {
	first := -1
	kept := el.Children[:0]
	for i, c := range el.Children {
		if c.Local == local {
			if first < 0 {
				first = i
			}
			c.parent = nil
			continue
		}
		kept = append(kept, c)
	}
	el.Children = kept
	return first
}

// SetText replaces the character data directly contained by el.
func (el *Element) SetText(s string) { el.Text = s }

// Resolve translates an XML QName (namespace-prefixed string) to an
// xml.Name with a canonicalized namespace in its Space field. If a
// namespace prefix cannot be resolved, the returned value's Space
// field will be the unresolved prefix.
func (el *Element) Resolve(qname string) xml.Name {
	var prefix, local string
	parts := strings.SplitN(qname, ":", 2)
	if len(parts) == 2 {
		prefix, local = parts[0], parts[1]
	} else {
		prefix, local = "", parts[0]
	}
	for i := len(el.Scope) - 1; i >= 0; i-- {
		if el.Scope[i].Local == prefix {
			return xml.Name{Space: el.Scope[i].Space, Local: local}
		}
	}
	return xml.Name{Space: prefix, Local: local}
}

// Prefix is the inverse of Resolve. It uses the closest prefix defined
// for a namespace to produce a string of the form prefix:local. If the
// namespace is not in scope, only the local part is returned.
func (el *Element) Prefix(name xml.Name) string {
	if name.Space == xmlNamespace {
		return "xml:" + name.Local
	}
	for i := len(el.Scope) - 1; i >= 0; i-- {
		if el.Scope[i].Space == name.Space {
			if el.Scope[i].Local == "" {
				return name.Local
			}
			return el.Scope[i].Local + ":" + name.Local
		}
	}
	return name.Local
}

func (el *Element) pushNS(attrs []xml.Attr) {
	var scope []xml.Name
	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" {
			scope = append(scope, xml.Name{Space: attr.Value, Local: attr.Name.Local})
		} else if attr.Name.Local == "xmlns" {
			scope = append(scope, xml.Name{Space: attr.Value, Local: ""})
		}
	}
	if len(scope) > 0 {
		el.Scope = append(el.Scope, scope...)
		// Ensure that future additions to the scope create a new
		// backing array. This prevents the scope from being
		// clobbered during parsing.
		el.Scope = el.Scope[:len(el.Scope):len(el.Scope)]
	}
}

// Walk calls fn for el and every element below it, in document order.
func (el *Element) Walk(fn func(*Element)) {
	fn(el)
	for _, c := range el.Children {
		c.Walk(fn)
	}
}

// SearchFunc traverses the tree below el in depth-first order and
// returns the elements for which fn returns true. Children of a match
// are still searched.
func (el *Element) SearchFunc(fn func(*Element) bool) []*Element {
	var results []*Element
	for _, c := range el.Children {
		c.Walk(func(e *Element) {
			if fn(e) {
				results = append(results, e)
			}
		})
	}
	return results
}

// Save some typing when scanning xml
type scanner struct {
	*xml.Decoder
	tok xml.Token
	err error
}

func (s *scanner) scan() bool {
	if s.err != nil {
		return false
	}
	s.tok, s.err = s.Token()
	return s.err == nil
}

// Parse builds a tree of Elements by reading an XML document. The byte
// slice passed to Parse is expected to be a well-formed XML document
// with a single root element.
func Parse(doc []byte) (*Element, error) {
	return Decode(bytes.NewReader(doc))
}

// Decode is like Parse, but reads from r. Documents in any encoding
// declared by their XML declaration are transcoded to UTF-8.
func Decode(r io.Reader) (*Element, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel
	scanner := scanner{Decoder: d}
	root := new(Element)

	for scanner.scan() {
		if start, ok := scanner.tok.(xml.StartElement); ok {
			root.pushNS(start.Attr)
			root.setName(start)
			break
		}
	}
	if scanner.err != nil {
		if scanner.err == io.EOF {
			return nil, errors.New("xmltree: no root element")
		}
		return nil, scanner.err
	}
	if err := root.parse(&scanner, 0); err != nil {
		return nil, err
	}
	return root, nil
}

// setName records the element's tag and attributes with their original
// prefixes, reconstructed from the namespace scope. The scope must be
// pushed before setName is called.
func (el *Element) setName(start xml.StartElement) {
	el.Name = el.Prefix(start.Name)
	el.Local = start.Name.Local
	for _, a := range start.Attr {
		attr := Attr{Value: a.Value}
		switch {
		case a.Name.Space == "xmlns":
			attr.Name = "xmlns:" + a.Name.Local
			attr.Local = a.Name.Local
		case a.Name.Local == "xmlns":
			attr.Name = "xmlns"
			attr.Local = "xmlns"
		default:
			attr.Name = el.Prefix(a.Name)
			attr.Local = a.Name.Local
		}
		el.Attrs = append(el.Attrs, attr)
	}
}

func (el *Element) parse(scanner *scanner, depth int) error {
	if depth > recursionLimit {
		return errDeepXML
	}
	var text bytes.Buffer
walk:
	for scanner.scan() {
		switch tok := scanner.tok.(type) {
		case xml.StartElement:
			child := &Element{Scope: el.Scope, parent: el}
			child.pushNS(tok.Attr)
			child.setName(tok.Copy())
			if err := child.parse(scanner, depth+1); err != nil {
				return err
			}
			el.Children = append(el.Children, child)
		case xml.CharData:
			text.Write(tok)
		case xml.EndElement:
			if tok.Name.Local != el.Local {
				return fmt.Errorf("xmltree: expecting </%s>, got </%s>", el.Name, el.Prefix(tok.Name))
			}
			break walk
		}
	}
	if scanner.err != nil && scanner.err != io.EOF {
		return scanner.err
	}
	// Whitespace between child elements is layout, not content.
	if len(el.Children) > 0 {
		el.Text = strings.TrimSpace(text.String())
	} else {
		el.Text = text.String()
	}
	return nil
}
