package xmltree

import (
	"bytes"
	"io"
	"strings"
)

const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Marshal produces the XML encoding of an Element as a self-contained
// document, XML declaration included. Elements that contain other
// elements are indented; elements that contain only text are written
// inline, so character data survives a round trip unchanged.
func Marshal(el *Element) []byte {
	var buf bytes.Buffer
	if err := Encode(&buf, el); err != nil {
		// bytes.Buffer.Write should never return an error
		panic(err)
	}
	return buf.Bytes()
}

// Encode writes the XML encoding of the Element to w as a complete
// document. Encode returns any errors encountered writing to w.
func Encode(w io.Writer, el *Element) error {
	if _, err := io.WriteString(w, xmlDeclaration); err != nil {
		return err
	}
	enc := encoder{w: w, indent: "  "}
	if err := enc.encode(el, 0); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// String returns the XML encoding of an Element and its children,
// without the XML declaration.
func (el *Element) String() string {
	var buf bytes.Buffer
	enc := encoder{w: &buf, indent: "  "}
	if err := enc.encode(el, 0); err != nil {
		panic(err)
	}
	return buf.String()
}

type encoder struct {
	w      io.Writer
	indent string
}

func (e *encoder) encode(el *Element, depth int) error {
	if depth > recursionLimit {
		// We only return I/O errors
		return nil
	}
	if err := e.openTag(el); err != nil {
		return err
	}
	if len(el.Children) == 0 {
		if el.Text != "" {
			if err := escapeText(e.w, el.Text); err != nil {
				return err
			}
		}
		return e.closeTag(el)
	}
	for _, child := range el.Children {
		if err := e.newline(depth + 1); err != nil {
			return err
		}
		if err := e.encode(child, depth+1); err != nil {
			return err
		}
	}
	if err := e.newline(depth); err != nil {
		return err
	}
	return e.closeTag(el)
}

func (e *encoder) newline(depth int) error {
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, strings.Repeat(e.indent, depth))
	return err
}

func (e *encoder) openTag(el *Element) error {
	if _, err := io.WriteString(e.w, "<"+el.Name); err != nil {
		return err
	}
	for _, a := range el.Attrs {
		if _, err := io.WriteString(e.w, " "+a.Name+`="`); err != nil {
			return err
		}
		if err := escapeAttr(e.w, a.Value); err != nil {
			return err
		}
		if _, err := io.WriteString(e.w, `"`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(e.w, ">")
	return err
}

func (e *encoder) closeTag(el *Element) error {
	_, err := io.WriteString(e.w, "</"+el.Name+">")
	return err
}

// escapeText writes s with the XML character data escapes applied.
// Unlike xml.EscapeText, literal newlines and tabs are kept, so text
// written out matches the text that was read in.
func escapeText(w io.Writer, s string) error {
	return escape(w, s, false)
}

func escapeAttr(w io.Writer, s string) error {
	return escape(w, s, true)
}

func escape(w io.Writer, s string, quote bool) error {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			if !quote {
				continue
			}
			esc = "&quot;"
		default:
			continue
		}
		if _, err := io.WriteString(w, s[last:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		last = i + 1
	}
	_, err := io.WriteString(w, s[last:])
	return err
}
