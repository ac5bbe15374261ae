package ilcd

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/lcatools/go-ilcd/xmltree"
)

// view is the common base of every typed dataset class. A view holds a
// pointer into the document tree and never copies data out of it; the
// element remains the single source of truth and edits through the view
// are visible to any other view of the same document.
type view struct{ el *xmltree.Element }

func (v *view) bind(el *xmltree.Element) { v.el = el }

// Elem returns the XML element the view is bound to. Structural edits
// not covered by the typed accessors, such as removing an attribute,
// go through the element directly.
func (v *view) Elem() *xmltree.Element { return v.el }

type binder interface{ bind(*xmltree.Element) }

// A View is a typed class bound to an element of a dataset document.
type View interface{ Elem() *xmltree.Element }

// wrap binds a fresh typed view to el. A nil el yields a nil view.
func wrap[PT interface {
	binder
	*T
}, T any](el *xmltree.Element) PT {
	if el == nil {
		return nil
	}
	v := PT(new(T))
	v.bind(el)
	return v
}

func getElement[PT interface {
	binder
	*T
}, T any](el *xmltree.Element, local string) PT {
	return wrap[PT](el.Child(local))
}

func getElementList[PT interface {
	binder
	*T
}, T any](el *xmltree.Element, local string) []PT {
	children := el.ChildrenNamed(local)
	out := make([]PT, 0, len(children))
	for _, c := range children {
		out = append(out, wrap[PT](c))
	}
	return out
}

const (
	timeLayout     = "2006-01-02T15:04:05"
	timeZoneLayout = timeLayout + "Z07:00"
)

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		// Try again with timezone information
		t, err = time.Parse(timeZoneLayout, s)
	}
	return t, err
}

func convInt(name, s string) (*int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, &ConversionError{Name: name, Value: s, Type: "int", Err: err}
	}
	return &n, nil
}

func convFloat(name, s string) (*float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &ConversionError{Name: name, Value: s, Type: "float64", Err: err}
	}
	return &f, nil
}

func convBool(name, s string) (*bool, error) {
	switch s {
	case "true":
		b := true
		return &b, nil
	case "false":
		b := false
		return &b, nil
	}
	return nil, &ConversionError{Name: name, Value: s, Type: "bool",
		Err: strconv.ErrSyntax}
}

func convTime(name, s string) (*time.Time, error) {
	t, err := parseTime(s)
	if err != nil {
		return nil, &ConversionError{Name: name, Value: s, Type: "time.Time", Err: err}
	}
	return &t, nil
}

// Attribute accessors. A missing attribute reads as the empty string
// for string fields and as nil for the remaining scalar kinds;
// conversion happens at access time, so malformed stored text is only
// reported when the field is actually read.

func getAttr(el *xmltree.Element, local string) string { return el.Attr(local) }

func getAttrInt(el *xmltree.Element, local string) (*int, error) {
	if !el.HasAttr(local) {
		return nil, nil
	}
	return convInt(local, el.Attr(local))
}

func getAttrFloat(el *xmltree.Element, local string) (*float64, error) {
	if !el.HasAttr(local) {
		return nil, nil
	}
	return convFloat(local, el.Attr(local))
}

func getAttrBool(el *xmltree.Element, local string) (*bool, error) {
	if !el.HasAttr(local) {
		return nil, nil
	}
	return convBool(local, el.Attr(local))
}

func setAttr(el *xmltree.Element, name, value string)    { el.SetAttr(name, value) }
func setAttrInt(el *xmltree.Element, name string, v int) { el.SetAttr(name, strconv.Itoa(v)) }
func setAttrBool(el *xmltree.Element, name string, v bool) {
	el.SetAttr(name, strconv.FormatBool(v))
}

func setAttrFloat(el *xmltree.Element, name string, v float64) {
	el.SetAttr(name, strconv.FormatFloat(v, 'g', -1, 64))
}

func setAttrValidated(el *xmltree.Element, name, value string, validate func(string) error) error {
	if err := validate(value); err != nil {
		return &ValidationError{Name: name, Value: value, Err: err}
	}
	el.SetAttr(name, value)
	return nil
}

// Element-text accessors, for fields stored as the text of a single
// named child element. Setters create the child on first use.

func localOf(name string) string {
	return name[strings.IndexByte(name, ':')+1:]
}

func textChild(el *xmltree.Element, name string) *xmltree.Element {
	c := el.Child(localOf(name))
	if c == nil {
		c = xmltree.New(name)
		el.Append(c)
	}
	return c
}

func getText(el *xmltree.Element, local string) string {
	if c := el.Child(local); c != nil {
		return c.Text
	}
	return ""
}

func getTextInt(el *xmltree.Element, local string) (*int, error) {
	c := el.Child(local)
	if c == nil {
		return nil, nil
	}
	return convInt(local, c.Text)
}

func getTextFloat(el *xmltree.Element, local string) (*float64, error) {
	c := el.Child(local)
	if c == nil {
		return nil, nil
	}
	return convFloat(local, c.Text)
}

func getTextBool(el *xmltree.Element, local string) (*bool, error) {
	c := el.Child(local)
	if c == nil {
		return nil, nil
	}
	return convBool(local, c.Text)
}

func getTextTime(el *xmltree.Element, local string) (*time.Time, error) {
	c := el.Child(local)
	if c == nil {
		return nil, nil
	}
	return convTime(local, c.Text)
}

func setText(el *xmltree.Element, name, value string) { textChild(el, name).SetText(value) }

func setTextInt(el *xmltree.Element, name string, v int) {
	textChild(el, name).SetText(strconv.Itoa(v))
}

func setTextFloat(el *xmltree.Element, name string, v float64) {
	textChild(el, name).SetText(strconv.FormatFloat(v, 'g', -1, 64))
}

func setTextBool(el *xmltree.Element, name string, v bool) {
	textChild(el, name).SetText(strconv.FormatBool(v))
}

func setTextTime(el *xmltree.Element, name string, v time.Time) {
	textChild(el, name).SetText(v.Format(timeLayout))
}

// A LangString is one language variant of a multilingual text field.
type LangString struct {
	Lang  string
	Value string
}

// LangStrings holds the language variants of a multilingual field in
// document order.
type LangStrings []LangString

// Get returns the variant best matching tag under BCP 47 matching,
// falling back to the first variant when nothing matches.
func (ls LangStrings) Get(tag language.Tag) string {
	if len(ls) == 0 {
		return ""
	}
	tags := make([]language.Tag, 0, len(ls))
	for _, s := range ls {
		tags = append(tags, language.Make(s.Lang))
	}
	_, i, _ := language.NewMatcher(tags).Match(tag)
	return ls[i].Value
}

func getLangStrings(el *xmltree.Element, local string) LangStrings {
	children := el.ChildrenNamed(local)
	out := make(LangStrings, 0, len(children))
	for _, c := range children {
		out = append(out, LangString{Lang: c.Attr("lang"), Value: c.Text})
	}
	return out
}

// setLangStrings replaces the whole sequence of variants, keeping the
// position the old sequence occupied among its siblings.
func setLangStrings(el *xmltree.Element, name string, values LangStrings) {
	at := el.RemoveChildrenNamed(localOf(name))
	for n, v := range values {
		c := xmltree.New(name)
		c.SetText(v.Value)
		if v.Lang != "" {
			c.SetAttr("xml:lang", v.Lang)
		}
		if at < 0 {
			el.Append(c)
		} else {
			el.Insert(at+n, c)
		}
	}
}

// Repeated integer fields, such as data set internal references.

func getTextInts(el *xmltree.Element, local string) ([]int, error) {
	children := el.ChildrenNamed(local)
	out := make([]int, 0, len(children))
	for _, c := range children {
		n, err := convInt(local, c.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, nil
}

func setTextInts(el *xmltree.Element, name string, values []int) {
	at := el.RemoveChildrenNamed(localOf(name))
	for n, v := range values {
		c := xmltree.New(name)
		c.SetText(strconv.Itoa(v))
		if at < 0 {
			el.Append(c)
		} else {
			el.Insert(at+n, c)
		}
	}
}
