package ilcd

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacoelho/xsd"
	xsderrors "github.com/jacoelho/xsd/errors"
)

//go:embed schemas
var schemaFS embed.FS

// A Logger can print diagnostic messages in the manner of the log
// package.
type Logger interface {
	Printf(format string, v ...any)
}

// A Library validates, parses, and saves ILCD dataset files. It caches
// compiled schemas per dataset kind; the cache is invalidated when a
// config file overrides schema paths.
type Library struct {
	defaults *Defaults
	logger   Logger
	schemas  map[Kind]*xsd.Schema
}

// An Option overrides a Library setting, returning the Option that
// restores the previous setting.
type Option func(*Library) Option

// WithLogger sends progress and batch failure messages to l.
func WithLogger(l Logger) Option {
	return func(lib *Library) Option {
		prev := lib.logger
		lib.logger = l
		return WithLogger(prev)
	}
}

// WithDefaults uses d instead of the stock defaults.
func WithDefaults(d *Defaults) Option {
	return func(lib *Library) Option {
		prev := lib.defaults
		lib.defaults = d
		lib.schemas = make(map[Kind]*xsd.Schema)
		return WithDefaults(prev)
	}
}

func NewLibrary(opts ...Option) *Library {
	lib := &Library{
		defaults: NewDefaults(),
		schemas:  make(map[Kind]*xsd.Schema),
	}
	lib.Option(opts...)
	return lib
}

// Option applies opts to the library and returns the Option that
// undoes the last one.
func (lib *Library) Option(opts ...Option) (previous Option) {
	for _, o := range opts {
		previous = o(lib)
	}
	return previous
}

// Defaults returns the library's default values, for callers that want
// to register additional static or dynamic defaults.
func (lib *Library) Defaults() *Defaults { return lib.defaults }

// LoadConfig overrides defaults and schema paths from an INI config
// file and drops any schemas compiled from the old paths.
func (lib *Library) LoadConfig(path string) error {
	if err := lib.defaults.LoadConfig(path); err != nil {
		return err
	}
	lib.schemas = make(map[Kind]*xsd.Schema)
	return nil
}

func (lib *Library) logf(format string, v ...any) {
	if lib.logger != nil {
		lib.logger.Printf(format, v...)
	}
}

func (lib *Library) schema(kind Kind) (*xsd.Schema, error) {
	if s, ok := lib.schemas[kind]; ok {
		return s, nil
	}
	var (
		s   *xsd.Schema
		err error
	)
	if path := lib.defaults.SchemaPaths[kind]; path != "" {
		s, err = xsd.LoadFile(path)
	} else {
		s, err = xsd.Load(schemaFS, "schemas/"+kind.schemaFile())
	}
	if err != nil {
		return nil, fmt.Errorf("ilcd: load %s schema: %w", kind, err)
	}
	lib.schemas[kind] = s
	return s, nil
}

// A Diagnostic is one schema validation finding, rendered in the
// libxml2 error line format used by ILCD tooling.
type Diagnostic struct {
	Source   string
	Line     int
	Column   int
	Category string
	Code     string
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d:ERROR:%s:%s: %s",
		d.Source, d.Line, d.Column, d.Category, d.Code, d.Message)
}

// readerSource names diagnostics for documents validated from a reader
// rather than a file.
const readerSource = "<string>"

// diagnosticCode converts a W3C structural error code such as
// cvc-elt.1 to the SCHEMAV_CVC_ELT_1 form.
func diagnosticCode(code string) string {
	mapped := strings.Map(func(r rune) rune {
		switch r {
		case '.', '-':
			return '_'
		}
		return r
	}, code)
	return "SCHEMAV_" + strings.ToUpper(mapped)
}

// Validate checks a document against the schema for the given kind.
// A nil slice means the document is valid; a non-empty slice lists the
// schema violations. The error return is reserved for failures to
// obtain or run the schema itself.
func (lib *Library) Validate(kind Kind, r io.Reader) ([]Diagnostic, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ilcd: read document: %w", err)
	}
	return lib.validate(kind, readerSource, doc)
}

// ValidateFile checks one dataset file against the schema for the
// given kind. Diagnostics name the file path as their source.
func (lib *Library) ValidateFile(kind Kind, path string) ([]Diagnostic, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return lib.validate(kind, path, doc)
}

func (lib *Library) validate(kind Kind, source string, doc []byte) ([]Diagnostic, error) {
	schema, err := lib.schema(kind)
	if err != nil {
		return nil, err
	}
	verr := schema.Validate(bytes.NewReader(doc))
	if verr == nil {
		return nil, nil
	}
	validations, ok := xsderrors.AsValidations(verr)
	if !ok {
		return nil, fmt.Errorf("ilcd: validate %s: %w", source, verr)
	}
	diags := make([]Diagnostic, 0, len(validations))
	for _, v := range validations {
		diags = append(diags, lib.diagnostic(source, doc, v))
	}
	return diags, nil
}

func (lib *Library) diagnostic(source string, doc []byte, v xsderrors.Validation) Diagnostic {
	d := Diagnostic{
		Source:   source,
		Line:     v.Line,
		Column:   v.Column,
		Category: "SCHEMASV",
		Code:     diagnosticCode(v.Code),
		Message:  v.Message,
	}
	// An undeclared document element is reported the way libxml2
	// words it, naming the offending root tag.
	if v.Code == string(xsderrors.ErrValidateRootNotDeclared) ||
		(v.Code == string(xsderrors.ErrElementNotDeclared) && v.Path == "/") {
		d.Line, d.Column = 1, 0
		d.Code = "SCHEMAV_CVC_ELT_1"
		if root := rootName(doc); root != "" {
			d.Message = fmt.Sprintf("Element '%s': No matching global declaration available for the validation root.", root)
		}
	}
	return d
}

// rootName extracts the local name of the document element.
func rootName(doc []byte) string {
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start.Name.Local
		}
	}
}
