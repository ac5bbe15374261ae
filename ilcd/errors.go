package ilcd

import "fmt"

// A LookupError reports an element tag that no class is registered for
// in the resolver of the dataset kind being processed.
type LookupError struct {
	Kind Kind
	Tag  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("ilcd: no class registered for element %q in %s dataset", e.Tag, e.Kind)
}

// A ConversionError reports stored text that could not be converted to
// the requested Go type. The document is left untouched; the raw text
// remains available through the underlying element.
type ConversionError struct {
	Name  string
	Value string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("ilcd: cannot convert %s value %q to %s: %v", e.Name, e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// A ValidationError reports a value rejected by a field validator
// before being written. The field keeps its previous value.
type ValidationError struct {
	Name  string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("ilcd: invalid value %q for %s: %v", e.Value, e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
