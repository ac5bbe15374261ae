package ilcd

import (
	"fmt"
	"io"
	"os"

	"github.com/lcatools/go-ilcd/xmltree"
)

// A DataSet is the typed root of one of the six ILCD document kinds.
type DataSet interface {
	View
	Kind() Kind
}

// parse builds the element tree for one dataset document and checks
// that it is entirely within the kind's vocabulary. Parsing never
// validates against the schema; it fails only on malformed XML, a
// wrong document element, or a tag no class is registered for.
func (lib *Library) parse(kind Kind, r io.Reader) (*xmltree.Element, error) {
	root, err := xmltree.Decode(r)
	if err != nil {
		return nil, err
	}
	if root.Local != kind.rootTag() {
		return nil, fmt.Errorf("ilcd: document element is <%s>, want <%s>", root.Local, kind.rootTag())
	}
	resolver := ResolverFor(kind)
	var werr error
	root.Walk(func(el *xmltree.Element) {
		if werr != nil {
			return
		}
		if _, err := resolver.Resolve(el.Local); err != nil {
			werr = err
		}
	})
	if werr != nil {
		return nil, werr
	}
	return root, nil
}

func (lib *Library) parseFile(kind Kind, path string) (*xmltree.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := lib.parse(kind, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// ParseProcess reads a process dataset document from r.
func (lib *Library) ParseProcess(r io.Reader) (*ProcessDataSet, error) {
	root, err := lib.parse(Process, r)
	if err != nil {
		return nil, err
	}
	return wrap[*ProcessDataSet](root), nil
}

// ParseProcessFile reads one process dataset file.
func (lib *Library) ParseProcessFile(path string) (*ProcessDataSet, error) {
	root, err := lib.parseFile(Process, path)
	if err != nil {
		return nil, err
	}
	return wrap[*ProcessDataSet](root), nil
}

// ParseFlow reads a flow dataset document from r.
func (lib *Library) ParseFlow(r io.Reader) (*FlowDataSet, error) {
	root, err := lib.parse(Flow, r)
	if err != nil {
		return nil, err
	}
	return wrap[*FlowDataSet](root), nil
}

// ParseFlowFile reads one flow dataset file.
func (lib *Library) ParseFlowFile(path string) (*FlowDataSet, error) {
	root, err := lib.parseFile(Flow, path)
	if err != nil {
		return nil, err
	}
	return wrap[*FlowDataSet](root), nil
}

// ParseFlowProperty reads a flow property dataset document from r.
func (lib *Library) ParseFlowProperty(r io.Reader) (*FlowPropertyDataSet, error) {
	root, err := lib.parse(FlowProperty, r)
	if err != nil {
		return nil, err
	}
	return wrap[*FlowPropertyDataSet](root), nil
}

// ParseFlowPropertyFile reads one flow property dataset file.
func (lib *Library) ParseFlowPropertyFile(path string) (*FlowPropertyDataSet, error) {
	root, err := lib.parseFile(FlowProperty, path)
	if err != nil {
		return nil, err
	}
	return wrap[*FlowPropertyDataSet](root), nil
}

// ParseUnitGroup reads a unit group dataset document from r.
func (lib *Library) ParseUnitGroup(r io.Reader) (*UnitGroupDataSet, error) {
	root, err := lib.parse(UnitGroup, r)
	if err != nil {
		return nil, err
	}
	return wrap[*UnitGroupDataSet](root), nil
}

// ParseUnitGroupFile reads one unit group dataset file.
func (lib *Library) ParseUnitGroupFile(path string) (*UnitGroupDataSet, error) {
	root, err := lib.parseFile(UnitGroup, path)
	if err != nil {
		return nil, err
	}
	return wrap[*UnitGroupDataSet](root), nil
}

// ParseContact reads a contact dataset document from r.
func (lib *Library) ParseContact(r io.Reader) (*ContactDataSet, error) {
	root, err := lib.parse(Contact, r)
	if err != nil {
		return nil, err
	}
	return wrap[*ContactDataSet](root), nil
}

// ParseContactFile reads one contact dataset file.
func (lib *Library) ParseContactFile(path string) (*ContactDataSet, error) {
	root, err := lib.parseFile(Contact, path)
	if err != nil {
		return nil, err
	}
	return wrap[*ContactDataSet](root), nil
}

// ParseSource reads a source dataset document from r.
func (lib *Library) ParseSource(r io.Reader) (*SourceDataSet, error) {
	root, err := lib.parse(Source, r)
	if err != nil {
		return nil, err
	}
	return wrap[*SourceDataSet](root), nil
}

// ParseSourceFile reads one source dataset file.
func (lib *Library) ParseSourceFile(path string) (*SourceDataSet, error) {
	root, err := lib.parseFile(Source, path)
	if err != nil {
		return nil, err
	}
	return wrap[*SourceDataSet](root), nil
}
