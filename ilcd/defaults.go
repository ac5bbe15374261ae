package ilcd

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/lcatools/go-ilcd/xmltree"
)

// A DynamicDefault computes an attribute value from the element it
// will be set on.
type DynamicDefault func(*xmltree.Element) string

// Defaults holds the attribute default values applied when saving with
// fill enabled, plus optional schema path overrides for validation.
// The zero value is not usable; call NewDefaults.
type Defaults struct {
	// SchemaPaths maps dataset kinds to filesystem paths of
	// replacement XSD files. Kinds without an entry validate
	// against the bundled schemas.
	SchemaPaths map[Kind]string

	// Static maps a view class name to attribute defaults, applied
	// to elements of that class when the attribute is absent.
	Static map[string]map[string]string

	// Dynamic is like Static but computes the value per element.
	Dynamic map[string]map[string]DynamicDefault
}

// NewDefaults returns the stock defaults: classifications and flow
// categorizations are named ILCD, and process datasets carry full
// inventory data unless marked otherwise.
func NewDefaults() *Defaults {
	return &Defaults{
		SchemaPaths: make(map[Kind]string),
		Static: map[string]map[string]string{
			"Classification":     {"name": "ILCD"},
			"FlowCategorization": {"name": "ILCD"},
			"ProcessDataSet":     {"metaDataOnly": "false"},
		},
		Dynamic: make(map[string]map[string]DynamicDefault),
	}
}

// configSchemaKeys maps the keys accepted in a config file's
// [parameters] section to dataset kinds.
var configSchemaKeys = map[string]Kind{
	"SCHEMA_PROCESS_DATASET":       Process,
	"SCHEMA_FLOW_DATASET":          Flow,
	"SCHEMA_FLOW_PROPERTY_DATASET": FlowProperty,
	"SCHEMA_UNIT_GROUP_DATASET":    UnitGroup,
	"SCHEMA_CONTACT_DATASET":       Contact,
	"SCHEMA_SOURCE_DATASET":        Source,
}

// LoadConfig overrides defaults from an INI file. The [parameters]
// section may replace the schema path of any dataset kind; every other
// section is taken as attribute defaults for the class named by the
// section, merged over the stock defaults.
func (d *Defaults) LoadConfig(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("ilcd: load config %s: %w", path, err)
	}
	for _, section := range cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		if name == "parameters" {
			for _, key := range section.Keys() {
				kind, ok := configSchemaKeys[key.Name()]
				if !ok {
					return fmt.Errorf("ilcd: config %s: unknown parameter %q", path, key.Name())
				}
				d.SchemaPaths[kind] = key.String()
			}
			continue
		}
		if d.Static[name] == nil {
			d.Static[name] = make(map[string]string)
		}
		for _, key := range section.Keys() {
			d.Static[name][key.Name()] = key.String()
		}
	}
	return nil
}

// fill walks the document and sets defaulted attributes that are
// absent or empty, resolving each element's class through the kind's
// resolver. Attributes that already carry a value are never
// overwritten.
func (d *Defaults) fill(kind Kind, root *xmltree.Element) error {
	resolver := ResolverFor(kind)
	var werr error
	root.Walk(func(el *xmltree.Element) {
		if werr != nil {
			return
		}
		c, err := resolver.Resolve(el.Local)
		if err != nil {
			werr = err
			return
		}
		for attr, value := range d.Static[c.Name] {
			if el.Attr(attr) == "" {
				el.SetAttr(attr, value)
			}
		}
		for attr, fn := range d.Dynamic[c.Name] {
			if el.Attr(attr) == "" {
				el.SetAttr(attr, fn(el))
			}
		}
	})
	return werr
}
