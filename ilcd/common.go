package ilcd

import "time"

// Classes shared by several dataset kinds. They live in the common ILCD
// namespace and are resolved through the shared lookup table unless a
// dataset kind overrides the tag with its own class.

// A GlobalReference is a reference to another dataset or file. Either
// refObjectId and version, or uri, or both have to be specified.
type GlobalReference struct{ view }

func (r *GlobalReference) Type() string            { return getAttr(r.el, "type") }
func (r *GlobalReference) SetType(v string)        { setAttr(r.el, "type", v) }
func (r *GlobalReference) RefObjectID() string     { return getAttr(r.el, "refObjectId") }
func (r *GlobalReference) SetRefObjectID(v string) { setAttr(r.el, "refObjectId", v) }
func (r *GlobalReference) Version() string         { return getAttr(r.el, "version") }
func (r *GlobalReference) SetVersion(v string)     { setAttr(r.el, "version", v) }
func (r *GlobalReference) URI() string             { return getAttr(r.el, "uri") }
func (r *GlobalReference) SetURI(v string)         { setAttr(r.el, "uri", v) }

// SubReferences is valid only for references of type "source data set"
// and points to sections, pages etc. within the source.
func (r *GlobalReference) SubReferences() LangStrings { return getLangStrings(r.el, "subReference") }

func (r *GlobalReference) SetSubReferences(v LangStrings) {
	setLangStrings(r.el, "common:subReference", v)
}

// ShortDescriptions is a clear-text summary of the referenced object.
func (r *GlobalReference) ShortDescriptions() LangStrings {
	return getLangStrings(r.el, "shortDescription")
}

func (r *GlobalReference) SetShortDescriptions(v LangStrings) {
	setLangStrings(r.el, "common:shortDescription", v)
}

// ClassificationInformation is the hierarchical classification of the
// good, service, or process.
type ClassificationInformation struct{ view }

func (c *ClassificationInformation) Classifications() []*Classification {
	return getElementList[*Classification](c.el, "classification")
}

// A Classification is one statistical or other classification of the
// data set, typically used for structuring LCA databases.
type Classification struct{ view }

func (c *Classification) Name() string        { return getAttr(c.el, "name") }
func (c *Classification) SetName(v string)    { setAttr(c.el, "name", v) }
func (c *Classification) Classes() string     { return getAttr(c.el, "classes") }
func (c *Classification) SetClasses(v string) { setAttr(c.el, "classes", v) }

func (c *Classification) ClassList() []*Class { return getElementList[*Class](c.el, "class") }

// A Class names one class of a classification system.
type Class struct{ view }

func (c *Class) Level() (*int, error) { return getAttrInt(c.el, "level") }
func (c *Class) SetLevel(v int)       { setAttrInt(c.el, "level", v) }
func (c *Class) ClassID() string      { return getAttr(c.el, "classId") }
func (c *Class) SetClassID(v string)  { setAttr(c.el, "classId", v) }

// Scope describes which aspects and components of the data set were
// reviewed or verified.
type Scope struct{ view }

func (s *Scope) Name() string     { return getAttr(s.el, "name") }
func (s *Scope) SetName(v string) { setAttr(s.el, "name", v) }

func (s *Scope) Methods() []*Method { return getElementList[*Method](s.el, "method") }

// A Method is one validation method used in a scope of review.
type Method struct{ view }

func (m *Method) Name() string     { return getAttr(m.el, "name") }
func (m *Method) SetName(v string) { setAttr(m.el, "name", v) }

// DataQualityIndicators provides the reviewed key information on the
// data set in a defined, computer-readable form.
type DataQualityIndicators struct{ view }

func (d *DataQualityIndicators) Indicators() []*DataQualityIndicator {
	return getElementList[*DataQualityIndicator](d.el, "dataQualityIndicator")
}

type DataQualityIndicator struct{ view }

func (d *DataQualityIndicator) Name() string     { return getAttr(d.el, "name") }
func (d *DataQualityIndicator) SetName(v string) { setAttr(d.el, "name", v) }
func (d *DataQualityIndicator) Value() string    { return getAttr(d.el, "value") }
func (d *DataQualityIndicator) SetValue(v string) {
	setAttr(d.el, "value", v)
}

// CommissionerAndGoal holds basic information about goal and scope of
// the data set.
type CommissionerAndGoal struct{ view }

func (c *CommissionerAndGoal) Projects() LangStrings { return getLangStrings(c.el, "project") }

func (c *CommissionerAndGoal) SetProjects(v LangStrings) {
	setLangStrings(c.el, "common:project", v)
}

func (c *CommissionerAndGoal) IntendedApplications() LangStrings {
	return getLangStrings(c.el, "intendedApplications")
}

func (c *CommissionerAndGoal) SetIntendedApplications(v LangStrings) {
	setLangStrings(c.el, "common:intendedApplications", v)
}

func (c *CommissionerAndGoal) ReferenceToCommissioner() []*GlobalReference {
	return getElementList[*GlobalReference](c.el, "referenceToCommissioner")
}

// FlowCategoryInformation is the classification used for flow-like
// datasets, with compartment information for elementary flows.
type FlowCategoryInformation struct{ view }

func (f *FlowCategoryInformation) ElementaryFlowCategorizations() []*FlowCategorization {
	return getElementList[*FlowCategorization](f.el, "elementaryFlowCategorization")
}

func (f *FlowCategoryInformation) Classifications() []*Classification {
	return getElementList[*Classification](f.el, "classification")
}

// A FlowCategorization is category/compartment information exclusively
// used for elementary flows, e.g. "Emission to air".
type FlowCategorization struct{ view }

func (f *FlowCategorization) Name() string       { return getAttr(f.el, "name") }
func (f *FlowCategorization) SetName(v string)   { setAttr(f.el, "name", v) }
func (f *FlowCategorization) Categories() string { return getAttr(f.el, "categories") }
func (f *FlowCategorization) SetCategories(v string) {
	setAttr(f.el, "categories", v)
}

func (f *FlowCategorization) CategoryList() []*Category {
	return getElementList[*Category](f.el, "category")
}

// A Category names the category of an elementary flow.
type Category struct{ view }

func (c *Category) Level() string     { return getAttr(c.el, "level") }
func (c *Category) SetLevel(v string) { setAttr(c.el, "level", v) }
func (c *Category) CatID() string     { return getAttr(c.el, "catId") }
func (c *Category) SetCatID(v string) { setAttr(c.el, "catId", v) }

// ComplianceDeclarations holds statements on compliance of several data
// set aspects with the requirements of the referenced compliance
// systems.
type ComplianceDeclarations struct{ view }

func (c *ComplianceDeclarations) Compliances() []*Compliance {
	return getElementList[*Compliance](c.el, "compliance")
}

// complianceGroup carries the fields shared by every compliance
// declaration shape.
type complianceGroup struct{ view }

func (c *complianceGroup) ApprovalOfOverallCompliance() string {
	return getText(c.el, "approvalOfOverallCompliance")
}

func (c *complianceGroup) SetApprovalOfOverallCompliance(v string) {
	setText(c.el, "approvalOfOverallCompliance", v)
}

func (c *complianceGroup) ReferenceToComplianceSystem() *GlobalReference {
	return getElement[*GlobalReference](c.el, "referenceToComplianceSystem")
}

// A Compliance is one compliance declaration.
type Compliance struct{ complianceGroup }

// dataEntryByGroup1 carries the data entry fields shared by every
// dataset kind.
type dataEntryByGroup1 struct{ view }

// TimeStamp is the date and time of data set generation, typically an
// automated "last saved" entry.
func (d *dataEntryByGroup1) TimeStamp() (*time.Time, error) { return getTextTime(d.el, "timeStamp") }

func (d *dataEntryByGroup1) SetTimeStamp(v time.Time) { setTextTime(d.el, "common:timeStamp", v) }

func (d *dataEntryByGroup1) ReferenceToDataSetFormat() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToDataSetFormat")
}

// pubOwnershipGroup1 carries the publication fields shared by every
// dataset kind.
type pubOwnershipGroup1 struct{ view }

// DataSetVersion is the version number of the data set. Together with
// the data set's UUID it uniquely identifies each data set.
func (p *pubOwnershipGroup1) DataSetVersion() string { return getText(p.el, "dataSetVersion") }

func (p *pubOwnershipGroup1) SetDataSetVersion(v string) {
	setText(p.el, "common:dataSetVersion", v)
}

func (p *pubOwnershipGroup1) PermanentDataSetURI() string {
	return getText(p.el, "permanentDataSetURI")
}

func (p *pubOwnershipGroup1) SetPermanentDataSetURI(v string) {
	setText(p.el, "common:permanentDataSetURI", v)
}

func (p *pubOwnershipGroup1) ReferenceToPrecedingDataSetVersion() []*GlobalReference {
	return getElementList[*GlobalReference](p.el, "referenceToPrecedingDataSetVersion")
}

func (p *pubOwnershipGroup1) ReferenceToOwnershipOfDataSet() *GlobalReference {
	return getElement[*GlobalReference](p.el, "referenceToOwnershipOfDataSet")
}

// A TextField is a leaf element carrying only character data, possibly
// tagged with a language.
type TextField struct{ view }

func (t *TextField) Value() string { return t.el.Text }
func (t *TextField) Lang() string  { return t.el.Attr("lang") }
