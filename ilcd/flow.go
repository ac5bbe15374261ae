package ilcd

import (
	"github.com/lcatools/go-ilcd/internal/casreg"
)

// FlowDataSet is the root of a flow dataset document.
type FlowDataSet struct{ view }

func (f *FlowDataSet) Kind() Kind          { return Flow }
func (f *FlowDataSet) Version() string     { return getAttr(f.el, "version") }
func (f *FlowDataSet) SetVersion(v string) { setAttr(f.el, "version", v) }

func (f *FlowDataSet) FlowInformation() *FlowInformation {
	return getElement[*FlowInformation](f.el, "flowInformation")
}

func (f *FlowDataSet) ModellingAndValidation() *FlowModellingAndValidation {
	return getElement[*FlowModellingAndValidation](f.el, "modellingAndValidation")
}

func (f *FlowDataSet) AdministrativeInformation() *FlowAdministrativeInformation {
	return getElement[*FlowAdministrativeInformation](f.el, "administrativeInformation")
}

// FlowProperties lists the quantities in which the flow can be
// expressed, one of which is the reference flow property.
func (f *FlowDataSet) FlowProperties() *FlowProperties {
	return getElement[*FlowProperties](f.el, "flowProperties")
}

type FlowInformation struct{ view }

func (f *FlowInformation) DataSetInformation() *FlowDataSetInformation {
	return getElement[*FlowDataSetInformation](f.el, "dataSetInformation")
}

func (f *FlowInformation) QuantitativeReference() *FlowQuantitativeReference {
	return getElement[*FlowQuantitativeReference](f.el, "quantitativeReference")
}

func (f *FlowInformation) Geography() *FlowGeography {
	return getElement[*FlowGeography](f.el, "geography")
}

func (f *FlowInformation) Technology() *FlowTechnology {
	return getElement[*FlowTechnology](f.el, "technology")
}

type FlowDataSetInformation struct{ view }

func (d *FlowDataSetInformation) UUID() string     { return getAttr(d.el, "UUID") }
func (d *FlowDataSetInformation) SetUUID(v string) { setAttr(d.el, "common:UUID", v) }

func (d *FlowDataSetInformation) Name() *FlowName {
	return getElement[*FlowName](d.el, "name")
}

func (d *FlowDataSetInformation) Synonyms() LangStrings {
	return getLangStrings(d.el, "synonyms")
}

func (d *FlowDataSetInformation) SetSynonyms(v LangStrings) {
	setLangStrings(d.el, "common:synonyms", v)
}

func (d *FlowDataSetInformation) ClassificationInformation() *FlowCategoryInformation {
	return getElement[*FlowCategoryInformation](d.el, "classificationInformation")
}

// CASNumber is the CAS registry number of the flow's substance, where
// one exists.
func (d *FlowDataSetInformation) CASNumber() string { return getAttr(d.el, "CASNumber") }

// SetCASNumber stores a CAS registry number after validating its
// format and check digit.
func (d *FlowDataSetInformation) SetCASNumber(v string) error {
	return setAttrValidated(d.el, "CASNumber", v, casreg.Check)
}

func (d *FlowDataSetInformation) SumFormula() string     { return getText(d.el, "sumFormula") }
func (d *FlowDataSetInformation) SetSumFormula(v string) { setText(d.el, "sumFormula", v) }

func (d *FlowDataSetInformation) GeneralComments() LangStrings {
	return getLangStrings(d.el, "generalComment")
}

func (d *FlowDataSetInformation) SetGeneralComments(v LangStrings) {
	setLangStrings(d.el, "common:generalComment", v)
}

// FlowName splits the flow's name into base name and qualifying
// parts. All four parts are multilingual lists.
type FlowName struct{ view }

func (n *FlowName) BaseNames() LangStrings { return getLangStrings(n.el, "baseName") }

func (n *FlowName) SetBaseNames(v LangStrings) { setLangStrings(n.el, "baseName", v) }

func (n *FlowName) TreatmentStandardsRoutes() LangStrings {
	return getLangStrings(n.el, "treatmentStandardsRoutes")
}

func (n *FlowName) SetTreatmentStandardsRoutes(v LangStrings) {
	setLangStrings(n.el, "treatmentStandardsRoutes", v)
}

func (n *FlowName) MixAndLocationTypes() LangStrings {
	return getLangStrings(n.el, "mixAndLocationTypes")
}

func (n *FlowName) SetMixAndLocationTypes(v LangStrings) {
	setLangStrings(n.el, "mixAndLocationTypes", v)
}

// FlowPropertyNames is the name part describing quantitative flow
// properties, such as gross calorific value. It shares its element
// name with the dataset's flow property section.
func (n *FlowName) FlowPropertyNames() LangStrings {
	return getLangStrings(n.el, "flowProperties")
}

func (n *FlowName) SetFlowPropertyNames(v LangStrings) {
	setLangStrings(n.el, "flowProperties", v)
}

// FlowQuantitativeReference points, by internal id, at the entry in
// the flow properties section that serves as the reference flow
// property.
type FlowQuantitativeReference struct{ view }

func (q *FlowQuantitativeReference) ReferenceToReferenceFlowProperty() (*int, error) {
	return getTextInt(q.el, "referenceToReferenceFlowProperty")
}

func (q *FlowQuantitativeReference) SetReferenceToReferenceFlowProperty(v int) {
	setTextInt(q.el, "referenceToReferenceFlowProperty", v)
}

type FlowGeography struct{ view }

func (g *FlowGeography) LocationsOfSupply() LangStrings {
	return getLangStrings(g.el, "locationOfSupply")
}

func (g *FlowGeography) SetLocationsOfSupply(v LangStrings) {
	setLangStrings(g.el, "locationOfSupply", v)
}

type FlowTechnology struct{ view }

func (t *FlowTechnology) TechnologicalApplicabilities() LangStrings {
	return getLangStrings(t.el, "technologicalApplicability")
}

func (t *FlowTechnology) SetTechnologicalApplicabilities(v LangStrings) {
	setLangStrings(t.el, "technologicalApplicability", v)
}

func (t *FlowTechnology) ReferenceToTechnicalSpecification() []*GlobalReference {
	return getElementList[*GlobalReference](t.el, "referenceToTechnicalSpecification")
}

type FlowModellingAndValidation struct{ view }

func (m *FlowModellingAndValidation) LCIMethod() *FlowLCIMethod {
	return getElement[*FlowLCIMethod](m.el, "LCIMethod")
}

func (m *FlowModellingAndValidation) ComplianceDeclarations() *ComplianceDeclarations {
	return getElement[*ComplianceDeclarations](m.el, "complianceDeclarations")
}

// FlowLCIMethod states whether the flow is elementary, a product, or a
// waste flow.
type FlowLCIMethod struct{ view }

func (l *FlowLCIMethod) TypeOfDataSet() string     { return getText(l.el, "typeOfDataSet") }
func (l *FlowLCIMethod) SetTypeOfDataSet(v string) { setText(l.el, "typeOfDataSet", v) }

type FlowAdministrativeInformation struct{ view }

func (a *FlowAdministrativeInformation) DataEntryBy() *FlowDataEntryBy {
	return getElement[*FlowDataEntryBy](a.el, "dataEntryBy")
}

func (a *FlowAdministrativeInformation) PublicationAndOwnership() *FlowPublicationAndOwnership {
	return getElement[*FlowPublicationAndOwnership](a.el, "publicationAndOwnership")
}

type FlowDataEntryBy struct{ dataEntryByGroup1 }

func (d *FlowDataEntryBy) ReferenceToPersonOrEntityEnteringTheData() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToPersonOrEntityEnteringTheData")
}

type FlowPublicationAndOwnership struct{ pubOwnershipGroup1 }

type FlowProperties struct{ view }

func (f *FlowProperties) FlowProperties() []*FlowPropertyEntry {
	return getElementList[*FlowPropertyEntry](f.el, "flowProperty")
}

// FlowPropertyEntry assigns one flow property to the flow, with the
// mean amount of the flow expressed in that property.
type FlowPropertyEntry struct{ view }

func (f *FlowPropertyEntry) DataSetInternalID() (*int, error) {
	return getAttrInt(f.el, "dataSetInternalID")
}

func (f *FlowPropertyEntry) SetDataSetInternalID(v int) {
	setAttrInt(f.el, "dataSetInternalID", v)
}

func (f *FlowPropertyEntry) ReferenceToFlowPropertyDataSet() *GlobalReference {
	return getElement[*GlobalReference](f.el, "referenceToFlowPropertyDataSet")
}

func (f *FlowPropertyEntry) MeanValue() (*float64, error) { return getTextFloat(f.el, "meanValue") }
func (f *FlowPropertyEntry) SetMeanValue(v float64)       { setTextFloat(f.el, "meanValue", v) }
