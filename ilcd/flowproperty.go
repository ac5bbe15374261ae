package ilcd

// FlowPropertyDataSet is the root of a flow property dataset document.
type FlowPropertyDataSet struct{ view }

func (f *FlowPropertyDataSet) Kind() Kind          { return FlowProperty }
func (f *FlowPropertyDataSet) Version() string     { return getAttr(f.el, "version") }
func (f *FlowPropertyDataSet) SetVersion(v string) { setAttr(f.el, "version", v) }

func (f *FlowPropertyDataSet) FlowPropertiesInformation() *FlowPropertiesInformation {
	return getElement[*FlowPropertiesInformation](f.el, "flowPropertiesInformation")
}

func (f *FlowPropertyDataSet) ModellingAndValidation() *FlowPropertyModellingAndValidation {
	return getElement[*FlowPropertyModellingAndValidation](f.el, "modellingAndValidation")
}

func (f *FlowPropertyDataSet) AdministrativeInformation() *FlowPropertyAdministrativeInformation {
	return getElement[*FlowPropertyAdministrativeInformation](f.el, "administrativeInformation")
}

type FlowPropertiesInformation struct{ view }

func (f *FlowPropertiesInformation) DataSetInformation() *FlowPropertyDataSetInformation {
	return getElement[*FlowPropertyDataSetInformation](f.el, "dataSetInformation")
}

func (f *FlowPropertiesInformation) QuantitativeReference() *FlowPropertyQuantitativeReference {
	return getElement[*FlowPropertyQuantitativeReference](f.el, "quantitativeReference")
}

type FlowPropertyModellingAndValidation struct{ view }

func (m *FlowPropertyModellingAndValidation) DataSourcesTreatmentAndRepresentativeness() *FlowPropertyDataSourcesTreatmentAndRepresentativeness {
	return getElement[*FlowPropertyDataSourcesTreatmentAndRepresentativeness](m.el, "dataSourcesTreatmentAndRepresentativeness")
}

func (m *FlowPropertyModellingAndValidation) ComplianceDeclarations() *ComplianceDeclarations {
	return getElement[*ComplianceDeclarations](m.el, "complianceDeclarations")
}

// FlowPropertyDataSourcesTreatmentAndRepresentativeness holds only the
// data source references; flow properties carry no sampling or
// extrapolation details.
type FlowPropertyDataSourcesTreatmentAndRepresentativeness struct{ view }

func (d *FlowPropertyDataSourcesTreatmentAndRepresentativeness) ReferenceToDataSources() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToDataSource")
}

type FlowPropertyAdministrativeInformation struct{ view }

func (a *FlowPropertyAdministrativeInformation) DataEntryBy() *FlowPropertyDataEntryBy {
	return getElement[*FlowPropertyDataEntryBy](a.el, "dataEntryBy")
}

func (a *FlowPropertyAdministrativeInformation) PublicationAndOwnership() *FlowPropertyPublicationAndOwnership {
	return getElement[*FlowPropertyPublicationAndOwnership](a.el, "publicationAndOwnership")
}

type FlowPropertyDataSetInformation struct{ view }

func (d *FlowPropertyDataSetInformation) UUID() string     { return getAttr(d.el, "UUID") }
func (d *FlowPropertyDataSetInformation) SetUUID(v string) { setAttr(d.el, "common:UUID", v) }

func (d *FlowPropertyDataSetInformation) Names() LangStrings { return getLangStrings(d.el, "name") }

func (d *FlowPropertyDataSetInformation) SetNames(v LangStrings) {
	setLangStrings(d.el, "common:name", v)
}

func (d *FlowPropertyDataSetInformation) Synonyms() LangStrings {
	return getLangStrings(d.el, "synonyms")
}

func (d *FlowPropertyDataSetInformation) SetSynonyms(v LangStrings) {
	setLangStrings(d.el, "common:synonyms", v)
}

func (d *FlowPropertyDataSetInformation) GeneralComments() LangStrings {
	return getLangStrings(d.el, "generalComment")
}

func (d *FlowPropertyDataSetInformation) SetGeneralComments(v LangStrings) {
	setLangStrings(d.el, "common:generalComment", v)
}

func (d *FlowPropertyDataSetInformation) ClassificationInformation() *ClassificationInformation {
	return getElement[*ClassificationInformation](d.el, "classificationInformation")
}

// FlowPropertyQuantitativeReference points to the unit group whose
// reference unit expresses this flow property.
type FlowPropertyQuantitativeReference struct{ view }

func (q *FlowPropertyQuantitativeReference) ReferenceToReferenceUnitGroup() *GlobalReference {
	return getElement[*GlobalReference](q.el, "referenceToReferenceUnitGroup")
}

type FlowPropertyDataEntryBy struct{ dataEntryByGroup1 }

type FlowPropertyPublicationAndOwnership struct{ pubOwnershipGroup1 }
