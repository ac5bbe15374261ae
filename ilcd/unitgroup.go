package ilcd

// UnitGroupDataSet is the root of a unit group dataset document.
type UnitGroupDataSet struct{ view }

func (u *UnitGroupDataSet) Kind() Kind          { return UnitGroup }
func (u *UnitGroupDataSet) Version() string     { return getAttr(u.el, "version") }
func (u *UnitGroupDataSet) SetVersion(v string) { setAttr(u.el, "version", v) }

func (u *UnitGroupDataSet) UnitGroupInformation() *UnitGroupInformation {
	return getElement[*UnitGroupInformation](u.el, "unitGroupInformation")
}

func (u *UnitGroupDataSet) ModellingAndValidation() *UnitGroupModellingAndValidation {
	return getElement[*UnitGroupModellingAndValidation](u.el, "modellingAndValidation")
}

func (u *UnitGroupDataSet) AdministrativeInformation() *UnitGroupAdministrativeInformation {
	return getElement[*UnitGroupAdministrativeInformation](u.el, "administrativeInformation")
}

// Units lists the units that belong to this unit group and are
// interconvertible among each other with a fixed factor.
func (u *UnitGroupDataSet) Units() *Units { return getElement[*Units](u.el, "units") }

type UnitGroupInformation struct{ view }

func (u *UnitGroupInformation) DataSetInformation() *UnitGroupDataSetInformation {
	return getElement[*UnitGroupDataSetInformation](u.el, "dataSetInformation")
}

func (u *UnitGroupInformation) QuantitativeReference() *UnitGroupQuantitativeReference {
	return getElement[*UnitGroupQuantitativeReference](u.el, "quantitativeReference")
}

// UnitGroupModellingAndValidation carries only the compliance
// sub-section; the other four sub-sections are not used for unit
// groups.
type UnitGroupModellingAndValidation struct{ view }

func (m *UnitGroupModellingAndValidation) ComplianceDeclarations() *ComplianceDeclarations {
	return getElement[*ComplianceDeclarations](m.el, "complianceDeclarations")
}

type UnitGroupAdministrativeInformation struct{ view }

func (a *UnitGroupAdministrativeInformation) DataEntryBy() *UnitGroupDataEntryBy {
	return getElement[*UnitGroupDataEntryBy](a.el, "dataEntryBy")
}

func (a *UnitGroupAdministrativeInformation) PublicationAndOwnership() *UnitGroupPublicationAndOwnership {
	return getElement[*UnitGroupPublicationAndOwnership](a.el, "publicationAndOwnership")
}

type UnitGroupDataSetInformation struct{ view }

func (d *UnitGroupDataSetInformation) UUID() string     { return getAttr(d.el, "UUID") }
func (d *UnitGroupDataSetInformation) SetUUID(v string) { setAttr(d.el, "common:UUID", v) }

// Names is the name of the unit group, typically indicating for which
// flow property or group of flow properties it is used.
func (d *UnitGroupDataSetInformation) Names() LangStrings { return getLangStrings(d.el, "name") }

func (d *UnitGroupDataSetInformation) SetNames(v LangStrings) {
	setLangStrings(d.el, "common:name", v)
}

func (d *UnitGroupDataSetInformation) Synonyms() LangStrings {
	return getLangStrings(d.el, "synonyms")
}

func (d *UnitGroupDataSetInformation) SetSynonyms(v LangStrings) {
	setLangStrings(d.el, "common:synonyms", v)
}

func (d *UnitGroupDataSetInformation) GeneralComments() LangStrings {
	return getLangStrings(d.el, "generalComment")
}

func (d *UnitGroupDataSetInformation) SetGeneralComments(v LangStrings) {
	setLangStrings(d.el, "common:generalComment", v)
}

func (d *UnitGroupDataSetInformation) ClassificationInformation() *ClassificationInformation {
	return getElement[*ClassificationInformation](d.el, "classificationInformation")
}

// UnitGroupQuantitativeReference identifies the unit group's reference
// unit, the basis for conversion to the other units in the data set.
type UnitGroupQuantitativeReference struct{ view }

func (q *UnitGroupQuantitativeReference) ReferenceToReferenceUnit() (*int, error) {
	return getAttrInt(q.el, "referenceToReferenceUnit")
}

func (q *UnitGroupQuantitativeReference) SetReferenceToReferenceUnit(v int) {
	setAttrInt(q.el, "referenceToReferenceUnit", v)
}

type Units struct{ view }

func (u *Units) Units() []*Unit { return getElementList[*Unit](u.el, "unit") }

// A Unit is one unit of the group, with its conversion factor to the
// reference unit.
type Unit struct{ view }

func (u *Unit) DataSetInternalID() (*int, error) { return getAttrInt(u.el, "dataSetInternalID") }
func (u *Unit) SetDataSetInternalID(v int)       { setAttrInt(u.el, "dataSetInternalID", v) }

// MeanValue is the linear conversion factor of this unit in
// relationship to the reference unit of the group.
func (u *Unit) MeanValue() (*float64, error) { return getTextFloat(u.el, "meanValue") }
func (u *Unit) SetMeanValue(v float64)       { setTextFloat(u.el, "meanValue", v) }

func (u *Unit) GeneralComments() LangStrings     { return getLangStrings(u.el, "name") }
func (u *Unit) SetGeneralComments(v LangStrings) { setLangStrings(u.el, "name", v) }

type UnitGroupDataEntryBy struct{ dataEntryByGroup1 }

type UnitGroupPublicationAndOwnership struct{ pubOwnershipGroup1 }
