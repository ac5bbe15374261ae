package ilcd

// ContactDataSet is the root of a contact dataset document.
type ContactDataSet struct{ view }

func (c *ContactDataSet) Kind() Kind          { return Contact }
func (c *ContactDataSet) Version() string     { return getAttr(c.el, "version") }
func (c *ContactDataSet) SetVersion(v string) { setAttr(c.el, "version", v) }

func (c *ContactDataSet) ContactInformation() *ContactInformation {
	return getElement[*ContactInformation](c.el, "contactInformation")
}

func (c *ContactDataSet) AdministrativeInformation() *ContactAdministrativeInformation {
	return getElement[*ContactAdministrativeInformation](c.el, "administrativeInformation")
}

type ContactInformation struct{ view }

func (c *ContactInformation) DataSetInformation() *ContactDataSetInformation {
	return getElement[*ContactDataSetInformation](c.el, "dataSetInformation")
}

type ContactAdministrativeInformation struct{ view }

func (a *ContactAdministrativeInformation) DataEntryBy() *ContactDataEntryBy {
	return getElement[*ContactDataEntryBy](a.el, "dataEntryBy")
}

func (a *ContactAdministrativeInformation) PublicationAndOwnership() *ContactPublicationAndOwnership {
	return getElement[*ContactPublicationAndOwnership](a.el, "publicationAndOwnership")
}

type ContactDataSetInformation struct{ view }

// UUID uniquely identifies the data set together with its version.
func (d *ContactDataSetInformation) UUID() string     { return getText(d.el, "UUID") }
func (d *ContactDataSetInformation) SetUUID(v string) { setText(d.el, "common:UUID", v) }

// ShortNames is the display name of the contact, e.g. "FAO" for "Food
// and Agriculture Organization".
func (d *ContactDataSetInformation) ShortNames() LangStrings {
	return getLangStrings(d.el, "shortName")
}

func (d *ContactDataSetInformation) SetShortNames(v LangStrings) {
	setLangStrings(d.el, "common:shortName", v)
}

func (d *ContactDataSetInformation) Names() LangStrings { return getLangStrings(d.el, "name") }

func (d *ContactDataSetInformation) SetNames(v LangStrings) {
	setLangStrings(d.el, "common:name", v)
}

func (d *ContactDataSetInformation) ContactAddresses() LangStrings {
	return getLangStrings(d.el, "contactAddress")
}

func (d *ContactDataSetInformation) SetContactAddresses(v LangStrings) {
	setLangStrings(d.el, "contactAddress", v)
}

func (d *ContactDataSetInformation) Telephone() string     { return getAttr(d.el, "telephone") }
func (d *ContactDataSetInformation) SetTelephone(v string) { setAttr(d.el, "telephone", v) }
func (d *ContactDataSetInformation) Telefax() string       { return getAttr(d.el, "telefax") }
func (d *ContactDataSetInformation) SetTelefax(v string)   { setAttr(d.el, "telefax", v) }
func (d *ContactDataSetInformation) Email() string         { return getAttr(d.el, "email") }
func (d *ContactDataSetInformation) SetEmail(v string)     { setAttr(d.el, "email", v) }
func (d *ContactDataSetInformation) WWWAddress() string    { return getAttr(d.el, "WWWAddress") }
func (d *ContactDataSetInformation) SetWWWAddress(v string) {
	setAttr(d.el, "WWWAddress", v)
}

func (d *ContactDataSetInformation) CentralContactPoints() LangStrings {
	return getLangStrings(d.el, "centralContactPoint")
}

func (d *ContactDataSetInformation) SetCentralContactPoints(v LangStrings) {
	setLangStrings(d.el, "centralContactPoint", v)
}

func (d *ContactDataSetInformation) ContactDescriptionOrComments() LangStrings {
	return getLangStrings(d.el, "contactDescriptionOrComment")
}

func (d *ContactDataSetInformation) SetContactDescriptionOrComments(v LangStrings) {
	setLangStrings(d.el, "contactDescriptionOrComment", v)
}

func (d *ContactDataSetInformation) ClassificationInformation() *ClassificationInformation {
	return getElement[*ClassificationInformation](d.el, "classificationInformation")
}

func (d *ContactDataSetInformation) ReferenceToContact() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToContact")
}

func (d *ContactDataSetInformation) ReferenceToLogo() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToLogo")
}

type ContactDataEntryBy struct{ dataEntryByGroup1 }

type ContactPublicationAndOwnership struct{ pubOwnershipGroup1 }
