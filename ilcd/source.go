package ilcd

// SourceDataSet is the root of a source dataset document: the data set
// for bibliographical references, data set formats, databases,
// conformity systems etc.
type SourceDataSet struct{ view }

func (s *SourceDataSet) Kind() Kind          { return Source }
func (s *SourceDataSet) Version() string     { return getAttr(s.el, "version") }
func (s *SourceDataSet) SetVersion(v string) { setAttr(s.el, "version", v) }

func (s *SourceDataSet) SourceInformation() *SourceInformation {
	return getElement[*SourceInformation](s.el, "sourceInformation")
}

func (s *SourceDataSet) AdministrativeInformation() *SourceAdministrativeInformation {
	return getElement[*SourceAdministrativeInformation](s.el, "administrativeInformation")
}

type SourceInformation struct{ view }

func (s *SourceInformation) DataSetInformation() *SourceDataSetInformation {
	return getElement[*SourceDataSetInformation](s.el, "dataSetInformation")
}

type SourceAdministrativeInformation struct{ view }

func (a *SourceAdministrativeInformation) DataEntryBy() *SourceDataEntryBy {
	return getElement[*SourceDataEntryBy](a.el, "dataEntryBy")
}

func (a *SourceAdministrativeInformation) PublicationAndOwnership() *SourcePublicationAndOwnership {
	return getElement[*SourcePublicationAndOwnership](a.el, "publicationAndOwnership")
}

type SourceDataSetInformation struct{ view }

func (d *SourceDataSetInformation) UUID() string     { return getAttr(d.el, "UUID") }
func (d *SourceDataSetInformation) SetUUID(v string) { setAttr(d.el, "common:UUID", v) }

// ShortNames is the short name of the source citation.
func (d *SourceDataSetInformation) ShortNames() LangStrings {
	return getLangStrings(d.el, "shortName")
}

func (d *SourceDataSetInformation) SetShortNames(v LangStrings) {
	setLangStrings(d.el, "common:shortName", v)
}

// SourceCitation is the bibliographical reference or reference to an
// internal data source.
func (d *SourceDataSetInformation) SourceCitation() string {
	return getAttr(d.el, "sourceCitation")
}

func (d *SourceDataSetInformation) SetSourceCitation(v string) {
	setAttr(d.el, "sourceCitation", v)
}

func (d *SourceDataSetInformation) PublicationType() string {
	return getAttr(d.el, "publicationType")
}

func (d *SourceDataSetInformation) SetPublicationType(v string) {
	setAttr(d.el, "publicationType", v)
}

func (d *SourceDataSetInformation) SourceDescriptionOrComments() LangStrings {
	return getLangStrings(d.el, "sourceDescriptionOrComment")
}

func (d *SourceDataSetInformation) SetSourceDescriptionOrComments(v LangStrings) {
	setLangStrings(d.el, "sourceDescriptionOrComment", v)
}

func (d *SourceDataSetInformation) ClassificationInformation() *ClassificationInformation {
	return getElement[*ClassificationInformation](d.el, "classificationInformation")
}

func (d *SourceDataSetInformation) ReferenceToDigitalFiles() []*ReferenceToDigitalFile {
	return getElementList[*ReferenceToDigitalFile](d.el, "referenceToDigitalFile")
}

func (d *SourceDataSetInformation) ReferenceToContact() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToContact")
}

func (d *SourceDataSetInformation) ReferenceToLogo() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToLogo")
}

// A ReferenceToDigitalFile links a digital file of the source by
// www-address or intranet path.
type ReferenceToDigitalFile struct{ view }

func (r *ReferenceToDigitalFile) URI() string     { return getAttr(r.el, "uri") }
func (r *ReferenceToDigitalFile) SetURI(v string) { setAttr(r.el, "uri", v) }

type SourceDataEntryBy struct{ dataEntryByGroup1 }

type SourcePublicationAndOwnership struct{ pubOwnershipGroup1 }
