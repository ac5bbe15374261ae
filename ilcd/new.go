package ilcd

import (
	"time"

	"github.com/google/uuid"

	"github.com/lcatools/go-ilcd/xmltree"
)

// ILCD format namespaces.
const (
	ProcessNamespace      = "http://lca.jrc.it/ILCD/Process"
	FlowNamespace         = "http://lca.jrc.it/ILCD/Flow"
	FlowPropertyNamespace = "http://lca.jrc.it/ILCD/FlowProperty"
	UnitGroupNamespace    = "http://lca.jrc.it/ILCD/UnitGroup"
	ContactNamespace      = "http://lca.jrc.it/ILCD/Contact"
	SourceNamespace       = "http://lca.jrc.it/ILCD/Source"
	CommonNamespace       = "http://lca.jrc.it/ILCD/Common"
)

// schemaVersion is the ILCD format version the vocabulary tracks.
const schemaVersion = "1.1"

func (k Kind) namespace() string {
	switch k {
	case Process:
		return ProcessNamespace
	case Flow:
		return FlowNamespace
	case FlowProperty:
		return FlowPropertyNamespace
	case UnitGroup:
		return UnitGroupNamespace
	case Contact:
		return ContactNamespace
	case Source:
		return SourceNamespace
	}
	return ""
}

// newRoot builds a fresh document element for one dataset kind with
// the format namespaces declared and a generated UUID, ready to fill
// through the typed setters. infoTag is the kind's information
// section; the administrative skeleton is created alongside it so the
// data entry and publication setters have elements to write to.
func newRoot(kind Kind, infoTag string) *xmltree.Element {
	root := xmltree.New(kind.rootTag())
	root.SetAttr("xmlns", kind.namespace())
	root.SetAttr("xmlns:common", CommonNamespace)
	root.SetAttr("version", schemaVersion)

	info := xmltree.New(infoTag)
	dsi := xmltree.New("dataSetInformation")
	if kind == Contact {
		u := xmltree.New("common:UUID")
		u.SetText(uuid.NewString())
		dsi.Append(u)
	} else {
		dsi.SetAttr("common:UUID", uuid.NewString())
	}
	info.Append(dsi)
	root.Append(info)

	admin := xmltree.New("administrativeInformation")
	entry := xmltree.New("dataEntryBy")
	stamp := xmltree.New("common:timeStamp")
	stamp.SetText(time.Now().Format(timeLayout))
	entry.Append(stamp)
	admin.Append(entry)
	pub := xmltree.New("publicationAndOwnership")
	ver := xmltree.New("common:dataSetVersion")
	ver.SetText("01.00.000")
	pub.Append(ver)
	admin.Append(pub)
	root.Append(admin)

	return root
}

// NewProcessDataSet builds an empty process dataset with a fresh UUID
// and the administrative skeleton in place.
func NewProcessDataSet() *ProcessDataSet {
	return wrap[*ProcessDataSet](newRoot(Process, "processInformation"))
}

// NewFlowDataSet builds an empty flow dataset.
func NewFlowDataSet() *FlowDataSet {
	return wrap[*FlowDataSet](newRoot(Flow, "flowInformation"))
}

// NewFlowPropertyDataSet builds an empty flow property dataset.
func NewFlowPropertyDataSet() *FlowPropertyDataSet {
	return wrap[*FlowPropertyDataSet](newRoot(FlowProperty, "flowPropertiesInformation"))
}

// NewUnitGroupDataSet builds an empty unit group dataset.
func NewUnitGroupDataSet() *UnitGroupDataSet {
	return wrap[*UnitGroupDataSet](newRoot(UnitGroup, "unitGroupInformation"))
}

// NewContactDataSet builds an empty contact dataset. Contact datasets
// carry their UUID as element text rather than an attribute.
func NewContactDataSet() *ContactDataSet {
	return wrap[*ContactDataSet](newRoot(Contact, "contactInformation"))
}

// NewSourceDataSet builds an empty source dataset.
func NewSourceDataSet() *SourceDataSet {
	return wrap[*SourceDataSet](newRoot(Source, "sourceInformation"))
}
