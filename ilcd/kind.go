package ilcd

// A Kind identifies one of the six ILCD dataset schemas.
type Kind int

const (
	Process Kind = iota
	Flow
	FlowProperty
	UnitGroup
	Contact
	Source
)

var kindNames = [...]string{
	Process:      "process",
	Flow:         "flow",
	FlowProperty: "flow property",
	UnitGroup:    "unit group",
	Contact:      "contact",
	Source:       "source",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// rootTag is the document element each kind of dataset file must carry.
func (k Kind) rootTag() string {
	switch k {
	case Process:
		return "processDataSet"
	case Flow:
		return "flowDataSet"
	case FlowProperty:
		return "flowPropertyDataSet"
	case UnitGroup:
		return "unitGroupDataSet"
	case Contact:
		return "contactDataSet"
	case Source:
		return "sourceDataSet"
	}
	return ""
}

func (k Kind) schemaFile() string {
	switch k {
	case Process:
		return "ILCD_ProcessDataSet.xsd"
	case Flow:
		return "ILCD_FlowDataSet.xsd"
	case FlowProperty:
		return "ILCD_FlowPropertyDataSet.xsd"
	case UnitGroup:
		return "ILCD_UnitGroupDataSet.xsd"
	case Contact:
		return "ILCD_ContactDataSet.xsd"
	case Source:
		return "ILCD_SourceDataSet.xsd"
	}
	return ""
}
