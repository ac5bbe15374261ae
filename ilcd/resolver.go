package ilcd

import (
	"github.com/lcatools/go-ilcd/xmltree"
)

// An ElementClass names a typed view and knows how to wrap an element
// in it.
type ElementClass struct {
	Name string
	New  func(*xmltree.Element) View
}

// class builds the ElementClass for view type T.
func class[T any](name string) ElementClass {
	return ElementClass{
		Name: name,
		New: func(el *xmltree.Element) View {
			v := new(T)
			any(v).(binder).bind(el)
			return any(v).(View)
		},
	}
}

// textField marks leaf elements whose only content is (possibly
// language-tagged) character data.
var textField = class[TextField]("TextField")

// A Resolver maps element tag names to typed view classes for one
// dataset kind. Kind-specific entries shadow the shared table; a tag
// found in neither is unknown for that kind and resolves to a
// LookupError.
type Resolver struct {
	kind    Kind
	classes map[string]ElementClass
}

// ResolverFor returns the resolver for the given dataset kind.
func ResolverFor(kind Kind) *Resolver {
	return &Resolver{kind: kind, classes: kindClasses[kind]}
}

// Resolve maps a tag name, given without namespace prefix, to its
// class for this resolver's kind.
func (r *Resolver) Resolve(tag string) (ElementClass, error) {
	if c, ok := r.classes[tag]; ok {
		return c, nil
	}
	if c, ok := commonClasses[tag]; ok {
		return c, nil
	}
	return ElementClass{}, &LookupError{Kind: r.kind, Tag: tag}
}

// commonClasses is shared by all six dataset kinds. Alongside the
// structural classes it enumerates every leaf element of the six
// vocabularies, so that resolution is closed: a tag missing from both
// tables is an unknown element, not an implicit text node.
var commonClasses = map[string]ElementClass{
	"allocation":                            class[Allocation]("Allocation"),
	"allocations":                           class[Allocations]("Allocations"),
	"category":                              class[Category]("Category"),
	"class":                                 class[Class]("Class"),
	"classification":                        class[Classification]("Classification"),
	"commissionerAndGoal":                   class[CommissionerAndGoal]("CommissionerAndGoal"),
	"completeness":                          class[Completeness]("Completeness"),
	"completenessElementaryFlows":           class[CompletenessElementaryFlows]("CompletenessElementaryFlows"),
	"complementingProcesses":                class[ComplementingProcesses]("ComplementingProcesses"),
	"compliance":                            class[Compliance]("Compliance"),
	"complianceDeclarations":                class[ComplianceDeclarations]("ComplianceDeclarations"),
	"contactDataSet":                        class[ContactDataSet]("ContactDataSet"),
	"contactInformation":                    class[ContactInformation]("ContactInformation"),
	"dataGenerator":                         class[DataGenerator]("DataGenerator"),
	"dataQualityIndicator":                  class[DataQualityIndicator]("DataQualityIndicator"),
	"dataQualityIndicators":                 class[DataQualityIndicators]("DataQualityIndicators"),
	"elementaryFlowCategorization":          class[FlowCategorization]("FlowCategorization"),
	"exchange":                              class[Exchange]("Exchange"),
	"exchanges":                             class[Exchanges]("Exchanges"),
	"flowDataSet":                           class[FlowDataSet]("FlowDataSet"),
	"flowInformation":                       class[FlowInformation]("FlowInformation"),
	"flowProperties":                        class[FlowProperties]("FlowProperties"),
	"flowPropertiesInformation":             class[FlowPropertiesInformation]("FlowPropertiesInformation"),
	"flowProperty":                          class[FlowPropertyEntry]("FlowPropertyEntry"),
	"flowPropertyDataSet":                   class[FlowPropertyDataSet]("FlowPropertyDataSet"),
	"LCIAResult":                            class[LCIAResult]("LCIAResult"),
	"LCIAResults":                           class[LCIAResults]("LCIAResults"),
	"LCIMethod":                             class[FlowLCIMethod]("FlowLCIMethod"),
	"LCIMethodAndAllocation":                class[LCIMethodAndAllocation]("LCIMethodAndAllocation"),
	"locationOfOperationSupplyOrProduction": class[LocationOfOperationSupplyOrProduction]("LocationOfOperationSupplyOrProduction"),
	"mathematicalRelations":                 class[MathematicalRelations]("MathematicalRelations"),
	"method":                                class[Method]("Method"),
	"processDataSet":                        class[ProcessDataSet]("ProcessDataSet"),
	"processInformation":                    class[ProcessInformation]("ProcessInformation"),
	"referencesToDataSource":                class[ReferencesToDataSource]("ReferencesToDataSource"),
	"referenceToDigitalFile":                class[ReferenceToDigitalFile]("ReferenceToDigitalFile"),
	"review":                                class[Review]("Review"),
	"scope":                                 class[Scope]("Scope"),
	"sourceDataSet":                         class[SourceDataSet]("SourceDataSet"),
	"sourceInformation":                     class[SourceInformation]("SourceInformation"),
	"subLocationOfOperationSupplyOrProduction": class[SubLocationOfOperationSupplyOrProduction]("SubLocationOfOperationSupplyOrProduction"),
	"time":                 class[Time]("Time"),
	"unit":                 class[Unit]("Unit"),
	"unitGroupDataSet":     class[UnitGroupDataSet]("UnitGroupDataSet"),
	"unitGroupInformation": class[UnitGroupInformation]("UnitGroupInformation"),
	"units":                class[Units]("Units"),
	"validation":           class[Validation]("Validation"),
	"variableParameter":    class[VariableParameter]("VariableParameter"),

	// cross-dataset references
	"referenceToCommissioner":                       globalReference,
	"referenceToComplementingProcess":               globalReference,
	"referenceToCompleteReviewReport":               globalReference,
	"referenceToComplianceSystem":                   globalReference,
	"referenceToContact":                            globalReference,
	"referenceToConvertedOriginalDataSetFrom":       globalReference,
	"referenceToDataHandlingPrinciples":             globalReference,
	"referenceToDataSetFormat":                      globalReference,
	"referenceToDataSetUseApproval":                 globalReference,
	"referenceToDataSource":                         globalReference,
	"referenceToEntitiesWithExclusiveAccess":        globalReference,
	"referenceToExternalDocumentation":              globalReference,
	"referenceToFlowDataSet":                        globalReference,
	"referenceToFlowPropertyDataSet":                globalReference,
	"referenceToIncludedProcesses":                  globalReference,
	"referenceToLCAMethodDetails":                   globalReference,
	"referenceToLCIAMethodDataSet":                  globalReference,
	"referenceToLogo":                               globalReference,
	"referenceToNameOfReviewerAndInstitution":       globalReference,
	"referenceToOwnershipOfDataSet":                 globalReference,
	"referenceToPersonOrEntityEnteringTheData":      globalReference,
	"referenceToPersonOrEntityGeneratingTheDataSet": globalReference,
	"referenceToPrecedingDataSetVersion":            globalReference,
	"referenceToReferenceUnitGroup":                 globalReference,
	"referenceToRegistrationAuthority":              globalReference,
	"referenceToSupportedImpactAssessmentMethods":   globalReference,
	"referenceToTechnicalSpecification":             globalReference,
	"referenceToTechnologyFlowDiagrammOrPicture":    globalReference,
	"referenceToTechnologyPictogramme":              globalReference,
	"referenceToUnchangedRepublication":             globalReference,
	"subReference":                                  textField,
	"shortDescription":                              textField,

	// leaf elements shared across kinds
	"UUID":                         textField,
	"accessRestrictions":           textField,
	"approvalOfOverallCompliance":  textField,
	"copyright":                    textField,
	"dataSetVersion":               textField,
	"documentationCompliance":      textField,
	"generalComment":               textField,
	"intendedApplications":         textField,
	"licenseType":                  textField,
	"methodologicalCompliance":     textField,
	"nomenclatureCompliance":       textField,
	"otherReviewDetails":           textField,
	"permanentDataSetURI":          textField,
	"project":                      textField,
	"qualityCompliance":            textField,
	"registrationNumber":           textField,
	"reviewCompliance":             textField,
	"reviewDetails":                textField,
	"shortName":                    textField,
	"synonyms":                     textField,
	"timeStamp":                    textField,
	"workflowAndPublicationStatus": textField,
}

var globalReference = class[GlobalReference]("GlobalReference")

var kindClasses = map[Kind]map[string]ElementClass{
	Process:      processClasses,
	Flow:         flowClasses,
	FlowProperty: flowPropertyClasses,
	UnitGroup:    unitGroupClasses,
	Contact:      contactClasses,
	Source:       sourceClasses,
}

var processClasses = map[string]ElementClass{
	"administrativeInformation":                 class[ProcessAdministrativeInformation]("ProcessAdministrativeInformation"),
	"classificationInformation":                 class[ClassificationInformation]("ClassificationInformation"),
	"compliance":                                class[ProcessCompliance]("ProcessCompliance"),
	"complianceDeclarations":                    class[ProcessComplianceDeclarations]("ProcessComplianceDeclarations"),
	"dataEntryBy":                               class[ProcessDataEntryBy]("ProcessDataEntryBy"),
	"dataSetInformation":                        class[ProcessDataSetInformation]("ProcessDataSetInformation"),
	"dataSourcesTreatmentAndRepresentativeness": class[ProcessDataSourcesTreatmentAndRepresentativeness]("ProcessDataSourcesTreatmentAndRepresentativeness"),
	"geography":                                 class[ProcessGeography]("ProcessGeography"),
	"modellingAndValidation":                    class[ProcessModellingAndValidation]("ProcessModellingAndValidation"),
	"name":                                      class[ProcessName]("ProcessName"),
	"publicationAndOwnership":                   class[ProcessPublicationAndOwnership]("ProcessPublicationAndOwnership"),
	"quantitativeReference":                     class[ProcessQuantitativeReference]("ProcessQuantitativeReference"),
	"technology":                                class[ProcessTechnology]("ProcessTechnology"),

	"LCIMethodApproaches":                               textField,
	"LCIMethodPrinciple":                                textField,
	"annualSupplyOrProductionVolume":                    textField,
	"baseName":                                          textField,
	"comment":                                           textField,
	"completenessOtherProblemField":                     textField,
	"completenessProductModel":                          textField,
	"dataCollectionPeriod":                              textField,
	"dataCutOffAndCompletenessPrinciples":               textField,
	"dataDerivationTypeStatus":                          textField,
	"dataSelectionAndCombinationPrinciples":             textField,
	"dataSetValidUntil":                                 textField,
	"dataSourceType":                                    textField,
	"dataTreatmentAndExtrapolationsPrinciples":          textField,
	"descriptionOfRestrictions":                         textField,
	"deviationsFromCutOffAndCompletenessPrinciples":     textField,
	"deviationsFromLCIMethodApproaches":                 textField,
	"deviationsFromLCIMethodPrinciple":                  textField,
	"deviationsFromModellingConstants":                  textField,
	"deviationsFromSelectionAndCombinationPrinciples":   textField,
	"deviationsFromTreatmentAndExtrapolationPrinciples": textField,
	"exchangeDirection":                                 textField,
	"formula":                                           textField,
	"functionType":                                      textField,
	"functionalUnitFlowProperties":                      textField,
	"functionalUnitOrOther":                             textField,
	"location":                                          textField,
	"maximumAmount":                                     textField,
	"maximumValue":                                      textField,
	"meanAmount":                                        textField,
	"meanValue":                                         textField,
	"minimumAmount":                                     textField,
	"minimumValue":                                      textField,
	"mixAndLocationTypes":                               textField,
	"modelDescription":                                  textField,
	"modellingConstants":                                textField,
	"percentageSupplyOrProductionCovered":               textField,
	"referenceToReferenceFlow":                          textField,
	"referenceToVariable":                               textField,
	"referenceYear":                                     textField,
	"relativeStandardDeviation95In":                     textField,
	"resultingAmount":                                   textField,
	"samplingProcedure":                                 textField,
	"timeRepresentativenessDescription":                 textField,
	"treatmentStandardsRoutes":                          textField,
	"typeOfDataSet":                                     textField,
	"uncertaintyAdjustments":                            textField,
	"uncertaintyDistributionType":                       textField,
	"useAdviceForDataSet":                               textField,
}

var flowClasses = map[string]ElementClass{
	"administrativeInformation": class[FlowAdministrativeInformation]("FlowAdministrativeInformation"),
	"classificationInformation": class[FlowCategoryInformation]("FlowCategoryInformation"),
	"dataEntryBy":               class[FlowDataEntryBy]("FlowDataEntryBy"),
	"dataSetInformation":        class[FlowDataSetInformation]("FlowDataSetInformation"),
	"geography":                 class[FlowGeography]("FlowGeography"),
	"modellingAndValidation":    class[FlowModellingAndValidation]("FlowModellingAndValidation"),
	"name":                      class[FlowName]("FlowName"),
	"publicationAndOwnership":   class[FlowPublicationAndOwnership]("FlowPublicationAndOwnership"),
	"quantitativeReference":     class[FlowQuantitativeReference]("FlowQuantitativeReference"),
	"technology":                class[FlowTechnology]("FlowTechnology"),

	"baseName":                         textField,
	"locationOfSupply":                 textField,
	"meanValue":                        textField,
	"mixAndLocationTypes":              textField,
	"referenceToReferenceFlowProperty": textField,
	"sumFormula":                       textField,
	"technologicalApplicability":       textField,
	"treatmentStandardsRoutes":         textField,
	"typeOfDataSet":                    textField,
}

var flowPropertyClasses = map[string]ElementClass{
	"administrativeInformation":                 class[FlowPropertyAdministrativeInformation]("FlowPropertyAdministrativeInformation"),
	"classificationInformation":                 class[ClassificationInformation]("ClassificationInformation"),
	"dataEntryBy":                               class[FlowPropertyDataEntryBy]("FlowPropertyDataEntryBy"),
	"dataSetInformation":                        class[FlowPropertyDataSetInformation]("FlowPropertyDataSetInformation"),
	"dataSourcesTreatmentAndRepresentativeness": class[FlowPropertyDataSourcesTreatmentAndRepresentativeness]("FlowPropertyDataSourcesTreatmentAndRepresentativeness"),
	"modellingAndValidation":                    class[FlowPropertyModellingAndValidation]("FlowPropertyModellingAndValidation"),
	"publicationAndOwnership":                   class[FlowPropertyPublicationAndOwnership]("FlowPropertyPublicationAndOwnership"),
	"quantitativeReference":                     class[FlowPropertyQuantitativeReference]("FlowPropertyQuantitativeReference"),

	"name": textField,
}

var unitGroupClasses = map[string]ElementClass{
	"administrativeInformation": class[UnitGroupAdministrativeInformation]("UnitGroupAdministrativeInformation"),
	"classificationInformation": class[ClassificationInformation]("ClassificationInformation"),
	"dataEntryBy":               class[UnitGroupDataEntryBy]("UnitGroupDataEntryBy"),
	"dataSetInformation":        class[UnitGroupDataSetInformation]("UnitGroupDataSetInformation"),
	"modellingAndValidation":    class[UnitGroupModellingAndValidation]("UnitGroupModellingAndValidation"),
	"publicationAndOwnership":   class[UnitGroupPublicationAndOwnership]("UnitGroupPublicationAndOwnership"),
	"quantitativeReference":     class[UnitGroupQuantitativeReference]("UnitGroupQuantitativeReference"),

	"meanValue": textField,
	"name":      textField,
}

var contactClasses = map[string]ElementClass{
	"administrativeInformation": class[ContactAdministrativeInformation]("ContactAdministrativeInformation"),
	"classificationInformation": class[ClassificationInformation]("ClassificationInformation"),
	"dataEntryBy":               class[ContactDataEntryBy]("ContactDataEntryBy"),
	"dataSetInformation":        class[ContactDataSetInformation]("ContactDataSetInformation"),
	"publicationAndOwnership":   class[ContactPublicationAndOwnership]("ContactPublicationAndOwnership"),

	"centralContactPoint":         textField,
	"contactAddress":              textField,
	"contactDescriptionOrComment": textField,
	"name":                        textField,
}

var sourceClasses = map[string]ElementClass{
	"administrativeInformation": class[SourceAdministrativeInformation]("SourceAdministrativeInformation"),
	"classificationInformation": class[ClassificationInformation]("ClassificationInformation"),
	"dataEntryBy":               class[SourceDataEntryBy]("SourceDataEntryBy"),
	"dataSetInformation":        class[SourceDataSetInformation]("SourceDataSetInformation"),
	"publicationAndOwnership":   class[SourcePublicationAndOwnership]("SourcePublicationAndOwnership"),

	"sourceDescriptionOrComment": textField,
}
