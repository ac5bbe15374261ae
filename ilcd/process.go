package ilcd

// ProcessDataSet is the root of a process dataset document. Process
// datasets carry the inventory itself: the exchanges of the process
// with its environment and, optionally, precalculated LCIA results.
type ProcessDataSet struct{ view }

func (p *ProcessDataSet) Kind() Kind          { return Process }
func (p *ProcessDataSet) Version() string     { return getAttr(p.el, "version") }
func (p *ProcessDataSet) SetVersion(v string) { setAttr(p.el, "version", v) }

func (p *ProcessDataSet) Locations() string     { return getAttr(p.el, "locations") }
func (p *ProcessDataSet) SetLocations(v string) { setAttr(p.el, "locations", v) }

// MetaDataOnly reports whether the data set contains only meta data,
// without exchanges.
func (p *ProcessDataSet) MetaDataOnly() (*bool, error) { return getAttrBool(p.el, "metaDataOnly") }
func (p *ProcessDataSet) SetMetaDataOnly(v bool)       { setAttrBool(p.el, "metaDataOnly", v) }

func (p *ProcessDataSet) ProcessInformation() *ProcessInformation {
	return getElement[*ProcessInformation](p.el, "processInformation")
}

func (p *ProcessDataSet) ModellingAndValidation() *ProcessModellingAndValidation {
	return getElement[*ProcessModellingAndValidation](p.el, "modellingAndValidation")
}

func (p *ProcessDataSet) AdministrativeInformation() *ProcessAdministrativeInformation {
	return getElement[*ProcessAdministrativeInformation](p.el, "administrativeInformation")
}

func (p *ProcessDataSet) Exchanges() *Exchanges {
	return getElement[*Exchanges](p.el, "exchanges")
}

func (p *ProcessDataSet) LCIAResults() *LCIAResults {
	return getElement[*LCIAResults](p.el, "LCIAResults")
}

type ProcessInformation struct{ view }

func (p *ProcessInformation) DataSetInformation() *ProcessDataSetInformation {
	return getElement[*ProcessDataSetInformation](p.el, "dataSetInformation")
}

func (p *ProcessInformation) QuantitativeReference() *ProcessQuantitativeReference {
	return getElement[*ProcessQuantitativeReference](p.el, "quantitativeReference")
}

func (p *ProcessInformation) Time() *Time {
	return getElement[*Time](p.el, "time")
}

func (p *ProcessInformation) Geography() *ProcessGeography {
	return getElement[*ProcessGeography](p.el, "geography")
}

func (p *ProcessInformation) Technology() *ProcessTechnology {
	return getElement[*ProcessTechnology](p.el, "technology")
}

func (p *ProcessInformation) MathematicalRelations() *MathematicalRelations {
	return getElement[*MathematicalRelations](p.el, "mathematicalRelations")
}

type ProcessModellingAndValidation struct{ view }

func (m *ProcessModellingAndValidation) LCIMethodAndAllocation() *LCIMethodAndAllocation {
	return getElement[*LCIMethodAndAllocation](m.el, "LCIMethodAndAllocation")
}

func (m *ProcessModellingAndValidation) DataSourcesTreatmentAndRepresentativeness() *ProcessDataSourcesTreatmentAndRepresentativeness {
	return getElement[*ProcessDataSourcesTreatmentAndRepresentativeness](m.el, "dataSourcesTreatmentAndRepresentativeness")
}

func (m *ProcessModellingAndValidation) Completeness() *Completeness {
	return getElement[*Completeness](m.el, "completeness")
}

func (m *ProcessModellingAndValidation) Validation() *Validation {
	return getElement[*Validation](m.el, "validation")
}

func (m *ProcessModellingAndValidation) ComplianceDeclarations() *ProcessComplianceDeclarations {
	return getElement[*ProcessComplianceDeclarations](m.el, "complianceDeclarations")
}

type ProcessAdministrativeInformation struct{ view }

func (a *ProcessAdministrativeInformation) CommissionerAndGoal() *CommissionerAndGoal {
	return getElement[*CommissionerAndGoal](a.el, "commissionerAndGoal")
}

func (a *ProcessAdministrativeInformation) DataGenerator() *DataGenerator {
	return getElement[*DataGenerator](a.el, "dataGenerator")
}

func (a *ProcessAdministrativeInformation) DataEntryBy() *ProcessDataEntryBy {
	return getElement[*ProcessDataEntryBy](a.el, "dataEntryBy")
}

func (a *ProcessAdministrativeInformation) PublicationAndOwnership() *ProcessPublicationAndOwnership {
	return getElement[*ProcessPublicationAndOwnership](a.el, "publicationAndOwnership")
}

type ProcessDataSetInformation struct{ view }

func (d *ProcessDataSetInformation) UUID() string     { return getAttr(d.el, "UUID") }
func (d *ProcessDataSetInformation) SetUUID(v string) { setAttr(d.el, "common:UUID", v) }

// IdentifierOfSubDataSet distinguishes several data sets that describe
// the same process, such as unit process and LCI result views.
func (d *ProcessDataSetInformation) IdentifierOfSubDataSet() string {
	return getAttr(d.el, "identifierOfSubDataSet")
}

func (d *ProcessDataSetInformation) SetIdentifierOfSubDataSet(v string) {
	setAttr(d.el, "identifierOfSubDataSet", v)
}

func (d *ProcessDataSetInformation) Name() *ProcessName {
	return getElement[*ProcessName](d.el, "name")
}

func (d *ProcessDataSetInformation) Synonyms() LangStrings {
	return getLangStrings(d.el, "synonyms")
}

func (d *ProcessDataSetInformation) SetSynonyms(v LangStrings) {
	setLangStrings(d.el, "common:synonyms", v)
}

func (d *ProcessDataSetInformation) ComplementingProcesses() *ComplementingProcesses {
	return getElement[*ComplementingProcesses](d.el, "complementingProcesses")
}

func (d *ProcessDataSetInformation) ClassificationInformation() *FlowCategoryInformation {
	return getElement[*FlowCategoryInformation](d.el, "classificationInformation")
}

func (d *ProcessDataSetInformation) GeneralComments() LangStrings {
	return getLangStrings(d.el, "generalComment")
}

func (d *ProcessDataSetInformation) SetGeneralComments(v LangStrings) {
	setLangStrings(d.el, "common:generalComment", v)
}

func (d *ProcessDataSetInformation) ReferenceToExternalDocumentation() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToExternalDocumentation")
}

// ProcessName splits the process name into base name and qualifying
// parts. All four parts are multilingual lists.
type ProcessName struct{ view }

func (n *ProcessName) BaseNames() LangStrings     { return getLangStrings(n.el, "baseName") }
func (n *ProcessName) SetBaseNames(v LangStrings) { setLangStrings(n.el, "baseName", v) }

func (n *ProcessName) TreatmentStandardsRoutes() LangStrings {
	return getLangStrings(n.el, "treatmentStandardsRoutes")
}

func (n *ProcessName) SetTreatmentStandardsRoutes(v LangStrings) {
	setLangStrings(n.el, "treatmentStandardsRoutes", v)
}

func (n *ProcessName) MixAndLocationTypes() LangStrings {
	return getLangStrings(n.el, "mixAndLocationTypes")
}

func (n *ProcessName) SetMixAndLocationTypes(v LangStrings) {
	setLangStrings(n.el, "mixAndLocationTypes", v)
}

func (n *ProcessName) FunctionalUnitFlowProperties() LangStrings {
	return getLangStrings(n.el, "functionalUnitFlowProperties")
}

func (n *ProcessName) SetFunctionalUnitFlowProperties(v LangStrings) {
	setLangStrings(n.el, "functionalUnitFlowProperties", v)
}

type ComplementingProcesses struct{ view }

func (c *ComplementingProcesses) ReferenceToComplementingProcesses() []*GlobalReference {
	return getElementList[*GlobalReference](c.el, "referenceToComplementingProcess")
}

// ProcessQuantitativeReference names the reference to which the
// process's inputs and outputs quantitatively relate.
type ProcessQuantitativeReference struct{ view }

func (q *ProcessQuantitativeReference) Type() string     { return getAttr(q.el, "type") }
func (q *ProcessQuantitativeReference) SetType(v string) { setAttr(q.el, "type", v) }

// ReferenceToReferenceFlows lists the internal ids of the exchanges
// that serve as reference flows.
func (q *ProcessQuantitativeReference) ReferenceToReferenceFlows() ([]int, error) {
	return getTextInts(q.el, "referenceToReferenceFlow")
}

func (q *ProcessQuantitativeReference) SetReferenceToReferenceFlows(v []int) {
	setTextInts(q.el, "referenceToReferenceFlow", v)
}

func (q *ProcessQuantitativeReference) FunctionalUnitsOrOther() LangStrings {
	return getLangStrings(q.el, "functionalUnitOrOther")
}

func (q *ProcessQuantitativeReference) SetFunctionalUnitsOrOther(v LangStrings) {
	setLangStrings(q.el, "functionalUnitOrOther", v)
}

// Time describes the time representativeness of the data set.
type Time struct{ view }

func (t *Time) ReferenceYear() (*int, error) { return getTextInt(t.el, "referenceYear") }
func (t *Time) SetReferenceYear(v int)       { setTextInt(t.el, "referenceYear", v) }

func (t *Time) DataSetValidUntil() (*int, error) { return getTextInt(t.el, "dataSetValidUntil") }
func (t *Time) SetDataSetValidUntil(v int)       { setTextInt(t.el, "dataSetValidUntil", v) }

func (t *Time) TimeRepresentativenessDescriptions() LangStrings {
	return getLangStrings(t.el, "timeRepresentativenessDescription")
}

func (t *Time) SetTimeRepresentativenessDescriptions(v LangStrings) {
	setLangStrings(t.el, "timeRepresentativenessDescription", v)
}

type ProcessGeography struct{ view }

func (g *ProcessGeography) LocationOfOperationSupplyOrProduction() *LocationOfOperationSupplyOrProduction {
	return getElement[*LocationOfOperationSupplyOrProduction](g.el, "locationOfOperationSupplyOrProduction")
}

func (g *ProcessGeography) SubLocationsOfOperationSupplyOrProduction() []*SubLocationOfOperationSupplyOrProduction {
	return getElementList[*SubLocationOfOperationSupplyOrProduction](g.el, "subLocationOfOperationSupplyOrProduction")
}

// LocationOfOperationSupplyOrProduction is the location for which the
// data set is representative.
type LocationOfOperationSupplyOrProduction struct{ view }

func (l *LocationOfOperationSupplyOrProduction) Location() string {
	return getAttr(l.el, "location")
}

func (l *LocationOfOperationSupplyOrProduction) SetLocation(v string) {
	setAttr(l.el, "location", v)
}

func (l *LocationOfOperationSupplyOrProduction) LatitudeAndLongitude() string {
	return getAttr(l.el, "latitudeAndLongitude")
}

func (l *LocationOfOperationSupplyOrProduction) SetLatitudeAndLongitude(v string) {
	setAttr(l.el, "latitudeAndLongitude", v)
}

func (l *LocationOfOperationSupplyOrProduction) DescriptionsOfRestrictions() LangStrings {
	return getLangStrings(l.el, "descriptionOfRestrictions")
}

func (l *LocationOfOperationSupplyOrProduction) SetDescriptionsOfRestrictions(v LangStrings) {
	setLangStrings(l.el, "descriptionOfRestrictions", v)
}

type SubLocationOfOperationSupplyOrProduction struct{ view }

func (l *SubLocationOfOperationSupplyOrProduction) SubLocation() string {
	return getAttr(l.el, "subLocation")
}

func (l *SubLocationOfOperationSupplyOrProduction) SetSubLocation(v string) {
	setAttr(l.el, "subLocation", v)
}

func (l *SubLocationOfOperationSupplyOrProduction) LatitudeAndLongitude() string {
	return getAttr(l.el, "latitudeAndLongitude")
}

func (l *SubLocationOfOperationSupplyOrProduction) SetLatitudeAndLongitude(v string) {
	setAttr(l.el, "latitudeAndLongitude", v)
}

func (l *SubLocationOfOperationSupplyOrProduction) DescriptionsOfRestrictions() LangStrings {
	return getLangStrings(l.el, "descriptionOfRestrictions")
}

func (l *SubLocationOfOperationSupplyOrProduction) SetDescriptionsOfRestrictions(v LangStrings) {
	setLangStrings(l.el, "descriptionOfRestrictions", v)
}

type ProcessTechnology struct{ view }

func (t *ProcessTechnology) TechnologyDescriptionsAndIncludedProcesses() LangStrings {
	return getLangStrings(t.el, "technologyDescriptionAndIncludedProcesses")
}

func (t *ProcessTechnology) SetTechnologyDescriptionsAndIncludedProcesses(v LangStrings) {
	setLangStrings(t.el, "technologyDescriptionAndIncludedProcesses", v)
}

func (t *ProcessTechnology) TechnologicalApplicabilities() LangStrings {
	return getLangStrings(t.el, "technologicalApplicability")
}

func (t *ProcessTechnology) SetTechnologicalApplicabilities(v LangStrings) {
	setLangStrings(t.el, "technologicalApplicability", v)
}

func (t *ProcessTechnology) ReferenceToIncludedProcesses() []*GlobalReference {
	return getElementList[*GlobalReference](t.el, "referenceToIncludedProcesses")
}

func (t *ProcessTechnology) ReferenceToTechnologyPictogramme() *GlobalReference {
	return getElement[*GlobalReference](t.el, "referenceToTechnologyPictogramme")
}

func (t *ProcessTechnology) ReferenceToTechnologyFlowDiagrammOrPicture() []*GlobalReference {
	return getElementList[*GlobalReference](t.el, "referenceToTechnologyFlowDiagrammOrPicture")
}

type MathematicalRelations struct{ view }

func (m *MathematicalRelations) ModelDescriptions() LangStrings {
	return getLangStrings(m.el, "modelDescription")
}

func (m *MathematicalRelations) SetModelDescriptions(v LangStrings) {
	setLangStrings(m.el, "modelDescription", v)
}

func (m *MathematicalRelations) VariableParameters() []*VariableParameter {
	return getElementList[*VariableParameter](m.el, "variableParameter")
}

// VariableParameter is a named variable or parameter used in the data
// set's mathematical relations.
type VariableParameter struct{ view }

func (p *VariableParameter) Name() string     { return getAttr(p.el, "name") }
func (p *VariableParameter) SetName(v string) { setAttr(p.el, "name", v) }

func (p *VariableParameter) Formula() string     { return getText(p.el, "formula") }
func (p *VariableParameter) SetFormula(v string) { setText(p.el, "formula", v) }

func (p *VariableParameter) MeanValue() (*float64, error) { return getTextFloat(p.el, "meanValue") }
func (p *VariableParameter) SetMeanValue(v float64)       { setTextFloat(p.el, "meanValue", v) }

func (p *VariableParameter) MinimumValue() (*float64, error) {
	return getTextFloat(p.el, "minimumValue")
}

func (p *VariableParameter) SetMinimumValue(v float64) { setTextFloat(p.el, "minimumValue", v) }

func (p *VariableParameter) MaximumValue() (*float64, error) {
	return getTextFloat(p.el, "maximumValue")
}

func (p *VariableParameter) SetMaximumValue(v float64) { setTextFloat(p.el, "maximumValue", v) }

func (p *VariableParameter) UncertaintyDistributionType() string {
	return getText(p.el, "uncertaintyDistributionType")
}

func (p *VariableParameter) SetUncertaintyDistributionType(v string) {
	setText(p.el, "uncertaintyDistributionType", v)
}

func (p *VariableParameter) RelativeStandardDeviation95In() (*float64, error) {
	return getTextFloat(p.el, "relativeStandardDeviation95In")
}

func (p *VariableParameter) SetRelativeStandardDeviation95In(v float64) {
	setTextFloat(p.el, "relativeStandardDeviation95In", v)
}

func (p *VariableParameter) Comments() LangStrings     { return getLangStrings(p.el, "comment") }
func (p *VariableParameter) SetComments(v LangStrings) { setLangStrings(p.el, "comment", v) }

type LCIMethodAndAllocation struct{ view }

func (l *LCIMethodAndAllocation) TypeOfDataSet() string     { return getText(l.el, "typeOfDataSet") }
func (l *LCIMethodAndAllocation) SetTypeOfDataSet(v string) { setText(l.el, "typeOfDataSet", v) }

func (l *LCIMethodAndAllocation) LCIMethodPrinciple() string {
	return getText(l.el, "LCIMethodPrinciple")
}

func (l *LCIMethodAndAllocation) SetLCIMethodPrinciple(v string) {
	setText(l.el, "LCIMethodPrinciple", v)
}

func (l *LCIMethodAndAllocation) DeviationsFromLCIMethodPrinciple() LangStrings {
	return getLangStrings(l.el, "deviationsFromLCIMethodPrinciple")
}

func (l *LCIMethodAndAllocation) SetDeviationsFromLCIMethodPrinciple(v LangStrings) {
	setLangStrings(l.el, "deviationsFromLCIMethodPrinciple", v)
}

func (l *LCIMethodAndAllocation) LCIMethodApproaches() LangStrings {
	return getLangStrings(l.el, "LCIMethodApproaches")
}

func (l *LCIMethodAndAllocation) SetLCIMethodApproaches(v LangStrings) {
	setLangStrings(l.el, "LCIMethodApproaches", v)
}

func (l *LCIMethodAndAllocation) DeviationsFromLCIMethodApproaches() LangStrings {
	return getLangStrings(l.el, "deviationsFromLCIMethodApproaches")
}

func (l *LCIMethodAndAllocation) SetDeviationsFromLCIMethodApproaches(v LangStrings) {
	setLangStrings(l.el, "deviationsFromLCIMethodApproaches", v)
}

func (l *LCIMethodAndAllocation) ModellingConstants() LangStrings {
	return getLangStrings(l.el, "modellingConstants")
}

func (l *LCIMethodAndAllocation) SetModellingConstants(v LangStrings) {
	setLangStrings(l.el, "modellingConstants", v)
}

func (l *LCIMethodAndAllocation) DeviationsFromModellingConstants() LangStrings {
	return getLangStrings(l.el, "deviationsFromModellingConstants")
}

func (l *LCIMethodAndAllocation) SetDeviationsFromModellingConstants(v LangStrings) {
	setLangStrings(l.el, "deviationsFromModellingConstants", v)
}

func (l *LCIMethodAndAllocation) ReferenceToLCAMethodDetails() []*GlobalReference {
	return getElementList[*GlobalReference](l.el, "referenceToLCAMethodDetails")
}

type ProcessDataSourcesTreatmentAndRepresentativeness struct{ view }

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DataCutOffAndCompletenessPrinciples() LangStrings {
	return getLangStrings(d.el, "dataCutOffAndCompletenessPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDataCutOffAndCompletenessPrinciples(v LangStrings) {
	setLangStrings(d.el, "dataCutOffAndCompletenessPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DeviationsFromCutOffAndCompletenessPrinciples() LangStrings {
	return getLangStrings(d.el, "deviationsFromCutOffAndCompletenessPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDeviationsFromCutOffAndCompletenessPrinciples(v LangStrings) {
	setLangStrings(d.el, "deviationsFromCutOffAndCompletenessPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DataSelectionAndCombinationPrinciples() LangStrings {
	return getLangStrings(d.el, "dataSelectionAndCombinationPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDataSelectionAndCombinationPrinciples(v LangStrings) {
	setLangStrings(d.el, "dataSelectionAndCombinationPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DeviationsFromSelectionAndCombinationPrinciples() LangStrings {
	return getLangStrings(d.el, "deviationsFromSelectionAndCombinationPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDeviationsFromSelectionAndCombinationPrinciples(v LangStrings) {
	setLangStrings(d.el, "deviationsFromSelectionAndCombinationPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DataTreatmentAndExtrapolationsPrinciples() LangStrings {
	return getLangStrings(d.el, "dataTreatmentAndExtrapolationsPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDataTreatmentAndExtrapolationsPrinciples(v LangStrings) {
	setLangStrings(d.el, "dataTreatmentAndExtrapolationsPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DeviationsFromTreatmentAndExtrapolationPrinciples() LangStrings {
	return getLangStrings(d.el, "deviationsFromTreatmentAndExtrapolationPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDeviationsFromTreatmentAndExtrapolationPrinciples(v LangStrings) {
	setLangStrings(d.el, "deviationsFromTreatmentAndExtrapolationPrinciples", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) PercentageSupplyOrProductionCovered() (*float64, error) {
	return getTextFloat(d.el, "percentageSupplyOrProductionCovered")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetPercentageSupplyOrProductionCovered(v float64) {
	setTextFloat(d.el, "percentageSupplyOrProductionCovered", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) AnnualSupplyOrProductionVolumes() LangStrings {
	return getLangStrings(d.el, "annualSupplyOrProductionVolume")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetAnnualSupplyOrProductionVolumes(v LangStrings) {
	setLangStrings(d.el, "annualSupplyOrProductionVolume", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SamplingProcedures() LangStrings {
	return getLangStrings(d.el, "samplingProcedure")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetSamplingProcedures(v LangStrings) {
	setLangStrings(d.el, "samplingProcedure", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) DataCollectionPeriods() LangStrings {
	return getLangStrings(d.el, "dataCollectionPeriod")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetDataCollectionPeriods(v LangStrings) {
	setLangStrings(d.el, "dataCollectionPeriod", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) UncertaintyAdjustments() LangStrings {
	return getLangStrings(d.el, "uncertaintyAdjustments")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetUncertaintyAdjustments(v LangStrings) {
	setLangStrings(d.el, "uncertaintyAdjustments", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) UseAdvicesForDataSet() LangStrings {
	return getLangStrings(d.el, "useAdviceForDataSet")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) SetUseAdvicesForDataSet(v LangStrings) {
	setLangStrings(d.el, "useAdviceForDataSet", v)
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) ReferenceToDataHandlingPrinciples() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToDataHandlingPrinciples")
}

func (d *ProcessDataSourcesTreatmentAndRepresentativeness) ReferenceToDataSources() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToDataSource")
}

type Completeness struct{ view }

func (c *Completeness) CompletenessProductModel() string {
	return getText(c.el, "completenessProductModel")
}

func (c *Completeness) SetCompletenessProductModel(v string) {
	setText(c.el, "completenessProductModel", v)
}

func (c *Completeness) CompletenessElementaryFlows() []*CompletenessElementaryFlows {
	return getElementList[*CompletenessElementaryFlows](c.el, "completenessElementaryFlows")
}

func (c *Completeness) CompletenessOtherProblemFields() LangStrings {
	return getLangStrings(c.el, "completenessOtherProblemField")
}

func (c *Completeness) SetCompletenessOtherProblemFields(v LangStrings) {
	setLangStrings(c.el, "completenessOtherProblemField", v)
}

func (c *Completeness) ReferenceToSupportedImpactAssessmentMethods() *GlobalReference {
	return getElement[*GlobalReference](c.el, "referenceToSupportedImpactAssessmentMethods")
}

// CompletenessElementaryFlows states the completeness of the elementary
// flow coverage for one impact category.
type CompletenessElementaryFlows struct{ view }

func (c *CompletenessElementaryFlows) Type() string     { return getAttr(c.el, "type") }
func (c *CompletenessElementaryFlows) SetType(v string) { setAttr(c.el, "type", v) }

func (c *CompletenessElementaryFlows) Value() string     { return getAttr(c.el, "value") }
func (c *CompletenessElementaryFlows) SetValue(v string) { setAttr(c.el, "value", v) }

type Validation struct{ view }

func (v *Validation) Reviews() []*Review { return getElementList[*Review](v.el, "review") }

// Review documents one review or verification performed on the data
// set.
type Review struct{ view }

func (r *Review) Type() string     { return getAttr(r.el, "type") }
func (r *Review) SetType(v string) { setAttr(r.el, "type", v) }

func (r *Review) ReviewDetails() LangStrings { return getLangStrings(r.el, "reviewDetails") }

func (r *Review) SetReviewDetails(v LangStrings) {
	setLangStrings(r.el, "common:reviewDetails", v)
}

func (r *Review) Scope() *Scope { return getElement[*Scope](r.el, "scope") }

func (r *Review) DataQualityIndicators() *DataQualityIndicators {
	return getElement[*DataQualityIndicators](r.el, "dataQualityIndicators")
}

func (r *Review) OtherReviewDetails() LangStrings {
	return getLangStrings(r.el, "otherReviewDetails")
}

func (r *Review) SetOtherReviewDetails(v LangStrings) {
	setLangStrings(r.el, "common:otherReviewDetails", v)
}

func (r *Review) ReferenceToNameOfReviewerAndInstitution() *GlobalReference {
	return getElement[*GlobalReference](r.el, "referenceToNameOfReviewerAndInstitution")
}

func (r *Review) ReferenceToCompleteReviewReport() *GlobalReference {
	return getElement[*GlobalReference](r.el, "referenceToCompleteReviewReport")
}

type ProcessComplianceDeclarations struct{ view }

func (c *ProcessComplianceDeclarations) Compliances() []*ProcessCompliance {
	return getElementList[*ProcessCompliance](c.el, "compliance")
}

// ProcessCompliance extends the common compliance declaration with
// per-aspect compliance statements.
type ProcessCompliance struct{ complianceGroup }

func (c *ProcessCompliance) NomenclatureCompliance() string {
	return getText(c.el, "nomenclatureCompliance")
}

func (c *ProcessCompliance) SetNomenclatureCompliance(v string) {
	setText(c.el, "common:nomenclatureCompliance", v)
}

func (c *ProcessCompliance) MethodologicalCompliance() string {
	return getText(c.el, "methodologicalCompliance")
}

func (c *ProcessCompliance) SetMethodologicalCompliance(v string) {
	setText(c.el, "common:methodologicalCompliance", v)
}

func (c *ProcessCompliance) ReviewCompliance() string {
	return getText(c.el, "reviewCompliance")
}

func (c *ProcessCompliance) SetReviewCompliance(v string) {
	setText(c.el, "common:reviewCompliance", v)
}

func (c *ProcessCompliance) DocumentationCompliance() string {
	return getText(c.el, "documentationCompliance")
}

func (c *ProcessCompliance) SetDocumentationCompliance(v string) {
	setText(c.el, "common:documentationCompliance", v)
}

func (c *ProcessCompliance) QualityCompliance() string {
	return getText(c.el, "qualityCompliance")
}

func (c *ProcessCompliance) SetQualityCompliance(v string) {
	setText(c.el, "common:qualityCompliance", v)
}

type DataGenerator struct{ view }

func (d *DataGenerator) ReferenceToPersonOrEntityGeneratingTheDataSet() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToPersonOrEntityGeneratingTheDataSet")
}

type ProcessDataEntryBy struct{ dataEntryByGroup1 }

func (d *ProcessDataEntryBy) ReferenceToPersonOrEntityEnteringTheData() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToPersonOrEntityEnteringTheData")
}

func (d *ProcessDataEntryBy) ReferenceToConvertedOriginalDataSetFrom() *GlobalReference {
	return getElement[*GlobalReference](d.el, "referenceToConvertedOriginalDataSetFrom")
}

func (d *ProcessDataEntryBy) ReferenceToDataSetUseApproval() []*GlobalReference {
	return getElementList[*GlobalReference](d.el, "referenceToDataSetUseApproval")
}

type ProcessPublicationAndOwnership struct{ pubOwnershipGroup1 }

func (p *ProcessPublicationAndOwnership) WorkflowAndPublicationStatus() string {
	return getText(p.el, "workflowAndPublicationStatus")
}

func (p *ProcessPublicationAndOwnership) SetWorkflowAndPublicationStatus(v string) {
	setText(p.el, "common:workflowAndPublicationStatus", v)
}

func (p *ProcessPublicationAndOwnership) ReferenceToUnchangedRepublication() *GlobalReference {
	return getElement[*GlobalReference](p.el, "referenceToUnchangedRepublication")
}

func (p *ProcessPublicationAndOwnership) Copyright() (*bool, error) {
	return getTextBool(p.el, "copyright")
}

func (p *ProcessPublicationAndOwnership) SetCopyright(v bool) {
	setTextBool(p.el, "common:copyright", v)
}

func (p *ProcessPublicationAndOwnership) LicenseType() string {
	return getText(p.el, "licenseType")
}

func (p *ProcessPublicationAndOwnership) SetLicenseType(v string) {
	setText(p.el, "common:licenseType", v)
}

func (p *ProcessPublicationAndOwnership) AccessRestrictions() LangStrings {
	return getLangStrings(p.el, "accessRestrictions")
}

func (p *ProcessPublicationAndOwnership) SetAccessRestrictions(v LangStrings) {
	setLangStrings(p.el, "common:accessRestrictions", v)
}

func (p *ProcessPublicationAndOwnership) ReferenceToEntitiesWithExclusiveAccess() []*GlobalReference {
	return getElementList[*GlobalReference](p.el, "referenceToEntitiesWithExclusiveAccess")
}

func (p *ProcessPublicationAndOwnership) RegistrationNumber() string {
	return getText(p.el, "registrationNumber")
}

func (p *ProcessPublicationAndOwnership) SetRegistrationNumber(v string) {
	setText(p.el, "common:registrationNumber", v)
}

func (p *ProcessPublicationAndOwnership) ReferenceToRegistrationAuthority() *GlobalReference {
	return getElement[*GlobalReference](p.el, "referenceToRegistrationAuthority")
}

type Exchanges struct{ view }

func (e *Exchanges) Exchanges() []*Exchange { return getElementList[*Exchange](e.el, "exchange") }

// Exchange is one input or output flow of the process.
type Exchange struct{ view }

func (e *Exchange) DataSetInternalID() (*int, error) { return getAttrInt(e.el, "dataSetInternalID") }
func (e *Exchange) SetDataSetInternalID(v int)       { setAttrInt(e.el, "dataSetInternalID", v) }

func (e *Exchange) ReferenceToFlowDataSet() *GlobalReference {
	return getElement[*GlobalReference](e.el, "referenceToFlowDataSet")
}

func (e *Exchange) Location() string     { return getText(e.el, "location") }
func (e *Exchange) SetLocation(v string) { setText(e.el, "location", v) }

func (e *Exchange) FunctionType() string     { return getText(e.el, "functionType") }
func (e *Exchange) SetFunctionType(v string) { setText(e.el, "functionType", v) }

func (e *Exchange) ExchangeDirection() string     { return getText(e.el, "exchangeDirection") }
func (e *Exchange) SetExchangeDirection(v string) { setText(e.el, "exchangeDirection", v) }

// ReferenceToVariable names the variable from the mathematical
// relations section that determines the exchange amount.
func (e *Exchange) ReferenceToVariable() string     { return getText(e.el, "referenceToVariable") }
func (e *Exchange) SetReferenceToVariable(v string) { setText(e.el, "referenceToVariable", v) }

func (e *Exchange) MeanAmount() (*float64, error) { return getTextFloat(e.el, "meanAmount") }
func (e *Exchange) SetMeanAmount(v float64)       { setTextFloat(e.el, "meanAmount", v) }

func (e *Exchange) ResultingAmount() (*float64, error) {
	return getTextFloat(e.el, "resultingAmount")
}

func (e *Exchange) SetResultingAmount(v float64) { setTextFloat(e.el, "resultingAmount", v) }

func (e *Exchange) MinimumAmount() (*float64, error) { return getTextFloat(e.el, "minimumAmount") }
func (e *Exchange) SetMinimumAmount(v float64)       { setTextFloat(e.el, "minimumAmount", v) }

func (e *Exchange) MaximumAmount() (*float64, error) { return getTextFloat(e.el, "maximumAmount") }
func (e *Exchange) SetMaximumAmount(v float64)       { setTextFloat(e.el, "maximumAmount", v) }

func (e *Exchange) UncertaintyDistributionType() string {
	return getText(e.el, "uncertaintyDistributionType")
}

func (e *Exchange) SetUncertaintyDistributionType(v string) {
	setText(e.el, "uncertaintyDistributionType", v)
}

func (e *Exchange) RelativeStandardDeviation95In() (*float64, error) {
	return getTextFloat(e.el, "relativeStandardDeviation95In")
}

func (e *Exchange) SetRelativeStandardDeviation95In(v float64) {
	setTextFloat(e.el, "relativeStandardDeviation95In", v)
}

func (e *Exchange) Allocations() *Allocations {
	return getElement[*Allocations](e.el, "allocations")
}

func (e *Exchange) DataSourceType() string     { return getText(e.el, "dataSourceType") }
func (e *Exchange) SetDataSourceType(v string) { setText(e.el, "dataSourceType", v) }

func (e *Exchange) DataDerivationTypeStatus() string {
	return getText(e.el, "dataDerivationTypeStatus")
}

func (e *Exchange) SetDataDerivationTypeStatus(v string) {
	setText(e.el, "dataDerivationTypeStatus", v)
}

func (e *Exchange) ReferencesToDataSource() *ReferencesToDataSource {
	return getElement[*ReferencesToDataSource](e.el, "referencesToDataSource")
}

func (e *Exchange) GeneralComments() LangStrings {
	return getLangStrings(e.el, "generalComment")
}

func (e *Exchange) SetGeneralComments(v LangStrings) {
	setLangStrings(e.el, "generalComment", v)
}

type Allocations struct{ view }

func (a *Allocations) Allocations() []*Allocation {
	return getElementList[*Allocation](a.el, "allocation")
}

// Allocation states the fraction of the exchange allocated to one
// co-product.
type Allocation struct{ view }

func (a *Allocation) InternalReferenceToCoProduct() (*int, error) {
	return getAttrInt(a.el, "internalReferenceToCoProduct")
}

func (a *Allocation) SetInternalReferenceToCoProduct(v int) {
	setAttrInt(a.el, "internalReferenceToCoProduct", v)
}

func (a *Allocation) AllocatedFraction() (*float64, error) {
	return getAttrFloat(a.el, "allocatedFraction")
}

func (a *Allocation) SetAllocatedFraction(v float64) {
	setAttrFloat(a.el, "allocatedFraction", v)
}

type ReferencesToDataSource struct{ view }

func (r *ReferencesToDataSource) ReferenceToDataSources() []*GlobalReference {
	return getElementList[*GlobalReference](r.el, "referenceToDataSource")
}

type LCIAResults struct{ view }

func (l *LCIAResults) LCIAResults() []*LCIAResult {
	return getElementList[*LCIAResult](l.el, "LCIAResult")
}

// LCIAResult is one precalculated impact assessment result of the
// process.
type LCIAResult struct{ view }

func (l *LCIAResult) ReferenceToLCIAMethodDataSet() *GlobalReference {
	return getElement[*GlobalReference](l.el, "referenceToLCIAMethodDataSet")
}

func (l *LCIAResult) MeanAmount() (*float64, error) { return getTextFloat(l.el, "meanAmount") }
func (l *LCIAResult) SetMeanAmount(v float64)       { setTextFloat(l.el, "meanAmount", v) }

func (l *LCIAResult) UncertaintyDistributionType() string {
	return getText(l.el, "uncertaintyDistributionType")
}

func (l *LCIAResult) SetUncertaintyDistributionType(v string) {
	setText(l.el, "uncertaintyDistributionType", v)
}

func (l *LCIAResult) RelativeStandardDeviation95In() (*float64, error) {
	return getTextFloat(l.el, "relativeStandardDeviation95In")
}

func (l *LCIAResult) SetRelativeStandardDeviation95In(v float64) {
	setTextFloat(l.el, "relativeStandardDeviation95In", v)
}

func (l *LCIAResult) GeneralComments() LangStrings {
	return getLangStrings(l.el, "generalComment")
}

func (l *LCIAResult) SetGeneralComments(v LangStrings) {
	setLangStrings(l.el, "common:generalComment", v)
}
