package ilcd

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/text/language"
)

func testLibrary(t *testing.T) *Library {
	t.Helper()
	return NewLibrary()
}

func parseTestFile(t *testing.T, kind Kind, name string) DataSet {
	t.Helper()
	ds, err := testLibrary(t).ParseFileAs(kind, filepath.Join("testdata", name))
	require.NoError(t, err)
	return ds
}

var insignificantSpace = regexp.MustCompile(`>\s+<`)

func canon(doc []byte) string {
	return strings.TrimSpace(insignificantSpace.ReplaceAllString(string(doc), "><"))
}

func TestContactDataSet(t *testing.T) {
	ds := parseTestFile(t, Contact, "contact.xml").(*ContactDataSet)
	assert.Equal(t, "1.1", ds.Version())
	assert.Equal(t, Contact, ds.Kind())

	info := ds.ContactInformation().DataSetInformation()
	assert.Equal(t, "177ca340-ffa2-11da-92e3-0800200c9a66", info.UUID())
	assert.Equal(t, "info@ecoinstitute.example", info.Email())
	assert.Equal(t, "+49 721 000000", info.Telephone())

	names := info.ShortNames()
	require.Len(t, names, 2)
	assert.Equal(t, "en", names[0].Lang)
	assert.Equal(t, "EI Karlsruhe", names[0].Value)
	assert.Equal(t, "EI Karlsruhe", names.Get(language.German))

	classes := info.ClassificationInformation().Classifications()[0].ClassList()
	require.Len(t, classes, 2)
	level, err := classes[1].Level()
	require.NoError(t, err)
	require.NotNil(t, level)
	assert.Equal(t, 1, *level)
	assert.Equal(t, "1.1", classes[1].ClassID())

	entry := ds.AdministrativeInformation().DataEntryBy()
	stamp, err := entry.TimeStamp()
	require.NoError(t, err)
	require.NotNil(t, stamp)
	assert.Equal(t, 2024, stamp.Year())
	format := entry.ReferenceToDataSetFormat()[0]
	assert.Equal(t, "a97a0155-0234-4b87-b4ce-a9b57200a1a5", format.RefObjectID())

	pub := ds.AdministrativeInformation().PublicationAndOwnership()
	assert.Equal(t, "01.00.000", pub.DataSetVersion())
}

func TestSourceDataSet(t *testing.T) {
	ds := parseTestFile(t, Source, "source.xml").(*SourceDataSet)

	info := ds.SourceInformation().DataSetInformation()
	assert.Equal(t, "2c699413-f88b-4cb5-a56d-98cb4068472f", info.UUID())
	assert.Equal(t, "Monograph", info.PublicationType())
	assert.Contains(t, info.SourceCitation(), "Monitoring report 2023")

	files := info.ReferenceToDigitalFiles()
	require.Len(t, files, 1)
	assert.Equal(t, "../external_docs/monitoring-2023.pdf", files[0].URI())
}

func TestUnitGroupDataSet(t *testing.T) {
	ds := parseTestFile(t, UnitGroup, "unitgroup.xml").(*UnitGroupDataSet)

	ref, err := ds.UnitGroupInformation().QuantitativeReference().ReferenceToReferenceUnit()
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, 0, *ref)

	units := ds.Units().Units()
	require.Len(t, units, 3)
	factor, err := units[2].MeanValue()
	require.NoError(t, err)
	require.NotNil(t, factor)
	assert.Equal(t, 1000.0, *factor)
	assert.Equal(t, "t", units[2].GeneralComments()[0].Value)

	compliance := ds.ModellingAndValidation().ComplianceDeclarations().Compliances()[0]
	assert.Equal(t, "Fully compliant", compliance.ApprovalOfOverallCompliance())
}

func TestFlowPropertyDataSet(t *testing.T) {
	ds := parseTestFile(t, FlowProperty, "flowproperty.xml").(*FlowPropertyDataSet)

	info := ds.FlowPropertiesInformation().DataSetInformation()
	assert.Equal(t, "93a60a56-a3c8-11da-a746-0800200b9a66", info.UUID())
	assert.Equal(t, "Mass", info.Names()[0].Value)

	ug := ds.FlowPropertiesInformation().QuantitativeReference().ReferenceToReferenceUnitGroup()
	require.NotNil(t, ug)
	assert.Equal(t, "93a60a57-a4c8-11da-a746-0800200c9a66", ug.RefObjectID())
	assert.Equal(t, "Units of mass", ug.ShortDescriptions()[0].Value)

	sources := ds.ModellingAndValidation().DataSourcesTreatmentAndRepresentativeness().ReferenceToDataSources()
	require.Len(t, sources, 1)
}

func TestFlowDataSet(t *testing.T) {
	ds := parseTestFile(t, Flow, "flow.xml").(*FlowDataSet)

	info := ds.FlowInformation().DataSetInformation()
	assert.Equal(t, "0a2e7b14-83f4-4a16-8b2f-cf5dc5b99118", info.UUID())
	assert.Equal(t, "124-38-9", info.CASNumber())
	assert.Equal(t, "CO2", info.SumFormula())
	assert.Equal(t, "carbon dioxide", info.Name().BaseNames()[0].Value)

	cats := info.ClassificationInformation().ElementaryFlowCategorizations()[0].CategoryList()
	require.Len(t, cats, 2)
	assert.Equal(t, "0", cats[0].Level())
	assert.Equal(t, "1.1", cats[1].CatID())

	refProp, err := ds.FlowInformation().QuantitativeReference().ReferenceToReferenceFlowProperty()
	require.NoError(t, err)
	require.NotNil(t, refProp)
	assert.Equal(t, 0, *refProp)

	assert.Equal(t, "Elementary flow", ds.ModellingAndValidation().LCIMethod().TypeOfDataSet())

	props := ds.FlowProperties().FlowProperties()
	require.Len(t, props, 1)
	id, err := props[0].DataSetInternalID()
	require.NoError(t, err)
	assert.Equal(t, 0, *id)
	assert.Equal(t, "Mass", props[0].ReferenceToFlowPropertyDataSet().ShortDescriptions()[0].Value)
}

func TestFlowCASNumberValidation(t *testing.T) {
	ds := parseTestFile(t, Flow, "flow.xml").(*FlowDataSet)
	info := ds.FlowInformation().DataSetInformation()

	err := info.SetCASNumber("124-38-8")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "CASNumber", verr.Name)
	// a rejected value must not be stored
	assert.Equal(t, "124-38-9", info.CASNumber())

	require.NoError(t, info.SetCASNumber("7732-18-5"))
	assert.Equal(t, "7732-18-5", info.CASNumber())
}

func TestProcessDataSet(t *testing.T) {
	ds := parseTestFile(t, Process, "process.xml").(*ProcessDataSet)

	meta, err := ds.MetaDataOnly()
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.False(t, *meta)

	info := ds.ProcessInformation()
	assert.Equal(t, "76d6aaa4-37e2-40b2-994c-03292b600074", info.DataSetInformation().UUID())
	assert.Equal(t, "electricity, hard coal, at power plant", info.DataSetInformation().Name().BaseNames()[0].Value)

	refs, err := info.QuantitativeReference().ReferenceToReferenceFlows()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, refs)
	assert.Equal(t, "Reference flow(s)", info.QuantitativeReference().Type())

	year, err := info.Time().ReferenceYear()
	require.NoError(t, err)
	assert.Equal(t, 2023, *year)

	loc := info.Geography().LocationOfOperationSupplyOrProduction()
	require.NotNil(t, loc)
	assert.Equal(t, "DE", loc.Location())

	params := info.MathematicalRelations().VariableParameters()
	require.Len(t, params, 1)
	assert.Equal(t, "efficiency", params[0].Name())
	mean, err := params[0].MeanValue()
	require.NoError(t, err)
	assert.Equal(t, 0.43, *mean)

	mv := ds.ModellingAndValidation()
	assert.Equal(t, "LCI result", mv.LCIMethodAndAllocation().TypeOfDataSet())
	covered, err := mv.DataSourcesTreatmentAndRepresentativeness().PercentageSupplyOrProductionCovered()
	require.NoError(t, err)
	assert.Equal(t, 87.5, *covered)

	reviews := mv.Validation().Reviews()
	require.Len(t, reviews, 1)
	assert.Equal(t, "Independent external review", reviews[0].Type())
	assert.Equal(t, "Raw data", reviews[0].Scope().Name())
	dqi := reviews[0].DataQualityIndicators().Indicators()
	require.Len(t, dqi, 1)
	assert.Equal(t, "Good", dqi[0].Value())

	compliance := mv.ComplianceDeclarations().Compliances()[0]
	assert.Equal(t, "Fully compliant", compliance.NomenclatureCompliance())
	assert.Equal(t, "Fully compliant", compliance.ApprovalOfOverallCompliance())

	admin := ds.AdministrativeInformation()
	assert.Equal(t, "National electricity inventory update", admin.CommissionerAndGoal().Projects()[0].Value)
	copyright, err := admin.PublicationAndOwnership().Copyright()
	require.NoError(t, err)
	assert.False(t, *copyright)

	exchanges := ds.Exchanges().Exchanges()
	require.Len(t, exchanges, 2)
	assert.Equal(t, "Output", exchanges[0].ExchangeDirection())
	amount, err := exchanges[1].MeanAmount()
	require.NoError(t, err)
	assert.Equal(t, 0.95, *amount)
	allocs := exchanges[1].Allocations().Allocations()
	require.Len(t, allocs, 1)
	fraction, err := allocs[0].AllocatedFraction()
	require.NoError(t, err)
	assert.Equal(t, 100.0, *fraction)
}

func TestSettersEditInPlace(t *testing.T) {
	ds := parseTestFile(t, Contact, "contact.xml").(*ContactDataSet)
	info := ds.ContactInformation().DataSetInformation()

	info.SetEmail("contact@ecoinstitute.example")
	assert.Equal(t, "contact@ecoinstitute.example", info.Email())

	info.SetShortNames(LangStrings{
		{Lang: "en", Value: "Eco Institute"},
		{Lang: "fr", Value: "Institut Eco"},
	})
	names := info.ShortNames()
	require.Len(t, names, 2)
	assert.Equal(t, "fr", names[1].Lang)

	// replaced lists keep their position among siblings
	children := info.Elem().Children
	assert.Equal(t, "UUID", children[0].Local)
	assert.Equal(t, "shortName", children[1].Local)
}

func TestRoundTripAllKinds(t *testing.T) {
	files := map[Kind]string{
		Process:      "process.xml",
		Flow:         "flow.xml",
		FlowProperty: "flowproperty.xml",
		UnitGroup:    "unitgroup.xml",
		Contact:      "contact.xml",
		Source:       "source.xml",
	}
	lib := testLibrary(t)
	for kind, name := range files {
		original, err := os.ReadFile(filepath.Join("testdata", name))
		require.NoError(t, err, name)

		ds, err := lib.ParseFileAs(kind, filepath.Join("testdata", name))
		require.NoError(t, err, name)

		var buf bytes.Buffer
		require.NoError(t, lib.Encode(&buf, ds, false), name)
		assert.Equal(t, canon(original), canon(buf.Bytes()), name)

		// a second pass over our own output must be stable
		ds2, err := lib.parseAs(kind, bytes.NewReader(buf.Bytes()))
		require.NoError(t, err, name)
		var buf2 bytes.Buffer
		require.NoError(t, lib.Encode(&buf2, ds2, false), name)
		assert.Equal(t, buf.String(), buf2.String(), name)
	}
}

func TestParseRejectsWrongRoot(t *testing.T) {
	lib := testLibrary(t)
	_, err := lib.ParseFlowFile(filepath.Join("testdata", "contact.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contactDataSet")
	assert.Contains(t, err.Error(), "flowDataSet")
}

func TestParseRejectsUnknownElement(t *testing.T) {
	lib := testLibrary(t)
	doc := strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?>
<contactDataSet xmlns="http://lca.jrc.it/ILCD/Contact" xmlns:common="http://lca.jrc.it/ILCD/Common">
  <contactInformation>
    <dataSetInformation>
      <frobnicator/>
    </dataSetInformation>
  </contactInformation>
</contactDataSet>`)
	_, err := lib.ParseContact(doc)
	var lerr *LookupError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "frobnicator", lerr.Tag)
	assert.Equal(t, Contact, lerr.Kind)
}
