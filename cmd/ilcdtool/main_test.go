package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcatools/go-ilcd/ilcd"
)

// Parsing never validates, so a document with a bare root section is
// still readable; describe must not assume the information sections
// exist.
func TestDescribeSparseDataSets(t *testing.T) {
	lib := ilcd.NewLibrary()
	docs := []struct {
		name  string
		parse func() (ilcd.DataSet, error)
	}{
		{"process", func() (ilcd.DataSet, error) {
			return lib.ParseProcess(strings.NewReader(`<processDataSet xmlns="http://lca.jrc.it/ILCD/Process"></processDataSet>`))
		}},
		{"flow", func() (ilcd.DataSet, error) {
			return lib.ParseFlow(strings.NewReader(`<flowDataSet xmlns="http://lca.jrc.it/ILCD/Flow"></flowDataSet>`))
		}},
		{"flowproperty", func() (ilcd.DataSet, error) {
			return lib.ParseFlowProperty(strings.NewReader(`<flowPropertyDataSet xmlns="http://lca.jrc.it/ILCD/FlowProperty"></flowPropertyDataSet>`))
		}},
		{"unitgroup", func() (ilcd.DataSet, error) {
			return lib.ParseUnitGroup(strings.NewReader(`<unitGroupDataSet xmlns="http://lca.jrc.it/ILCD/UnitGroup"></unitGroupDataSet>`))
		}},
		{"contact", func() (ilcd.DataSet, error) {
			return lib.ParseContact(strings.NewReader(`<contactDataSet xmlns="http://lca.jrc.it/ILCD/Contact"></contactDataSet>`))
		}},
		{"source", func() (ilcd.DataSet, error) {
			return lib.ParseSource(strings.NewReader(`<sourceDataSet xmlns="http://lca.jrc.it/ILCD/Source"></sourceDataSet>`))
		}},
	}
	for _, d := range docs {
		t.Run(d.name, func(t *testing.T) {
			ds, err := d.parse()
			require.NoError(t, err)
			assert.Equal(t, "-\t-", describe(ds))
		})
	}

	// An information section without a dataSetInformation child must
	// not be dereferenced either.
	ds, err := lib.ParseProcess(strings.NewReader(
		`<processDataSet xmlns="http://lca.jrc.it/ILCD/Process" version="1.1"><processInformation></processInformation></processDataSet>`))
	require.NoError(t, err)
	assert.Equal(t, "-\t1.1", describe(ds))
}

func TestDescribeFullDataSet(t *testing.T) {
	ds := ilcd.NewContactDataSet()
	out := describe(ds)
	fields := strings.Split(out, "\t")
	require.Len(t, fields, 2)
	assert.NotEqual(t, "-", fields[0])
	assert.Equal(t, "1.1", fields[1])
}

func TestKindFromFlag(t *testing.T) {
	k, err := kindFromFlag("FlowProperty")
	require.NoError(t, err)
	assert.Equal(t, ilcd.FlowProperty, k)

	_, err = kindFromFlag("lciamethod")
	require.Error(t, err)
}
