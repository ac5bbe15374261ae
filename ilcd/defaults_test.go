package ilcd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcatools/go-ilcd/xmltree"
)

func TestFillDefaults(t *testing.T) {
	lib := testLibrary(t)
	ds, err := lib.ParseProcessFile(filepath.Join("testdata", "process.xml"))
	require.NoError(t, err)

	root := ds.Elem()
	root.RemoveAttr("metaDataOnly")
	classification := root.SearchFunc(func(el *xmltree.Element) bool {
		return el.Local == "classification"
	})[0]
	classification.RemoveAttr("name")

	var buf bytes.Buffer
	require.NoError(t, lib.Encode(&buf, ds, true))

	assert.Equal(t, "false", root.Attr("metaDataOnly"))
	assert.Equal(t, "ILCD", classification.Attr("name"))
}

func TestFillKeepsPresentAttributes(t *testing.T) {
	lib := testLibrary(t)
	ds, err := lib.ParseProcessFile(filepath.Join("testdata", "process.xml"))
	require.NoError(t, err)

	classification := ds.Elem().SearchFunc(func(el *xmltree.Element) bool {
		return el.Local == "classification"
	})[0]
	classification.SetAttr("name", "GaBi")

	var buf bytes.Buffer
	require.NoError(t, lib.Encode(&buf, ds, true))
	assert.Equal(t, "GaBi", classification.Attr("name"))
}

func TestFillIsIdempotent(t *testing.T) {
	lib := testLibrary(t)
	ds, err := lib.ParseFlowFile(filepath.Join("testdata", "flow.xml"))
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, lib.Encode(&first, ds, true))
	require.NoError(t, lib.Encode(&second, ds, true))
	assert.Equal(t, first.String(), second.String())
}

func TestDynamicDefault(t *testing.T) {
	lib := testLibrary(t)
	lib.Defaults().Dynamic["Exchange"] = map[string]DynamicDefault{
		"dataSetInternalID": func(el *xmltree.Element) string {
			return "0"
		},
	}
	ds, err := lib.ParseProcessFile(filepath.Join("testdata", "process.xml"))
	require.NoError(t, err)

	exchanges := ds.Exchanges().Exchanges()
	require.NotEmpty(t, exchanges)
	exchanges[0].Elem().RemoveAttr("dataSetInternalID")

	var buf bytes.Buffer
	require.NoError(t, lib.Encode(&buf, ds, true))
	assert.Equal(t, "0", exchanges[0].Elem().Attr("dataSetInternalID"))
}

func TestLoadConfig(t *testing.T) {
	d := NewDefaults()
	require.NoError(t, d.LoadConfig(filepath.Join("testdata", "config.ini")))

	assert.Equal(t, "/opt/ilcd/schemas/ILCD_ContactDataSet.xsd", d.SchemaPaths[Contact])
	assert.Empty(t, d.SchemaPaths[Process])
	assert.Equal(t, "true", d.Static["ProcessDataSet"]["metaDataOnly"])
	assert.Equal(t, "GaBi", d.Static["Classification"]["name"])
	// Stock entries not mentioned in the config survive the merge.
	assert.Equal(t, "ILCD", d.Static["FlowCategorization"]["name"])
}

func TestLoadConfigUnknownParameter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	require.NoError(t, os.WriteFile(path, []byte("[parameters]\nSCHEMA_LCIA_METHOD = /tmp/x.xsd\n"), 0o644))

	err := NewDefaults().LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCHEMA_LCIA_METHOD")
}

func TestLibraryLoadConfig(t *testing.T) {
	lib := testLibrary(t)
	require.NoError(t, lib.LoadConfig(filepath.Join("testdata", "config.ini")))
	assert.Equal(t, "/opt/ilcd/schemas/ILCD_ContactDataSet.xsd", lib.Defaults().SchemaPaths[Contact])

	// The configured path does not exist, so the contact schema can
	// no longer be loaded.
	_, err := lib.ValidateFile(Contact, filepath.Join("testdata", "contact.xml"))
	require.Error(t, err)
}
