package ilcd

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDir(t *testing.T) {
	lib := testLibrary(t)
	results, err := lib.ParseDir(Contact, filepath.Join("testdata", "batch"))
	require.NoError(t, err)
	require.Len(t, results, 5)

	// readme.txt is skipped; members come back in lexical order.
	assert.Equal(t, filepath.Join("testdata", "batch", "a_office.xml"), results[0].Path)
	assert.Equal(t, filepath.Join("testdata", "batch", "b_broken.xml"), results[1].Path)
	assert.Equal(t, filepath.Join("testdata", "batch", "c_lab.xml"), results[2].Path)
	assert.Equal(t, filepath.Join("testdata", "batch", "d_truncated.xml"), results[3].Path)
	assert.Equal(t, filepath.Join("testdata", "batch", "wrongroot.xml"), results[4].Path)

	require.NoError(t, results[0].Err)
	office := results[0].DataSet.(*ContactDataSet)
	assert.Equal(t, "41264110-d24c-41a9-b7f8-28ecd2f60403",
		office.ContactInformation().DataSetInformation().UUID())

	var lookupErr *LookupError
	require.ErrorAs(t, results[1].Err, &lookupErr)
	assert.Equal(t, "mailingList", lookupErr.Tag)
	assert.Nil(t, results[1].DataSet)

	require.NoError(t, results[2].Err)
	lab := results[2].DataSet.(*ContactDataSet)
	assert.Equal(t, "a89f3b8e-6b13-4c27-9f5f-7a16ab9854cb",
		lab.ContactInformation().DataSetInformation().UUID())

	// a member that is not well-formed XML fails hard, without
	// touching its neighbors
	require.Error(t, results[3].Err)
	assert.Nil(t, results[3].DataSet)

	require.Error(t, results[4].Err)
	assert.Contains(t, results[4].Err.Error(), "document element is <ilcd>")
}

func TestParseDirSuffixFilter(t *testing.T) {
	lib := testLibrary(t)
	results, err := lib.ParseDir(Contact, filepath.Join("testdata", "batch"), ".ilcd")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestValidateDir(t *testing.T) {
	lib := testLibrary(t)
	results, err := lib.ValidateDir(Contact, filepath.Join("testdata", "batch"))
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].Valid())
	// Schema validation is independent of the vocabulary tables; the
	// member that fails to parse still validates.
	assert.True(t, results[1].Valid())
	assert.True(t, results[2].Valid())

	// the truncated member reports a parse diagnostic and nothing else
	require.False(t, results[3].Valid())
	require.NotEmpty(t, results[3].Diagnostics)
	assert.Equal(t, "SCHEMAV_XML_PARSE_ERROR", results[3].Diagnostics[0].Code)

	require.False(t, results[4].Valid())
	require.NoError(t, results[4].Err)
	require.Len(t, results[4].Diagnostics, 1)
	d := results[4].Diagnostics[0]
	assert.Equal(t, filepath.Join("testdata", "batch", "wrongroot.xml"), d.Source)
	assert.Equal(t, "SCHEMAV_CVC_ELT_1", d.Code)
	assert.Contains(t, d.Message, "'ilcd'")
}

func batchZip(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "contacts.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for _, name := range []string{"a_office.xml", "b_broken.xml", "c_lab.xml", "d_truncated.xml", "readme.txt", "wrongroot.xml"} {
		doc, err := os.ReadFile(filepath.Join("testdata", "batch", name))
		require.NoError(t, err)
		member, err := w.Create("contacts/" + name)
		require.NoError(t, err)
		_, err = member.Write(doc)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
	return path
}

func TestParseZip(t *testing.T) {
	lib := testLibrary(t)
	results, err := lib.ParseZip(Contact, batchZip(t))
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, "contacts/a_office.xml", results[0].Path)
	require.NoError(t, results[0].Err)
	office := results[0].DataSet.(*ContactDataSet)
	assert.Equal(t, "41264110-d24c-41a9-b7f8-28ecd2f60403",
		office.ContactInformation().DataSetInformation().UUID())

	var lookupErr *LookupError
	require.ErrorAs(t, results[1].Err, &lookupErr)
	require.NoError(t, results[2].Err)
	require.Error(t, results[3].Err)
	assert.Nil(t, results[3].DataSet)
	require.Error(t, results[4].Err)
}

func TestValidateZip(t *testing.T) {
	lib := testLibrary(t)
	results, err := lib.ValidateZip(Contact, batchZip(t))
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.True(t, results[0].Valid())
	assert.True(t, results[1].Valid())
	assert.True(t, results[2].Valid())

	require.False(t, results[3].Valid())
	assert.Equal(t, "SCHEMAV_XML_PARSE_ERROR", results[3].Diagnostics[0].Code)

	require.False(t, results[4].Valid())
	assert.Equal(t, "contacts/wrongroot.xml", results[4].Diagnostics[0].Source)
}

func TestParseFileAsKinds(t *testing.T) {
	lib := testLibrary(t)
	for kind, name := range kindFixtures {
		ds, err := lib.ParseFileAs(kind, filepath.Join("testdata", name))
		require.NoError(t, err, name)
		assert.Equal(t, kind, ds.Kind())
	}
}
