package ilcd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFixtures(t *testing.T) {
	lib := testLibrary(t)
	for kind, name := range kindFixtures {
		t.Run(kind.String(), func(t *testing.T) {
			diags, err := lib.ValidateFile(kind, filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Empty(t, diags)
		})
	}
}

func TestValidateUndeclaredRoot(t *testing.T) {
	lib := testLibrary(t)
	diags, err := lib.Validate(Contact, strings.NewReader(
		`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<ilcd></ilcd>`))
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t,
		"<string>:1:0:ERROR:SCHEMASV:SCHEMAV_CVC_ELT_1: Element 'ilcd': No matching global declaration available for the validation root.",
		diags[0].String())
}

func TestValidateWrongKind(t *testing.T) {
	// A contact document is not declared in the process schema.
	lib := testLibrary(t)
	doc, err := os.ReadFile(filepath.Join("testdata", "contact.xml"))
	require.NoError(t, err)
	diags, err := lib.Validate(Process, strings.NewReader(string(doc)))
	require.NoError(t, err)
	require.NotEmpty(t, diags)
	assert.Equal(t, "SCHEMAV_CVC_ELT_1", diags[0].Code)
	assert.Contains(t, diags[0].Message, "'contactDataSet'")
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{
		Source:   "sample.xml",
		Line:     12,
		Column:   4,
		Category: "SCHEMASV",
		Code:     "SCHEMAV_CVC_COMPLEX_TYPE_2_4_A",
		Message:  "unexpected element",
	}
	assert.Equal(t,
		"sample.xml:12:4:ERROR:SCHEMASV:SCHEMAV_CVC_COMPLEX_TYPE_2_4_A: unexpected element",
		d.String())
}

func TestDiagnosticCode(t *testing.T) {
	assert.Equal(t, "SCHEMAV_CVC_ELT_1", diagnosticCode("cvc-elt.1"))
	assert.Equal(t, "SCHEMAV_CVC_COMPLEX_TYPE_2_4_A", diagnosticCode("cvc-complex-type.2.4.a"))
	assert.Equal(t, "SCHEMAV_CVC_DATATYPE_VALID_1_2_1", diagnosticCode("cvc-datatype-valid.1.2.1"))
}

func TestSchemaPathOverride(t *testing.T) {
	lib := testLibrary(t)
	lib.Defaults().SchemaPaths[Contact] = filepath.Join("testdata", "no-such-schema.xsd")
	_, err := lib.ValidateFile(Contact, filepath.Join("testdata", "contact.xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load contact schema")
}

func TestOptionUndo(t *testing.T) {
	lib := testLibrary(t)
	custom := NewDefaults()
	undo := lib.Option(WithDefaults(custom))
	assert.Same(t, custom, lib.Defaults())
	lib.Option(undo)
	assert.NotSame(t, custom, lib.Defaults())
}
