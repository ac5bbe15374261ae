package xmltree

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<contactDataSet xmlns="http://lca.jrc.it/ILCD/Contact" xmlns:common="http://lca.jrc.it/ILCD/Common" version="1.1">
  <contactInformation>
    <dataSetInformation>
      <common:UUID>00000000-0000-0000-0000-000000000000</common:UUID>
      <common:shortName xml:lang="en">ACME</common:shortName>
      <common:shortName xml:lang="de">ACME GmbH</common:shortName>
      <email>info@example.com</email>
    </dataSetInformation>
  </contactInformation>
</contactDataSet>`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	require.Equal(t, "contactDataSet", root.Name)
	require.Equal(t, "contactDataSet", root.Local)
	require.Equal(t, "1.1", root.Attr("version"))
	require.True(t, root.HasAttr("version"))
	require.False(t, root.HasAttr("nope"))

	info := root.Child("contactInformation").Child("dataSetInformation")
	require.NotNil(t, info)

	uuid := info.Child("UUID")
	require.NotNil(t, uuid)
	require.Equal(t, "common:UUID", uuid.Name)
	require.Equal(t, "00000000-0000-0000-0000-000000000000", uuid.Text)

	names := info.ChildrenNamed("shortName")
	require.Len(t, names, 2)
	require.Equal(t, "en", names[0].Attr("lang"))
	require.Equal(t, "ACME", names[0].Text)
	require.Equal(t, "de", names[1].Attr("lang"))

	require.Equal(t, info, uuid.Parent())
	require.Nil(t, root.Parent())
}

func TestParseErrors(t *testing.T) {
	for _, doc := range []string{
		"",
		"<a><b></a>",
		"not xml at all",
		"<a>",
	} {
		_, err := Parse([]byte(doc))
		require.Error(t, err, "document %q", doc)
	}
}

func TestParseDeeplyNested(t *testing.T) {
	var b strings.Builder
	for i := 0; i < recursionLimit+10; i++ {
		b.WriteString("<a>")
	}
	for i := 0; i < recursionLimit+10; i++ {
		b.WriteString("</a>")
	}
	_, err := Parse([]byte(b.String()))
	require.ErrorIs(t, err, errDeepXML)
}

func TestResolvePrefix(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	name := root.Resolve("common:UUID")
	require.Equal(t, "http://lca.jrc.it/ILCD/Common", name.Space)
	require.Equal(t, "UUID", name.Local)

	name = root.Resolve("email")
	require.Equal(t, "http://lca.jrc.it/ILCD/Contact", name.Space)

	qname := xml.Name{Space: "http://lca.jrc.it/ILCD/Common", Local: "UUID"}
	require.Equal(t, "common:UUID", root.Prefix(qname))
}

func TestSetAttr(t *testing.T) {
	el := New("sample")
	el.SetAttr("version", "1.0")
	el.SetAttr("xml:lang", "en")
	require.Equal(t, "1.0", el.Attr("version"))
	require.Equal(t, "en", el.Attr("lang"))

	el.SetAttr("version", "2.0")
	require.Equal(t, "2.0", el.Attr("version"))
	require.Len(t, el.Attrs, 2)

	require.True(t, el.RemoveAttr("lang"))
	require.False(t, el.HasAttr("lang"))
	require.False(t, el.RemoveAttr("lang"))
}

func TestChildManipulation(t *testing.T) {
	parent := New("parent")
	parent.Append(New("first"))
	parent.Append(New("name"))
	parent.Append(New("last"))

	i := parent.RemoveChildrenNamed("name")
	require.Equal(t, 1, i)
	require.Len(t, parent.Children, 2)

	parent.Insert(i, New("name"))
	require.Equal(t, []string{"first", "name", "last"}, childNames(parent))

	require.Equal(t, -1, parent.RemoveChildrenNamed("missing"))
}

func childNames(el *Element) []string {
	var names []string
	for _, c := range el.Children {
		names = append(names, c.Local)
	}
	return names
}

func TestSearchFunc(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	found := root.SearchFunc(func(el *Element) bool {
		return el.Local == "shortName"
	})
	require.Len(t, found, 2)
}
