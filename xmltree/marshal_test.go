package xmltree

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var collapseSpace = regexp.MustCompile(`>\s+<`)

// canon reduces a document to a form where only layout whitespace
// differs between equivalent documents.
func canon(doc []byte) string {
	return strings.TrimSpace(collapseSpace.ReplaceAllString(string(doc), "><"))
}

func TestRoundTrip(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	out := Marshal(root)
	require.Equal(t, canon([]byte(sampleDoc)), canon(out))

	again, err := Parse(out)
	require.NoError(t, err)
	require.Equal(t, string(out), string(Marshal(again)))
}

func TestMarshalDeclaration(t *testing.T) {
	out := Marshal(New("empty"))
	require.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<empty></empty>\n", string(out))
}

func TestMarshalEscaping(t *testing.T) {
	el := New("note")
	el.SetText("a < b && b > c\nsecond line")
	el.SetAttr("title", `"quoted" & <bracketed>`)

	out := el.String()
	require.Equal(t, `<note title="&quot;quoted&quot; &amp; &lt;bracketed&gt;">a &lt; b &amp;&amp; b &gt; c`+"\nsecond line</note>", out)

	again, err := Parse([]byte(out))
	require.NoError(t, err)
	require.Equal(t, "a < b && b > c\nsecond line", again.Text)
	require.Equal(t, `"quoted" & <bracketed>`, again.Attr("title"))
}

func TestMarshalKeepsPrefixes(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	out := string(Marshal(root))
	require.Contains(t, out, `xmlns:common="http://lca.jrc.it/ILCD/Common"`)
	require.Contains(t, out, "<common:UUID>")
	require.Contains(t, out, `<common:shortName xml:lang="en">`)
}

func TestMarshalModifiedTree(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	info := root.Child("contactInformation").Child("dataSetInformation")
	phone := New("telephone")
	phone.SetText("+1 555 0100")
	info.Append(phone)

	again, err := Parse(Marshal(root))
	require.NoError(t, err)
	got := again.Child("contactInformation").Child("dataSetInformation").Child("telephone")
	require.NotNil(t, got)
	require.Equal(t, "+1 555 0100", got.Text)
}
