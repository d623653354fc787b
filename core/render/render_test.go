package render_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/corpuspipe/core"
	"github.com/gaurav-prasanna/corpuspipe/core/render"
)

var testRecords = []core.Record{
	{
		ID: "a", Domain: "cybersecurity", Title: "MITRE ATT&CK", Section: core.SectionLead,
		ParaIndex: 0, URL: "https://en.wikipedia.org/wiki/MITRE_ATT%26CK",
		Contents: "The ATT&CK framework <tactics> is a knowledge base.", Source: core.SourceWikipedia,
	},
	{
		ID: "b", Domain: "cybersecurity", Title: "MITRE ATT&CK", Section: core.SectionLead,
		ParaIndex: 1, URL: "https://en.wikipedia.org/wiki/MITRE_ATT%26CK",
		Contents: "Second paragraph.", Source: core.SourceWikipedia,
	},
	{
		ID: "c", Domain: "finance", Title: "Fama–French three-factor model", Section: core.SectionLead,
		ParaIndex: 0, URL: "https://en.wikipedia.org/wiki/Fama%E2%80%93French_three-factor_model",
		Contents: "In asset pricing, the model “explains” returns.", Source: core.SourceWikipedia,
	},
}

func TestJSONL_OneObjectPerLine(t *testing.T) {
	t.Parallel()

	data, err := render.NewJSONLRenderer().Render(testRecords)
	require.NoError(t, err)

	require.True(t, bytes.HasSuffix(data, []byte("\n")))
	assert.Equal(t, len(testRecords), bytes.Count(data, []byte("\n")))

	wantKeys := []string{"id", "domain", "title", "section", "para_index", "url", "contents", "source"}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	i := 0
	for scanner.Scan() {
		var obj map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &obj), "line %d", i)

		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		assert.ElementsMatch(t, wantKeys, keys)
		assert.Equal(t, "lead", obj["section"])
		assert.Equal(t, "wikipedia", obj["source"])
		assert.Equal(t, float64(testRecords[i].ParaIndex), obj["para_index"])
		assert.Equal(t, testRecords[i].Contents, obj["contents"])
		i++
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, len(testRecords), i)
}

func TestJSONL_KeyOrderAndNoHTMLEscaping(t *testing.T) {
	t.Parallel()

	data, err := render.NewJSONLRenderer().Render(testRecords[:1])
	require.NoError(t, err)

	want := `{"id":"a","domain":"cybersecurity","title":"MITRE ATT&CK","section":"lead","para_index":0,` +
		`"url":"https://en.wikipedia.org/wiki/MITRE_ATT%26CK","contents":"The ATT&CK framework <tactics> is a knowledge base.",` +
		`"source":"wikipedia"}` + "\n"
	assert.Equal(t, want, string(data))
}

func TestJSONL_Empty(t *testing.T) {
	t.Parallel()

	data, err := render.NewJSONLRenderer().Render(nil)
	require.NoError(t, err)
	assert.Empty(t, data)
	assert.Equal(t, ".jsonl", render.NewJSONLRenderer().Extension())
}

func TestMarkdown_GroupsByDomainAndPage(t *testing.T) {
	t.Parallel()

	data, err := render.NewMarkdownRenderer().Render(testRecords)
	require.NoError(t, err)
	md := string(data)

	assert.Equal(t, 1, strings.Count(md, "## cybersecurity\n"))
	assert.Equal(t, 1, strings.Count(md, "### MITRE ATT&CK\n"))
	assert.Contains(t, md, "## finance\n")
	assert.Contains(t, md, "[1] Second paragraph.")
	assert.Contains(t, md, "Source: https://en.wikipedia.org/wiki/MITRE_ATT%26CK")
	assert.Less(t, strings.Index(md, "## cybersecurity"), strings.Index(md, "## finance"))
}

func TestPDF_Renders(t *testing.T) {
	t.Parallel()

	r := render.NewPDFRenderer()
	data, err := r.Render(testRecords)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, ".pdf", r.Extension())
}

func TestForPreview(t *testing.T) {
	t.Parallel()

	r, err := render.ForPreview("")
	require.NoError(t, err)
	assert.Nil(t, r)

	r, err = render.ForPreview("Markdown")
	require.NoError(t, err)
	assert.Equal(t, ".md", r.Extension())

	r, err = render.ForPreview("pdf")
	require.NoError(t, err)
	assert.Equal(t, ".pdf", r.Extension())

	_, err = render.ForPreview("docx")
	assert.Error(t, err)
}
