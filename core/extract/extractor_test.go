package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/corpuspipe/core/extract"
)

// leadHTML resembles a TextExtracts HTML response for a page lead.
const leadHTML = `<p class="mw-empty-elt"></p>
<p><b>Malware</b> is any software intentionally designed to cause disruption.<sup class="reference">[1]</sup></p>
<style>.x { color: red; }</style>
<table><tr><td>infobox</td></tr></table>
<p>Many types of malware exist.</p>
<h2><span class="mw-editsection">edit</span>History</h2>`

func TestExtract_RemovesNoise(t *testing.T) {
	t.Parallel()

	got, err := extract.New().Extract(leadHTML)
	require.NoError(t, err)

	assert.Contains(t, got, "<b>Malware</b> is any software")
	assert.Contains(t, got, "Many types of malware exist.")
	assert.Contains(t, got, "History")
	assert.NotContains(t, got, "[1]")
	assert.NotContains(t, got, "infobox")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "edit<")
	assert.NotContains(t, got, "mw-empty-elt")
}

func TestExtract_Empty(t *testing.T) {
	t.Parallel()

	got, err := extract.New().Extract("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
