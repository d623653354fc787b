package clean_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gaurav-prasanna/corpuspipe/core/clean"
)

func TestClean_StripsFootnotesAndCollapsesWhitespace(t *testing.T) {
	t.Parallel()

	got := clean.Clean("Rates rose [3] sharply  [12]  last year.")
	assert.Equal(t, "Rates rose sharply last year.", got)
}

func TestClean_Cases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t ", want: ""},
		{name: "newlines and tabs", in: "  one\ttwo\nthree  ", want: "one two three"},
		{name: "marker glued to word", in: "Malware[1] is software.[2][3]", want: "Malware is software."},
		{name: "nested marker", in: "x [1[2]] y", want: "x y"},
		{name: "non-numeric brackets kept", in: "see [a] and [note 1]", want: "see [a] and [note 1]"},
		{name: "empty brackets kept", in: "a [] b", want: "a [] b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clean.Clean(tt.in))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Rates rose [3] sharply  [12]  last year.",
		"[1[2]]",
		"a [1] [2] [3] b",
		"\n\nThe United States Code[1]\n\tis the codification[2] ",
		"[[1]]",
		"plain",
	}

	for _, in := range inputs {
		once := clean.Clean(in)
		assert.Equal(t, once, clean.Clean(once), "input %q", in)
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, clean.Tokens(""))
	assert.Equal(t, 0, clean.Tokens("   "))
	assert.Equal(t, 3, clean.Tokens(" a  b\nc "))
}
