package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/corpuspipe/config"
	"github.com/gaurav-prasanna/corpuspipe/core/wiki"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "wiki_domain_top3paras.jsonl", cfg.Output)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, 1, cfg.Workers)
	assert.Equal(t, wiki.FormatWiki, cfg.Format)
	assert.Empty(t, cfg.Seeds)
	assert.Empty(t, cfg.Preview)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, wiki.DefaultUserAgent, cfg.UserAgent)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CORPUS_LANG", "de")
	t.Setenv("CORPUS_TOP_N", "5")
	t.Setenv("CORPUS_FORMAT", "html")
	t.Setenv("CORPUS_TIMEOUT", "5s")

	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, 5, cfg.TopN)
	assert.Equal(t, wiki.FormatHTML, cfg.Format)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	t.Setenv("CORPUS_OUT", "from-env.jsonl")
	t.Setenv("CORPUS_WORKERS", "2")

	fs := pflag.NewFlagSet("build", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--out", "from-flag.jsonl"}))

	v := config.New()
	require.NoError(t, v.BindPFlags(fs))

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.jsonl", cfg.Output)
	assert.Equal(t, 2, cfg.Workers, "unchanged flag must not mask env")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("top-n: 2\npreview: pdf\nlog-level: debug\n"), 0o644))

	v := config.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.TopN)
	assert.Equal(t, "pdf", cfg.Preview)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{name: "zero top-n", key: config.KeyTopN, val: 0},
		{name: "zero workers", key: config.KeyWorkers, val: 0},
		{name: "empty language", key: config.KeyLanguage, val: " "},
		{name: "bad language", key: config.KeyLanguage, val: "evil.com/"},
		{name: "empty output", key: config.KeyOutput, val: ""},
		{name: "unknown format", key: config.KeyFormat, val: "mobile"},
		{name: "unknown preview", key: config.KeyPreview, val: "docx"},
		{name: "bad log level", key: config.KeyLogLevel, val: "loud"},
		{name: "zero timeout", key: config.KeyTimeout, val: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := config.New()
			v.Set(tt.key, tt.val)

			_, err := config.Load(v)
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestWikiConfig(t *testing.T) {
	cfg, err := config.Load(config.New())
	require.NoError(t, err)

	wc := cfg.WikiConfig()
	assert.Equal(t, "en", wc.Language)
	assert.Equal(t, wiki.FormatWiki, wc.Format)
	assert.Equal(t, cfg.Timeout, wc.Timeout)
}
