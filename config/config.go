// Package config resolves run settings from flags, environment, an optional
// config file, and defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/corpuspipe/core/paragraph"
	"github.com/gaurav-prasanna/corpuspipe/core/render"
	"github.com/gaurav-prasanna/corpuspipe/core/wiki"
	"github.com/gaurav-prasanna/corpuspipe/logger"
)

// EnvPrefix prefixes every environment variable, e.g. CORPUS_TOP_N.
const EnvPrefix = "CORPUS"

// Keys double as flag names.
const (
	KeyLanguage  = "lang"
	KeyOutput    = "out"
	KeyTopN      = "top-n"
	KeySeeds     = "seeds"
	KeyWorkers   = "workers"
	KeyFormat    = "format"
	KeyPreview   = "preview"
	KeyEndpoint  = "endpoint"
	KeyUserAgent = "user-agent"
	KeyTimeout   = "timeout"
	KeyLogLevel  = "log-level"
)

// Defaults.
const (
	DefaultLanguage = "en"
	DefaultOutput   = "wiki_domain_top3paras.jsonl"
	DefaultWorkers  = 1
	DefaultTimeout  = 30 * time.Second
	DefaultLogLevel = "info"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings for one corpus build.
type Config struct {
	Language  string
	Output    string
	TopN      int
	Seeds     string // empty selects the built-in seed set
	Workers   int
	Format    wiki.Format
	Preview   string
	Endpoint  string
	UserAgent string
	Timeout   time.Duration
	LogLevel  string
}

// New returns a viper instance wired for corpuspipe: defaults set and
// CORPUS_* environment variables bound ("top-n" reads CORPUS_TOP_N).
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyTopN, paragraph.DefaultTopN)
	v.SetDefault(KeySeeds, "")
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyFormat, string(wiki.FormatWiki))
	v.SetDefault(KeyPreview, render.PreviewNone)
	v.SetDefault(KeyEndpoint, "")
	v.SetDefault(KeyUserAgent, wiki.DefaultUserAgent)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
}

// RegisterFlags adds the build flags to fs. Flag defaults mirror SetDefaults
// so --help shows them; viper only reads a flag when it was changed.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(KeyLanguage, DefaultLanguage, "Wikipedia language code")
	fs.String(KeyOutput, DefaultOutput, "Output JSONL path (parent directories are created)")
	fs.Int(KeyTopN, paragraph.DefaultTopN, "Lead paragraphs kept per page")
	fs.String(KeySeeds, "", "YAML seeds file mapping domain to titles (default: built-in set)")
	fs.Int(KeyWorkers, DefaultWorkers, "Concurrent page lookups (1 = sequential)")
	fs.String(KeyFormat, string(wiki.FormatWiki), "Extract format: wiki or html")
	fs.String(KeyPreview, render.PreviewNone, "Also write a preview next to the output: markdown or pdf")
	fs.String(KeyEndpoint, "", "MediaWiki API endpoint (default: https://<lang>.wikipedia.org/w/api.php)")
	fs.String(KeyUserAgent, wiki.DefaultUserAgent, "User-Agent sent to the API")
	fs.Duration(KeyTimeout, DefaultTimeout, "HTTP timeout per lookup")
}

// Load reads and validates a Config from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		Language:  strings.TrimSpace(v.GetString(KeyLanguage)),
		Output:    strings.TrimSpace(v.GetString(KeyOutput)),
		TopN:      v.GetInt(KeyTopN),
		Seeds:     strings.TrimSpace(v.GetString(KeySeeds)),
		Workers:   v.GetInt(KeyWorkers),
		Preview:   strings.ToLower(strings.TrimSpace(v.GetString(KeyPreview))),
		Endpoint:  strings.TrimSpace(v.GetString(KeyEndpoint)),
		UserAgent: strings.TrimSpace(v.GetString(KeyUserAgent)),
		Timeout:   v.GetDuration(KeyTimeout),
		LogLevel:  v.GetString(KeyLogLevel),
	}

	format, err := wiki.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	cfg.Format = format

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	switch {
	case c.Language == "":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, KeyLanguage)
	case strings.ContainsAny(c.Language, "./: "):
		return fmt.Errorf("%w: %s %q is not a language code", ErrInvalid, KeyLanguage, c.Language)
	case c.Output == "":
		return fmt.Errorf("%w: %s must not be empty", ErrInvalid, KeyOutput)
	case c.TopN < 1:
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyTopN, c.TopN)
	case c.Workers < 1:
		return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalid, KeyWorkers, c.Workers)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalid, KeyTimeout)
	}

	if _, err := render.ForPreview(c.Preview); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// WikiConfig returns the client settings for this run.
func (c Config) WikiConfig() wiki.Config {
	return wiki.Config{
		Language:  c.Language,
		UserAgent: c.UserAgent,
		Endpoint:  c.Endpoint,
		Format:    c.Format,
		Timeout:   c.Timeout,
	}
}
