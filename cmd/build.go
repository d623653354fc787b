// Package cmd — build command.
// This is the main command that orchestrates the pipeline:
// seeds → resolve → extract → clean → records → JSONL.
//
// It handles configuration, seed selection, and the optional preview output.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/corpuspipe/config"
	"github.com/gaurav-prasanna/corpuspipe/core/output"
	"github.com/gaurav-prasanna/corpuspipe/core/pipeline"
	"github.com/gaurav-prasanna/corpuspipe/core/render"
	"github.com/gaurav-prasanna/corpuspipe/core/seeds"
	"github.com/gaurav-prasanna/corpuspipe/core/wiki"
	"github.com/gaurav-prasanna/corpuspipe/logger"
)

func newBuildCommand(v *viper.Viper) *cobra.Command {
	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch seed pages and write the paragraph corpus",
		Long: `Build resolves every seed title against Wikipedia, keeps the first lead
paragraphs of each page, drops paragraphs under 20 words, and writes one JSON
record per paragraph to the output file.

Examples:
  corpuspipe build
  corpuspipe build --out ./out/corpus.jsonl --top-n 5
  corpuspipe build --seeds seeds.yaml --workers 4 --preview pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd, v)
		},
	}

	config.RegisterFlags(buildCmd.Flags())
	return buildCmd
}

func runBuild(cmd *cobra.Command, v *viper.Viper) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	// --- Validate configuration before any network work ---
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	set, err := loadSeeds(cfg.Seeds)
	if err != nil {
		return err
	}

	preview, err := render.ForPreview(cfg.Preview)
	if err != nil {
		return err
	}
	var previewPath string
	if preview != nil {
		previewPath = output.SiblingPath(cfg.Output, preview.Extension())
		if previewPath == cfg.Output {
			return fmt.Errorf("preview path %s would overwrite the corpus", previewPath)
		}
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Debug("Starting build",
		logger.String("lang", cfg.Language),
		logger.String("format", string(cfg.Format)),
		logger.Int("top_n", cfg.TopN),
		logger.Int("workers", cfg.Workers),
		logger.Int("domains", set.Len()),
		logger.Int("titles", set.TitleCount()),
	)

	// Initialize pipeline components.
	client := wiki.New(cfg.WikiConfig())
	p := pipeline.New(client, pipeline.Options{
		TopN:    cfg.TopN,
		Workers: cfg.Workers,
		Logger:  log,
	})

	result, err := p.Run(cmd.Context(), set, cfg.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if preview != nil {
		data, err := preview.Render(result.Records)
		if err != nil {
			return fmt.Errorf("rendering preview: %w", err)
		}
		if err := output.New().Write(previewPath, data); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Preview: %s\n", previewPath)
	}

	renderSummary(out, result.Stats)
	fmt.Fprintf(out, "\n✓ Wrote %d paragraphs → %s\n", len(result.Records), cfg.Output)
	return nil
}

// loadSeeds returns the seed set from path, or the built-in set when path is empty.
func loadSeeds(path string) (seeds.Set, error) {
	if path == "" {
		return seeds.Default(), nil
	}
	return seeds.Load(path)
}
