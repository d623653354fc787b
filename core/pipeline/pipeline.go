// Package pipeline drives a corpus build:
// seeds → resolve → top paragraphs → records → JSONL file.
//
// Titles are processed in seed order. With Workers > 1 lookups run
// concurrently, but each title writes into its own slot and slots are merged
// in seed order, so output order is the same as a sequential run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/corpuspipe/core"
	"github.com/gaurav-prasanna/corpuspipe/core/output"
	"github.com/gaurav-prasanna/corpuspipe/core/paragraph"
	"github.com/gaurav-prasanna/corpuspipe/core/record"
	"github.com/gaurav-prasanna/corpuspipe/core/render"
	"github.com/gaurav-prasanna/corpuspipe/core/resolve"
	"github.com/gaurav-prasanna/corpuspipe/core/seeds"
	"github.com/gaurav-prasanna/corpuspipe/logger"
)

// Options configures a Pipeline. Zero values select defaults.
type Options struct {
	TopN    int             // lead paragraphs per page, default paragraph.DefaultTopN
	Workers int             // concurrent lookups, default 1
	Logger  logger.Logger   // default no-op
	Builder *record.Builder // must be safe for concurrent use when Workers > 1
}

// DomainStats summarizes one domain of a run.
type DomainStats struct {
	Domain   string
	Titles   int
	Resolved int
	Missing  int
	Records  int
}

// Result is the outcome of Collect.
type Result struct {
	Records []core.Record
	Stats   []DomainStats
}

// Pipeline builds corpus records from a seed set.
type Pipeline struct {
	resolver *resolve.Resolver
	builder  *record.Builder
	renderer core.Renderer
	writer   *output.Writer
	log      logger.Logger
	topN     int
	workers  int
}

// New creates a Pipeline that looks pages up through source.
func New(source core.PageSource, opts Options) *Pipeline {
	if opts.TopN <= 0 {
		opts.TopN = paragraph.DefaultTopN
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Builder == nil {
		opts.Builder = record.New()
	}

	return &Pipeline{
		resolver: resolve.New(source),
		builder:  opts.Builder,
		renderer: render.NewJSONLRenderer(),
		writer:   output.New(),
		log:      opts.Logger,
		topN:     opts.TopN,
		workers:  opts.Workers,
	}
}

// titleResult is the outcome of one seed title.
type titleResult struct {
	records  []core.Record
	resolved bool
}

// Collect resolves every seed title and returns the accumulated records.
// Unresolved titles are logged and skipped; any other lookup error aborts.
func (p *Pipeline) Collect(ctx context.Context, set seeds.Set) (*Result, error) {
	result := &Result{}

	for _, d := range set.Domains() {
		p.log.Info("Processing domain", logger.String("domain", d.Name), logger.Int("titles", len(d.Titles)))

		slots, err := p.collectDomain(ctx, d)
		if err != nil {
			return nil, fmt.Errorf("domain %s: %w", d.Name, err)
		}

		stats := DomainStats{Domain: d.Name, Titles: len(d.Titles)}
		for _, slot := range slots {
			if !slot.resolved {
				stats.Missing++
				continue
			}
			stats.Resolved++
			stats.Records += len(slot.records)
			result.Records = append(result.Records, slot.records...)
		}
		result.Stats = append(result.Stats, stats)
	}

	return result, nil
}

// collectDomain processes the titles of one domain, returning one slot per title.
func (p *Pipeline) collectDomain(ctx context.Context, d seeds.Domain) ([]titleResult, error) {
	log := p.log.With(logger.String("domain", d.Name))
	slots := make([]titleResult, len(d.Titles))
	total := len(d.Titles)

	if p.workers == 1 {
		for i, title := range d.Titles {
			res, err := p.processTitle(ctx, log, d.Name, title)
			if err != nil {
				return nil, err
			}
			slots[i] = res
			log.Debug("Processed title", logger.Int("done", i+1), logger.Int("total", total))
		}
		return slots, nil
	}

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, title := range d.Titles {
		g.Go(func() error {
			res, err := p.processTitle(gctx, log, d.Name, title)
			if err != nil {
				return err
			}
			slots[i] = res
			log.Debug("Processed title", logger.Int("done", int(done.Add(1))), logger.Int("total", total))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

// processTitle resolves one title and builds its records.
// log carries the domain field.
func (p *Pipeline) processTitle(ctx context.Context, log logger.Logger, domain, title string) (titleResult, error) {
	page, err := p.resolver.Resolve(ctx, title)
	if errors.Is(err, core.ErrUnresolved) {
		log.Warn("Missing page", logger.String("title", title))
		return titleResult{}, nil
	}
	if err != nil {
		log.Debug("Lookup aborted", logger.String("title", title), logger.Error(err))
		return titleResult{}, fmt.Errorf("resolving %q: %w", title, err)
	}

	if page.Title != title {
		log.Debug("Resolved title",
			logger.String("seed", title),
			logger.String("title", page.Title),
		)
	}

	paras := paragraph.Top(page.Text, p.topN)
	return titleResult{
		records:  p.builder.Build(domain, *page, paras),
		resolved: true,
	}, nil
}

// Run collects records and writes them to outPath as JSONL, exactly once.
func (p *Pipeline) Run(ctx context.Context, set seeds.Set, outPath string) (*Result, error) {
	result, err := p.Collect(ctx, set)
	if err != nil {
		return nil, err
	}

	data, err := p.renderer.Render(result.Records)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := p.writer.Write(outPath, data); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	p.log.Info("Wrote corpus", logger.Int("records", len(result.Records)), logger.String("path", outPath))
	return result, nil
}
