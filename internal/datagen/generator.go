package datagen

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/tracing"
)

// DefaultLanguage is the language file written when none is configured.
const DefaultLanguage = "en_us"

// Options configure a Generator.
type Options struct {
	// Namespace owns the language file and every recipe file.
	Namespace string
	Language  string
	Expand    expand.Options
	// Tracer is optional; nil disables spans.
	Tracer trace.Tracer
}

// Generator renders a registry into pack files.
type Generator struct {
	opts Options
}

// NewGenerator creates a generator, filling in the default language.
func NewGenerator(opts Options) *Generator {
	if opts.Language == "" {
		opts.Language = DefaultLanguage
	}
	return &Generator{opts: opts}
}

// Report summarizes one generation run.
type Report struct {
	RunID     string
	Namespace string
	Names     int
	Models    int
	Recipes   int
	Files     int
	Written   int
	Unchanged int
	// Pruned lists stale files removed by the output.
	Pruned []string
	// Collisions lists paths produced more than once; the later file wins.
	Collisions []string
	Duration   time.Duration
}

// provider renders one family of files.
type provider struct {
	name    string
	records int
	render  func() ([]File, error)
}

func (g *Generator) providers(records expand.Output) []provider {
	return []provider{
		{
			name:    "names",
			records: len(records.Names),
			render: func() ([]File, error) {
				f, err := LangFile(g.opts.Namespace, g.opts.Language, records.Names)
				if err != nil {
					return nil, err
				}
				return []File{f}, nil
			},
		},
		{
			name:    "models",
			records: len(records.Models),
			render: func() ([]File, error) {
				var files []File
				for _, rec := range records.Models {
					fs, err := ModelFiles(rec)
					if err != nil {
						return nil, fmt.Errorf("model %s: %w", rec.Item, err)
					}
					files = append(files, fs...)
				}
				return files, nil
			},
		},
		{
			name:    "recipes",
			records: len(records.Recipes),
			render: func() ([]File, error) {
				files := make([]File, 0, len(records.Recipes))
				for _, rec := range records.Recipes {
					f, err := RecipeFile(g.opts.Namespace, rec)
					if err != nil {
						return nil, err
					}
					files = append(files, f)
				}
				return files, nil
			},
		},
	}
}

// Run expands p and writes every file to out.
func (g *Generator) Run(ctx context.Context, p registry.Provider, out Output) (Report, error) {
	start := time.Now()
	runID := tracing.RunIDFromContext(ctx)
	if runID == "" {
		runID = tracing.NewRunID()
		ctx = tracing.ContextWithRunID(ctx, runID)
	}
	report := Report{RunID: runID, Namespace: g.opts.Namespace}

	log.Info(log.CatDatagen, "Generation started", "run", runID, "namespace", g.opts.Namespace, "entries", len(p.List()))

	err := tracing.WithSpan(ctx, g.opts.Tracer, tracing.SpanGenerate, func(ctx context.Context, span trace.Span) error {
		var records expand.Output
		_ = tracing.WithSpan(ctx, g.opts.Tracer, tracing.SpanExpand, func(context.Context, trace.Span) error {
			records = expand.Expand(p, g.opts.Expand)
			return nil
		})
		report.Names = len(records.Names)
		report.Models = len(records.Models)
		report.Recipes = len(records.Recipes)

		seen := make(map[string]string)
		for _, prov := range g.providers(records) {
			err := tracing.WithSpan(ctx, g.opts.Tracer, tracing.SpanPrefixProvider+prov.name, func(ctx context.Context, span trace.Span) error {
				files, err := prov.render()
				if err != nil {
					return err
				}
				for _, f := range files {
					if owner, dup := seen[f.Path]; dup {
						report.Collisions = append(report.Collisions, f.Path)
						span.AddEvent(tracing.EventPathCollision, trace.WithAttributes(attribute.String("path", f.Path)))
						log.Warn(log.CatDatagen, "Output path produced twice", "run", runID, "path", f.Path, "first", owner, "again", prov.name)
					}
					seen[f.Path] = prov.name

					res, err := out.Write(ctx, f.Path, f.Data)
					if err != nil {
						return err
					}
					report.Files++
					if res == Unchanged {
						report.Unchanged++
					} else {
						report.Written++
					}
				}
				return nil
			}, attribute.String(tracing.AttrProvider, prov.name), attribute.Int(tracing.AttrRecords, prov.records))
			if err != nil {
				return fmt.Errorf("provider %s: %w", prov.name, err)
			}
		}

		pruned, err := out.Finish(ctx)
		report.Pruned = pruned
		for _, path := range pruned {
			span.AddEvent(tracing.EventStaleRemoved, trace.WithAttributes(attribute.String("path", path)))
		}
		span.SetAttributes(
			attribute.Int(tracing.AttrFilesWritten, report.Written),
			attribute.Int(tracing.AttrFilesUnchanged, report.Unchanged),
			attribute.Int(tracing.AttrFilesPruned, len(pruned)),
		)
		if err != nil {
			return fmt.Errorf("finishing output: %w", err)
		}
		return nil
	}, attribute.String(tracing.AttrNamespace, g.opts.Namespace))

	report.Duration = time.Since(start)
	if err != nil {
		log.ErrorErr(log.CatDatagen, "Generation failed", err, "run", runID)
		return report, err
	}

	log.Info(log.CatDatagen, "Generation finished", "run", runID,
		"files", report.Files, "written", report.Written, "unchanged", report.Unchanged,
		"pruned", len(report.Pruned), "duration", report.Duration)
	return report, nil
}
