package datagen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/paths"
	"github.com/megal/resourced/internal/tracing"
)

// DriftKind classifies a difference between generated and on-disk files.
type DriftKind string

const (
	DriftChanged DriftKind = "changed"
	DriftMissing DriftKind = "missing"
	// DriftStale is a file a previous run wrote that would no longer be generated.
	DriftStale DriftKind = "stale"
)

// Drift is one file whose on-disk content differs from the generated content.
type Drift struct {
	Path string
	Kind DriftKind
	// Patch shows the change that generation would make, in line form.
	Patch string
}

// patchContext is the number of unchanged lines kept around each change.
const patchContext = 2

// CheckOptions control which differences Check reports.
type CheckOptions struct {
	// Stale reports files the previous run wrote that would no longer be generated.
	// Set it to match DirOptions.PruneStale.
	Stale bool
}

// Check generates into memory and compares the result with the pack at root.
// Drifts are sorted by path.
func (g *Generator) Check(ctx context.Context, p registry.Provider, root string, opts CheckOptions) ([]Drift, error) {
	var drifts []Drift

	err := tracing.WithSpan(ctx, g.opts.Tracer, tracing.SpanCheck, func(ctx context.Context, span trace.Span) error {
		mem := NewMemOutput()
		if _, err := g.Run(ctx, p, mem); err != nil {
			return err
		}

		for _, path := range mem.Paths() {
			want, _ := mem.Get(path)
			target, err := paths.OnDisk(root, path)
			if err != nil {
				return err
			}
			have, err := os.ReadFile(target)
			switch {
			case errors.Is(err, os.ErrNotExist):
				drifts = append(drifts, Drift{Path: path, Kind: DriftMissing, Patch: linePatch("", string(want))})
			case err != nil:
				return fmt.Errorf("reading %s: %w", path, err)
			case !bytes.Equal(have, want):
				drifts = append(drifts, Drift{Path: path, Kind: DriftChanged, Patch: linePatch(string(have), string(want))})
			}
		}

		if opts.Stale {
			stale, err := staleDrifts(root, mem)
			if err != nil {
				return err
			}
			drifts = append(drifts, stale...)
		}

		sort.Slice(drifts, func(i, j int) bool { return drifts[i].Path < drifts[j].Path })
		span.SetAttributes(attribute.Int(tracing.AttrDrifted, len(drifts)))
		return nil
	}, attribute.String(tracing.AttrOutputDir, root))
	if err != nil {
		return nil, err
	}

	log.Info(log.CatCheck, "Check finished", "root", root, "drifted", len(drifts))
	return drifts, nil
}

// staleDrifts lists files in the previous run's hash cache that mem no longer produces.
func staleDrifts(root string, mem *MemOutput) ([]Drift, error) {
	previous, err := loadHashCache(root)
	if err != nil {
		return nil, err
	}

	var drifts []Drift
	for path := range previous {
		if _, ok := mem.Get(path); ok {
			continue
		}
		target, err := paths.OnDisk(root, path)
		if err != nil {
			continue
		}
		have, err := os.ReadFile(target)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		drifts = append(drifts, Drift{Path: path, Kind: DriftStale, Patch: linePatch(string(have), "")})
	}
	return drifts, nil
}

// linePatch renders a line diff with "-", "+" and " " prefixes. Long unchanged
// runs are cut to patchContext lines around each change.
func linePatch(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf strings.Builder
	for i, d := range diffs {
		chunk := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeLines(&buf, "-", chunk)
		case diffmatchpatch.DiffInsert:
			writeLines(&buf, "+", chunk)
		case diffmatchpatch.DiffEqual:
			first, last := i == 0, i == len(diffs)-1
			switch {
			case first && last:
				// identical texts
			case first:
				writeLines(&buf, " ", tail(chunk, patchContext))
			case last:
				writeLines(&buf, " ", head(chunk, patchContext))
			case len(chunk) > 2*patchContext:
				writeLines(&buf, " ", head(chunk, patchContext))
				buf.WriteString("@@\n")
				writeLines(&buf, " ", tail(chunk, patchContext))
			default:
				writeLines(&buf, " ", chunk)
			}
		}
	}
	return buf.String()
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func writeLines(buf *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		buf.WriteString(prefix)
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

func tail(lines []string, n int) []string {
	if len(lines) > n {
		return lines[len(lines)-n:]
	}
	return lines
}
