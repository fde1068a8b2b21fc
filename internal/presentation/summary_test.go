package presentation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/megal/resourced/internal/datagen"
)

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(datagen.Report{
		RunID:      "run-1",
		Names:      7,
		Models:     6,
		Recipes:    10,
		Written:    20,
		Unchanged:  3,
		Pruned:     []string{"a.json"},
		Collisions: []string{"b.json"},
		Duration:   42 * time.Millisecond,
	}, "generated")

	require.Contains(t, out, "resourced generate")
	require.Contains(t, out, "run-1")
	require.Contains(t, out, "generated")
	require.Contains(t, out, "7 names, 6 models, 10 recipes")
	require.Contains(t, out, "20")
	require.Contains(t, out, "unchanged")
	require.Contains(t, out, "b.json")
	require.Contains(t, out, "42ms")
}

func TestRenderSummary_OmitsEmptySections(t *testing.T) {
	out := RenderSummary(datagen.Report{RunID: "run-1"}, "generated")
	require.NotContains(t, out, "pruned")
	require.NotContains(t, out, "collisions")
}

func TestRenderDrifts(t *testing.T) {
	require.Contains(t, RenderDrifts(nil), "up to date")

	out := RenderDrifts([]datagen.Drift{{
		Path:  "assets/resourced/lang/en_us.json",
		Kind:  datagen.DriftChanged,
		Patch: " {\n-  \"a\": \"A\"\n+  \"a\": \"B\"\n",
	}})
	require.Contains(t, out, "assets/resourced/lang/en_us.json")
	require.Contains(t, out, "(changed)")
	require.Contains(t, out, `+  "a": "B"`)
	require.Contains(t, out, "1 file(s) out of date")
}
