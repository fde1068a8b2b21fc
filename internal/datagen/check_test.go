package datagen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/megal/resourced/internal/testutil"
)

func generateInto(t *testing.T, root string, gen *Generator) {
	t.Helper()
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	out, err := NewDirOutput(root, DirOptions{Cache: true, PruneStale: true})
	require.NoError(t, err)
	_, err = gen.Run(context.Background(), reg, out)
	require.NoError(t, err)
}

func TestCheck_CleanTree(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator()
	generateInto(t, root, gen)

	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	drifts, err := gen.Check(context.Background(), reg, root, CheckOptions{Stale: true})
	require.NoError(t, err)
	require.Empty(t, drifts)
}

func TestCheck_EmptyTreeReportsMissing(t *testing.T) {
	reg := testutil.NewBuilder(t).WithCopperSet().Build()

	drifts, err := newTestGenerator().Check(context.Background(), reg, t.TempDir(), CheckOptions{Stale: true})
	require.NoError(t, err)
	require.NotEmpty(t, drifts)
	for _, d := range drifts {
		require.Equal(t, DriftMissing, d.Kind, d.Path)
		require.Contains(t, d.Patch, "+{")
	}
}

func TestCheck_ChangedFile(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator()
	generateInto(t, root, gen)

	lang := filepath.Join(root, "assets", "resourced", "lang", "en_us.json")
	data, err := os.ReadFile(lang)
	require.NoError(t, err)
	edited := []byte(string(data[:len(data)-3]) + ",\n  \"item.resourced.extra\": \"Extra\"\n}\n")
	require.NoError(t, os.WriteFile(lang, edited, 0o644))

	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	drifts, err := gen.Check(context.Background(), reg, root, CheckOptions{Stale: true})
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	require.Equal(t, "assets/resourced/lang/en_us.json", drifts[0].Path)
	require.Equal(t, DriftChanged, drifts[0].Kind)
	require.Contains(t, drifts[0].Patch, `-  "item.resourced.extra": "Extra"`)
}

func TestCheck_StaleFile(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator()
	generateInto(t, root, gen)

	smaller := testutil.NewBuilder(t).WithCopperSet().Build()
	drifts, err := gen.Check(context.Background(), smaller, root, CheckOptions{Stale: true})
	require.NoError(t, err)

	stale := 0
	for _, d := range drifts {
		if d.Kind == DriftStale {
			stale++
			require.Contains(t, d.Patch, "-")
		}
	}
	require.Equal(t, 10, stale)
}

func TestCheck_StaleIgnoredWithoutPruning(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator()
	generateInto(t, root, gen)

	smaller := testutil.NewBuilder(t).WithCopperSet().Build()
	out, err := NewDirOutput(root, DirOptions{Cache: true})
	require.NoError(t, err)
	_, err = gen.Run(context.Background(), smaller, out)
	require.NoError(t, err)

	drifts, err := gen.Check(context.Background(), smaller, root, CheckOptions{})
	require.NoError(t, err)
	require.Empty(t, drifts)

	drifts, err = gen.Check(context.Background(), smaller, root, CheckOptions{Stale: true})
	require.NoError(t, err)
	require.Len(t, drifts, 10)
}

func TestCheck_AfterRegenerateOfEditedFile(t *testing.T) {
	root := t.TempDir()
	gen := newTestGenerator()
	generateInto(t, root, gen)

	lang := filepath.Join(root, "assets", "resourced", "lang", "en_us.json")
	require.NoError(t, os.WriteFile(lang, []byte("{}"), 0o644))
	generateInto(t, root, gen)

	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	drifts, err := gen.Check(context.Background(), reg, root, CheckOptions{Stale: true})
	require.NoError(t, err)
	require.Empty(t, drifts)
}

func TestLinePatch(t *testing.T) {
	old := "a\nb\nc\nd\ne\nf\ng\n"
	updated := "a\nb\nc\nD\ne\nf\ng\n"

	require.Equal(t, " b\n c\n-d\n+D\n e\n f\n", linePatch(old, updated))
	require.Equal(t, "", linePatch(old, old))
	require.Equal(t, "+x\n+y\n", linePatch("", "x\ny\n"))
}
