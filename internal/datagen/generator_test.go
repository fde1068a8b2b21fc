package datagen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/testutil"
	"github.com/megal/resourced/internal/tracing"
)

func newTestGenerator() *Generator {
	return NewGenerator(Options{Namespace: testutil.Namespace})
}

func TestGenerator_RunStandardData(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	mem := NewMemOutput()

	report, err := newTestGenerator().Run(context.Background(), reg, mem)
	require.NoError(t, err)

	require.Equal(t, 7, report.Names)
	require.Equal(t, 6, report.Models)
	require.Equal(t, 10, report.Recipes)
	// 1 lang + 4 plain models + 2 bows * 4 + 10 recipes
	require.Equal(t, 23, report.Files)
	require.Equal(t, 23, report.Written)
	require.Equal(t, 23, mem.Len())
	require.Empty(t, report.Collisions)
	require.Len(t, report.RunID, 36)
	require.Equal(t, testutil.Namespace, report.Namespace)

	_, ok := mem.Get("assets/resourced/lang/en_us.json")
	require.True(t, ok)
	_, ok = mem.Get("assets/resourced/models/item/steel_bow_pulling_2.json")
	require.True(t, ok)
	_, ok = mem.Get("data/resourced/recipes/unpack_copper_nugget.json")
	require.True(t, ok)
}

func TestGenerator_RunKeepsRunIDFromContext(t *testing.T) {
	reg := testutil.NewBuilder(t).WithCopperSet().Build()
	ctx := tracing.ContextWithRunID(context.Background(), "fixed-run")

	report, err := newTestGenerator().Run(ctx, reg, NewMemOutput())
	require.NoError(t, err)
	require.Equal(t, "fixed-run", report.RunID)
}

func TestGenerator_RunIsDeterministic(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	a, b := NewMemOutput(), NewMemOutput()

	_, err := newTestGenerator().Run(context.Background(), reg, a)
	require.NoError(t, err)
	_, err = newTestGenerator().Run(context.Background(), reg, b)
	require.NoError(t, err)

	require.Equal(t, a.Paths(), b.Paths())
	for _, p := range a.Paths() {
		da, _ := a.Get(p)
		db, _ := b.Get(p)
		require.Equal(t, string(da), string(db), p)
	}
}

func TestGenerator_DuplicateEntriesCollide(t *testing.T) {
	reg := testutil.NewBuilder(t).
		WithEntry("tin_sword", testutil.DefaultName(), testutil.Model(registry.ModelHandheld),
			testutil.Tool(registry.RecipeSword, "resourced:tin_ingot")).
		WithEntry("tin_sword", testutil.DefaultName(), testutil.Model(registry.ModelHandheld),
			testutil.Tool(registry.RecipeSword, "resourced:tin_ingot")).
		Build()

	mem := NewMemOutput()
	report, err := newTestGenerator().Run(context.Background(), reg, mem)
	require.NoError(t, err)

	require.Equal(t, 2, report.Names)
	require.Equal(t, 2, report.Models)
	require.Equal(t, 2, report.Recipes)
	require.Equal(t, []string{
		"assets/resourced/models/item/tin_sword.json",
		"data/resourced/recipes/tin_sword.json",
	}, report.Collisions)
	require.Equal(t, 3, mem.Len())
}

func TestGenerator_LabelSeparator(t *testing.T) {
	reg := testutil.NewBuilder(t).WithEntry("lead_ingot", testutil.DefaultName()).Build()
	mem := NewMemOutput()

	gen := NewGenerator(Options{Namespace: "resourced", Language: "en_gb", Expand: expand.Options{LabelSeparator: " "}})
	_, err := gen.Run(context.Background(), reg, mem)
	require.NoError(t, err)

	data, ok := mem.Get("assets/resourced/lang/en_gb.json")
	require.True(t, ok)
	require.JSONEq(t, `{"item.resourced.lead_ingot":"Lead Ingot"}`, string(data))
}

func TestGenerator_DirOutputSecondRunUnchanged(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	root := t.TempDir()
	gen := newTestGenerator()

	out, err := NewDirOutput(root, DirOptions{Cache: true, PruneStale: true})
	require.NoError(t, err)
	first, err := gen.Run(context.Background(), reg, out)
	require.NoError(t, err)
	require.Equal(t, 23, first.Written)

	out, err = NewDirOutput(root, DirOptions{Cache: true, PruneStale: true})
	require.NoError(t, err)
	second, err := gen.Run(context.Background(), reg, out)
	require.NoError(t, err)
	require.Equal(t, 0, second.Written)
	require.Equal(t, 23, second.Unchanged)
	require.Empty(t, second.Pruned)

	smaller := testutil.NewBuilder(t).WithCopperSet().Build()
	out, err = NewDirOutput(root, DirOptions{Cache: true, PruneStale: true})
	require.NoError(t, err)
	third, err := gen.Run(context.Background(), smaller, out)
	require.NoError(t, err)
	// bows: 8 models and 2 recipes disappear
	require.Len(t, third.Pruned, 10)
	require.Contains(t, third.Pruned, "data/resourced/recipes/steel_bow.json")
}

type failingOutput struct {
	*MemOutput
	failOn string
}

var errDiskFull = errors.New("disk full")

func (f failingOutput) Write(ctx context.Context, path string, data []byte) (WriteResult, error) {
	if path == f.failOn {
		return Written, errDiskFull
	}
	return f.MemOutput.Write(ctx, path, data)
}

func TestGenerator_OutputErrorStopsRun(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	out := failingOutput{MemOutput: NewMemOutput(), failOn: "assets/resourced/models/item/copper_ingot.json"}

	_, err := newTestGenerator().Run(context.Background(), reg, out)
	require.ErrorIs(t, err, errDiskFull)
	require.ErrorContains(t, err, "provider models")

	for _, p := range out.Paths() {
		require.NotContains(t, p, "data/", "recipes run after models")
	}
}

type mockOutput struct {
	mock.Mock
}

func (m *mockOutput) Write(ctx context.Context, path string, data []byte) (WriteResult, error) {
	args := m.Called(ctx, path, data)
	return args.Get(0).(WriteResult), args.Error(1)
}

func (m *mockOutput) Finish(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestGenerator_ReportCountsOutputResults(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()

	out := new(mockOutput)
	out.On("Write", mock.Anything, "assets/resourced/lang/en_us.json", mock.Anything).Return(Unchanged, nil).Once()
	out.On("Write", mock.Anything, mock.AnythingOfType("string"), mock.Anything).Return(Written, nil)
	out.On("Finish", mock.Anything).Return([]string{"data/resourced/recipes/old.json"}, nil).Once()

	report, err := newTestGenerator().Run(context.Background(), reg, out)
	require.NoError(t, err)
	require.Equal(t, 23, report.Files)
	require.Equal(t, 1, report.Unchanged)
	require.Equal(t, 22, report.Written)
	require.Equal(t, []string{"data/resourced/recipes/old.json"}, report.Pruned)
	out.AssertExpectations(t)
	out.AssertNumberOfCalls(t, "Write", 23)
}

func TestGenerator_FinishErrorFailsRun(t *testing.T) {
	reg := testutil.NewBuilder(t).WithStandardTestData().Build()

	out := new(mockOutput)
	out.On("Write", mock.Anything, mock.Anything, mock.Anything).Return(Written, nil)
	out.On("Finish", mock.Anything).Return(nil, errDiskFull)

	_, err := newTestGenerator().Run(context.Background(), reg, out)
	require.ErrorIs(t, err, errDiskFull)
	require.ErrorContains(t, err, "finishing output")
}

func TestGenerator_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	reg := testutil.NewBuilder(t).WithStandardTestData().Build()
	gen := NewGenerator(Options{Namespace: "resourced", Tracer: tp.Tracer("test")})

	report, err := gen.Run(context.Background(), reg, NewMemOutput())
	require.NoError(t, err)

	names := make([]string, 0)
	for _, s := range exporter.GetSpans() {
		names = append(names, s.Name)
		if s.Name == tracing.SpanGenerate {
			found := false
			for _, kv := range s.Attributes {
				if string(kv.Key) == tracing.AttrRunID {
					require.Equal(t, report.RunID, kv.Value.AsString())
					found = true
				}
			}
			require.True(t, found, "generate span carries the run id")
		}
	}
	require.Equal(t, []string{
		tracing.SpanExpand,
		tracing.SpanPrefixProvider + "names",
		tracing.SpanPrefixProvider + "models",
		tracing.SpanPrefixProvider + "recipes",
		tracing.SpanGenerate,
	}, names)
}
