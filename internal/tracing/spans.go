package tracing

// Span attribute keys of generation runs.
const (
	AttrRunID     = "run.id"
	AttrNamespace = "run.namespace"
	AttrOutputDir = "run.output_dir"

	AttrProvider = "provider.name"
	AttrRecords  = "provider.records"

	AttrFilesWritten   = "files.written"
	AttrFilesUnchanged = "files.unchanged"
	AttrFilesPruned    = "files.pruned"

	AttrDrifted = "check.drifted"
)

// Span names.
const (
	SpanGenerate = "datagen.generate"
	SpanCheck    = "datagen.check"
	SpanExpand   = "expand.registry"

	// SpanPrefixProvider is followed by the provider name.
	SpanPrefixProvider = "provider."
)

// Event names.
const (
	EventPathCollision = "path.collision"
	EventStaleRemoved  = "stale.removed"
)
