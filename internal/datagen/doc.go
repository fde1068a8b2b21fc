// Package datagen turns expanded records into the engine's JSON files.
//
// A Generator renders the language file, item models and recipes of a registry
// and hands them to an Output. DirOutput writes a pack directory, skipping files
// whose content hash is unchanged since the previous run and pruning files that
// are no longer produced. MemOutput keeps files in memory and backs Check, which
// reports how a pack on disk differs from what the registry would generate.
package datagen
