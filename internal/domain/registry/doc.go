// Package registry implements the domain layer for resourced item declarations.
//
// This package follows Domain-Driven Design (DDD) principles:
//   - Contains only pure Go code with standard library imports (no external dependencies)
//   - Defines the entity type (Entry) and value objects (Identifier, Ingredient, Declaration)
//   - Has no knowledge of infrastructure concerns (file layout, JSON, configuration)
//
// # Core Types
//
// Entry associates one item identity with an optional derived display name, an
// optional model template and an ordered list of recipe declarations. Entries are
// immutable; use Builder for construction.
//
// Declaration is a tagged union: Kind selects the recipe template and fixes the
// ingredient arity, and the Cooking payload is present only for SMELTING, SMOKING
// and BLASTING.
//
// Identifier is the namespace:path item identity consumed from the game registry.
//
// # Registry Collection
//
// Registry is the append-only collection of entries. Registration is explicit:
// Builder.Build returns a value and the caller appends it with Add (or Declare).
// Iteration order is insertion order, which the expander relies on for
// reproducible output.
//
// Provider is the read-only interface that Registry implements, enabling dependency
// injection and mock substitution in tests.
package registry
