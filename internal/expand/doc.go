// Package expand turns registry contents into name, model and recipe records.
//
// Expansion is a pure mapping: one grouping pass partitions the entries by
// recipe kind and model kind, then each kind is rendered through a fixed
// template. Kinds are emitted in enum order and members in registry insertion
// order, so identical registries always yield identical record sets.
package expand
