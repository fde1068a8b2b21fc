// Package catalog declares the mod's resource items.
//
// The table in Materials is turned into registry entries by Declare. Every raw
// identity goes through a Resolver, which caches parsed identifiers and checks
// namespaces against an allow-list.
package catalog
