package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/megal/resourced/internal/cachemanager"
	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/log"
)

// ErrUnknownNamespace is returned for identities outside the allow-list in strict mode.
var ErrUnknownNamespace = errors.New("unknown namespace")

// Resolver turns raw identity strings into identifiers.
// Parsed identifiers are cached; parse failures are not.
type Resolver struct {
	namespace string
	allowed   []string
	strict    bool
	ids       *cachemanager.ReadThroughCache[string, registry.Identifier]
}

// NewResolver creates a resolver for the mod namespace. The engine namespace and
// any extra namespaces are always allowed.
func NewResolver(namespace string, strict bool, extra ...string) *Resolver {
	allowed := append([]string{namespace, registry.DefaultNamespace}, extra...)
	cache := cachemanager.NewInMemoryCacheManager[string, registry.Identifier](
		"identifiers", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)

	return &Resolver{
		namespace: namespace,
		allowed:   allowed,
		strict:    strict,
		ids: cachemanager.NewReadThroughCache[string, registry.Identifier](cache, func(_ context.Context, raw string) (registry.Identifier, error) {
			return registry.ParseIdentifier(raw)
		}, cachemanager.DefaultExpiration, false),
	}
}

// Namespace returns the mod namespace.
func (r *Resolver) Namespace() string {
	return r.namespace
}

// Resolve parses raw and checks its namespace.
func (r *Resolver) Resolve(ctx context.Context, raw string) (registry.Identifier, error) {
	id, err := r.ids.Get(ctx, raw)
	if err != nil {
		return registry.Identifier{}, err
	}
	if err := r.check(id); err != nil {
		return registry.Identifier{}, err
	}
	return id, nil
}

// Item resolves a path in the mod namespace.
func (r *Resolver) Item(ctx context.Context, path string) (registry.Identifier, error) {
	return r.Resolve(ctx, r.namespace+":"+path)
}

// Stats reports identifier cache usage.
func (r *Resolver) Stats() cachemanager.Stats {
	return r.ids.Stats()
}

// Validate checks every entry item and every ingredient against the allow-list.
// In non-strict mode problems are logged and nil is returned.
func (r *Resolver) Validate(ctx context.Context, p registry.Provider) error {
	var errs []error
	for _, entry := range p.List() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.check(entry.Item()); err != nil {
			errs = append(errs, err)
		}
		for _, d := range entry.Recipes() {
			for _, ing := range d.Ingredients {
				if ing.IsTag() {
					if err := r.check(ing.Tag); err != nil {
						errs = append(errs, fmt.Errorf("%s %s: %w", entry.Item(), d.Kind, err))
					}
					continue
				}
				for _, item := range ing.Items {
					if err := r.check(item); err != nil {
						errs = append(errs, fmt.Errorf("%s %s: %w", entry.Item(), d.Kind, err))
					}
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (r *Resolver) check(id registry.Identifier) error {
	if slices.Contains(r.allowed, id.Namespace) {
		return nil
	}
	if !r.strict {
		log.Warn(log.CatRegistry, "Identity outside known namespaces", "id", id.String())
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownNamespace, id)
}
