package datagen

import (
	"github.com/megal/resourced/internal/domain/registry"
	"github.com/megal/resourced/internal/expand"
	"github.com/megal/resourced/internal/paths"
)

// TranslationKey returns the language key of an item.
//   - resourced:copper_nugget -> "item.resourced.copper_nugget"
func TranslationKey(item registry.Identifier) string {
	return "item." + item.Namespace + "." + item.Path
}

// LangFile renders the language file of namespace. Keys are sorted; for a
// repeated item the later label wins.
func LangFile(namespace, lang string, names []expand.NameRecord) (File, error) {
	entries := make(map[string]string, len(names))
	for _, n := range names {
		entries[TranslationKey(n.Item)] = n.Label
	}

	data, err := encodeJSON(entries)
	if err != nil {
		return File{}, err
	}
	return File{Path: paths.LangFile(namespace, lang), Data: data}, nil
}
