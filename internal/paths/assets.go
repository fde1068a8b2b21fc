// Package paths provides the asset and data file layout of a generated pack.
package paths

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/megal/resourced/internal/domain/registry"
)

// ErrNonLocalPath is returned for pack paths that would leave the pack root.
var ErrNonLocalPath = errors.New("path escapes pack root")

// Top-level roots of a generated pack.
const (
	AssetsRoot = "assets"
	DataRoot   = "data"
	CacheDir   = ".cache"
)

// LangFile returns the language file for namespace and language code.
//   - ("resourced", "en_us") -> "assets/resourced/lang/en_us.json"
func LangFile(namespace, lang string) string {
	return path.Join(AssetsRoot, namespace, "lang", lang+".json")
}

// ItemModel returns the model file for a model identifier of the form ns:item/x.
//   - "resourced:item/copper_bow" -> "assets/resourced/models/item/copper_bow.json"
func ItemModel(model registry.Identifier) string {
	return path.Join(AssetsRoot, model.Namespace, "models", model.Path+".json")
}

// Recipe returns the recipe file for a recipe identifier.
//   - "resourced:pack_copper_ingot" -> "data/resourced/recipes/pack_copper_ingot.json"
func Recipe(name registry.Identifier) string {
	return path.Join(DataRoot, name.Namespace, "recipes", name.Path+".json")
}

// CacheFile returns the hash cache location for a generator name.
func CacheFile(generator string) string {
	return path.Join(CacheDir, generator)
}

// OnDisk converts a slash-separated pack path to a filesystem path under root.
// Absolute paths and paths with ".." that climb out of root are rejected.
func OnDisk(root, rel string) (string, error) {
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %q", ErrNonLocalPath, rel)
	}
	return filepath.Join(root, local), nil
}

// ResolveOutputDir normalizes the configured output directory.
//   - "" -> "./generated"
//   - "~/x" -> "$HOME/x"
func ResolveOutputDir(dir, home string) string {
	if dir == "" {
		return filepath.Clean("generated")
	}
	if home != "" && (dir == "~" || strings.HasPrefix(dir, "~/")) {
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return filepath.Clean(dir)
}
