package registry

import (
	"errors"
	"fmt"
	"strings"
)

// Identifier errors
var (
	ErrInvalidIdentifier = errors.New("invalid identifier format")
)

// DefaultNamespace is assumed when an identifier has no namespace part.
const DefaultNamespace = "minecraft"

// Identifier is an item identity in namespace:path form.
// The zero value is not a valid identity.
type Identifier struct {
	Namespace string
	Path      string
}

// NewIdentifier builds an identifier from its parts without validation.
func NewIdentifier(namespace, path string) Identifier {
	return Identifier{Namespace: namespace, Path: path}
}

// ParseIdentifier parses a colon-separated identifier into components.
// Format: {namespace}:{path}
// Example: resourced:copper_nugget
//
// A bare path ("stick") resolves to the minecraft namespace.
func ParseIdentifier(id string) (Identifier, error) {
	if id == "" {
		return Identifier{}, ErrInvalidIdentifier
	}

	namespace, path, found := strings.Cut(id, ":")
	if !found {
		namespace, path = DefaultNamespace, id
	}

	if namespace == "" || path == "" {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}
	if !validChars(namespace, "_.-") || !validChars(path, "_.-/") {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, id)
	}

	return Identifier{Namespace: namespace, Path: path}, nil
}

// MustParseIdentifier is ParseIdentifier for declaration tables; it panics on bad input.
func MustParseIdentifier(id string) Identifier {
	parsed, err := ParseIdentifier(id)
	if err != nil {
		panic(err)
	}
	return parsed
}

// IsZero reports whether the identifier is unset.
func (i Identifier) IsZero() bool {
	return i.Namespace == "" && i.Path == ""
}

// String renders the identifier as namespace:path.
func (i Identifier) String() string {
	return i.Namespace + ":" + i.Path
}

// WithPathPrefix returns a copy with prefix prepended to the path.
func (i Identifier) WithPathPrefix(prefix string) Identifier {
	return Identifier{Namespace: i.Namespace, Path: prefix + i.Path}
}

// WithPathSuffix returns a copy with suffix appended to the path.
func (i Identifier) WithPathSuffix(suffix string) Identifier {
	return Identifier{Namespace: i.Namespace, Path: i.Path + suffix}
}

func validChars(s, extra string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case strings.ContainsRune(extra, r):
		default:
			return false
		}
	}
	return true
}
