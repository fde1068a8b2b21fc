package datagen

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/paths"
)

// CacheName is the generator name of the hash cache file under .cache/.
const CacheName = "resourced"

const cacheHeader = "// resourced datagen"

// hashCache maps pack-relative paths to the xxhash64 of their last written content.
type hashCache map[string]uint64

func contentHash(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// loadHashCache reads the cache of root; a missing file is an empty cache.
func loadHashCache(root string) (hashCache, error) {
	file, err := cacheFile(root)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		return hashCache{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading hash cache: %w", err)
	}
	return parseHashCache(data)
}

func cacheFile(root string) (string, error) {
	return paths.OnDisk(root, paths.CacheFile(CacheName))
}

// parseHashCache reads lines of "<16 hex digits> <path>".
// Entries whose path leaves the pack root are dropped.
func parseHashCache(data []byte) (hashCache, error) {
	cache := hashCache{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		sum, path, ok := strings.Cut(text, " ")
		if !ok || path == "" {
			return nil, fmt.Errorf("hash cache line %d: missing path", line)
		}
		h, err := strconv.ParseUint(sum, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("hash cache line %d: %w", line, err)
		}
		if !filepath.IsLocal(filepath.FromSlash(path)) {
			log.Warn(log.CatDatagen, "Ignoring hash cache entry outside root", "line", line, "path", path)
			continue
		}
		cache[path] = h
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hash cache: %w", err)
	}
	return cache, nil
}

func (c hashCache) encode() []byte {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteString(cacheHeader)
	buf.WriteByte('\n')
	for _, k := range keys {
		fmt.Fprintf(&buf, "%016x %s\n", c[k], k)
	}
	return buf.Bytes()
}

func saveHashCache(root string, c hashCache) error {
	file, err := cacheFile(root)
	if err != nil {
		return err
	}
	return writeFileAtomic(file, c.encode())
}
