package datagen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/megal/resourced/internal/log"
	"github.com/megal/resourced/internal/paths"
)

// DirOptions control how DirOutput treats existing files.
type DirOptions struct {
	// Cache skips writing files whose content hash matches the previous run.
	Cache bool
	// PruneStale removes files the previous run wrote but this run did not.
	PruneStale bool
}

// DirOutput writes files under a pack root directory.
type DirOutput struct {
	root string
	opts DirOptions

	mu       sync.Mutex
	previous hashCache
	current  hashCache
}

var _ Output = (*DirOutput)(nil)

// NewDirOutput opens root for writing and loads its hash cache.
func NewDirOutput(root string, opts DirOptions) (*DirOutput, error) {
	previous, err := loadHashCache(root)
	if err != nil {
		return nil, err
	}
	return &DirOutput{
		root:     root,
		opts:     opts,
		previous: previous,
		current:  hashCache{},
	}, nil
}

// Root returns the pack root directory.
func (d *DirOutput) Root() string {
	return d.root
}

// Write stores data at path unless the cache shows the file is already current.
func (d *DirOutput) Write(ctx context.Context, path string, data []byte) (WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return Written, err
	}

	target, err := paths.OnDisk(d.root, path)
	if err != nil {
		return Written, err
	}
	h := contentHash(data)

	d.mu.Lock()
	prev, known := d.previous[path]
	d.current[path] = h
	d.mu.Unlock()

	// The file on disk must still hash to h; hand edits are overwritten.
	if d.opts.Cache && known && prev == h {
		if have, err := os.ReadFile(target); err == nil && contentHash(have) == h {
			return Unchanged, nil
		}
	}

	if err := writeFileAtomic(target, data); err != nil {
		return Written, fmt.Errorf("writing %s: %w", path, err)
	}
	return Written, nil
}

// Finish prunes stale files when enabled and saves the hash cache.
func (d *DirOutput) Finish(ctx context.Context) ([]string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var pruned []string
	if d.opts.PruneStale {
		for path := range d.previous {
			if _, ok := d.current[path]; ok {
				continue
			}
			if err := ctx.Err(); err != nil {
				return pruned, err
			}
			target, err := paths.OnDisk(d.root, path)
			if err != nil {
				log.Warn(log.CatDatagen, "Skipping stale entry outside root", "path", path)
				continue
			}
			err = os.Remove(target)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return pruned, fmt.Errorf("removing stale %s: %w", path, err)
			}
			pruned = append(pruned, path)
			log.Debug(log.CatDatagen, "Removed stale file", "path", path)
		}
		sort.Strings(pruned)
	} else {
		// Keep tracking files that were not pruned so a later run can still remove them.
		for path, h := range d.previous {
			if _, ok := d.current[path]; !ok {
				d.current[path] = h
			}
		}
	}

	if err := saveHashCache(d.root, d.current); err != nil {
		return pruned, err
	}
	d.previous = d.current
	d.current = hashCache{}
	return pruned, nil
}

// writeFileAtomic writes to a temp file in the target directory, then renames.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".resourced.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = os.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tempPath, target); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
