package datagen

import (
	"context"
	"sort"
	"sync"
)

// WriteResult reports what Write did with a file.
type WriteResult int

const (
	Written WriteResult = iota
	Unchanged
)

// Output receives generated files.
type Output interface {
	// Write stores data at the pack-relative path.
	Write(ctx context.Context, path string, data []byte) (WriteResult, error)
	// Finish is called once after the last Write and returns removed stale paths.
	Finish(ctx context.Context) ([]string, error)
}

// MemOutput collects files in memory.
type MemOutput struct {
	mu    sync.Mutex
	files map[string][]byte
}

var _ Output = (*MemOutput)(nil)

// NewMemOutput creates an empty in-memory output.
func NewMemOutput() *MemOutput {
	return &MemOutput{files: make(map[string][]byte)}
}

// Write stores a copy of data; a repeated path is overwritten.
func (m *MemOutput) Write(_ context.Context, path string, data []byte) (WriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = append([]byte(nil), data...)
	return Written, nil
}

// Finish does nothing for memory outputs.
func (m *MemOutput) Finish(context.Context) ([]string, error) {
	return nil, nil
}

// Get returns the file stored at path.
func (m *MemOutput) Get(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	return data, ok
}

// Paths returns stored paths sorted.
func (m *MemOutput) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of stored files.
func (m *MemOutput) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.files)
}
