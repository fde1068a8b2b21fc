package cachemanager

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var errUnresolvable = errors.New("unresolvable")

// countingLoader splits "ns:path" keys and records how often it ran.
type countingLoader struct {
	calls int
}

func (l *countingLoader) load(_ context.Context, key itemKey) (resolvedItem, error) {
	l.calls++
	ns, path, ok := strings.Cut(string(key), ":")
	if !ok {
		return resolvedItem{}, errUnresolvable
	}
	return resolvedItem{Namespace: ns, Path: path}, nil
}

func TestReadThroughCache_Get_LoadsOnceThenHits(t *testing.T) {
	loader := &countingLoader{}
	rt := NewReadThroughCache[itemKey, resolvedItem](newItemCache(), loader.load, time.Minute, false)

	for range 3 {
		got, err := rt.Get(context.Background(), "resourced:copper_ingot")
		require.NoError(t, err)
		require.Equal(t, resolvedItem{Namespace: "resourced", Path: "copper_ingot"}, got)
	}

	require.Equal(t, 1, loader.calls)
	require.Equal(t, int64(2), rt.Stats().Hits)
	require.Equal(t, int64(1), rt.Stats().Misses)
}

func TestReadThroughCache_Get_WithCacheDisabled(t *testing.T) {
	loader := &countingLoader{}
	rt := NewReadThroughCache[itemKey, resolvedItem](newItemCache(), loader.load, time.Minute, true)

	for range 3 {
		_, err := rt.Get(context.Background(), "resourced:copper_ingot")
		require.NoError(t, err)
	}

	require.Equal(t, 3, loader.calls)
	require.Equal(t, 0, rt.Stats().Items)
}

func TestReadThroughCache_Get_ErrorIsNotCached(t *testing.T) {
	loader := &countingLoader{}
	rt := NewReadThroughCache[itemKey, resolvedItem](newItemCache(), loader.load, time.Minute, false)

	_, err := rt.Get(context.Background(), "no-colon")
	require.ErrorIs(t, err, errUnresolvable)
	_, err = rt.Get(context.Background(), "no-colon")
	require.ErrorIs(t, err, errUnresolvable)

	require.Equal(t, 2, loader.calls)
	require.Equal(t, 0, rt.Stats().Items)
}

func TestReadThroughCache_GetWithRefresh(t *testing.T) {
	loader := &countingLoader{}
	rt := NewReadThroughCache[itemKey, resolvedItem](newItemCache(), loader.load, time.Minute, false)

	got, err := rt.GetWithRefresh(context.Background(), "minecraft:stick")
	require.NoError(t, err)
	require.Equal(t, "stick", got.Path)

	got, err = rt.GetWithRefresh(context.Background(), "minecraft:stick")
	require.NoError(t, err)
	require.Equal(t, "minecraft", got.Namespace)
	require.Equal(t, 1, loader.calls)
}

func TestReadThroughCache_GetWithRefresh_WithCacheDisabled(t *testing.T) {
	loader := &countingLoader{}
	rt := NewReadThroughCache[itemKey, resolvedItem](newItemCache(), loader.load, time.Minute, true)

	_, err := rt.GetWithRefresh(context.Background(), "minecraft:stick")
	require.NoError(t, err)
	_, err = rt.GetWithRefresh(context.Background(), "minecraft:stick")
	require.NoError(t, err)
	require.Equal(t, 2, loader.calls)
}
