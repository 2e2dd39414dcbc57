package service_test

import (
	"errors"
	"testing"

	"go-postgres-optics/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStockSource struct {
	frames      []string
	types       map[string][]string
	frameCalls  int
	typeCalls   map[string]int
	failQueries bool
}

func newFakeSource() *fakeStockSource {
	return &fakeStockSource{
		frames: []string{"A1", "B2"},
		types: map[string][]string{
			"A1": {"Metal", "Plastic"},
			"B2": {"Rimless"},
		},
		typeCalls: make(map[string]int),
	}
}

func (s *fakeStockSource) DistinctFrames() ([]string, error) {
	s.frameCalls++
	if s.failQueries {
		return nil, errors.New("query failed")
	}
	return s.frames, nil
}

func (s *fakeStockSource) DistinctTypes(frame string) ([]string, error) {
	s.typeCalls[frame]++
	if s.failQueries {
		return nil, errors.New("query failed")
	}
	return s.types[frame], nil
}

func TestCatalogCachesFrames(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	cat := service.NewCatalog(src)

	frames, err := cat.ListFrames()
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, frames)

	_, err = cat.ListFrames()
	require.NoError(t, err)
	assert.Equal(t, 1, src.frameCalls)
}

func TestCatalogCachesTypesPerFrame(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	cat := service.NewCatalog(src)

	types, err := cat.ListTypes("A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metal", "Plastic"}, types)

	// Second request for the same frame hits the cache; a different frame
	// triggers its own lazy load.
	_, err = cat.ListTypes("A1")
	require.NoError(t, err)
	_, err = cat.ListTypes("B2")
	require.NoError(t, err)

	assert.Equal(t, 1, src.typeCalls["A1"])
	assert.Equal(t, 1, src.typeCalls["B2"])
}

func TestCatalogInvalidateForcesRequery(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	cat := service.NewCatalog(src)

	_, err := cat.ListFrames()
	require.NoError(t, err)
	_, err = cat.ListTypes("A1")
	require.NoError(t, err)

	// Simulate a stock mutation for frame A1 followed by invalidation.
	src.types["A1"] = []string{"Metal"}
	cat.Invalidate()

	types, err := cat.ListTypes("A1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Metal"}, types)
	assert.Equal(t, 2, src.typeCalls["A1"])

	_, err = cat.ListFrames()
	require.NoError(t, err)
	assert.Equal(t, 2, src.frameCalls)
}

func TestCatalogPropagatesSourceErrors(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.failQueries = true
	cat := service.NewCatalog(src)

	_, err := cat.ListFrames()
	assert.Error(t, err)
	_, err = cat.ListTypes("A1")
	assert.Error(t, err)

	// A failed load must not be cached as a result.
	src.failQueries = false
	frames, err := cat.ListFrames()
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, frames)
}

func TestCatalogEmptyResultIsCached(t *testing.T) {
	t.Parallel()

	src := newFakeSource()
	src.frames = nil
	cat := service.NewCatalog(src)

	frames, err := cat.ListFrames()
	require.NoError(t, err)
	assert.Empty(t, frames)

	_, err = cat.ListFrames()
	require.NoError(t, err)
	assert.Equal(t, 1, src.frameCalls)
}
