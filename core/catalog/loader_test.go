package catalog

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"backpack-manager/core/steamapi/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store that can be told to fail.
type memStore struct {
	mu      sync.Mutex
	snap    *Snapshot
	saves   int
	loadErr error
	saveErr error
}

func (s *memStore) Load(context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.snap == nil {
		return nil, ErrNotCached
	}
	return s.snap, nil
}

func (s *memStore) Save(_ context.Context, snap *Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.snap = snap
	return nil
}

func (s *memStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}

func TestLoader_FetchesOnMissAndCaches(t *testing.T) {
	ctx := context.Background()
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(sampleItems(), nil).Once()
	store := &memStore{}

	loader := NewLoader(store, api, "en", 0, nil)

	schema, err := loader.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, schema.Len())
	assert.Equal(t, 1, store.saves)

	again, err := loader.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, schema, again)
	api.AssertExpectations(t)
}

func TestLoader_UsesStoreBeforeAPI(t *testing.T) {
	api := new(mocks.API)
	store := &memStore{snap: &Snapshot{Items: sampleItems(), FetchedAt: time.Now()}}

	schema, err := NewLoader(store, api, "en", time.Hour, nil).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{44, 264, 222}, schema.ReferenceSet())
	api.AssertNotCalled(t, "GetSchema", mock.Anything, mock.Anything)
}

func TestLoader_ExpiredSnapshotRefetches(t *testing.T) {
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(sampleItems()[:3], nil).Once()
	store := &memStore{snap: &Snapshot{Items: sampleItems(), FetchedAt: time.Now().Add(-48 * time.Hour)}}

	schema, err := NewLoader(store, api, "en", 24*time.Hour, nil).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, schema.Len())
	api.AssertExpectations(t)
}

func TestLoader_StoreFailuresDoNotBlock(t *testing.T) {
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(sampleItems(), nil)
	store := &memStore{loadErr: assert.AnError, saveErr: assert.AnError}

	schema, err := NewLoader(store, api, "en", 0, nil).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, schema.Len())
}

func TestLoader_FetchError(t *testing.T) {
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(nil, assert.AnError)

	_, err := NewLoader(&memStore{}, api, "en", 0, nil).Get(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLoader_ConcurrentGetsShareOneFetch(t *testing.T) {
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").
		After(50*time.Millisecond).
		Return(sampleItems(), nil).
		Once()

	loader := NewLoader(&memStore{}, api, "en", 0, nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := loader.Get(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	api.AssertNumberOfCalls(t, "GetSchema", 1)
}

func TestLoader_UpdateAndClear(t *testing.T) {
	ctx := context.Background()
	api := new(mocks.API)
	api.On("GetSchema", mock.Anything, "en").Return(sampleItems(), nil).Twice()
	store := NewFileStore(filepath.Join(t.TempDir(), "schema.json"))
	loader := NewLoader(store, api, "en", 0, nil)

	_, err := loader.Update(ctx)
	require.NoError(t, err)
	_, err = store.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, loader.Clear(ctx))
	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNotCached)

	_, err = loader.Get(ctx)
	require.NoError(t, err)
	api.AssertExpectations(t)
}
