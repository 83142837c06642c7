package test

import (
	"cinelogBackend/storage"
	"encoding/json"
	"sync"
)

// mockStorageManager In-memory stand-in for the file-backed library store. Values
// round-trip through JSON so the behavior matches the on-disk implementation.
type mockStorageManager struct {
	favorites   []byte
	collections []byte
	mu          sync.RWMutex
}

func CreateMockStorageManager() storage.StorageManager {
	return &mockStorageManager{}
}

func (m *mockStorageManager) ReadFavorites(movieIds *[]int64) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.favorites == nil {
		return nil
	}

	return json.Unmarshal(m.favorites, movieIds)
}

func (m *mockStorageManager) WriteFavorites(movieIds []int64) error {
	data, err := json.Marshal(movieIds)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.favorites = data
	m.mu.Unlock()

	return nil
}

func (m *mockStorageManager) ReadCollections(collections *[]storage.StoredCollection) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.collections == nil {
		return nil
	}

	return json.Unmarshal(m.collections, collections)
}

func (m *mockStorageManager) WriteCollections(collections []storage.StoredCollection) error {
	data, err := json.Marshal(collections)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.collections = data
	m.mu.Unlock()

	return nil
}
