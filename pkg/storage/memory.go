package storage

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
)

// MemoryStorage keeps objects in a map. Used by tests of the layers above.
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	baseURL string
	puts    int
	// FailPut makes every Put fail with the given error.
	FailPut error
}

func NewMemoryStorage(baseURL string) *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte), baseURL: baseURL}
}

func (s *MemoryStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.puts++
	failErr := s.FailPut
	s.mu.Unlock()
	if failErr != nil {
		return "", failErr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return s.baseURL + "/" + key, nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *MemoryStorage) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return bytes.Clone(data), ok
}

func (s *MemoryStorage) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// PutCalls counts Put attempts, successful or not.
func (s *MemoryStorage) PutCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.puts
}
