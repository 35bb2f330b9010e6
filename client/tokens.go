package client

import "sync"

// Storage keys kept in sync with what the registration UI persists.
const (
	AccessTokenKey  = "labManagementAccessToken"
	RefreshTokenKey = "labManagementRefreshToken"
	OrganizationKey = "organizationId"
)

// TokenStore abstracts where credentials live. The default keeps them in
// memory; callers embedding the SDK can back it with a keychain or file.
type TokenStore interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

type MemoryTokenStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{values: make(map[string]string)}
}

func (s *MemoryTokenStore) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

func (s *MemoryTokenStore) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

func (s *MemoryTokenStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}
