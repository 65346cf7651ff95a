package defaults

import (
	"bytes"
	"strings"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore 内存存储实现，用于测试以及无需持久化的场景
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore 创建内存存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func memoryKey(namespace string, key Key) string {
	return namespace + "\x00" + string(key)
}

func (s *MemoryStore) get(namespace string, key Key) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[memoryKey(namespace, key)]
	if !ok {
		return nil, false
	}
	return bytes.Clone(v), true
}

func (s *MemoryStore) put(namespace string, key Key, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == nil {
		delete(s.values, memoryKey(namespace, key))
		return
	}
	s.values[memoryKey(namespace, key)] = bytes.Clone(value)
}

func (s *MemoryStore) Bool(key Key) (bool, error) {
	raw, ok := s.get(namespaceFlag, key)
	if !ok {
		return false, nil
	}
	return decodeBool(raw)
}

func (s *MemoryStore) SetBool(key Key, value bool) error {
	s.put(namespaceFlag, key, encodeBool(value))
	return nil
}

func (s *MemoryStore) Data(key Key) ([]byte, error) {
	raw, _ := s.get(namespaceData, key)
	return raw, nil
}

func (s *MemoryStore) SetData(key Key, data []byte) error {
	s.put(namespaceData, key, data)
	return nil
}

func (s *MemoryStore) Scoped(key ScopedKey, scope string) (any, error) {
	raw, ok := s.get(namespaceStatusItem, key.Key(scope))
	if !ok {
		return nil, nil
	}
	return decodeScoped(raw)
}

func (s *MemoryStore) SetScoped(key ScopedKey, scope string, value any) error {
	if value == nil {
		s.put(namespaceStatusItem, key.Key(scope), nil)
		return nil
	}
	raw, err := encodeScoped(value)
	if err != nil {
		return err
	}
	s.put(namespaceStatusItem, key.Key(scope), raw)
	return nil
}

// Snapshot 返回当前全部内容的拷贝，键为 "<namespace>/<key>"
func (s *MemoryStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[strings.Replace(k, "\x00", "/", 1)] = string(v)
	}
	return out
}
