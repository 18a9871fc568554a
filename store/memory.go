package store

import (
	"fmt"
	"strings"
	"sync"
)

// Memory is an in-process store. It backs tests and the "memory" backend.
type Memory struct {
	mu     sync.Mutex
	root   *node
	denied map[string]bool
	writes int
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{root: &node{}, denied: make(map[string]bool)}
}

// Put creates the key at path, with any missing parents, and stores values under it.
// It panics on values that do not match their type tag.
func (m *Memory) Put(path string, values ...Value) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.root.create(path)
	for _, v := range values {
		data, err := Normalize(v.Type, v.Data)
		if err != nil {
			panic(fmt.Sprintf("put %s\\%s: %v", path, v.Name, err))
		}
		v.Data = data
		n.set(v)
	}
	return m
}

// Deny makes opening path for writing fail with ErrAccessDenied.
func (m *Memory) Deny(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.denied[strings.ToLower(Join(path))] = true
}

// Writes counts successful SetValue calls.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.writes
}

func (m *Memory) Open(path string, access Access) (Key, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n, err := m.root.walk(path)
	if err != nil {
		return nil, err
	}
	if access == Write && m.denied[strings.ToLower(Join(path))] {
		return nil, fmt.Errorf("%s: %w", path, ErrAccessDenied)
	}

	return &treeKey{
		mu:     &m.mu,
		node:   n,
		access: access,
		commit: func() error {
			m.writes++
			return nil
		},
	}, nil
}
