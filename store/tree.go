package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var errClosed = errors.New("key is closed")

// node is one key of an in-process tree. Names compare case-insensitively, as in the registry.
type node struct {
	name     string
	children []*node
	values   []Value
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if strings.EqualFold(c.name, name) {
			return c
		}
	}
	return nil
}

func (n *node) walk(path string) (*node, error) {
	current := n
	for _, name := range Split(path) {
		next := current.child(name)
		if next == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrNotExist)
		}
		current = next
	}
	return current, nil
}

func (n *node) create(path string) *node {
	current := n
	for _, name := range Split(path) {
		next := current.child(name)
		if next == nil {
			next = &node{name: name}
			current.children = append(current.children, next)
		}
		current = next
	}
	return current
}

func (n *node) set(v Value) {
	for i := range n.values {
		if strings.EqualFold(n.values[i].Name, v.Name) {
			n.values[i] = v
			return
		}
	}
	n.values = append(n.values, v)
}

// treeKey is a handle on a node. commit runs after every successful write.
type treeKey struct {
	mu     *sync.Mutex
	node   *node
	access Access
	commit func() error
	closed bool
}

func (k *treeKey) EnumKey(index int) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return "", errClosed
	}
	if index >= len(k.node.children) {
		return "", ErrNoMoreItems
	}
	return k.node.children[index].name, nil
}

func (k *treeKey) EnumValue(index int) (Value, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return Value{}, errClosed
	}
	if index >= len(k.node.values) {
		return Value{}, ErrNoMoreItems
	}
	return k.node.values[index], nil
}

func (k *treeKey) SetValue(name string, t ValueType, data any) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.closed {
		return errClosed
	}
	if k.access != Write {
		return fmt.Errorf("set %s: %w", name, ErrAccessDenied)
	}

	normalized, err := Normalize(t, data)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}

	k.node.set(Value{Name: name, Type: t, Data: normalized})
	return k.commit()
}

func (k *treeKey) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.closed = true
	return nil
}
