package store

import (
	"fmt"

	"github.com/oxrcfg/oxrcfg/constant"
	"github.com/samber/lo"
)

// New builds the store named by backend. path is only used by the file backend.
func New(backend, path string) (Store, error) {
	switch backend {
	case constant.BackendRegistry:
		return newRegistry()
	case constant.BackendFile:
		return NewFile(path), nil
	case constant.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// Backends lists the accepted backend names.
func Backends() []string {
	return []string{constant.BackendRegistry, constant.BackendFile, constant.BackendMemory}
}

// Snapshot copies the tree rooted at path in src into a new Memory store, under the same path.
func Snapshot(src Store, path string) (*Memory, error) {
	dst := NewMemory()
	if err := copyTree(src, dst, path); err != nil {
		return nil, err
	}
	return dst, nil
}

func copyTree(src Store, dst *Memory, path string) error {
	k, err := src.Open(path, Read)
	if err != nil {
		return err
	}
	defer k.Close()

	values, err := Values(k)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Unknown tags have no canonical data and are left out.
	values = filterSupported(values)
	dst.Put(path, values...)

	children, err := SubKeys(k)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, child := range children {
		if err := copyTree(src, dst, Join(path, child)); err != nil {
			return err
		}
	}
	return nil
}

func filterSupported(values []Value) []Value {
	return lo.Filter(values, func(v Value, _ int) bool {
		_, err := Normalize(v.Type, v.Data)
		return err == nil
	})
}
