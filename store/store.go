// Package store defines the narrow interface oxrcfg needs from a hierarchical
// key-value settings store, together with its backends.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oxrcfg/oxrcfg/constant"
)

var (
	ErrNotExist        = errors.New("key does not exist")
	ErrAccessDenied    = errors.New("access denied")
	ErrNoMoreItems     = errors.New("no more items")
	ErrUnsupportedType = errors.New("unsupported value type")
	ErrUnsupported     = errors.New("backend not supported on this platform")
)

// Access is the mode a key is opened with.
type Access int

const (
	Read Access = iota
	Write
)

func (a Access) String() string {
	if a == Write {
		return "write"
	}
	return "read"
}

// Store opens keys by backslash-separated path.
type Store interface {
	Open(path string, access Access) (Key, error)
}

// Key is an open handle. Enumeration is index based; past the last entry the
// backend returns ErrNoMoreItems and any other error is a real fault.
type Key interface {
	EnumKey(index int) (string, error)
	EnumValue(index int) (Value, error)
	SetValue(name string, t ValueType, data any) error
	Close() error
}

// SubKeys collects the names of every child of k.
func SubKeys(k Key) ([]string, error) {
	var names []string
	for i := 0; ; i++ {
		name, err := k.EnumKey(i)
		if errors.Is(err, ErrNoMoreItems) {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("enumerate key %d: %w", i, err)
		}
		names = append(names, name)
	}
}

// Values collects every value stored directly under k.
func Values(k Key) ([]Value, error) {
	var values []Value
	for i := 0; ; i++ {
		v, err := k.EnumValue(i)
		if errors.Is(err, ErrNoMoreItems) {
			return values, nil
		}
		if err != nil {
			return nil, fmt.Errorf("enumerate value %d: %w", i, err)
		}
		values = append(values, v)
	}
}

// Join builds a store path from its elements, skipping empty ones.
func Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		e = strings.Trim(e, constant.PathSeparator)
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, constant.PathSeparator)
}

// Split breaks a store path into its key names.
func Split(path string) []string {
	path = strings.Trim(path, constant.PathSeparator)
	if path == "" {
		return nil
	}
	return strings.Split(path, constant.PathSeparator)
}
