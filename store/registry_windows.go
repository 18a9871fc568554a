package store

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows/registry"
)

// Registry reads and writes HKEY_CURRENT_USER.
type Registry struct {
	root registry.Key
}

func newRegistry() (Store, error) {
	return &Registry{root: registry.CURRENT_USER}, nil
}

func (r *Registry) Open(path string, access Access) (Key, error) {
	mode := uint32(registry.QUERY_VALUE | registry.ENUMERATE_SUB_KEYS)
	if access == Write {
		mode |= registry.SET_VALUE
	}

	k, err := registry.OpenKey(r.root, path, mode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, translate(err))
	}
	return &registryKey{key: k}, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, registry.ErrNotExist):
		return ErrNotExist
	case errors.Is(err, syscall.ERROR_ACCESS_DENIED):
		return ErrAccessDenied
	default:
		return err
	}
}

// registryKey snapshots names on first enumeration; values are read on demand.
type registryKey struct {
	key      registry.Key
	subKeys  []string
	valueIDs []string
	listed   struct{ keys, values bool }
}

func (k *registryKey) EnumKey(index int) (string, error) {
	if !k.listed.keys {
		names, err := k.key.ReadSubKeyNames(0)
		if err != nil {
			return "", translate(err)
		}
		k.subKeys, k.listed.keys = names, true
	}

	if index >= len(k.subKeys) {
		return "", ErrNoMoreItems
	}
	return k.subKeys[index], nil
}

func (k *registryKey) EnumValue(index int) (Value, error) {
	if !k.listed.values {
		names, err := k.key.ReadValueNames(0)
		if err != nil {
			return Value{}, translate(err)
		}
		k.valueIDs, k.listed.values = names, true
	}

	if index >= len(k.valueIDs) {
		return Value{}, ErrNoMoreItems
	}
	return k.read(k.valueIDs[index])
}

func (k *registryKey) read(name string) (Value, error) {
	_, valtype, err := k.key.GetValue(name, nil)
	if err != nil {
		return Value{}, translate(err)
	}

	v := Value{Name: name, Type: ValueType(valtype)}
	switch v.Type {
	case TypeString, TypeExpandString:
		v.Data, _, err = k.key.GetStringValue(name)
	case TypeDWord, TypeQWord:
		var n uint64
		n, _, err = k.key.GetIntegerValue(name)
		v.Data = int64(n)
	case TypeBinary:
		v.Data, _, err = k.key.GetBinaryValue(name)
	case TypeMultiString:
		v.Data, _, err = k.key.GetStringsValue(name)
	default:
		// other tags are kept as raw bytes and stay read-only
		v.Data, err = readRaw(k.key.GetValue, name)
	}
	if err != nil {
		return Value{}, fmt.Errorf("read %s: %w", name, translate(err))
	}
	return v, nil
}

func (k *registryKey) SetValue(name string, t ValueType, data any) error {
	normalized, err := Normalize(t, data)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}

	switch t {
	case TypeString:
		err = k.key.SetStringValue(name, normalized.(string))
	case TypeExpandString:
		err = k.key.SetExpandStringValue(name, normalized.(string))
	case TypeDWord:
		err = k.key.SetDWordValue(name, uint32(normalized.(int64)))
	case TypeQWord:
		err = k.key.SetQWordValue(name, uint64(normalized.(int64)))
	case TypeBinary:
		err = k.key.SetBinaryValue(name, normalized.([]byte))
	case TypeMultiString:
		err = k.key.SetStringsValue(name, normalized.([]string))
	}
	if err != nil {
		return fmt.Errorf("set %s: %w", name, translate(err))
	}
	return nil
}

func (k *registryKey) Close() error {
	return k.key.Close()
}
