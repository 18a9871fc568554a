// Package mapper translates OpenXR Toolkit settings between the numeric codes
// kept in the settings store and the labels users read and type.
//
// Every call reads the store afresh; the mapper holds no state between calls.
package mapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oxrcfg/oxrcfg/domain"
	"github.com/oxrcfg/oxrcfg/log"
	"github.com/oxrcfg/oxrcfg/store"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// Mapper reads and writes modules below a root path of a store.
type Mapper struct {
	store store.Store
	root  string

	// Strict makes MapData fail on codes missing from their domain instead of passing them through.
	Strict bool
}

// New returns a mapper over the modules found under root.
func New(st store.Store, root string) *Mapper {
	return &Mapper{store: st, root: root}
}

// Root returns the store path holding the modules.
func (m *Mapper) Root() string {
	return m.root
}

func (m *Mapper) modulePath(module string) string {
	return store.Join(m.root, module)
}

// ListModules returns the module names in store order.
func (m *Mapper) ListModules() ([]string, error) {
	k, err := m.store.Open(m.root, store.Read)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", m.root, err)
	}
	defer k.Close()

	return store.SubKeys(k)
}

// ModuleConfig returns the raw settings of module.
func (m *Mapper) ModuleConfig(module string) ([]store.Value, error) {
	path := m.modulePath(module)

	k, err := m.store.Open(path, store.Read)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", path, err)
	}
	defer k.Close()

	values, err := store.Values(k)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", path, err)
	}

	log.WithFields(map[string]any{"module": module, "count": len(values)}).Debug("read module")
	return values, nil
}

// Options returns the domain constraining attr, matched case-insensitively.
func (m *Mapper) Options(attr string) (*domain.Domain, bool) {
	return domain.Lookup(attr)
}

// MapData replaces the numeric code of a mapped attribute with its label.
// Unmapped attributes come back unchanged. A code with no label is passed
// through with a warning, or rejected with ErrUnknownCode when Strict is set.
func (m *Mapper) MapData(v store.Value) (store.Value, error) {
	d, ok := domain.Lookup(v.Name)
	if !ok {
		return v, nil
	}

	code, err := toInteger(v.Data)
	if err == nil {
		if label, ok := d.Label(code); ok {
			v.Data = label
			return v, nil
		}
	}

	if m.Strict {
		return v, fmt.Errorf("%s=%v has no %s label: %w", v.Name, v.Data, d.Name, ErrUnknownCode)
	}

	log.Warnf("%s=%v has no %s label, keeping raw value", v.Name, v.Data, d.Name)
	return v, nil
}

// SetValue validates value against the attribute's domain and writes its code.
// Attributes without a domain are written verbatim.
func (m *Mapper) SetValue(module, attr, value string) error {
	var raw any = value

	if d, ok := domain.Lookup(attr); ok {
		code, ok := d.Code(value)
		if !ok {
			return &InvalidValueError{Attr: attr, Value: value, Valid: d.Labels()}
		}
		raw = code
	}

	return m.SetModuleValue(module, attr, raw)
}

// SetModuleValue writes a raw value, keeping the storage type the attribute already has.
// The attribute must already exist in the module; nothing is created.
func (m *Mapper) SetModuleValue(module, attr string, value any) error {
	current, err := m.ModuleConfig(module)
	if err != nil {
		return err
	}

	existing, found := lo.Find(current, func(v store.Value) bool {
		return strings.EqualFold(v.Name, attr)
	})
	if !found {
		return fmt.Errorf("can't find attr %q on module %q: %w", attr, module, ErrAttributeNotFound)
	}

	var data any
	switch {
	case existing.Type.IsNumeric():
		n, err := toInteger(value)
		if err != nil {
			return fmt.Errorf("attr %q: %w", attr, err)
		}
		data = n
	case existing.Type.IsText():
		data = toText(value)
	default:
		return fmt.Errorf("attr %q is %s: %w", attr, existing.Type, store.ErrUnsupportedType)
	}

	path := m.modulePath(module)
	k, err := m.store.Open(path, store.Write)
	if err != nil {
		return fmt.Errorf("can't open %s for writing: %w", path, err)
	}
	defer k.Close()

	if err := k.SetValue(existing.Name, existing.Type, data); err != nil {
		return err
	}

	log.WithFields(map[string]any{"module": module, "attr": existing.Name, "value": data}).Info("value written")
	return nil
}

// toText keeps json.Number digits as written.
func toText(value any) string {
	if n, ok := value.(json.Number); ok {
		return n.String()
	}
	return cast.ToString(value)
}

// toInteger accepts integers, whole floats (JSON numbers) and decimal strings.
func toInteger(value any) (int64, error) {
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", v, ErrNotInteger)
		}
		return n, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("%v: %w", v, ErrNotInteger)
		}
		return int64(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s: %w", v, ErrNotInteger)
		}
		return n, nil
	case bool:
		return 0, fmt.Errorf("%v: %w", v, ErrNotInteger)
	}

	n, err := cast.ToInt64E(value)
	if err != nil {
		return 0, errors.Join(ErrNotInteger, err)
	}
	return n, nil
}
