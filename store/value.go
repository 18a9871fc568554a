package store

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ValueType is the storage type tag of a value. Numbering follows the Windows registry.
type ValueType uint32

const (
	TypeNone         ValueType = 0
	TypeString       ValueType = 1
	TypeExpandString ValueType = 2
	TypeBinary       ValueType = 3
	TypeDWord        ValueType = 4
	TypeMultiString  ValueType = 7
	TypeQWord        ValueType = 11
)

var typeNames = map[ValueType]string{
	TypeNone:         "REG_NONE",
	TypeString:       "REG_SZ",
	TypeExpandString: "REG_EXPAND_SZ",
	TypeBinary:       "REG_BINARY",
	TypeDWord:        "REG_DWORD",
	TypeMultiString:  "REG_MULTI_SZ",
	TypeQWord:        "REG_QWORD",
}

func (t ValueType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("REG_UNKNOWN(%d)", uint32(t))
}

// IsText reports whether values of this type hold a single string.
func (t ValueType) IsText() bool {
	return t == TypeString || t == TypeExpandString
}

// IsNumeric reports whether values of this type hold an integer.
func (t ValueType) IsNumeric() bool {
	return t == TypeDWord || t == TypeQWord
}

func (t ValueType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *ValueType) UnmarshalText(text []byte) error {
	for vt, name := range typeNames {
		if strings.EqualFold(name, string(text)) {
			*t = vt
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedType, text)
}

// Value is a single stored setting: name, raw data and its type tag.
// Data is a string for text types, an int64 for numeric types,
// []byte for binary and []string for multi-string.
type Value struct {
	Name string    `json:"name"`
	Type ValueType `json:"type"`
	Data any       `json:"data"`
}

// ErrOutOfRange is returned when an integer does not fit its type tag.
var ErrOutOfRange = errors.New("value out of range")

// Normalize converts data into the canonical Go representation for t.
func Normalize(t ValueType, data any) (any, error) {
	switch {
	case t.IsText():
		s, ok := data.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs a string, got %T", ErrUnsupportedType, t, data)
		}
		return s, nil
	case t.IsNumeric():
		n, err := integer(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t, err)
		}
		if n < 0 || (t == TypeDWord && n > math.MaxUint32) {
			return nil, fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, n, t)
		}
		return n, nil
	case t == TypeBinary:
		b, ok := data.([]byte)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs bytes, got %T", ErrUnsupportedType, t, data)
		}
		return b, nil
	case t == TypeMultiString:
		s, ok := data.([]string)
		if !ok {
			return nil, fmt.Errorf("%w: %s needs strings, got %T", ErrUnsupportedType, t, data)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
}

func integer(data any) (int64, error) {
	switch n := data.(type) {
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, ErrOutOfRange
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: integer expected, got %T", ErrUnsupportedType, data)
	}
}
