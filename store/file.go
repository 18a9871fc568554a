package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/metafates/gache"
	"github.com/oxrcfg/oxrcfg/filesystem"
)

// File keeps the whole tree in a JSON document on the application filesystem.
// Every Open reads the document again and every write saves it, so no state
// survives between calls.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a store backed by the document at path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the document location.
func (f *File) Path() string {
	return f.path
}

func (f *File) options() *gache.Options {
	return &gache.Options{
		Path:       f.path,
		FileSystem: &filesystem.GacheFs{},
	}
}

func (f *File) load() (*node, error) {
	exists, err := filesystem.API().Exists(f.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", f.path, ErrNotExist)
	}

	doc, _, err := gache.New[*document](f.options()).Get()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	if doc == nil {
		return &node{}, nil
	}

	return doc.Root.toNode()
}

func (f *File) save(root *node) error {
	return gache.New[*document](f.options()).Set(&document{Root: fromNode(root)})
}

func (f *File) Open(path string, access Access) (Key, error) {
	root, err := f.load()
	if err != nil {
		return nil, err
	}

	n, err := root.walk(path)
	if err != nil {
		return nil, err
	}

	return &treeKey{
		mu:     &f.mu,
		node:   n,
		access: access,
		commit: func() error { return f.save(root) },
	}, nil
}

// Import replaces the document with the content of m.
func (f *File) Import(m *Memory) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return f.save(m.root)
}

type document struct {
	Root *documentKey `json:"root"`
}

type documentKey struct {
	Name   string          `json:"name,omitempty"`
	Values []documentValue `json:"values,omitempty"`
	Keys   []*documentKey  `json:"keys,omitempty"`
}

type documentValue struct {
	Name string          `json:"name"`
	Type ValueType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

func fromNode(n *node) *documentKey {
	k := &documentKey{Name: n.name}
	for _, v := range n.values {
		// Normalized data always marshals.
		data, _ := json.Marshal(v.Data)
		k.Values = append(k.Values, documentValue{Name: v.Name, Type: v.Type, Data: data})
	}
	for _, c := range n.children {
		k.Keys = append(k.Keys, fromNode(c))
	}
	return k
}

func (k *documentKey) toNode() (*node, error) {
	if k == nil {
		return &node{}, nil
	}

	n := &node{name: k.Name}
	for _, dv := range k.Values {
		v, err := dv.decode()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k.Name, err)
		}
		n.values = append(n.values, v)
	}
	for _, c := range k.Keys {
		child, err := c.toNode()
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}

func (dv documentValue) decode() (Value, error) {
	var (
		data any
		err  error
	)

	switch {
	case dv.Type.IsText():
		var s string
		err = json.Unmarshal(dv.Data, &s)
		data = s
	case dv.Type.IsNumeric():
		var i int64
		err = json.Unmarshal(dv.Data, &i)
		data = i
	case dv.Type == TypeBinary:
		var b []byte
		err = json.Unmarshal(dv.Data, &b)
		data = b
	case dv.Type == TypeMultiString:
		var s []string
		err = json.Unmarshal(dv.Data, &s)
		data = s
	default:
		err = ErrUnsupportedType
	}
	if err != nil {
		return Value{}, fmt.Errorf("value %s: %w", dv.Name, err)
	}

	return Value{Name: dv.Name, Type: dv.Type, Data: data}, nil
}
