//go:build !windows

package store

func newRegistry() (Store, error) {
	return nil, ErrUnsupported
}
