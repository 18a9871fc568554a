package store

// rawReader has the shape of registry.Key.GetValue: with a nil or short buffer
// it reports the size the value needs.
type rawReader func(name string, buf []byte) (n int, valtype uint32, err error)

// readRaw returns the bytes of a value whatever its type tag.
func readRaw(get rawReader, name string) ([]byte, error) {
	n, _, err := get(name, nil)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, n)
	for {
		n, _, err = get(name, buf)
		if n > len(buf) {
			// the value grew between calls
			buf = make([]byte, n)
			continue
		}
		if err != nil {
			return nil, err
		}
		return buf[:n], nil
	}
}
