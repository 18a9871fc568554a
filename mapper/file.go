package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/oxrcfg/oxrcfg/filesystem"
)

// SaveConfig writes cfg to path as indented JSON, replacing any existing file.
func SaveConfig(path string, cfg map[string]any) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return filesystem.WriteFile(path, append(data, '\n'))
}

// ReadFromFile reads a JSON object of settings from path.
// Numbers come back as json.Number so large integers keep every digit.
func ReadFromFile(path string) (map[string]any, error) {
	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var cfg map[string]any
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("can't load data from %s: %w: %w", path, ErrMalformedFile, err)
	}
	if decoder.More() {
		return nil, fmt.Errorf("can't load data from %s: %w: trailing data", path, ErrMalformedFile)
	}
	if cfg == nil {
		return nil, fmt.Errorf("can't load data from %s: %w: not an object", path, ErrMalformedFile)
	}

	return cfg, nil
}
