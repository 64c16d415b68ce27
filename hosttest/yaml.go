package hosttest

import (
	"gopkg.in/yaml.v3"
)

// LoadTrack builds a Track fixture from YAML.
func LoadTrack(data []byte) (*Track, error) {
	var t Track
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadItem builds an Item fixture from YAML.
func LoadItem(data []byte) (*Item, error) {
	var i Item
	if err := yaml.Unmarshal(data, &i); err != nil {
		return nil, err
	}
	return &i, nil
}
