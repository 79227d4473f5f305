// Package config loads per-mode engine options from a YAML file.
//
// The file holds optional top-level "mode" and "seed" keys and one mapping per
// mode name whose scalar values are passed verbatim to that mode's FromMap:
//
//	mode: terrain
//	seed: 42
//	terrain:
//	  speed: 0.08
//	  fog_color: "#c0d8ff"
//	morph:
//	  easing: smooth
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable consulted when no path is given.
const EnvVar = "TERRAMORPH_CONFIG"

// Document is a parsed configuration file.
type Document struct {
	Mode    string
	Seed    int64
	HasSeed bool
	Options map[string]map[string]string
}

// Load reads path, or the file named by EnvVar when path is empty. With
// neither set it returns an empty document.
func Load(path string) (Document, error) {
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return Document{Options: map[string]map[string]string{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read config: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("config %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a YAML document.
func Parse(data []byte) (Document, error) {
	doc := Document{Options: map[string]map[string]string{}}
	var root map[string]yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Document{}, err
	}
	for key, node := range root {
		switch key {
		case "mode":
			if node.Kind != yaml.ScalarNode {
				return Document{}, errors.New("mode must be a string")
			}
			doc.Mode = node.Value
		case "seed":
			seed, err := strconv.ParseInt(node.Value, 10, 64)
			if err != nil {
				return Document{}, fmt.Errorf("seed: %w", err)
			}
			doc.Seed = seed
			doc.HasSeed = true
		default:
			if node.Kind != yaml.MappingNode {
				return Document{}, fmt.Errorf("section %q must be a mapping", key)
			}
			var section map[string]yaml.Node
			if err := node.Decode(&section); err != nil {
				return Document{}, fmt.Errorf("section %q: %w", key, err)
			}
			opts := make(map[string]string, len(section))
			for k, v := range section {
				if v.Kind != yaml.ScalarNode {
					return Document{}, fmt.Errorf("%s.%s must be a scalar", key, k)
				}
				opts[k] = v.Value
			}
			doc.Options[key] = opts
		}
	}
	return doc, nil
}

// For returns a copy of the options for mode merged with overrides, which
// win on conflict.
func (d Document) For(mode string, overrides map[string]string) map[string]string {
	out := make(map[string]string, len(d.Options[mode])+len(overrides))
	for k, v := range d.Options[mode] {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}
