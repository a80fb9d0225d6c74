package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithOverrides returns a new validated configuration produced by applying the
// given overrides on top of base. Override keys are dotted document paths
// ("training.niter") or top-level sections mapping to nested values. The base
// configuration is never modified.
func WithOverrides(base *Config, overrides map[string]interface{}) (*Config, error) {
	if base == nil {
		return nil, fmt.Errorf("base configuration is nil")
	}

	raw, err := yaml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize base configuration: %v", err)
	}

	tree := map[string]interface{}{}
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to rebuild configuration tree: %v", err)
	}

	for key, value := range overrides {
		if err := setPath(tree, key, value); err != nil {
			return nil, err
		}
	}

	merged, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize merged configuration: %v", err)
	}

	cfg, err := parseDocument(bytes.NewReader(merged), "")
	if err != nil {
		return nil, err
	}
	cfg._absConfigFilePath = base._absConfigFilePath

	if err := cfg.ValidateConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setPath writes value into the tree at the given dotted path, creating
// intermediate mappings as needed. Mapping values merge into existing
// subtrees instead of replacing them.
func setPath(tree map[string]interface{}, path string, value interface{}) error {
	parts := strings.Split(path, ".")
	node := tree

	for i, part := range parts[:len(parts)-1] {
		child, ok := node[part]
		if !ok || child == nil {
			next := map[string]interface{}{}
			node[part] = next
			node = next
			continue
		}

		childMap, ok := child.(map[string]interface{})
		if !ok {
			return fmt.Errorf("override path %q crosses non-mapping field %q", path, strings.Join(parts[:i+1], "."))
		}
		node = childMap
	}

	leaf := parts[len(parts)-1]
	if valueMap, ok := value.(map[string]interface{}); ok {
		if existing, ok := node[leaf].(map[string]interface{}); ok {
			mergeTree(existing, valueMap)
			return nil
		}
	}
	node[leaf] = value

	return nil
}

func mergeTree(dst, src map[string]interface{}) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]interface{}); ok {
			if existing, ok := dst[key].(map[string]interface{}); ok {
				mergeTree(existing, valueMap)
				continue
			}
		}
		dst[key] = value
	}
}
