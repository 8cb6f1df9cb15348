// Package config loads pruning rules from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-jsonc/internal/pathexpr"
)

var ErrConfig = errors.New("config error")

// Config is the content of a rules file:
//
//	paths:
//	  - meta.disclaimer
//	  - $.build['output dir']
//	  - [a, "b.c"]
//	compact: true
type Config struct {
	Paths   []Path `yaml:"paths"`
	Compact bool   `yaml:"compact"`
}

// Path is a deletion path. In YAML it is either a string in one of the
// notations understood by pathexpr, or a list of literal keys.
type Path []string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (p *Path) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	switch v := v.(type) {
	case string:
		segs, err := pathexpr.Parse(v)
		if err != nil {
			return err
		}
		*p = segs
		return nil
	case []any:
		if len(v) == 0 {
			return pathexpr.ErrEmpty
		}
		segs := make([]string, 0, len(v))
		for i, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("key %d must be a string, got %T", i, e)
			}
			segs = append(segs, s)
		}
		*p = segs
		return nil
	}
	return fmt.Errorf("path must be a string or a list of keys, got %T", v)
}

// Load decodes a rules file. An empty document yields an empty Config.
func Load(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: failed to decode YAML: %v", ErrConfig, err)
	}
	return cfg, nil
}

// LoadFile reads and decodes the rules file at name.
func LoadFile(name string) (*Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// KeyPaths returns the paths as plain key sequences.
func (c *Config) KeyPaths() [][]string {
	res := make([][]string, 0, len(c.Paths))
	for _, p := range c.Paths {
		res = append(res, []string(p))
	}
	return res
}
