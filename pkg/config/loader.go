// Package config loads urlenc settings from YAML, JSON, or CUE files,
// using CUE as the underlying parser.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/encoding/yaml"
)

// LoadValueFromReader parses r as YAML (a superset of JSON) and returns
// the CUE value. For .cue files use LoadValue.
func LoadValueFromReader(r io.Reader) (cue.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}

	return buildYAML(cuecontext.New(), "", data)
}

// LoadValue loads a file or directory and returns the CUE value.
//
// Directories and .cue files go through load.Instances, so CUE packages
// with imports work. .yaml, .yml and .json files are parsed directly;
// any other extension is tried as YAML.
func LoadValue(path string) (cue.Value, error) {
	return loadValue(cuecontext.New(), path)
}

// LoadAndUnifyPaths expands each glob pattern, loads every match and
// unifies the results into one value. Patterns that match nothing are
// skipped, so a missing optional file is not an error. Conflicting
// values across files are.
//
// With no matches at all the result is an empty struct.
func LoadAndUnifyPaths(patterns []string) (cue.Value, error) {
	ctx := cuecontext.New()
	result := ctx.CompileString("{}")

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return cue.Value{}, fmt.Errorf("invalid config pattern %q: %w", pattern, err)
		}

		for _, path := range matches {
			val, err := loadValue(ctx, path)
			if err != nil {
				return cue.Value{}, fmt.Errorf("failed to load %s: %w", path, err)
			}

			result = result.Unify(val)
		}
	}

	if err := result.Validate(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to unify config: %w", err)
	}

	return result, nil
}

func loadValue(ctx *cue.Context, path string) (cue.Value, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to stat path: %w", err)
	}

	if fileInfo.IsDir() || strings.HasSuffix(strings.ToLower(path), ".cue") {
		return loadInstance(ctx, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		val := ctx.CompileBytes(data, cue.Filename(path))
		if err := val.Err(); err != nil {
			return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
		}
		return val, nil
	}

	return buildYAML(ctx, path, data)
}

func loadInstance(ctx *cue.Context, path string) (cue.Value, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to resolve path: %w", err)
	}

	cfg := &load.Config{
		Dir:       filepath.Dir(absPath),
		DataFiles: true,
	}

	instances := load.Instances([]string{absPath}, cfg)
	if len(instances) == 0 {
		return cue.Value{}, fmt.Errorf("no instances loaded from %s", path)
	}

	inst := instances[0]
	if inst.Err != nil {
		return cue.Value{}, fmt.Errorf("failed to load config: %w", inst.Err)
	}

	val := ctx.BuildInstance(inst)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}

	return val, nil
}

func buildYAML(ctx *cue.Context, name string, data []byte) (cue.Value, error) {
	file, err := yaml.Extract(name, data)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to parse config: %w", err)
	}

	val := ctx.BuildFile(file)
	if err := val.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("failed to build CUE value: %w", err)
	}

	return val, nil
}

// LoadFromFile loads a file or directory (see LoadValue) into T.
//
// Example:
//
//	cfg, err := config.LoadFromFile[Settings]("urlenc.yaml")
func LoadFromFile[T any](path string) (*T, error) {
	val, err := LoadValue(path)
	if err != nil {
		return nil, err
	}

	return Decode[T](val)
}

// LoadFromReader parses r as YAML or JSON into T.
func LoadFromReader[T any](r io.Reader) (*T, error) {
	val, err := LoadValueFromReader(r)
	if err != nil {
		return nil, err
	}

	return Decode[T](val)
}

// Decode decodes val into a new T using the json struct tags of T.
func Decode[T any](val cue.Value) (*T, error) {
	var cfg T
	if err := val.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, nil
}
