// Package record turns CLI input (YAML files, key=value args) into engine
// contexts.
package record

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

// Load reads a context from a YAML file: a flat mapping of attribute name
// to scalar value.
func Load(path string) (dectree.Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading record file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing record file %s: %w", path, err)
	}

	ctx := make(dectree.Context, len(raw))
	for k, v := range raw {
		ctx[k] = Normalize(v)
	}
	return ctx, nil
}

// Parse builds a context from key=value command line pairs. Values are
// typed by shape: integer first, then real, then boolean, else text.
func Parse(pairs []string) (dectree.Context, error) {
	ctx := make(dectree.Context, len(pairs))
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid attribute %q, expected key=value", pair)
		}
		ctx[key] = typed(val)
	}
	return ctx, nil
}

func typed(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// Normalize squashes the scalar types the YAML decoder produces onto the
// kinds rule conditions actually read: all integer widths become int,
// everything else passes through. Without this, a typed read like
// Get[int](ctx, "amount", 0) would silently default because the decoder
// handed us a uint64.
func Normalize(v any) any {
	switch n := v.(type) {
	case uint64:
		return int(n)
	case int64:
		return int(n)
	default:
		return v
	}
}
