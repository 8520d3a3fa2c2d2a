// Package store is the persistence adapter: application state lives as
// JSON-serialized blobs under fixed string keys in a local diskv store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned by Read when no blob exists for the key. Callers
// treat it as "default to empty" rather than a failure.
var ErrNotFound = errors.New("store: key not found")

// Persistence defines the persistence contract for tracker state.
type Persistence interface {
	// Read unmarshals the blob stored under key into v.
	Read(key string, v any) error
	// Write marshals v and stores it under key, overwriting in place.
	Write(key string, v any) error
	// Erase removes the blob under key. Missing keys are not an error.
	Erase(key string) error
	// Keys lists stored keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) []string
	// Watch streams change events until ctx is cancelled.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string, v any) error {
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Write(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Keys(ctx context.Context, prefix string) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// keyToPathTransform buckets keys by their underscore-separated segments, so
// `journal_2026-01-02` lands in a `journal` directory with one file per day.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "_")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s_%s", strings.Join(pathKey.Path, "_"), pathKey.FileName)
}
