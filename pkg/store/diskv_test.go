package store

import (
	"context"
	"errors"
	"testing"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

type blob struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

func TestReadMissingKey(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	var v blob
	if err := p.Read("sleep_logs", &v); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	in := blob{Name: "monday", Hours: 7.5}
	if err := p.Write("sleep_logs", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out blob
	if err := p.Read("sleep_logs", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}

func TestWriteOverwritesInPlace(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	if err := p.Write("journal_2026-01-05", blob{Name: "first"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := p.Write("journal_2026-01-05", blob{Name: "second"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	keys := p.Keys(ctx, "journal_")
	if len(keys) != 1 {
		t.Fatalf("expected 1 key after overwrite, got %d: %v", len(keys), keys)
	}

	var out blob
	if err := p.Read("journal_2026-01-05", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out.Name != "second" {
		t.Fatalf("expected overwritten value, got %q", out.Name)
	}
}

func TestKeysFiltersByPrefix(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"journal_2026-01-05", "journal_2026-01-06", "sleep_logs", "quests_state"} {
		if err := p.Write(key, blob{Name: key}); err != nil {
			t.Fatalf("write %s: %v", key, err)
		}
	}

	keys := p.Keys(ctx, "journal_")
	if len(keys) != 2 {
		t.Fatalf("expected 2 journal keys, got %v", keys)
	}
	if keys[0] != "journal_2026-01-05" || keys[1] != "journal_2026-01-06" {
		t.Fatalf("expected sorted journal keys, got %v", keys)
	}

	all := p.Keys(ctx, "")
	if len(all) != 4 {
		t.Fatalf("expected 4 keys, got %v", all)
	}
}

func TestEraseMissingKeyIsNotAnError(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.Erase("sleep_logs"); err != nil {
		t.Fatalf("expected erase of missing key to succeed, got %v", err)
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	for _, key := range []string{"sleep_logs", "journal_2026-01-05", "app_theme", "theme"} {
		pk := keyToPathTransform(key)
		if got := pathToKeyTransform(pk); got != key {
			t.Fatalf("transform round trip for %q: got %q", key, got)
		}
	}

	pk := keyToPathTransform("journal_2026-01-05")
	if len(pk.Path) != 1 || pk.Path[0] != "journal" {
		t.Fatalf("expected journal bucket, got %v", pk.Path)
	}
	if pk.FileName != "2026-01-05" {
		t.Fatalf("expected day file name, got %q", pk.FileName)
	}
}
