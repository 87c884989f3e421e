package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/frameisa/isa"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "frame.toml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "assistant"
version = "0.3.0"

[store]
path = "programs/frame.db"

[catalog.actions]
"0F00" = "ESCALATE"

[catalog.subjects]
"0F10" = "BILLING"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if m.Project.Name != "assistant" {
		t.Errorf("project name = %q, want assistant", m.Project.Name)
	}
	if m.Project.Version != "0.3.0" {
		t.Errorf("project version = %q, want 0.3.0", m.Project.Version)
	}
	if m.Store.Path != "programs/frame.db" {
		t.Errorf("store path = %q, want programs/frame.db", m.Store.Path)
	}
	want := filepath.Join(m.Dir, "programs", "frame.db")
	if got := m.StorePath(); got != want {
		t.Errorf("StorePath() = %q, want %q", got, want)
	}
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[project]
name = "minimal"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Store.Path != "frame.db" {
		t.Errorf("store path = %q, want default frame.db", m.Store.Path)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load should fail in a directory without frame.toml")
	}
}

func TestFindAndLoad(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[project]
name = "nested"
`)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	m, err := FindAndLoad(sub)
	if err != nil {
		t.Fatalf("FindAndLoad failed: %v", err)
	}
	if m == nil {
		t.Fatal("FindAndLoad returned nil, want manifest from ancestor dir")
	}
	if m.Project.Name != "nested" {
		t.Errorf("project name = %q, want nested", m.Project.Name)
	}
}

func TestCompileCatalog(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[catalog.actions]
"0F00" = "ESCALATE"
"0F01" = "HANDOFF"

[catalog.subjects]
"0F10" = "BILLING"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	c, err := m.CompileCatalog()
	if err != nil {
		t.Fatalf("CompileCatalog failed: %v", err)
	}

	if name, ok := c.ActionName(isa.Action(0x0F00)); !ok || name != "ESCALATE" {
		t.Errorf("ActionName(0x0F00) = (%q, %v), want (ESCALATE, true)", name, ok)
	}
	if name, ok := c.SubjectName(isa.Subject(0x0F10)); !ok || name != "BILLING" {
		t.Errorf("SubjectName(0x0F10) = (%q, %v), want (BILLING, true)", name, ok)
	}
	if _, ok := c.ActionName(isa.ActGreet); ok {
		t.Error("catalog should not cover built-in codes it does not declare")
	}

	// The compiled catalog satisfies the disassembler's Namer interface.
	var _ isa.Namer = c
}

func TestCompileCatalogBadKey(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[catalog.actions]
"not-hex" = "BROKEN"
`)

	m, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := m.CompileCatalog(); err == nil {
		t.Fatal("CompileCatalog should fail on a non-hex key")
	}
}
