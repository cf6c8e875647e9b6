package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sensmetry/gocodegen/internal/assert"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "manifest.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
indent: "  "
eol: "\n"
entries:
  - path: greeting.txt
    template: "Hello, ${name}!"
    values:
      name: World
`)

	m, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "  ", m.Indent)
	assert.Equal(t, 1, len(m.Entries))
	assert.Equal(t, "greeting.txt", m.Entries[0].Path)
}

func TestLoadRejectsMissingPath(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
entries:
  - template: "x"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	entry := Entry{
		Path:     "greeting.txt",
		Template: "Hello, ${name}!",
		Values:   map[string]string{"name": "World"},
	}
	got, err := Render("manifest.yaml", entry)
	assert.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", got)
}

func TestRenderUndefinedPlaceholder(t *testing.T) {
	entry := Entry{
		Path:     "greeting.txt",
		Template: "Hello, ${name}!",
		Values:   map[string]string{},
	}
	_, err := Render("manifest.yaml", entry)
	assert.Error(t, err)
}

func TestRenderUnterminatedPlaceholder(t *testing.T) {
	entry := Entry{
		Path:     "bad.txt",
		Template: "Hello, ${name",
		Values:   map[string]string{},
	}
	_, err := Render("manifest.yaml", entry)
	assert.Error(t, err)
}

func TestRenderMultilineTemplate(t *testing.T) {
	entry := Entry{
		Path: "greeting.txt",
		Template: "\n" +
			"    func ${name}() {\n" +
			"    }\n",
		Values: map[string]string{"name": "Greet"},
	}
	got, err := Render("manifest.yaml", entry)
	assert.NoError(t, err)
	assert.Equal(t, "func Greet() {\n}\n", got)
}
