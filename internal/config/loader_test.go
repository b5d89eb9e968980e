package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// withPaths points the user and project layers at dir for the duration of t.
func withPaths(t *testing.T, dir string) (user, project string) {
	t.Helper()
	user = filepath.Join(dir, "home", userConfigDir, configFileName)
	project = filepath.Join(dir, "work", projectConfigDir, configFileName)

	origUser, origProject := getUserConfigPath, getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = origUser
		getProjectConfigPath = origProject
	})
	getUserConfigPath = func() (string, error) { return user, nil }
	getProjectConfigPath = func() (string, error) { return project, nil }
	return user, project
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NilError(t, os.MkdirAll(filepath.Dir(path), 0755))
	assert.NilError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_DefaultOnly(t *testing.T) {
	withPaths(t, t.TempDir())

	cfg, err := Load("")
	assert.NilError(t, err)

	want := DefaultConfig()
	assert.DeepEqual(t, cfg, want)
	assert.Check(t, is.Len(cfg.Sources, 0))
}

func TestLoad_LayersOverrideInOrder(t *testing.T) {
	dir := t.TempDir()
	user, project := withPaths(t, dir)

	writeFile(t, user, `
defaultPreset: quad-sq-v
separatorThickness: 2
panes: [ES, NQ]
log:
  level: debug
`)
	writeFile(t, project, `
defaultPreset: triple-horiz
export:
  width: 640
`)
	explicit := filepath.Join(dir, "explicit.yaml")
	writeFile(t, explicit, "log:\n  file: /tmp/tiles.log\n")

	cfg, err := Load(explicit)
	assert.NilError(t, err)

	assert.Equal(t, cfg.DefaultPreset, "triple-horiz")
	assert.Equal(t, cfg.SeparatorThickness, 2)
	assert.DeepEqual(t, cfg.Panes, []string{"ES", "NQ"})
	assert.Equal(t, cfg.Log.Level, "debug")
	assert.Equal(t, cfg.Log.File, "/tmp/tiles.log")
	assert.Equal(t, cfg.Export.Width, 640)
	assert.Equal(t, cfg.Export.Height, DefaultConfig().Export.Height)
	assert.DeepEqual(t, cfg.Sources, []string{user, project, explicit})
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := t.TempDir()
	withPaths(t, dir)

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_MalformedYAML(t *testing.T) {
	user, _ := withPaths(t, t.TempDir())
	writeFile(t, user, "panes: [unterminated\n")

	_, err := Load("")
	assert.ErrorContains(t, err, user)
}

func TestLoad_RejectsInvalidThickness(t *testing.T) {
	user, _ := withPaths(t, t.TempDir())
	writeFile(t, user, "separatorThickness: -3\n")

	_, err := Load("")
	assert.Assert(t, errors.Is(err, ErrInvalidThickness))
}

func TestLoad_UnknownHomeSkipsUserLayer(t *testing.T) {
	_, project := withPaths(t, t.TempDir())
	getUserConfigPath = func() (string, error) { return "", errors.New("no home") }
	writeFile(t, project, "defaultPreset: single\n")

	cfg, err := Load("")
	assert.NilError(t, err)
	assert.Equal(t, cfg.DefaultPreset, "single")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"defaults are valid", func(c *Config) {}, nil},
		{"zero thickness", func(c *Config) { c.SeparatorThickness = 0 }, ErrInvalidThickness},
		{"unknown preset", func(c *Config) { c.DefaultPreset = "hexagonal" }, ErrUnknownPreset},
		{"preset alias", func(c *Config) { c.DefaultPreset = "4sq" }, nil},
		{"zero export height", func(c *Config) { c.Export.Height = 0 }, ErrInvalidExportSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.want == nil {
				assert.NilError(t, err)
				return
			}
			assert.Assert(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestValidate_BadLogLevel(t *testing.T) {
	c := DefaultConfig()
	c.Log.Level = "chatty"

	assert.ErrorContains(t, c.Validate(), "log level")
	assert.Equal(t, c.LogLevel(), log.InfoLevel)
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()
	withPaths(t, dir)

	c := DefaultConfig()
	c.DefaultPreset = "quad-left"
	c.Panes = []string{"GC", "CL"}
	path := filepath.Join(dir, "nested", "config.yaml")
	assert.NilError(t, Save(path, c))

	got, err := Load(path)
	assert.NilError(t, err)
	assert.Equal(t, got.DefaultPreset, "quad-left")
	assert.DeepEqual(t, got.Panes, []string{"GC", "CL"})
}
