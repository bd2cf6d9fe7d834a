package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".h", cfg.Output.Extension)
	assert.Equal(t, "Nepomuk2", cfg.Emit.OuterNamespace)
	assert.Equal(t, "Nepomuk2::SimpleResource", cfg.Emit.BaseClass)
	assert.Equal(t, "Nepomuk2/SimpleResource", cfg.Emit.BaseInclude)
	assert.Equal(t, 50, cfg.Emit.CommentWidth)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Output.Verify)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default config",
			modify: func(c *Config) {},
		},
		{
			name:    "missing extension",
			modify:  func(c *Config) { c.Output.Extension = "" },
			wantErr: "output.extension is required",
		},
		{
			name:    "extension without dot",
			modify:  func(c *Config) { c.Output.Extension = "h" },
			wantErr: "output.extension",
		},
		{
			name:    "extension with separator",
			modify:  func(c *Config) { c.Output.Extension = "./h" },
			wantErr: "output.extension",
		},
		{
			name:    "outer namespace not an identifier",
			modify:  func(c *Config) { c.Emit.OuterNamespace = "Nepomuk 2" },
			wantErr: "emit.outer_namespace",
		},
		{
			name:   "qualified base class",
			modify: func(c *Config) { c.Emit.BaseClass = "::Acme::Core::Resource" },
		},
		{
			name:    "base class with template",
			modify:  func(c *Config) { c.Emit.BaseClass = "Acme::Resource<int>" },
			wantErr: "emit.base_class",
		},
		{
			name:    "comment width too small",
			modify:  func(c *Config) { c.Emit.CommentWidth = 5 },
			wantErr: "emit.comment_width must be at least 10",
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log.level must be one of",
		},
		{
			name: "override to invalid identifier",
			modify: func(c *Config) {
				c.Names.Overrides = map[string]string{"http://example.org/nie#title": "nie-title"}
			},
			wantErr: "names.overrides",
		},
		{
			name:   "valid override and keyword",
			modify: func(c *Config) {
				c.Names.Overrides = map[string]string{"http://example.org/nie#title": "nieTitle"}
				c.Names.Keywords = []string{"signals"}
			},
		},
		{
			name:    "invalid keyword",
			modify:  func(c *Config) { c.Names.Keywords = []string{"two words"} },
			wantErr: "names.keywords",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `
output:
  path: "/tmp/headers"
  verify: true
emit:
  outer_namespace: Acme
  comment_width: 72
names:
  overrides:
    "http://example.org/nie#title": nieTitle
  keywords:
    - signals
log:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/headers", cfg.Output.Path)
	assert.True(t, cfg.Output.Verify)
	assert.Equal(t, ".h", cfg.Output.Extension, "unset fields keep defaults")
	assert.Equal(t, "Acme", cfg.Emit.OuterNamespace)
	assert.Equal(t, "Nepomuk2::SimpleResource", cfg.Emit.BaseClass)
	assert.Equal(t, 72, cfg.Emit.CommentWidth)
	assert.Equal(t, map[string]string{"http://example.org/nie#title": "nieTitle"}, cfg.Names.Overrides)
	assert.Equal(t, []string{"signals"}, cfg.Names.Keywords)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("emit: [not, a, map"), 0644))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestConfigMerge(t *testing.T) {
	base := DefaultConfig()
	base.Names.Overrides = map[string]string{"urn:a": "first", "urn:b": "kept"}
	base.Names.Keywords = []string{"signals"}

	override := &Config{
		Output: OutputConfig{Path: "/override/path", Verify: true},
		Emit:   EmitConfig{CommentWidth: 80},
		Names: NamesConfig{
			Overrides: map[string]string{"urn:a": "second"},
			Keywords:  []string{"signals", "slots"},
		},
	}

	base.Merge(override)

	assert.Equal(t, "/override/path", base.Output.Path)
	assert.True(t, base.Output.Verify)
	assert.Equal(t, 80, base.Emit.CommentWidth)
	assert.Equal(t, "Nepomuk2", base.Emit.OuterNamespace, "unset fields remain")
	assert.Equal(t, map[string]string{"urn:a": "second", "urn:b": "kept"}, base.Names.Overrides)
	assert.Equal(t, []string{"signals", "slots"}, base.Names.Keywords)

	base.Merge(nil)
	assert.Equal(t, "/override/path", base.Output.Path)
}

func TestConfigSaveToFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "config.yaml")

	cfg := DefaultConfig()
	cfg.Emit.OuterNamespace = "Saved"

	require.NoError(t, cfg.SaveToFile(configPath))

	loaded, err := LoadFromFile(configPath)
	require.NoError(t, err)
	assert.Equal(t, "Saved", loaded.Emit.OuterNamespace)
	assert.Equal(t, cfg, loaded)
}
