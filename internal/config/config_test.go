package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "source:\n  directory: /src\n"))
	require.NoError(t, err)

	require.Equal(t, "/src", cfg.Source.Directory)
	require.Equal(t, "./out", cfg.Output.Directory)
	require.Equal(t, "https://JPEWdev.github.io/yeps/", cfg.Site.BaseURL)
	require.Equal(t, "Yocto Enhancement Proposals", cfg.Site.Title)
	require.Equal(t, "html", cfg.Site.Builder)
	require.Equal(t, ".yep-excerpts.db", cfg.Cache.Path)
}

func TestLoadFullConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
source:
  directory: /yeps
output:
  directory: /site
site:
  base_url: https://example.com/yeps/
  title: Example YEPs
  builder: dirhtml
topics:
  kernel: "Kernel proposals."
reserved:
  666: The YEP Editors
cache:
  path: ":memory:"
`))
	require.NoError(t, err)
	require.Equal(t, "dirhtml", cfg.Site.Builder)
	require.Equal(t, map[string]string{"kernel": "Kernel proposals."}, cfg.Topics)
	require.Equal(t, map[int]string{666: "The YEP Editors"}, cfg.Reserved)
	require.Equal(t, ":memory:", cfg.Cache.Path)
}

func TestLoadRejectsUnknownBuilder(t *testing.T) {
	_, err := Load(writeConfig(t, "site:\n  builder: pdf\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown builder mode")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("YEP_SOURCE_DIR", "/from-env")
	cfg, err := Load(writeConfig(t, "source:\n  directory: ${YEP_SOURCE_DIR}\n"))
	require.NoError(t, err)
	require.Equal(t, "/from-env", cfg.Source.Directory)
}

func TestInitRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ".", cfg.Source.Directory)
	require.Contains(t, cfg.Topics, "kernel")

	// Existing files are preserved unless forced.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
