package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, ":8080", v.GetString("http_addr"))
	assert.Equal(t, ".", v.GetString("site.dir"))
	assert.True(t, v.GetBool("cache.enabled"))
	assert.Equal(t, "dark", v.GetString("preview.style"))
	assert.NotEmpty(t, v.GetString("data_dir"))
}

func TestLoadFileAndEnvPrecedence(t *testing.T) {
	tmp := t.TempDir()
	cfg := filepath.Join(tmp, "config.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("http_addr = \":9000\"\n\n[site]\ndir = \"/srv/pages\"\n"), 0o600))

	t.Setenv("MD2HTML_HTTP_ADDR", ":7000")

	v := viper.New()
	v.SetConfigFile(cfg)
	require.NoError(t, Load(context.Background(), v))

	// env beats file, file beats default
	assert.Equal(t, ":7000", v.GetString("http_addr"))
	assert.Equal(t, "/srv/pages", v.GetString("site.dir"))
}

func TestCachePath(t *testing.T) {
	v := viper.New()
	v.Set("data_dir", "/tmp/md2html-test")
	assert.Equal(t, filepath.Join("/tmp/md2html-test", "md2html.db"), CachePath(v))
}

func TestRenderDefaultTOML(t *testing.T) {
	out := RenderDefaultTOML()
	assert.True(t, strings.Contains(out, "http_addr"))
	assert.True(t, strings.Contains(out, "[site]"))
	assert.True(t, strings.Contains(out, "[preview]"))
	assert.True(t, strings.Contains(out, "[cache]"))

	// Every option is either top-level or inside its section
	for _, o := range Options() {
		key := o.Key
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		assert.Contains(t, out, key+" = ")
	}
}
