package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("LUNCHTRAY_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share", "lunchtray", "lunchtray.db"), c.Database.Path)
	require.Equal(t, "", c.Menu.Path)
	require.Equal(t, "$", c.UI.CurrencySymbol)
	require.Equal(t, "info", c.Log.Level)
	rate, err := c.TaxRate()
	require.NoError(t, err)
	require.Equal(t, "0.08", rate.String())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[database]
path = "/tmp/lt.db"

[order]
tax_rate = "0.1"

[ui]
currency_symbol = "€"
`), 0o644))
	t.Setenv("LUNCHTRAY_CONFIG", path)
	t.Setenv("LUNCHTRAY_LOG_LEVEL", "debug")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/lt.db", c.Database.Path)
	require.Equal(t, "€", c.UI.CurrencySymbol)
	require.Equal(t, "debug", c.Log.Level)
	rate, err := c.TaxRate()
	require.NoError(t, err)
	require.Equal(t, "0.1", rate.String())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LUNCHTRAY_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidateTaxRate(t *testing.T) {
	base := Config{Database: DatabaseConfig{Path: "x.db"}}
	for _, bad := range []string{"", "abc", "-0.1", "1", "2.5"} {
		c := base
		c.Order.TaxRate = bad
		require.Error(t, c.Validate(), "rate %q", bad)
	}
	c := base
	c.Order.TaxRate = "0"
	require.NoError(t, c.Validate())

	c.Database.Path = " "
	require.Error(t, c.Validate())
}
