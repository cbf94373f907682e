package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 60
  idle_timeout: 120

log:
  level: info

analysis:
  days: 90
  timezone: Europe/Berlin
  sources: /var/lib/dns/a.db, /var/lib/dns/b.db
  top_clients: 10
  top_domains: 15
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "configs.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(writeConfigFile(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 90, cfg.Analysis.Days)
	assert.Equal(t, "Europe/Berlin", cfg.Analysis.Timezone)
	assert.Equal(t, 10, cfg.Analysis.TopClients)
	assert.Empty(t, cfg.Analysis.StartDate)
	assert.Empty(t, cfg.Analysis.IgnoreDomains)
}

func TestLoadConfig_MissingRequiredField(t *testing.T) {
	t.Parallel()

	yaml := `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 30
  write_timeout: 60
  idle_timeout: 120

log:
  level: info

analysis:
  days: 90
  timezone: Europe/Berlin
  top_clients: 10
  top_domains: 15
`
	_, err := LoadConfig(writeConfigFile(t, yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.sources")
}

func TestLoadConfig_MalformedDate(t *testing.T) {
	t.Parallel()

	yaml := validYAML + `  start_date: "01/02/2024"
  end_date: "2024-01-31"
`
	_, err := LoadConfig(writeConfigFile(t, yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "analysis.start_date")
}

func TestLoadConfig_ExplicitDatesAccepted(t *testing.T) {
	t.Parallel()

	yaml := validYAML + `  start_date: "2024-01-01"
  end_date: "2024-01-31"
`
	cfg, err := LoadConfig(writeConfigFile(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", cfg.Analysis.StartDate)
	assert.Equal(t, "2024-01-31", cfg.Analysis.EndDate)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestAnalysisConfig_SourcePaths(t *testing.T) {
	t.Parallel()

	cfg := AnalysisConfig{Sources: " /a.db, /b.db ,, /c.db "}
	assert.Equal(t, []string{"/a.db", "/b.db", "/c.db"}, cfg.SourcePaths())

	cfg = AnalysisConfig{Sources: "/only.db"}
	assert.Equal(t, []string{"/only.db"}, cfg.SourcePaths())
}
