//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/Khaledaun/LVJAPP/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mockConfig = `
port: "8080"
app_url: http://localhost:3000
logger:
  log_level: info
  log_type: console
notifications:
  transport: log
  sendgrid_api_key: SG.secret
features:
  skip_db: "1"
`

func TestConfigShow(t *testing.T) {
	path := writeConfig(t, mockConfig)

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "transport: log")
	assert.Contains(t, out, "********")
	assert.NotContains(t, out, "SG.secret")

	out, err = execute(t, "--config", path, "config", "show", "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[notifications]")
	assert.Regexp(t, `transport = ['"]log['"]`, out)
	assert.NotContains(t, out, "SG.secret")

	_, err = execute(t, "--config", path, "config", "show", "--format", "xml")
	assert.Error(t, err)
}

func TestRenderConfig_UnsupportedFormat(t *testing.T) {
	_, err := renderConfig(&config.RestConfig{}, "json")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestServiceTypesList_MockData(t *testing.T) {
	path := writeConfig(t, mockConfig)

	out, err := execute(t, "--config", path, "service-types", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "st_1")
	assert.Contains(t, out, "Asylum Application")
}

func TestSessionCommands_RejectSkipDB(t *testing.T) {
	path := writeConfig(t, mockConfig)

	_, err := execute(t, "--config", path, "session", "issue", "--email", "dev@lvj.local", "--ttl", "1h")
	assert.ErrorIs(t, err, errServerSessions)

	_, err = execute(t, "--config", path, "session", "revoke", "--token", "whatever")
	assert.ErrorIs(t, err, errServerSessions)
}

func TestDatabaseCommands_RejectSkipDB(t *testing.T) {
	path := writeConfig(t, mockConfig)

	_, err := execute(t, "--config", path, "migrate")
	assert.ErrorIs(t, err, errNoDatabase)

	_, err = execute(t, "--config", path, "seed", "--fixture", "dev")
	assert.ErrorIs(t, err, errNoDatabase)

	_, err = execute(t, "--config", path, "seed", "--fixture", "unknown")
	assert.Error(t, err)
}
