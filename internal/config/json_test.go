package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_AllFields(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {
			"csrf_token": "csrf_secret",
			"notice_duration": "5s"
		},
		"server": {
			"address": "journal.local:8000",
			"request_timeout": "30s"
		},
		"storage": {
			"db": {"dsn": "journal.db"}
		},
		"workers": {
			"probe_interval": "20s"
		}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "csrf_secret", cfg.App.CSRFToken)
	assert.Equal(t, 5*time.Second, cfg.App.NoticeDuration)
	assert.Equal(t, "journal.local:8000", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "journal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Workers.ProbeInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// длительность как число наносекунд — допустимо для Duration
	path := writeJSONFile(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeJSONFile(t, `{"server": `)
	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalInvalidString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"ten seconds"`))
	require.Error(t, err)
}

func TestDuration_MarshalRoundTrip(t *testing.T) {
	d := Duration(90 * time.Second)
	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
