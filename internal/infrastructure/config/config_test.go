package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := LoadFile(path, "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 48, cfg.Complaint.SLAHours)
	assert.Equal(t, 48*time.Hour, cfg.Complaint.SLA())
	assert.Equal(t, 200, cfg.Complaint.ResidentMaxPageSize)
	assert.Equal(t, 500, cfg.Complaint.AdminMaxPageSize)
	assert.Equal(t, "db", cfg.Complaint.SequenceBackend)
	assert.Equal(t, 10, cfg.Complaint.MaxAttachments)
	assert.Equal(t, 500, cfg.Complaint.MaxAttachmentLength)
	assert.Equal(t, 5*time.Minute, cfg.Catalog.CacheTTL)
	assert.Same(t, cfg, Get())
}

func TestLoadFile_EnvOverride(t *testing.T) {
	path := writeConfig(t, "database:\n  driver: postgres\n")
	t.Setenv("SITEDESK_DATABASE_DRIVER", "sqlite")
	t.Setenv("SITEDESK_COMPLAINT_SLA_HOURS", "24")

	cfg, err := LoadFile(path, "production")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 24, cfg.Complaint.SLAHours)
	assert.Equal(t, "production", cfg.Server.Mode)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: oracle\n"},
		{"redis sequence without redis", "complaint:\n  sequence_backend: redis\n"},
		{"unknown sequence backend", "complaint:\n  sequence_backend: file\n"},
		{"non-positive sla", "complaint:\n  sla_hours: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, tt.body), "")
			assert.Error(t, err)
		})
	}
}
