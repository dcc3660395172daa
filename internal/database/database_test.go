package database

import (
	"context"
	"testing"

	"github.com/claimsight/loopscan/internal/config"
)

func TestBuildDSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.DatabaseConfig
		expected string
	}{
		{
			name: "basic DSN",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "scanner",
				Password: "secret",
				Database: "claims",
				TLS:      "preferred",
			},
			expected: "scanner:secret@tcp(localhost:3306)/claims?parseTime=true&tls=preferred",
		},
		{
			name: "DSN without database",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "scanner",
				Password: "secret",
				TLS:      "preferred",
			},
			expected: "scanner:secret@tcp(localhost:3306)/?parseTime=true&tls=preferred",
		},
		{
			name: "DSN with TLS disabled",
			cfg: &config.DatabaseConfig{
				Host:     "db.internal",
				Port:     3307,
				User:     "scanner",
				Password: "secret",
				Database: "claims",
				TLS:      "disable",
			},
			expected: "scanner:secret@tcp(db.internal:3307)/claims?parseTime=true&tls=false",
		},
		{
			name: "DSN with TLS required",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "scanner",
				Password: "secret",
				Database: "claims",
				TLS:      "required",
			},
			expected: "scanner:secret@tcp(localhost:3306)/claims?parseTime=true&tls=true",
		},
		{
			name: "empty TLS defaults to preferred",
			cfg: &config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				User:     "scanner",
				Password: "secret",
				Database: "claims",
			},
			expected: "scanner:secret@tcp(localhost:3306)/claims?parseTime=true&tls=preferred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildDSN(tt.cfg); got != tt.expected {
				t.Errorf("BuildDSN() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestManager_PingWithoutConnect(t *testing.T) {
	m := NewManager(config.DefaultConfig())
	if err := m.Ping(context.Background()); err == nil {
		t.Error("Ping before Connect should fail")
	}
}

func TestManager_CloseWithoutConnect(t *testing.T) {
	m := NewManager(config.DefaultConfig())
	if err := m.Close(); err != nil {
		t.Errorf("Close on unconnected manager should be a no-op, got %v", err)
	}
}
