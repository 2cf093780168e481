package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupocolon/cfdi-fuel/internal/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "GASOLINERA COLON", cfg.Provider)
	assert.Equal(t, []string{"GCO740121MC5", "TSB740430489"}, cfg.AllowedRFCs)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partner.yaml")
	content := `provider: gasolinera del norte
allowed_rfcs:
  - abc010101aaa
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	// Values are normalized to uppercase
	assert.Equal(t, "GASOLINERA DEL NORTE", cfg.Provider)
	assert.Equal(t, []string{"ABC010101AAA"}, cfg.AllowedRFCs)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`provider: OTRA GASOLINERA`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "OTRA GASOLINERA", cfg.Provider)
	assert.Equal(t, config.Default().AllowedRFCs, cfg.AllowedRFCs)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [unclosed"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  config.Config{Provider: "X", AllowedRFCs: []string{"A"}},
		},
		{
			name:    "empty provider",
			cfg:     config.Config{AllowedRFCs: []string{"A"}},
			wantErr: true,
		},
		{
			name:    "empty allow-list",
			cfg:     config.Config{Provider: "X"},
			wantErr: true,
		},
		{
			name:    "blank rfc entry",
			cfg:     config.Config{Provider: "X", AllowedRFCs: []string{""}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAllowsRFC(t *testing.T) {
	cfg := config.Default()

	assert.True(t, cfg.AllowsRFC("GCO740121MC5"))
	assert.True(t, cfg.AllowsRFC("TSB740430489"))
	assert.False(t, cfg.AllowsRFC("XAXX010101000"))
	assert.False(t, cfg.AllowsRFC(""))
}
