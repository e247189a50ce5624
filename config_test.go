package bioformat

import (
	"os"
	"testing"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want: Config{
				Driver:            "local",
				LocalBasePath:     "./data",
				Level:             "max",
				SniffOnly:         false,
				ChecksumAlgorithm: "xxhash",
			},
		},
		{
			name: "memory driver with sampling level",
			envVars: map[string]string{
				"BEAVER_BIOFORMAT_DRIVER":     "memory",
				"BEAVER_BIOFORMAT_LEVEL":      "min",
				"BEAVER_BIOFORMAT_SNIFF_ONLY": "true",
			},
			want: Config{
				Driver:            "memory",
				LocalBasePath:     "./data",
				Level:             "min",
				SniffOnly:         true,
				ChecksumAlgorithm: "xxhash",
			},
		},
		{
			name: "local configuration",
			envVars: map[string]string{
				"BEAVER_BIOFORMAT_DRIVER":             "local",
				"BEAVER_BIOFORMAT_LOCAL_BASE_PATH":    "/srv/sequences",
				"BEAVER_BIOFORMAT_CHECKSUM_ALGORITHM": "sha256",
			},
			want: Config{
				Driver:            "local",
				LocalBasePath:     "/srv/sequences",
				Level:             "max",
				ChecksumAlgorithm: "sha256",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if cfg.Driver != tt.want.Driver {
				t.Errorf("Driver = %v, want %v", cfg.Driver, tt.want.Driver)
			}
			if cfg.LocalBasePath != tt.want.LocalBasePath {
				t.Errorf("LocalBasePath = %v, want %v", cfg.LocalBasePath, tt.want.LocalBasePath)
			}
			if cfg.Level != tt.want.Level {
				t.Errorf("Level = %v, want %v", cfg.Level, tt.want.Level)
			}
			if cfg.SniffOnly != tt.want.SniffOnly {
				t.Errorf("SniffOnly = %v, want %v", cfg.SniffOnly, tt.want.SniffOnly)
			}
			if cfg.ChecksumAlgorithm != tt.want.ChecksumAlgorithm {
				t.Errorf("ChecksumAlgorithm = %v, want %v", cfg.ChecksumAlgorithm, tt.want.ChecksumAlgorithm)
			}
		})
	}
}
