package bioformat

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Default driver to use (local, memory)
	Driver string `env:"BIOFORMAT_DRIVER,default:local"`

	// Local driver configuration
	LocalBasePath string `env:"BIOFORMAT_LOCAL_BASE_PATH,default:./data"`

	// Validation defaults
	// Level is the default validation depth: "min" samples a bounded number
	// of records, "max" scans every file to EOF.
	Level string `env:"BIOFORMAT_LEVEL,default:max"`

	// SniffOnly restricts runs to format recognition without validation.
	SniffOnly bool `env:"BIOFORMAT_SNIFF_ONLY,default:false"`

	// ChecksumAlgorithm is recorded for files that pass validation.
	ChecksumAlgorithm string `env:"BIOFORMAT_CHECKSUM_ALGORITHM,default:xxhash"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
