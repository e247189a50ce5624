package bioformat

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gobeaver/beaver-kit/config"
)

// Global instance
var (
	defaultFS   FileSystem
	defaultOnce sync.Once
	defaultErr  error
)

// Builder provides a way to create FileSystem instances with custom
// environment prefixes. Pipelines hosting several data stores side by side
// (say, a staging area and an archive) give each its own prefix.
type Builder struct {
	prefix string
}

// WithPrefix creates a new Builder with the specified prefix
func WithPrefix(prefix string) *Builder {
	return &Builder{prefix: prefix}
}

// Init initializes the global FileSystem instance using the builder's prefix
func (b *Builder) Init() error {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return err
	}
	return Init(cfg)
}

// New creates a new FileSystem instance using the builder's prefix
func (b *Builder) New() (FileSystem, error) {
	cfg := &Config{}
	if err := config.Load(cfg, config.LoadOptions{Prefix: b.prefix}); err != nil {
		return nil, err
	}
	return New(cfg)
}

// Init initializes the global file system instance
func Init(configs ...*Config) error {
	defaultOnce.Do(func() {
		var cfg *Config
		if len(configs) > 0 {
			cfg = configs[0]
		} else {
			cfg, defaultErr = GetConfig()
			if defaultErr != nil {
				return
			}
		}

		defaultFS, defaultErr = New(cfg)
	})

	return defaultErr
}

// New creates a new file system instance with given config
func New(cfg *Config) (FileSystem, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	fs, err := CreateDriver(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	return fs, nil
}

// validateConfig checks configuration validity
func validateConfig(cfg *Config) error {
	if cfg.Driver == "" {
		return errors.New("driver is required")
	}

	switch cfg.Driver {
	case "local":
		if cfg.LocalBasePath == "" {
			return errors.New("local base path is required for local driver")
		}
	case "memory":
		// No required settings
	default:
		return fmt.Errorf("unknown driver: %s", cfg.Driver)
	}

	if cfg.Level != "" && cfg.Level != "min" && cfg.Level != "max" {
		return fmt.Errorf("unknown validation level: %s", cfg.Level)
	}

	return nil
}

// FS returns the global file system instance
func FS() FileSystem {
	if defaultFS == nil {
		_ = Init()
	}
	return defaultFS
}

// Default returns the global instance, initializing if needed with error handling
func Default() (FileSystem, error) {
	if defaultFS == nil {
		if err := Init(); err != nil {
			return nil, err
		}
	}
	return defaultFS, nil
}

// NewFromEnv creates instance from environment variables (convenience constructor)
func NewFromEnv() (FileSystem, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// InitFromEnv initializes the global instance from environment variables (convenience method)
func InitFromEnv() error {
	return Init()
}

// Reset clears the global instance (for testing)
func Reset() {
	defaultFS = nil
	defaultOnce = sync.Once{}
	defaultErr = nil
}
