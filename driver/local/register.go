package local

import "github.com/gobeaver/bioformat"

func init() {
	bioformat.RegisterDriver("local", func(cfg *bioformat.Config) (bioformat.FileSystem, error) {
		return New(cfg.LocalBasePath)
	})
}
