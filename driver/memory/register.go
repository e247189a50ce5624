package memory

import "github.com/gobeaver/bioformat"

func init() {
	bioformat.RegisterDriver("memory", func(cfg *bioformat.Config) (bioformat.FileSystem, error) {
		return New(), nil
	})
}
