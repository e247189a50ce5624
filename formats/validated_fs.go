package formats

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/gobeaver/bioformat"
)

// ValidatedFS wraps a FileSystem so that writes of a format's canonical
// files are validated before they land. Import pipelines stage incoming data
// through a ValidatedFS: a file that fails its bound validator never reaches
// the backend, so the store only ever holds data that passed.
//
// Files whose names match none of the format's bindings pass through
// unvalidated; a format directory may legitimately carry provenance
// sidecars the format says nothing about.
type ValidatedFS struct {
	bioformat.FileSystem

	format DirectoryFormat
	level  Level
}

// NewValidatedFS creates a validating wrapper around fs for the given format.
func NewValidatedFS(fs bioformat.FileSystem, format DirectoryFormat, level Level) *ValidatedFS {
	return &ValidatedFS{FileSystem: fs, format: format, level: level}
}

// Write validates content against the binding matching the file's name, then
// passes it to the wrapped filesystem. The content is buffered once; Write
// accepts any reader, seekable or not.
func (v *ValidatedFS) Write(ctx context.Context, p string, content io.Reader, options ...bioformat.Option) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return &bioformat.PathError{Op: "write", Path: p, Err: err}
	}

	name := path.Base(p)
	for _, b := range v.format.Bindings {
		if !b.Matches(name) {
			continue
		}
		if verr := b.Validator.Validate(bytes.NewReader(data), v.level); verr != nil {
			return fmt.Errorf("%s: %w", p, verr)
		}
		break
	}

	return v.FileSystem.Write(ctx, p, bytes.NewReader(data), options...)
}

// Unwrap returns the underlying FileSystem.
func (v *ValidatedFS) Unwrap() bioformat.FileSystem {
	return v.FileSystem
}
