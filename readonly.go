package bioformat

import (
	"context"
	"io"
)

// ============================================================================
// ReadOnly Decorator
// ============================================================================

// ReadOnly wraps a FileSystem to prevent all write operations.
// Validation is a pure read-only pass over an immutable file; wrapping the
// source backend in ReadOnly enforces that no validator, column check, or
// delegated parser can mutate the data it is judging.
//
// Example:
//
//	fs, _ := local.New("/data")
//	src := bioformat.NewReadOnly(fs)
//
//	// Read operations work normally
//	reader, _ := src.Read(ctx, "taxonomy.tsv")
//
//	// Write operations return ErrReadOnly
//	err := src.Write(ctx, "taxonomy.tsv", reader)
//	// err wraps ErrReadOnly
type ReadOnly struct {
	fs FileSystem
}

// NewReadOnly creates a read-only wrapper around a FileSystem.
// All write operations (Write, Delete, CreateDir, DeleteDir) fail with
// a PathError wrapping ErrReadOnly.
func NewReadOnly(fs FileSystem) *ReadOnly {
	return &ReadOnly{fs: fs}
}

// Unwrap returns the underlying FileSystem.
// This allows access to the original filesystem if needed.
func (r *ReadOnly) Unwrap() FileSystem {
	return r.fs
}

// IsReadOnly returns true, indicating this is a read-only filesystem.
func (r *ReadOnly) IsReadOnly() bool {
	return true
}

// ============================================================================
// FileReader passthrough
// ============================================================================

func (r *ReadOnly) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	return r.fs.Read(ctx, path)
}

func (r *ReadOnly) ReadAll(ctx context.Context, path string) ([]byte, error) {
	return r.fs.ReadAll(ctx, path)
}

func (r *ReadOnly) FileExists(ctx context.Context, path string) (bool, error) {
	return r.fs.FileExists(ctx, path)
}

func (r *ReadOnly) DirExists(ctx context.Context, path string) (bool, error) {
	return r.fs.DirExists(ctx, path)
}

func (r *ReadOnly) Stat(ctx context.Context, path string) (*FileInfo, error) {
	return r.fs.Stat(ctx, path)
}

func (r *ReadOnly) ListContents(ctx context.Context, path string, recursive bool) ([]FileInfo, error) {
	return r.fs.ListContents(ctx, path, recursive)
}

// ============================================================================
// FileWriter rejections
// ============================================================================

func (r *ReadOnly) Write(ctx context.Context, path string, rd io.Reader, opts ...Option) error {
	return &PathError{Op: "write", Path: path, Err: ErrReadOnly}
}

func (r *ReadOnly) Delete(ctx context.Context, path string) error {
	return &PathError{Op: "delete", Path: path, Err: ErrReadOnly}
}

func (r *ReadOnly) CreateDir(ctx context.Context, path string) error {
	return &PathError{Op: "createdir", Path: path, Err: ErrReadOnly}
}

func (r *ReadOnly) DeleteDir(ctx context.Context, path string) error {
	return &PathError{Op: "deletedir", Path: path, Err: ErrReadOnly}
}
