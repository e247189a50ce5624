package memory

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gobwas/glob"

	"github.com/gobeaver/bioformat"
)

// memoryFile represents a file stored in memory
type memoryFile struct {
	content     []byte
	contentType string
	metadata    map[string]string
	modTime     time.Time
}

// memoryDir represents a directory in memory
type memoryDir struct {
	modTime time.Time
}

// watchEntry represents a single watch subscription
type watchEntry struct {
	filter string
	token  *bioformat.CallbackChangeToken
}

// Adapter provides an in-memory implementation of bioformat.FileSystem.
// Useful for testing validators against synthetic directory layouts without
// touching disk.
type Adapter struct {
	mu      sync.RWMutex
	files   map[string]*memoryFile
	dirs    map[string]*memoryDir
	maxSize int64 // Maximum total storage size (0 = unlimited)
	size    int64 // Current total size

	// Watch support
	watchMu sync.RWMutex
	watches []*watchEntry
}

// Config holds configuration for the memory adapter
type Config struct {
	// MaxSize is the maximum total storage size in bytes (0 = unlimited)
	MaxSize int64
}

// New creates a new in-memory filesystem adapter
func New(cfg ...Config) *Adapter {
	var maxSize int64
	if len(cfg) > 0 {
		maxSize = cfg[0].MaxSize
	}

	a := &Adapter{
		files:   make(map[string]*memoryFile),
		dirs:    make(map[string]*memoryDir),
		maxSize: maxSize,
	}

	// Create root directory
	a.dirs[""] = &memoryDir{modTime: time.Now()}
	a.dirs["/"] = &memoryDir{modTime: time.Now()}

	return a
}

// Write implements bioformat.FileWriter
func (a *Adapter) Write(ctx context.Context, path string, content io.Reader, options ...bioformat.Option) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path = normalizePath(path)

	if !isValidPath(path) {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  err,
		}
	}

	opts := bioformat.ProcessOptions(options...)

	a.mu.Lock()
	defer a.mu.Unlock()

	if existing, exists := a.files[path]; exists {
		if !opts.Overwrite {
			return &bioformat.PathError{
				Op:   "write",
				Path: path,
				Err:  bioformat.ErrExist,
			}
		}
		a.size -= int64(len(existing.content))
	}

	newSize := a.size + int64(len(data))
	if a.maxSize > 0 && newSize > a.maxSize {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	// Ensure parent directories exist
	a.ensureParentDirs(path)

	a.files[path] = &memoryFile{
		content:     data,
		contentType: opts.ContentType,
		metadata:    opts.Metadata,
		modTime:     time.Now(),
	}
	a.size = newSize

	a.notifyWatchers(path)

	return nil
}

// Read implements bioformat.FileReader
func (a *Adapter) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.RLock()
	defer a.mu.RUnlock()

	file, exists := a.files[path]
	if !exists {
		return nil, &bioformat.PathError{
			Op:   "read",
			Path: path,
			Err:  bioformat.ErrNotExist,
		}
	}

	// Copy so the caller's reads are isolated from later writes
	content := make([]byte, len(file.content))
	copy(content, file.content)

	return io.NopCloser(bytes.NewReader(content)), nil
}

// ReadAll implements bioformat.FileReader
func (a *Adapter) ReadAll(ctx context.Context, path string) ([]byte, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// FileExists implements bioformat.FileReader
func (a *Adapter) FileExists(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.RLock()
	defer a.mu.RUnlock()

	_, exists := a.files[path]
	return exists, nil
}

// DirExists implements bioformat.FileReader
func (a *Adapter) DirExists(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if _, exists := a.dirs[path]; exists {
		return true, nil
	}

	// Implicit directory: any file stored under this prefix
	prefix := path + "/"
	for p := range a.files {
		if strings.HasPrefix(p, prefix) {
			return true, nil
		}
	}

	return false, nil
}

// Stat implements bioformat.FileReader
func (a *Adapter) Stat(ctx context.Context, path string) (*bioformat.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.RLock()
	defer a.mu.RUnlock()

	if file, exists := a.files[path]; exists {
		return &bioformat.FileInfo{
			Name:    filepath.Base(path),
			Path:    path,
			Size:    int64(len(file.content)),
			ModTime: file.modTime,
			IsDir:   false,
		}, nil
	}

	if dir, exists := a.dirs[path]; exists {
		return &bioformat.FileInfo{
			Name:    filepath.Base(path),
			Path:    path,
			ModTime: dir.modTime,
			IsDir:   true,
		}, nil
	}

	return nil, &bioformat.PathError{
		Op:   "stat",
		Path: path,
		Err:  bioformat.ErrNotExist,
	}
}

// ListContents implements bioformat.FileReader
func (a *Adapter) ListContents(ctx context.Context, path string, recursive bool) ([]bioformat.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.RLock()
	defer a.mu.RUnlock()

	prefix := path
	if prefix != "" {
		prefix += "/"
	}

	var infos []bioformat.FileInfo
	seenDirs := make(map[string]bool)

	for p, file := range a.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if rel == "" {
			continue
		}

		if idx := strings.Index(rel, "/"); idx >= 0 {
			// File in a subdirectory
			if recursive {
				infos = append(infos, bioformat.FileInfo{
					Name:    filepath.Base(p),
					Path:    p,
					Size:    int64(len(file.content)),
					ModTime: file.modTime,
					IsDir:   false,
				})
			} else {
				dirName := rel[:idx]
				if !seenDirs[dirName] {
					seenDirs[dirName] = true
					infos = append(infos, bioformat.FileInfo{
						Name:  dirName,
						Path:  prefix + dirName,
						IsDir: true,
					})
				}
			}
			continue
		}

		infos = append(infos, bioformat.FileInfo{
			Name:    rel,
			Path:    p,
			Size:    int64(len(file.content)),
			ModTime: file.modTime,
			IsDir:   false,
		})
	}

	// Explicit empty directories
	for p, dir := range a.dirs {
		if p == "" || p == "/" || !strings.HasPrefix(p, prefix) {
			continue
		}
		rel := strings.TrimPrefix(p, prefix)
		if rel == "" {
			continue
		}
		if !recursive && strings.Contains(rel, "/") {
			continue
		}
		if !seenDirs[rel] {
			seenDirs[rel] = true
			infos = append(infos, bioformat.FileInfo{
				Name:    filepath.Base(p),
				Path:    p,
				ModTime: dir.modTime,
				IsDir:   true,
			})
		}
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Path < infos[j].Path
	})

	return infos, nil
}

// Delete implements bioformat.FileWriter
func (a *Adapter) Delete(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.Lock()
	defer a.mu.Unlock()

	file, exists := a.files[path]
	if !exists {
		return &bioformat.PathError{
			Op:   "delete",
			Path: path,
			Err:  bioformat.ErrNotExist,
		}
	}

	a.size -= int64(len(file.content))
	delete(a.files, path)

	a.notifyWatchers(path)

	return nil
}

// CreateDir implements bioformat.FileWriter
func (a *Adapter) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path = normalizePath(path)

	if !isValidPath(path) {
		return &bioformat.PathError{
			Op:   "createdir",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.ensureParentDirs(path + "/x")
	a.dirs[path] = &memoryDir{modTime: time.Now()}

	return nil
}

// DeleteDir implements bioformat.FileWriter
func (a *Adapter) DeleteDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	path = normalizePath(path)

	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := path + "/"
	deleted := false

	for p, file := range a.files {
		if strings.HasPrefix(p, prefix) {
			a.size -= int64(len(file.content))
			delete(a.files, p)
			deleted = true
		}
	}

	for p := range a.dirs {
		if p == path || strings.HasPrefix(p, prefix) {
			delete(a.dirs, p)
			deleted = true
		}
	}

	if !deleted {
		return &bioformat.PathError{
			Op:   "deletedir",
			Path: path,
			Err:  bioformat.ErrNotExist,
		}
	}

	a.notifyWatchers(path)

	return nil
}

// Size returns the current total storage size in bytes
func (a *Adapter) Size() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.size
}

// Checksum implements bioformat.CanChecksum
func (a *Adapter) Checksum(ctx context.Context, path string, algorithm bioformat.ChecksumAlgorithm) (string, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	return bioformat.CalculateChecksum(rc, algorithm)
}

// Checksums implements bioformat.CanChecksum
func (a *Adapter) Checksums(ctx context.Context, path string, algorithms []bioformat.ChecksumAlgorithm) (map[bioformat.ChecksumAlgorithm]string, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return bioformat.CalculateChecksums(rc, algorithms)
}

// Watch implements bioformat.CanWatch.
// The returned token signals once when any path matching the glob filter is
// written or deleted; tokens are single-use.
func (a *Adapter) Watch(ctx context.Context, filter string) (bioformat.ChangeToken, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if _, err := glob.Compile(filter); err != nil {
		return nil, &bioformat.PathError{
			Op:   "watch",
			Path: filter,
			Err:  err,
		}
	}

	token := bioformat.NewCallbackChangeToken()

	a.watchMu.Lock()
	a.watches = append(a.watches, &watchEntry{
		filter: filter,
		token:  token,
	})
	a.watchMu.Unlock()

	return token, nil
}

// notifyWatchers signals all watch tokens whose filter matches the path.
// Caller must hold a.mu; watchMu is taken independently.
func (a *Adapter) notifyWatchers(path string) {
	a.watchMu.Lock()
	defer a.watchMu.Unlock()

	remaining := a.watches[:0]
	for _, w := range a.watches {
		g, err := glob.Compile(w.filter)
		if err != nil {
			continue
		}
		if g.Match(path) || g.Match(filepath.Base(path)) {
			w.token.SignalChange()
			// Single-use token, drop the subscription
			continue
		}
		remaining = append(remaining, w)
	}
	a.watches = remaining
}

// ensureParentDirs records every ancestor of path as a directory.
// Caller must hold a.mu.
func (a *Adapter) ensureParentDirs(path string) {
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" && dir != "" {
		if _, exists := a.dirs[dir]; !exists {
			a.dirs[dir] = &memoryDir{modTime: time.Now()}
		}
		dir = filepath.Dir(dir)
	}
}

// normalizePath cleans a path into the canonical stored form:
// forward slashes, no leading slash, no trailing slash.
func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "/")
	path = strings.TrimSuffix(path, "/")
	if path == "." {
		return ""
	}
	return path
}

// isValidPath rejects traversal attempts and empty names
func isValidPath(path string) bool {
	if path == "" {
		return false
	}
	for _, part := range strings.Split(path, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
