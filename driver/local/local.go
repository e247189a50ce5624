package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobeaver/bioformat"
)

// Adapter provides a local filesystem implementation of bioformat.FileSystem.
// All paths are interpreted relative to the adapter's root; paths escaping
// the root are rejected.
type Adapter struct {
	root string
}

// New creates a new local filesystem adapter rooted at root.
// The root directory is created if it does not exist.
func New(root string) (*Adapter, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(absRoot, 0755); err != nil {
		return nil, err
	}

	return &Adapter{
		root: absRoot,
	}, nil
}

// Write implements bioformat.FileWriter
func (a *Adapter) Write(ctx context.Context, path string, content io.Reader, options ...bioformat.Option) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	opts := bioformat.ProcessOptions(options...)

	if !opts.Overwrite {
		if _, err := os.Stat(fullPath); err == nil {
			return &bioformat.PathError{
				Op:   "write",
				Path: path,
				Err:  bioformat.ErrExist,
			}
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  err,
		}
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return &bioformat.PathError{
			Op:   "write",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

// Read implements bioformat.FileReader
func (a *Adapter) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return nil, &bioformat.PathError{
			Op:   "read",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	f, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &bioformat.PathError{
				Op:   "read",
				Path: path,
				Err:  bioformat.ErrNotExist,
			}
		}
		return nil, &bioformat.PathError{
			Op:   "read",
			Path: path,
			Err:  err,
		}
	}

	return f, nil
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

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return false, &bioformat.PathError{
			Op:   "fileexists",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &bioformat.PathError{
			Op:   "fileexists",
			Path: path,
			Err:  err,
		}
	}

	return !info.IsDir(), nil
}

// DirExists implements bioformat.FileReader
func (a *Adapter) DirExists(ctx context.Context, path string) (bool, error) {
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return false, &bioformat.PathError{
			Op:   "direxists",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, &bioformat.PathError{
			Op:   "direxists",
			Path: path,
			Err:  err,
		}
	}

	return info.IsDir(), nil
}

// Stat implements bioformat.FileReader
func (a *Adapter) Stat(ctx context.Context, path string) (*bioformat.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return nil, &bioformat.PathError{
			Op:   "stat",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &bioformat.PathError{
				Op:   "stat",
				Path: path,
				Err:  bioformat.ErrNotExist,
			}
		}
		return nil, &bioformat.PathError{
			Op:   "stat",
			Path: path,
			Err:  err,
		}
	}

	return &bioformat.FileInfo{
		Name:    filepath.Base(path),
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		IsDir:   info.IsDir(),
	}, nil
}

// ListContents implements bioformat.FileReader
func (a *Adapter) ListContents(ctx context.Context, path string, recursive bool) ([]bioformat.FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return nil, &bioformat.PathError{
			Op:   "listcontents",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &bioformat.PathError{
				Op:   "listcontents",
				Path: path,
				Err:  bioformat.ErrNotExist,
			}
		}
		return nil, &bioformat.PathError{
			Op:   "listcontents",
			Path: path,
			Err:  err,
		}
	}

	if !info.IsDir() {
		return nil, &bioformat.PathError{
			Op:   "listcontents",
			Path: path,
			Err:  bioformat.ErrNotDir,
		}
	}

	var files []bioformat.FileInfo

	if recursive {
		err = filepath.Walk(fullPath, func(walkPath string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if walkPath == fullPath {
				return nil
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			relPath, err := filepath.Rel(a.root, walkPath)
			if err != nil {
				return err
			}

			files = append(files, bioformat.FileInfo{
				Name:    info.Name(),
				Path:    relPath,
				Size:    info.Size(),
				ModTime: info.ModTime(),
				IsDir:   info.IsDir(),
			})

			return nil
		})
		if err != nil {
			return nil, &bioformat.PathError{
				Op:   "listcontents",
				Path: path,
				Err:  err,
			}
		}
	} else {
		entries, err := os.ReadDir(fullPath)
		if err != nil {
			return nil, &bioformat.PathError{
				Op:   "listcontents",
				Path: path,
				Err:  err,
			}
		}

		files = make([]bioformat.FileInfo, 0, len(entries))
		for _, entry := range entries {
			info, err := entry.Info()
			if err != nil {
				continue
			}

			files = append(files, bioformat.FileInfo{
				Name:    entry.Name(),
				Path:    filepath.Join(path, entry.Name()),
				Size:    info.Size(),
				ModTime: info.ModTime(),
				IsDir:   info.IsDir(),
			})
		}
	}

	return files, nil
}

// Delete implements bioformat.FileWriter
func (a *Adapter) Delete(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return &bioformat.PathError{
			Op:   "delete",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return &bioformat.PathError{
				Op:   "delete",
				Path: path,
				Err:  bioformat.ErrNotExist,
			}
		}
		return &bioformat.PathError{
			Op:   "delete",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

// CreateDir implements bioformat.FileWriter
func (a *Adapter) CreateDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return &bioformat.PathError{
			Op:   "createdir",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	if err := os.MkdirAll(fullPath, 0755); err != nil {
		return &bioformat.PathError{
			Op:   "createdir",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

// DeleteDir implements bioformat.FileWriter
func (a *Adapter) DeleteDir(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fullPath := filepath.Join(a.root, filepath.Clean(path))

	if !isPathUnderRoot(a.root, fullPath) {
		return &bioformat.PathError{
			Op:   "deletedir",
			Path: path,
			Err:  bioformat.ErrNotAllowed,
		}
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &bioformat.PathError{
				Op:   "deletedir",
				Path: path,
				Err:  bioformat.ErrNotExist,
			}
		}
		return &bioformat.PathError{
			Op:   "deletedir",
			Path: path,
			Err:  err,
		}
	}

	if !info.IsDir() {
		return &bioformat.PathError{
			Op:   "deletedir",
			Path: path,
			Err:  bioformat.ErrNotDir,
		}
	}

	if err := os.RemoveAll(fullPath); err != nil {
		return &bioformat.PathError{
			Op:   "deletedir",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

// Checksum implements bioformat.CanChecksum
func (a *Adapter) Checksum(ctx context.Context, path string, algorithm bioformat.ChecksumAlgorithm) (string, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	sum, err := bioformat.CalculateChecksum(rc, algorithm)
	if err != nil {
		return "", &bioformat.PathError{Op: "checksum", Path: path, Err: err}
	}

	return sum, nil
}

// Checksums implements bioformat.CanChecksum
func (a *Adapter) Checksums(ctx context.Context, path string, algorithms []bioformat.ChecksumAlgorithm) (map[bioformat.ChecksumAlgorithm]string, error) {
	rc, err := a.Read(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sums, err := bioformat.CalculateChecksums(rc, algorithms)
	if err != nil {
		return nil, &bioformat.PathError{Op: "checksums", Path: path, Err: err}
	}

	return sums, nil
}

// Watch implements bioformat.CanWatch using fsnotify for native file system events.
func (a *Adapter) Watch(ctx context.Context, filter string) (bioformat.ChangeToken, error) {
	token := bioformat.NewCallbackChangeToken()

	// Determine the directory to watch based on the filter
	watchPath := a.root
	filterPattern := filter

	if !strings.HasPrefix(filter, "*") {
		idx := strings.IndexAny(filter, "*?[")
		if idx > 0 {
			dirPart := filter[:idx]
			if lastSlash := strings.LastIndex(dirPart, "/"); lastSlash >= 0 {
				watchPath = filepath.Join(a.root, dirPart[:lastSlash])
				filterPattern = filter[lastSlash+1:]
			}
		} else if idx < 0 {
			// No glob - watch a specific file
			watchPath = filepath.Join(a.root, filepath.Dir(filter))
			filterPattern = filepath.Base(filter)
		}
	}

	watcher, err := newFSWatcher()
	if err != nil {
		return nil, &bioformat.PathError{Op: "watch", Path: filter, Err: err}
	}

	if err := watcher.Add(watchPath); err != nil {
		watcher.Close()
		return nil, &bioformat.PathError{Op: "watch", Path: filter, Err: err}
	}

	// For recursive patterns (**), add all subdirectories
	if strings.Contains(filter, "**") {
		filepath.Walk(watchPath, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				watcher.Add(path)
			}
			return nil
		})
	}

	go func() {
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events():
				if !ok {
					return
				}

				relPath, err := filepath.Rel(a.root, event.Name)
				if err != nil {
					continue
				}

				if matchesFilter(relPath, filter) || matchesFilter(filepath.Base(relPath), filterPattern) {
					token.SignalChange()
					return // Token is spent after first change
				}
			case _, ok := <-watcher.Errors():
				if !ok {
					return
				}
			}
		}
	}()

	return token, nil
}

// matchesFilter checks if a path matches a glob filter pattern.
func matchesFilter(path, filter string) bool {
	// Handle ** recursive pattern
	if strings.Contains(filter, "**") {
		parts := strings.Split(filter, "**")
		if len(parts) == 2 {
			prefix := strings.TrimSuffix(parts[0], "/")
			suffix := strings.TrimPrefix(parts[1], "/")

			if prefix != "" && !strings.HasPrefix(path, prefix) {
				return false
			}
			if suffix != "" {
				matched, _ := filepath.Match(suffix, filepath.Base(path))
				return matched
			}
			return true
		}
	}

	matched, _ := filepath.Match(filter, path)
	if matched {
		return true
	}

	// Try matching just the filename
	matched, _ = filepath.Match(filter, filepath.Base(path))
	return matched
}

// fsWatcher wraps fsnotify.Watcher with a simpler interface
type fsWatcher interface {
	Add(path string) error
	Close() error
	Events() <-chan fsEvent
	Errors() <-chan error
}

type fsEvent struct {
	Name string
	Op   uint32
}

// isPathUnderRoot checks if a path is under a given root directory
func isPathUnderRoot(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	return !filepath.IsAbs(rel) && !strings.HasPrefix(rel, "../") && rel != ".."
}
