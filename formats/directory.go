package formats

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/gobeaver/bioformat"
)

// FileBinding binds one canonical file within a directory format to the
// validator responsible for it. Pattern is usually a literal filename
// ("taxonomy.tsv"); glob syntax is allowed for families of names
// ("left-*.fasta").
type FileBinding struct {
	Pattern   string
	Validator Validator

	g glob.Glob
}

// NewFileBinding creates a binding. The pattern is compiled once; an
// invalid pattern is a programming error and panics, mirroring
// regexp.MustCompile.
func NewFileBinding(pattern string, v Validator) FileBinding {
	return FileBinding{Pattern: pattern, Validator: v, g: glob.MustCompile(pattern)}
}

// Matches reports whether a filename satisfies the binding's pattern.
func (b FileBinding) Matches(name string) bool {
	return b.g.Match(name)
}

// DirectoryFormat is a named container binding canonical filenames to
// validators. It is the unit the host pipeline registers and the unit
// downstream transformers and importers consume.
type DirectoryFormat struct {
	Name     string
	Bindings []FileBinding
}

// SingleFileFormat creates a directory format holding exactly one file.
func SingleFileFormat(name, pattern string, v Validator) DirectoryFormat {
	return DirectoryFormat{
		Name:     name,
		Bindings: []FileBinding{NewFileBinding(pattern, v)},
	}
}

// PairedFileFormat creates a directory format holding two independent
// files, each checked by the same validator with no cross-file invariant.
func PairedFileFormat(name, leftPattern, rightPattern string, v Validator) DirectoryFormat {
	return DirectoryFormat{
		Name: name,
		Bindings: []FileBinding{
			NewFileBinding(leftPattern, v),
			NewFileBinding(rightPattern, v),
		},
	}
}

// resolve finds the file in dir satisfying the binding. Literal patterns
// are checked directly; glob patterns are matched against the directory
// listing, taking the lexicographically first match.
func (f DirectoryFormat) resolve(ctx context.Context, fs bioformat.FileReader, dir string, b FileBinding) (string, error) {
	if !strings.ContainsAny(b.Pattern, "*?[{") {
		path := joinPath(dir, b.Pattern)
		ok, err := fs.FileExists(ctx, path)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
		return path, nil
	}

	entries, err := fs.ListContents(ctx, dir, false)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, e := range entries {
		if !e.IsDir && b.Matches(e.Name) {
			matches = append(matches, joinPath(dir, e.Name))
		}
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[0], nil
}

// Sniff reports whether every bound file exists in dir and is plausibly in
// its bound format. Best-effort: any read failure reports false.
func (f DirectoryFormat) Sniff(ctx context.Context, fs bioformat.FileReader, dir string) bool {
	if len(f.Bindings) == 0 {
		return false
	}
	for _, b := range f.Bindings {
		path, err := f.resolve(ctx, fs, dir, b)
		if err != nil || path == "" {
			return false
		}
		rc, err := fs.Read(ctx, path)
		if err != nil {
			return false
		}
		ok := b.Validator.Sniff(rc)
		rc.Close()
		if !ok {
			return false
		}
	}
	return true
}

// Validate checks every bound file in dir against its validator. Each file
// is opened for the duration of one check and closed on every exit path.
// Validation failures are returned wrapped with the file path; a missing
// bound file is a PathError.
func (f DirectoryFormat) Validate(ctx context.Context, fs bioformat.FileReader, dir string, level Level) error {
	for _, b := range f.Bindings {
		path, err := f.resolve(ctx, fs, dir, b)
		if err != nil {
			return err
		}
		if path == "" {
			return &bioformat.PathError{
				Op:   "validate",
				Path: joinPath(dir, b.Pattern),
				Err:  bioformat.ErrNotExist,
			}
		}

		rc, err := fs.Read(ctx, path)
		if err != nil {
			return err
		}
		verr := b.Validator.Validate(rc, level)
		cerr := rc.Close()
		if verr != nil {
			return fmt.Errorf("%s: %w", path, verr)
		}
		if cerr != nil {
			return &bioformat.PathError{Op: "close", Path: path, Err: cerr}
		}
	}
	return nil
}

func joinPath(dir, name string) string {
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" || dir == "." {
		return name
	}
	return dir + "/" + name
}
