package bioformat

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for file operations
type Options struct {
	// ContentType specifies the MIME type of the file
	ContentType string

	// Metadata contains additional metadata for the file.
	// Pipelines use this to record provenance, e.g. the checksum and the
	// format name a file validated against.
	Metadata map[string]string

	// Overwrite determines whether to overwrite existing files
	Overwrite bool
}

// WithContentType sets the content type of the file
func WithContentType(contentType string) Option {
	return func(o *Options) {
		o.ContentType = contentType
	}
}

// WithMetadata sets additional metadata for the file
func WithMetadata(metadata map[string]string) Option {
	return func(o *Options) {
		o.Metadata = metadata
	}
}

// WithOverwrite enables or disables overwriting existing files
func WithOverwrite(overwrite bool) Option {
	return func(o *Options) {
		o.Overwrite = overwrite
	}
}

// ProcessOptions applies a list of Option functions and returns the result.
// Intended for driver implementations.
func ProcessOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
