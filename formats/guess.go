package formats

import (
	"context"

	"github.com/gobeaver/bioformat"
)

// Guess sniffs the contents of dir against every format in the registry and
// returns the names of the formats that consider it plausible, in
// registration order.
//
// Sniffing is best-effort disambiguation, not validation: a format in the
// result may still fail Validate, and the host is expected to walk the
// candidates in order until one validates. An empty result means no
// registered format recognizes the directory.
func Guess(ctx context.Context, fs bioformat.FileReader, dir string, reg *Registry) []string {
	var candidates []string
	for _, f := range reg.Formats() {
		if f.Sniff(ctx, fs, dir) {
			candidates = append(candidates, f.Name)
		}
	}
	return candidates
}
