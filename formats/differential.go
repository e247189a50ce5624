package formats

import (
	"errors"
	"fmt"
	"io"

	"github.com/gobeaver/bioformat/metadata"
)

// DifferentialValidator validates numeric differential-abundance tables.
//
// Parsing is delegated to the metadata loader; this validator owns only the
// post-parse checks: the table must have at least one column beyond the
// feature identifiers, and every column must be numeric. Loader failures
// are translated into the shared validation error surface.
type DifferentialValidator struct{}

// Sniff reports whether the content loads as a metadata table at all.
func (v *DifferentialValidator) Sniff(r io.Reader) bool {
	_, err := metadata.Load(r)
	return err == nil
}

// Validate loads the table and checks column count and numeric typing.
// The loader reads the whole source, so level does not bound the scan.
func (v *DifferentialValidator) Validate(r io.Reader, level Level) error {
	md, err := metadata.Load(r)
	if err != nil {
		if errors.Is(err, metadata.ErrEmpty) {
			return NewValidationError(ErrorTypeEmpty, "differential file cannot be empty")
		}
		return NewValidationError(ErrorTypeRecord, err.Error())
	}

	if md.ColumnCount() == 0 {
		return NewValidationError(ErrorTypeEmpty,
			"differential format must contain at least 1 column")
	}

	if md.FilterNumeric().ColumnCount() != md.ColumnCount() {
		for _, c := range md.Columns() {
			if c.Type != metadata.Numeric {
				return NewValidationError(ErrorTypeNumeric, fmt.Sprintf(
					"differential format must only contain numeric values: column %q is not numeric", c.Name))
			}
		}
	}
	return nil
}
