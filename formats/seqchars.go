package formats

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gobeaver/bioformat/metadata"
)

// ColumnCheck validates the values of one named column. Checks are composed
// onto a SequenceCharacteristicsValidator by the host when it registers a
// format variant carrying extra column guarantees.
type ColumnCheck func(name string, values []string) error

// SequenceCharacteristicsValidator validates per-feature scalar annotation
// tables: a TSV file whose first column holds feature identifiers, followed
// by at least one annotation column.
//
// The core contract is only the shape: the file must parse, must have at
// least one data row, and must keep at least one column after the key.
// Guarantees about specific columns (e.g. a numeric "length") are expressed
// as ColumnChecks, registered independently per format variant.
type SequenceCharacteristicsValidator struct {
	// Checks maps column names to the check applied to that column.
	// Columns without an entry are accepted as-is; an entry whose column
	// is absent from the file is skipped.
	Checks map[string]ColumnCheck
}

// Sniff reports whether the content loads as a keyed table at all.
func (v *SequenceCharacteristicsValidator) Sniff(r io.Reader) bool {
	_, err := metadata.Load(r)
	return err == nil
}

// Validate loads the table, checks the shape, then runs the composed
// column checks.
func (v *SequenceCharacteristicsValidator) Validate(r io.Reader, level Level) error {
	md, err := metadata.Load(r)
	if err != nil {
		if errors.Is(err, metadata.ErrEmpty) {
			return NewValidationError(ErrorTypeEmpty, "sequence characteristics file cannot be empty")
		}
		return NewValidationError(ErrorTypeRecord, err.Error())
	}

	if md.RowCount() == 0 {
		return NewValidationError(ErrorTypeEmpty, "sequence characteristics file cannot be empty")
	}

	if md.ColumnCount() == 0 {
		return NewValidationError(ErrorTypeColumns,
			"sequence characteristics file needs at least one column beyond the feature identifiers")
	}

	for name, check := range v.Checks {
		col, ok := md.Column(name)
		if !ok {
			continue
		}
		if err := check(name, col.Values); err != nil {
			return err
		}
	}
	return nil
}

// NumericColumnCheck returns a ColumnCheck enforcing that every non-empty
// value in the column parses as a number. It is the reference column check,
// used by variants guaranteeing a numeric "length" column.
func NumericColumnCheck() ColumnCheck {
	return func(name string, values []string) error {
		for i, v := range values {
			if v == "" {
				continue
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				return NewValidationError(ErrorTypeNumeric, fmt.Sprintf(
					"column %q must contain only numeric values: value %q in row %d is not numeric",
					name, v, i+1))
			}
		}
		return nil
	}
}
