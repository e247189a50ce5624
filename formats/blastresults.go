package formats

import (
	"errors"
	"io"

	"github.com/gobeaver/bioformat/blast6"
)

// BLAST6Validator validates pairwise-alignment search results in the BLAST
// -outfmt 6 twelve-column default layout.
//
// Parsing is owned entirely by the blast6 package; this validator holds no
// structural logic of its own beyond normalizing the parser's failure modes
// into the shared error surface: an empty source becomes an empty-table
// error, any value-level parse failure becomes a malformed-record error.
type BLAST6Validator struct{}

// Sniff reports whether the first record parses as a BLAST6 hit.
func (v *BLAST6Validator) Sniff(r io.Reader) bool {
	_, err := blast6.NewReader(r).Read()
	return err == nil
}

// Validate delegates to the parser and translates its failures. The parser
// reads the whole source, so level does not bound the scan.
func (v *BLAST6Validator) Validate(r io.Reader, level Level) error {
	if _, err := blast6.Read(r); err != nil {
		if errors.Is(err, blast6.ErrEmpty) {
			return NewValidationError(ErrorTypeEmpty, "BLAST6 file is empty")
		}
		return NewValidationError(ErrorTypeRecord, "invalid BLAST6 format: "+err.Error())
	}
	return nil
}
