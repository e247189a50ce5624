package formats

import (
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped from the first line if present. Spreadsheet exports
// routinely prepend it.
const utf8BOM = "\ufeff"

// FASTAValidator validates '>'-delimited sequence collections against an
// [Alphabet]. With Aligned set it additionally enforces that every sequence
// in the file has the same length.
//
// The validator checks, in order of discovery:
//
//   - the first non-blank line is a '>' description
//   - descriptions carry an ID, the ID does not start with a space, and no
//     two records share an ID
//   - no two descriptions are adjacent (every record has sequence lines)
//   - every residue is a member of the alphabet's accepted set
//   - (Aligned only) every sequence length equals the first sequence's
//
// A whitespace-only file validates clean: emptiness is a property for the
// container format to judge, not the sequence scanner.
type FASTAValidator struct {
	Alphabet Alphabet
	Aligned  bool

	accepted [256]bool
}

// NewFASTAValidator creates a validator for an unaligned sequence collection.
func NewFASTAValidator(a Alphabet) *FASTAValidator {
	return &FASTAValidator{Alphabet: a, accepted: a.set()}
}

// NewAlignedFASTAValidator creates a validator for an alignment. The
// alphabet is extended with the gap symbols '.' and '-'; all sequences must
// share one length.
func NewAlignedFASTAValidator(a Alphabet) *FASTAValidator {
	a = a.WithGaps()
	return &FASTAValidator{Alphabet: a, Aligned: true, accepted: a.set()}
}

// Sniff reports whether the first non-blank content starts with a '>'
// description line.
func (v *FASTAValidator) Sniff(r io.Reader) bool {
	sc := newLineScanner(r)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		if isBlank(line) {
			continue
		}
		return strings.TrimSpace(line)[0] == '>'
	}
	return false
}

// Validate scans records and fails fast on the first structural violation.
// At LevelMin the scan is capped at 100 physical lines.
func (v *FASTAValidator) Validate(r io.Reader, level Level) error {
	sc := newLineScanner(r)

	var (
		lineNumber    int
		sawContent    bool
		lastLineWasID bool
		currentID     string
		ids           = make(map[string]int)

		// Alignment bookkeeping: baseLen is fixed by the first completed
		// sequence; seqLen/seqStartLine track the one being read.
		baseLen      int
		baseSet      bool
		seqLen       int
		seqStartLine int
	)

	closeRecord := func() error {
		if seqStartLine == 0 {
			return nil
		}
		if !baseSet {
			baseLen = seqLen
			baseSet = true
			return nil
		}
		if seqLen != baseLen {
			return NewValidationError(ErrorTypeAlignment, fmt.Sprintf(
				"the sequence starting on line %d was length %d; all previous sequences were length %d: all sequences must be the same length in an alignment",
				seqStartLine, seqLen, baseLen))
		}
		return nil
	}

	for sc.Scan() {
		lineNumber++
		if level == LevelMin && lineNumber > minSequenceLines {
			return nil
		}

		line := sc.Text()
		if lineNumber == 1 {
			line = strings.TrimPrefix(line, utf8BOM)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !sawContent && line[0] != '>' {
			return NewValidationError(ErrorTypeRecord, fmt.Sprintf(
				"first line of file is not a valid description: descriptions must start with '>' (line %d)", lineNumber))
		}
		sawContent = true

		if line[0] == '>' {
			if v.Aligned {
				if err := closeRecord(); err != nil {
					return err
				}
			}
			seqLen = 0
			seqStartLine = 0

			if lastLineWasID {
				return NewValidationError(ErrorTypeRecord, fmt.Sprintf(
					"multiple consecutive descriptions starting on line %d", lineNumber-1))
			}

			fields := strings.Fields(line)
			if fields[0] == ">" {
				if len(fields) == 1 {
					return NewValidationError(ErrorTypeRecord, fmt.Sprintf(
						"description on line %d is missing an ID", lineNumber))
				}
				return NewValidationError(ErrorTypeRecord, fmt.Sprintf(
					"ID on line %d starts with a space; IDs may not start with spaces", lineNumber))
			}

			id := strings.TrimPrefix(fields[0], ">")
			if firstSeen, dup := ids[id]; dup {
				return NewValidationError(ErrorTypeRecord, fmt.Sprintf(
					"ID on line %d is a duplicate of another ID on line %d", lineNumber, firstSeen))
			}
			ids[id] = lineNumber
			currentID = id
			lastLineWasID = true
			continue
		}

		for pos := 0; pos < len(line); pos++ {
			if !v.accepted[line[pos]] {
				return NewValidationError(ErrorTypeAlphabet, fmt.Sprintf(
					"invalid character %q at position %d on line %d of sequence %q: allowed characters are %s",
					line[pos], pos, lineNumber, currentID, v.Alphabet))
			}
		}
		if seqStartLine == 0 {
			seqStartLine = lineNumber
		}
		seqLen += len(line)
		lastLineWasID = false
	}

	if err := sc.Err(); err != nil {
		return NewValidationError(ErrorTypeRecord, fmt.Sprintf("reading sequence file: %v", err))
	}

	if v.Aligned {
		return closeRecord()
	}
	return nil
}
