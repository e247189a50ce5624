package formats

import (
	"strings"
	"testing"
)

const blast6Hit = "query1\tsubject1\t99.5\t100\t1\t0\t1\t100\t5\t104\t1e-50\t200.0\n"

func TestBLAST6Sniff(t *testing.T) {
	v := &BLAST6Validator{}

	testCases := []struct {
		name    string
		content string
		want    bool
	}{
		{"valid hit", blast6Hit, true},
		{"comment then hit", "# BLASTN 2.14.0\n" + blast6Hit, true},
		{"empty file", "", false},
		{"wrong field count", "query1\tsubject1\t99.5\n", false},
		{"non-numeric field", strings.Replace(blast6Hit, "99.5", "high", 1), false},
		{"fasta content", ">seq1\nACGT\n", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := v.Sniff(strings.NewReader(tc.content))
			if got != tc.want {
				t.Errorf("Sniff() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBLAST6Validate(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		wantType ValidationErrorType
	}{
		{
			name:    "single hit",
			content: blast6Hit,
		},
		{
			name:    "comments and blanks skipped",
			content: "# header comment\n\n" + blast6Hit + blast6Hit,
		},
		{
			name:     "empty file",
			content:  "",
			wantType: ErrorTypeEmpty,
		},
		{
			name:     "only comments",
			content:  "# nothing but commentary\n",
			wantType: ErrorTypeEmpty,
		},
		{
			name:     "short row",
			content:  blast6Hit + "query2\tsubject2\t88.0\n",
			wantType: ErrorTypeRecord,
		},
		{
			name:     "non-numeric evalue",
			content:  strings.Replace(blast6Hit, "1e-50", "tiny", 1),
			wantType: ErrorTypeRecord,
		},
	}

	v := &BLAST6Validator{}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(strings.NewReader(tc.content), LevelMax)
			checkValidationResult(t, err, tc.wantType)
		})
	}
}
