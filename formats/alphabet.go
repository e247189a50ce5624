package formats

// Base residue symbol sets. DNA and RNA use the IUPAC nucleotide codes
// including degenerate symbols; Protein accepts the full uppercase letter
// range plus the stop symbol.
const (
	DNASymbols     = "ACGTRYKMSWBDHVN"
	RNASymbols     = "ACGURYKMSWBDHVN"
	ProteinSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ*"
)

// Gap symbols accepted by alignment-flavored formats.
const gapSymbols = ".-"

// Alphabet defines the legal symbol set for a sequence family.
//
// An Alphabet is an immutable value: a base symbol string plus two
// independent, commutative extensions. MixedCase additionally accepts the
// lowercase image of the base symbols; Gapped additionally accepts the gap
// symbols '.' and '-'. Each concrete format variant is one specific
// composition, applied once at construction.
type Alphabet struct {
	// Symbols are the uppercase base symbols.
	Symbols string

	// MixedCase also accepts lowercase(Symbols).
	MixedCase bool

	// Gapped also accepts '.' and '-'.
	Gapped bool
}

// DNA returns the IUPAC DNA alphabet.
func DNA() Alphabet { return Alphabet{Symbols: DNASymbols} }

// RNA returns the IUPAC RNA alphabet.
func RNA() Alphabet { return Alphabet{Symbols: RNASymbols} }

// Protein returns the protein alphabet.
func Protein() Alphabet { return Alphabet{Symbols: ProteinSymbols} }

// WithMixedCase returns a copy of the alphabet that also accepts the
// lowercase image of its base symbols.
func (a Alphabet) WithMixedCase() Alphabet {
	a.MixedCase = true
	return a
}

// WithGaps returns a copy of the alphabet that also accepts the gap
// symbols '.' and '-'.
func (a Alphabet) WithGaps() Alphabet {
	a.Gapped = true
	return a
}

// String returns the complete accepted symbol string, for error messages.
func (a Alphabet) String() string {
	s := a.Symbols
	if a.MixedCase {
		s += lower(a.Symbols)
	}
	if a.Gapped {
		s += gapSymbols
	}
	return s
}

// set derives the accepted-symbol lookup table. Pure function of the three
// fields; the result depends only on the composition, not on the order the
// extensions were applied in.
func (a Alphabet) set() [256]bool {
	var accepted [256]bool
	for i := 0; i < len(a.Symbols); i++ {
		accepted[a.Symbols[i]] = true
		if a.MixedCase {
			accepted[toLower(a.Symbols[i])] = true
		}
	}
	if a.Gapped {
		for i := 0; i < len(gapSymbols); i++ {
			accepted[gapSymbols[i]] = true
		}
	}
	return accepted
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// lower returns the lowercase image of the letters in s. Symbols without a
// lowercase form ('*') are dropped rather than repeated.
func lower(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b = append(b, c+('a'-'A'))
		}
	}
	return string(b)
}
