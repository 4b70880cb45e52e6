package classifier

// Code is a detected language code. The set is closed: the five keyword
// languages plus en (default), mul (non-ASCII fallback) and und (no input)
type Code string

// Known codes
const (
	CodeEnglish      Code = "en"
	CodeSpanish      Code = "es"
	CodeFrench       Code = "fr"
	CodeGerman       Code = "de"
	CodeItalian      Code = "it"
	CodePortuguese   Code = "pt"
	CodeMultiple     Code = "mul"
	CodeUndetermined Code = "und"
)

// String returns the wire form of the code
func (c Code) String() string { return string(c) }

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeEnglish, CodeSpanish, CodeFrench, CodeGerman,
		CodeItalian, CodePortuguese, CodeMultiple, CodeUndetermined:
		return true
	default:
		return false
	}
}

// Parse maps s to a Code and reports whether it is known
func Parse(s string) (Code, bool) {
	c := Code(s)
	return c, c.IsValid()
}

// Codes returns the full result set in a stable order
func Codes() []Code {
	return []Code{
		CodeEnglish, CodeSpanish, CodeFrench, CodeGerman,
		CodeItalian, CodePortuguese, CodeMultiple, CodeUndetermined,
	}
}
