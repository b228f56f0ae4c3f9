package rsv

// Delimiters are the display strings written around decoded values and rows.
// They carry no meaning for the decoder and are written verbatim.
type Delimiters struct {
	NullValue      string `yaml:"null_value" json:"null_value"`
	FieldSeparator string `yaml:"field_separator" json:"field_separator"`
	FieldOpening   string `yaml:"field_opening" json:"field_opening"`
	FieldClosing   string `yaml:"field_closing" json:"field_closing"`
	LineStarting   string `yaml:"line_starting" json:"line_starting"`
	LineEnding     string `yaml:"line_ending" json:"line_ending"`
}

// DefaultDelimiters renders rows as [<a>|<b>|null].
func DefaultDelimiters() Delimiters {
	return Delimiters{
		NullValue:      "null",
		FieldSeparator: "|",
		FieldOpening:   "<",
		FieldClosing:   ">",
		LineStarting:   "[",
		LineEnding:     "]",
	}
}
