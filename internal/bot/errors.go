package bot

// ParseError marks malformed command arguments. Its text is shown to the
// user verbatim after the "Error: " prefix, so keep messages self-contained.
type ParseError struct {
	msg string
}

func newParseError(msg string) *ParseError {
	return &ParseError{msg: msg}
}

func (e *ParseError) Error() string {
	return e.msg
}
