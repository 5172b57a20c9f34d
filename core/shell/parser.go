package shell

// Tokenize breaks one line of input into a command name and its arguments.
//
// Fields are separated by runs of spaces, tabs and line breaks. Token order
// is preserved and no quoting or escape processing is performed; a blank
// line produces no tokens.
func Tokenize(line string) []string {
	var (
		tokens []string
		start  = -1
	)

	for i, r := range line {
		if isFieldSep(r) {
			if start >= 0 {
				tokens = append(tokens, line[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, line[start:])
	}

	return tokens
}

func isFieldSep(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
