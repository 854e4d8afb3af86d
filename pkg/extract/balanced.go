package extract

// BalancedJSON returns the first brace-balanced {...} span of text, scanning
// from the start. Braces inside double-quoted strings are ignored and a
// backslash escapes the character that follows it, so `"a{b}c"` and `\"`
// never disturb the depth count. It returns false when text contains no
// object or ends before the object is closed.
func BalancedJSON(text string) (string, bool) {
	var (
		inString bool
		escaped  bool
		depth    int
		start    = -1
	)

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			escaped = false
			continue
		}

		switch c {
		case '\\':
			escaped = true
		case '"':
			inString = !inString
		case '{':
			if inString {
				continue
			}
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if inString || depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}
