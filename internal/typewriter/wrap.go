package typewriter

import "strings"

// Wrap breaks text into lines of at most cols runes, preferring to break at
// spaces. Explicit newlines always start a new line.
func Wrap(text string, cols int) []string {
	if cols < 1 {
		cols = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine([]rune(para), cols)...)
	}
	return lines
}

func wrapLine(r []rune, cols int) []string {
	if len(r) <= cols {
		return []string{string(r)}
	}
	var out []string
	for len(r) > cols {
		cut := cols
		for k := cols; k > 0; k-- {
			if r[k] == ' ' {
				cut = k
				break
			}
		}
		out = append(out, string(r[:cut]))
		r = r[cut:]
		if len(r) > 0 && r[0] == ' ' {
			r = r[1:]
		}
	}
	if len(r) > 0 {
		out = append(out, string(r))
	}
	return out
}
