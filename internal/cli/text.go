// SPDX-License-Identifier: MIT
package cli

import "strings"

// indentation is the standard indentation for help examples.
const indentation = `  `

// longDesc trims a command's long description and the source indentation of
// every line.
func longDesc(s string) string {
	return reindent(s, "")
}

// examples is longDesc with every line indented by one level.
func examples(s string) string {
	return reindent(s, indentation)
}

func reindent(s, prefix string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			line = prefix + line
		}
		lines[i] = line
	}

	return strings.Join(lines, "\n")
}
