package services

import "strings"

// SplitMessage splits text into chunks of at most maxLen characters, breaking
// only on line boundaries. A single line longer than maxLen is the one
// exception: the pending buffer is flushed, then the line is hard-split into
// consecutive maxLen slices. Joining the chunks with "\n" reconstructs the
// input whenever no line exceeds maxLen.
func SplitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, "\n"))
			current = nil
			currentLen = 0
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > maxLen {
			flush()
			for start := 0; start < len(line); start += maxLen {
				end := start + maxLen
				if end > len(line) {
					end = len(line)
				}
				chunks = append(chunks, line[start:end])
			}
			continue
		}

		addition := len(line)
		if len(current) > 0 {
			addition++ // joining newline
		}
		if currentLen+addition > maxLen {
			flush()
			addition = len(line)
		}
		current = append(current, line)
		currentLen += addition
	}
	flush()

	if len(chunks) == 0 {
		return []string{""}
	}
	return chunks
}
