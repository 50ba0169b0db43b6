package adapter

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"
)

// ParseRange parses a range response body: one "SUFFIX:COUNT" entry per
// line, CRLF or LF terminated. Suffixes are upper-cased. Lines that do not
// have that shape are skipped and counted. When a suffix repeats, the first
// entry wins.
func ParseRange(body []byte) (suffixes map[string]int, skipped int) {
	suffixes = make(map[string]int)

	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		suffix, rawCount, ok := strings.Cut(line, ":")
		if !ok {
			skipped++
			continue
		}
		suffix = strings.ToUpper(strings.TrimSpace(suffix))
		count, err := strconv.Atoi(strings.TrimSpace(rawCount))
		if suffix == "" || err != nil || count < 0 {
			skipped++
			continue
		}

		if _, seen := suffixes[suffix]; !seen {
			suffixes[suffix] = count
		}
	}

	return suffixes, skipped
}
