package poller

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadTargets reads a device address list: one address per line, blank
// lines and "#" comments skipped, duplicates removed preserving
// first-seen order.
func ReadTargets(r io.Reader) ([]string, error) {
	var addresses []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading target list: %w", err)
	}

	return dedupe(addresses), nil
}
