package common

import (
	"regexp"
	"strconv"
	"strings"
)

// IndexMode selects how the table index is derived from the OID part of a
// walk response line.
type IndexMode int

const (
	// TrailingScalar takes the final dot-separated numeric component.
	// Used for flat tables such as the standard ifTable.
	TrailingScalar IndexMode = iota

	// FullCompound takes the longest trailing run of dot-separated digits,
	// preserving multi-part indices such as <ifIndex>.<onuID> used by ONU
	// tables. Falls back to the trailing scalar when the pattern does not
	// match.
	FullCompound
)

// compoundIndexRegex matches the longest trailing run of dot-separated
// digits in an OID, e.g. ".285278465.1" in "...8.1.4.285278465.1".
var compoundIndexRegex = regexp.MustCompile(`\.(\d+(?:\.\d+)*)$`)

// typeTagRegex matches the net-snmp type prefix of a value, e.g.
// "INTEGER: ", "STRING: ", "Hex-STRING: ".
var typeTagRegex = regexp.MustCompile(`^[A-Za-z\-]+:\s*`)

// ParseWalk converts raw walk output into an index -> value map.
//
// Lines without a "=" separator are discarded; only the first "=" splits a
// line. Values are normalized by stripping the type tag, surrounding quotes
// and whitespace. A recurring index overwrites the earlier occurrence.
// Empty input yields an empty map, never an error.
func ParseWalk(raw string, mode IndexMode) map[string]string {
	data := make(map[string]string)
	if raw == "" {
		return data
	}

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		oidPart, valuePart, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		oidPart = strings.TrimSpace(oidPart)
		index := ""

		if mode == FullCompound {
			if m := compoundIndexRegex.FindStringSubmatch(oidPart); m != nil {
				index = m[1]
			}
		}
		if index == "" {
			parts := strings.Split(oidPart, ".")
			index = parts[len(parts)-1]
		}

		data[index] = NormalizeValue(valuePart)
	}

	return data
}

// NormalizeValue strips the net-snmp type tag, surrounding quotes and
// whitespace from a response value.
func NormalizeValue(value string) string {
	value = typeTagRegex.ReplaceAllString(strings.TrimSpace(value), "")
	value = strings.Trim(value, `"`)
	return strings.TrimSpace(value)
}

// ScalarValue extracts the normalized value from a single-get response
// line. Returns "" when the line carries no "=" separator.
func ScalarValue(raw string) string {
	_, valuePart, found := strings.Cut(raw, "=")
	if !found {
		return ""
	}
	return NormalizeValue(valuePart)
}

// FirstToken returns the first whitespace-separated token of s, or "".
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DecodeSlot extracts the slot number from a packed interface index where
// one byte encodes the slot: (index >> 8) & 0xFF. Returns false on a
// non-numeric index.
func DecodeSlot(index string) (int, bool) {
	idx, err := strconv.ParseUint(index, 10, 64)
	if err != nil {
		return 0, false
	}
	return int((idx >> 8) & 0xFF), true
}
