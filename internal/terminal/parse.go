package terminal

import (
	"strconv"
	"strings"
)

// hexPrefixes are stripped (once, case-insensitively) before hex conversion.
var hexPrefixes = []string{"$", "&h", "0x"}

// ParseUnsigned converts decimal text to an unsigned integer of the given
// width (8, 16, 32 or 64 bits). Surrounding whitespace is ignored.
//
// Text that is not a non-negative decimal number fitting in 64 bits yields a
// conversion ParseError and 0. A number that fits in 64 bits but not in the
// requested width yields a range ParseError together with the number
// truncated to its low bits.
func ParseUnsigned(text string, bits int) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &ParseError{Type: ErrTypeConversion, Kind: KindUnsigned, Bits: bits, Input: text, Err: err}
	}
	return truncate(n, bits, text)
}

// ParseHex converts hexadecimal text to a 64-bit unsigned integer. A single
// leading "$", "&h" or "0x" prefix is accepted in any letter case.
func ParseHex(text string) (uint64, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)
	for _, p := range hexPrefixes {
		if strings.HasPrefix(lower, p) {
			s = s[len(p):]
			break
		}
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &ParseError{Type: ErrTypeConversion, Kind: KindHex, Bits: 64, Input: text, Err: err}
	}
	return n, nil
}

// ParseFloat converts text to a single-precision float. Only decimal
// notation is accepted.
func ParseFloat(text string) (float32, error) {
	f, err := parseDecimalFloat(text, 32)
	if err != nil {
		return 0, &ParseError{Type: ErrTypeConversion, Kind: KindFloat, Bits: 32, Input: text, Err: err}
	}
	return float32(f), nil
}

// ParseDouble converts text to a double-precision float. Only decimal
// notation is accepted.
func ParseDouble(text string) (float64, error) {
	f, err := parseDecimalFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Type: ErrTypeConversion, Kind: KindFloat, Bits: 64, Input: text, Err: err}
	}
	return f, nil
}

// parseDecimalFloat is strconv.ParseFloat without Go literal syntax:
// hex mantissas and digit separators are rejected.
func parseDecimalFloat(text string, bits int) (float64, error) {
	s := strings.TrimSpace(text)
	unsigned := strings.TrimLeft(s, "+-")
	if strings.ContainsRune(s, '_') || len(s)-len(unsigned) > 1 ||
		strings.HasPrefix(strings.ToLower(unsigned), "0x") {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(s, bits)
}

// FormatUnsigned renders v in the base selected by f with the minimal
// number of digits. Hex digits are lowercase and carry no prefix.
func FormatUnsigned(v uint64, f NumberFormat) string {
	return strconv.FormatUint(v, f.Base())
}

// FormatFloat renders v in fixed-point notation with 6 fractional digits.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}

// FormatDouble renders v in fixed-point notation with 12 fractional digits.
func FormatDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', 12, 64)
}

func truncate(n uint64, bits int, text string) (uint64, error) {
	if bits <= 0 || bits >= 64 {
		return n, nil
	}
	mask := uint64(1)<<uint(bits) - 1
	if n > mask {
		return n & mask, &ParseError{Type: ErrTypeRange, Kind: KindUnsigned, Bits: bits, Input: text}
	}
	return n, nil
}
