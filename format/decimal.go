package format

import "strings"

// Decimal inserts a decimal point pos digits from the right of raw. Short
// values are left-padded with zeros so at least one digit precedes the
// point ("5", 2 gives "0.05"). Once a point is inserted, trailing zeros and
// then a trailing point are dropped ("5000", 3 gives "5"). Non-numeric input
// and pos <= 0 return raw unchanged.
func Decimal(raw string, pos int) string {
	if pos <= 0 || !digits(raw) {
		return raw
	}
	if len(raw) <= pos {
		raw = strings.Repeat("0", pos-len(raw)+1) + raw
	}
	v := raw[:len(raw)-pos] + "." + raw[len(raw)-pos:]
	v = strings.TrimRight(v, "0")
	return strings.TrimSuffix(v, ".")
}
