package format

// CheckDigit computes the GS1 mod-10 check digit for body, the digits that
// precede the check digit. Weights alternate 3 and 1 starting from the
// rightmost digit of body. It returns false if body is empty or contains a
// non-digit.
func CheckDigit(body string) (int, bool) {
	length := len(body)
	if length == 0 {
		return 0, false
	}
	sum := 0
	for i := length - 1; i >= 0; i -= 2 {
		d := int(body[i]) - '0'
		if d < 0 || d > 9 {
			return 0, false
		}
		sum += d
	}
	sum *= 3
	for i := length - 2; i >= 0; i -= 2 {
		d := int(body[i]) - '0'
		if d < 0 || d > 9 {
			return 0, false
		}
		sum += d
	}
	return (1000 - sum%1000) % 10, true
}

// IsValidCheckDigit reports whether the last digit of s is the GS1 check
// digit of the digits before it.
func IsValidCheckDigit(s string) bool {
	if len(s) < 2 {
		return false
	}
	check := int(s[len(s)-1]) - '0'
	if check < 0 || check > 9 {
		return false
	}
	want, ok := CheckDigit(s[:len(s)-1])
	return ok && want == check
}

// IsValidGTIN reports whether s is a GTIN-8, -12, -13 or -14 with a correct
// check digit.
func IsValidGTIN(s string) bool {
	switch len(s) {
	case 8, 12, 13, 14:
		return IsValidCheckDigit(s)
	default:
		return false
	}
}

// IsValidSSCC reports whether s is an 18-digit SSCC with a correct check digit.
func IsValidSSCC(s string) bool {
	return len(s) == 18 && IsValidCheckDigit(s)
}

// IsValidGLN reports whether s is a 13-digit GLN with a correct check digit.
func IsValidGLN(s string) bool {
	return len(s) == 13 && IsValidCheckDigit(s)
}
